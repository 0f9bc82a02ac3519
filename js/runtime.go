// Package js exposes the document tree to scripts. It wraps the goja
// JavaScript engine (pure Go) and provides the binding layer through which
// scripts call the tree mutation operations. The dom package never depends
// on this one; scripts are just one consumer of the tree.
package js

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// Runtime wraps a goja JavaScript runtime.
type Runtime struct {
	vm      *goja.Runtime
	mu      sync.Mutex
	logs    []string
	errors  []error
	onError func(error)
}

// NewRuntime creates a new JavaScript runtime with a console installed.
func NewRuntime() *Runtime {
	r := &Runtime{vm: goja.New()}
	r.setupConsole()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// SetOnError sets a callback for JavaScript errors.
func (r *Runtime) SetOnError(handler func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = handler
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Recover from panics in the goja parser/runtime.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.recordError(err)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.recordError(err)
	}
	return result, err
}

func (r *Runtime) recordError(err error) {
	r.errors = append(r.errors, err)
	if r.onError != nil {
		r.onError(err)
	}
}

// Errors returns the JavaScript errors collected so far.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.errors))
	copy(out, r.errors)
	return out
}

// ConsoleOutput returns the lines written through the console object.
func (r *Runtime) ConsoleOutput() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.logs))
	copy(out, r.logs)
	return out
}

// setupConsole creates the console object with log, warn, and error.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()

	write := func(prefix string) func(call goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			line := prefix + formatArgs(call.Arguments)
			r.logs = append(r.logs, line)
			fmt.Println(line)
			return goja.Undefined()
		}
	}
	console.Set("log", write(""))
	console.Set("warn", write("[WARN] "))
	console.Set("error", write("[ERROR] "))

	r.vm.Set("console", console)
}

// formatArgs formats console arguments the way browsers join them.
func formatArgs(args []goja.Value) string {
	out := ""
	for i, arg := range args {
		if i > 0 {
			out += " "
		}
		out += arg.String()
	}
	return out
}
