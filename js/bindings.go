package js

import (
	"github.com/dop251/goja"

	"github.com/seabird-web/seabird/dom"
)

// domExceptionCode returns the legacy exception code for a DOMException
// name. Only the codes the tree core can raise are mapped.
func domExceptionCode(name string) int {
	switch name {
	case "HierarchyRequestError":
		return 3
	case "NotFoundError":
		return 8
	case "NotSupportedError":
		return 9
	case "InvalidStateError":
		return 11
	default:
		return 0
	}
}

// DOMBinder exposes dom nodes to JavaScript. Each bound node is pinned
// through the reference-count API for as long as its wrapper is cached, so
// a script-held node survives removal from the tree; Release drops every
// pin when the binder is done.
type DOMBinder struct {
	runtime  *Runtime
	nodeMap  map[*dom.Node]*goja.Object
	objMap   map[*goja.Object]*dom.Node
	document *dom.Document
}

// NewDOMBinder creates a new DOM binder for the given runtime.
func NewDOMBinder(runtime *Runtime) *DOMBinder {
	return &DOMBinder{
		runtime: runtime,
		nodeMap: make(map[*dom.Node]*goja.Object),
		objMap:  make(map[*goja.Object]*dom.Node),
	}
}

// InstallDocument binds the document and exposes it as the global
// "document" object.
func (b *DOMBinder) InstallDocument(doc *dom.Document) {
	b.document = doc
	b.runtime.vm.Set("document", b.BindNode(doc.AsNode()))
}

// Release drops the binder's pin on every node it has wrapped.
func (b *DOMBinder) Release() {
	for node := range b.nodeMap {
		node.Unrefer()
	}
	b.nodeMap = make(map[*dom.Node]*goja.Object)
	b.objMap = make(map[*goja.Object]*dom.Node)
}

// getGoNode returns the dom node wrapped by a JS value, or nil if the
// value is not a bound node.
func (b *DOMBinder) getGoNode(v goja.Value) *dom.Node {
	if v == nil || goja.IsNull(v) || goja.IsUndefined(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	return b.objMap[obj]
}

// bindOrNull wraps a node, mapping nil to JS null.
func (b *DOMBinder) bindOrNull(node *dom.Node) goja.Value {
	if node == nil {
		return goja.Null()
	}
	return b.BindNode(node)
}

// throwDOMError converts a DOMError into a thrown DOMException-shaped
// object.
func (b *DOMBinder) throwDOMError(err error) {
	vm := b.runtime.vm
	domErr, ok := err.(*dom.DOMError)
	if !ok {
		panic(vm.ToValue(err.Error()))
	}
	errObj := vm.NewObject()
	errObj.Set("name", domErr.Name)
	errObj.Set("message", domErr.Message)
	errObj.Set("code", domExceptionCode(domErr.Name))
	panic(vm.ToValue(errObj))
}

// BindNode returns the JS wrapper for a node, creating and caching it on
// first use. The same dom node always maps to the same JS object.
func (b *DOMBinder) BindNode(node *dom.Node) *goja.Object {
	if cached, ok := b.nodeMap[node]; ok {
		return cached
	}

	vm := b.runtime.vm
	jsObj := vm.NewObject()
	b.nodeMap[node] = jsObj
	b.objMap[jsObj] = node
	node.Refer()

	// Identity and navigation.
	jsObj.DefineAccessorProperty("nodeType", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(int(node.NodeType()))
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("nodeName", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(node.NodeName())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("nodeValue", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(node.NodeValue())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		node.SetNodeValue(call.Argument(0).String())
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("parentNode", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindOrNull(node.ParentNode())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("firstChild", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindOrNull(node.FirstChild())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("lastChild", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindOrNull(node.LastChild())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("previousSibling", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindOrNull(node.PreviousSibling())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("nextSibling", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindOrNull(node.NextSibling())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("ownerDocument", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		doc := node.OwnerDocument()
		if doc == nil {
			return goja.Null()
		}
		return b.BindNode(doc.AsNode())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("isConnected", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(node.IsConnected())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("childNodes", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		children := node.ChildNodes().ToSlice()
		bound := make([]interface{}, len(children))
		for i, child := range children {
			bound[i] = b.BindNode(child)
		}
		return vm.ToValue(bound)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("textContent", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(node.TextContent())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		value := ""
		arg := call.Argument(0)
		// A null assignment clears the content.
		if !goja.IsNull(arg) && !goja.IsUndefined(arg) {
			value = arg.String()
		}
		node.SetTextContent(value)
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.Set("hasChildNodes", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(node.HasChildNodes())
	})

	jsObj.Set("contains", func(call goja.FunctionCall) goja.Value {
		other := b.getGoNode(call.Argument(0))
		if other == nil {
			return vm.ToValue(false)
		}
		return vm.ToValue(node.Contains(other))
	})

	// Mutation operations. Argument-shape violations are TypeErrors thrown
	// here at the binding boundary; everything past it is re-validated by
	// the tree core and surfaces as DOMError.
	jsObj.Set("appendChild", func(call goja.FunctionCall) goja.Value {
		child := b.getGoNode(call.Argument(0))
		if child == nil {
			panic(vm.NewTypeError("Failed to execute 'appendChild' on 'Node': parameter 1 is not of type 'Node'."))
		}
		result, err := node.AppendChildWithError(child)
		if err != nil {
			b.throwDOMError(err)
		}
		return b.BindNode(result)
	})

	jsObj.Set("insertBefore", func(newNode, refNode goja.Value) goja.Value {
		child := b.getGoNode(newNode)
		if child == nil {
			panic(vm.NewTypeError("Failed to execute 'insertBefore' on 'Node': parameter 1 is not of type 'Node'."))
		}
		var ref *dom.Node
		if refNode != nil && !goja.IsNull(refNode) && !goja.IsUndefined(refNode) {
			ref = b.getGoNode(refNode)
			if ref == nil {
				panic(vm.NewTypeError("Failed to execute 'insertBefore' on 'Node': parameter 2 is not of type 'Node'."))
			}
		}
		result, err := node.InsertBeforeWithError(child, ref)
		if err != nil {
			b.throwDOMError(err)
		}
		return b.BindNode(result)
	})

	jsObj.Set("removeChild", func(call goja.FunctionCall) goja.Value {
		child := b.getGoNode(call.Argument(0))
		if child == nil {
			panic(vm.NewTypeError("Failed to execute 'removeChild' on 'Node': parameter 1 is not of type 'Node'."))
		}
		result, err := node.RemoveChildWithError(child)
		if err != nil {
			b.throwDOMError(err)
		}
		return b.BindNode(result)
	})

	jsObj.Set("replaceChild", func(call goja.FunctionCall) goja.Value {
		newChild := b.getGoNode(call.Argument(0))
		oldChild := b.getGoNode(call.Argument(1))
		if newChild == nil {
			panic(vm.NewTypeError("Failed to execute 'replaceChild' on 'Node': parameter 1 is not of type 'Node'."))
		}
		if oldChild == nil {
			panic(vm.NewTypeError("Failed to execute 'replaceChild' on 'Node': parameter 2 is not of type 'Node'."))
		}
		result, err := node.ReplaceChildWithError(newChild, oldChild)
		if err != nil {
			b.throwDOMError(err)
		}
		return b.BindNode(result)
	})

	jsObj.Set("remove", func(call goja.FunctionCall) goja.Value {
		node.Remove()
		return goja.Undefined()
	})

	jsObj.Set("cloneNode", func(call goja.FunctionCall) goja.Value {
		deep := call.Argument(0).ToBoolean()
		clone := node.CloneNode(deep)
		if clone == nil {
			return goja.Null()
		}
		return b.BindNode(clone)
	})

	switch node.NodeType() {
	case dom.DocumentNode:
		b.bindDocumentMethods(jsObj, (*dom.Document)(node))
	case dom.ElementNode:
		b.bindElementMethods(jsObj, (*dom.Element)(node))
	}

	return jsObj
}

// bindDocumentMethods adds the node factories and document accessors.
func (b *DOMBinder) bindDocumentMethods(jsObj *goja.Object, doc *dom.Document) {
	vm := b.runtime.vm

	jsObj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(doc.CreateElement(call.Argument(0).String()).AsNode())
	})

	jsObj.Set("createTextNode", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(doc.CreateTextNode(call.Argument(0).String()).AsNode())
	})

	jsObj.Set("createComment", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(doc.CreateComment(call.Argument(0).String()).AsNode())
	})

	jsObj.Set("createDocumentFragment", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(doc.CreateDocumentFragment().AsNode())
	})

	jsObj.DefineAccessorProperty("documentElement", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		el := doc.DocumentElement()
		if el == nil {
			return goja.Null()
		}
		return b.BindNode(el.AsNode())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
}

// bindElementMethods adds the element-specific surface.
func (b *DOMBinder) bindElementMethods(jsObj *goja.Object, el *dom.Element) {
	vm := b.runtime.vm

	jsObj.DefineAccessorProperty("tagName", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(el.TagName())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		if !el.HasAttribute(name) {
			return goja.Null()
		}
		return vm.ToValue(el.GetAttribute(name))
	})

	jsObj.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		el.SetAttribute(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})

	jsObj.Set("hasAttribute", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(el.HasAttribute(call.Argument(0).String()))
	})

	jsObj.Set("removeAttribute", func(call goja.FunctionCall) goja.Value {
		el.RemoveAttribute(call.Argument(0).String())
		return goja.Undefined()
	})
}
