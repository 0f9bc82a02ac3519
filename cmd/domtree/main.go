// Command domtree parses an HTML file, optionally runs a script against
// the resulting tree, and prints the final tree shape.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/seabird-web/seabird/dom"
	"github.com/seabird-web/seabird/html"
	"github.com/seabird-web/seabird/js"
)

func main() {
	scriptPath := flag.String("script", "", "JavaScript file to run against the parsed document")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.html>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := parseFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	if *scriptPath != "" {
		if err := runScript(doc, *scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error running %s: %v\n", *scriptPath, err)
			os.Exit(1)
		}
	}

	printTree(doc.AsNode(), 0)
}

func parseFile(path string) (*dom.Document, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return html.Parse(r)
}

func runScript(doc *dom.Document, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	runtime := js.NewRuntime()
	binder := js.NewDOMBinder(runtime)
	binder.InstallDocument(doc)
	defer binder.Release()

	_, err = runtime.Execute(string(code))
	return err
}

func printTree(node *dom.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node.NodeType() {
	case dom.ElementNode:
		el := (*dom.Element)(node)
		fmt.Printf("%s<%s%s>\n", indent, el.LocalName(), formatAttributes(el))
	case dom.TextNode:
		text := strings.TrimSpace(node.NodeValue())
		if text != "" {
			fmt.Printf("%s%q\n", indent, text)
		}
	case dom.CommentNode:
		fmt.Printf("%s<!-- %s -->\n", indent, node.NodeValue())
	case dom.DocumentTypeNode:
		fmt.Printf("%s<!DOCTYPE %s>\n", indent, node.NodeName())
	case dom.DocumentNode:
		fmt.Printf("%s#document\n", indent)
	case dom.DocumentFragmentNode:
		fmt.Printf("%s#document-fragment\n", indent)
	}

	node.ChildNodes().ForEach(func(child *dom.Node, _ int) {
		printTree(child, depth+1)
	})
}

func formatAttributes(el *dom.Element) string {
	names := el.AttributeNames()
	sort.Strings(names)
	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, " %s=%q", name, el.GetAttribute(name))
	}
	return sb.String()
}
