// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgtree flattens an SVG document into a flat list of leaf
// path elements: it resolves transform and paint inheritance, converts
// shape primitives to path "d" strings, and discards container and
// definition nodes, so downstream code never has to walk a tree.
package svgtree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is a minimal generic XML element: a tag name, its attributes,
// and its child elements in document order. Unlike the teacher's full
// scene-graph node type, this carries no rendering state — it exists
// only long enough for [Parse] to walk it once.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// Attr returns the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// parseXML decodes an XML document into a tree of [Node]s rooted at the
// first element encountered, tolerating non-UTF-8 encodings via
// [charset.NewReaderLabel] the way [encoding/xml] documentation
// recommends for untrusted input.
func parseXML(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var stack []*Node
	var root *Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgtree: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: localName(t.Name), Attrs: map[string]string{}}
			for _, a := range t.Attr {
				n.Attrs[localName(a.Name)] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("svgtree: no root element found")
	}
	return root, nil
}

// localName strips any XML namespace prefix from a qualified name.
func localName(name xml.Name) string {
	if i := strings.IndexByte(name.Local, ':'); i >= 0 {
		return name.Local[i+1:]
	}
	return name.Local
}
