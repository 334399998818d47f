/*
Package element parses a small subset of XML-like markup into a tree of
Elements. It serves as an example of a grammar built with package pcomb.

Supported are elements with attributes, either self-closing or enclosing
child elements:

   <top label="Top">
      <semi-bottom label="Bottom"/>
      <middle>
         <bottom label="Another bottom"/>
      </middle>
   </top>

There is no support for text content, comments, entities, processing
instructions or namespaces.

___________________________________________________________________________

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted under the terms of the 3-Clause BSD license,
reproduced in the documentation of package pcomb.
*/
package element

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Attribute is a name/value pair of an element's start tag.
type Attribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Element is a node of a markup tree.
type Element struct {
	Name       string      `yaml:"name"`
	Attributes []Attribute `yaml:"attributes,omitempty"`
	Children   []*Element  `yaml:"children,omitempty"`
}

// Attribute returns the value of the first attribute called name.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Walk visits e and all its descendants in depth-first pre-order, calling
// fn with every element and its depth (e has depth 0). The walk stops as soon
// as fn returns false.
func (e *Element) Walk(fn func(el *Element, depth int) bool) {
	if e == nil {
		return
	}
	type frame struct {
		el    *Element
		depth int
	}
	stack := arraystack.New()
	stack.Push(frame{e, 0})
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame)
		if !fn(f.el, f.depth) {
			return
		}
		for i := len(f.el.Children) - 1; i >= 0; i-- { // push in reverse to visit in order
			stack.Push(frame{f.el.Children[i], f.depth + 1})
		}
	}
}

// Count returns the number of elements in the tree rooted at e.
func (e *Element) Count() int {
	n := 0
	e.Walk(func(*Element, int) bool {
		n++
		return true
	})
	return n
}
