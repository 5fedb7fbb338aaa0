package sitekit

import (
	"slices"
	"strings"
)

// Components is a case-insensitive namespace mirroring a directory tree.
// Keys are lower-cased on every access; values are *Components subtrees or
// *Component leaves. Setting an existing key overwrites it regardless of kind.
//
// A Components value is not safe for concurrent mutation.
type Components struct {
	entries map[string]Entry
}

// NewComponents creates an empty namespace.
func NewComponents() *Components {
	return &Components{entries: make(map[string]Entry)}
}

// Len returns the number of direct entries.
func (c *Components) Len() int {
	return len(c.entries)
}

// Keys returns the lower-cased direct keys in sorted order.
func (c *Components) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the entry stored under name.
func (c *Components) Get(name string) (Entry, bool) {
	e, ok := c.entries[strings.ToLower(name)]
	return e, ok
}

// Set stores e under the lower-cased name, replacing any previous entry.
func (c *Components) Set(name string, e Entry) {
	c.entries[strings.ToLower(name)] = e
}

// Sub returns the subtree stored under name, creating it when absent.
// An existing subtree is reused so directories that differ only in case merge;
// a leaf stored under the same key is replaced by a fresh subtree.
func (c *Components) Sub(name string) *Components {
	key := strings.ToLower(name)
	if sub, ok := c.entries[key].(*Components); ok {
		return sub
	}
	sub := NewComponents()
	c.entries[key] = sub
	return sub
}

// Lookup resolves a dotted or slash-separated name such as "ui.card" or
// "ui/card" to a component leaf.
func (c *Components) Lookup(name string) (*Component, bool) {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '.' || r == '/' })
	if len(parts) == 0 {
		return nil, false
	}

	current := c
	for i, part := range parts {
		e, ok := current.Get(part)
		if !ok {
			return nil, false
		}
		switch v := e.(type) {
		case *Component:
			if i == len(parts)-1 {
				return v, true
			}
			return nil, false
		case *Components:
			current = v
		}
	}
	return nil, false
}

// Walk calls fn for every component leaf, depth-first in sorted key order.
// path holds the lower-cased keys leading to the leaf, including its own.
// Walking stops at the first error returned by fn.
func (c *Components) Walk(fn func(path []string, comp *Component) error) error {
	return c.walk(nil, fn)
}

func (c *Components) walk(prefix []string, fn func([]string, *Component) error) error {
	for _, key := range c.Keys() {
		path := append(slices.Clip(prefix), key)
		switch v := c.entries[key].(type) {
		case *Component:
			if err := fn(path, v); err != nil {
				return err
			}
		case *Components:
			if err := v.walk(path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Assets collects the global CSS and JS of every component in walk order.
// Identical snippets are returned once.
func (c *Components) Assets() (css, js []string) {
	seenCSS := make(map[string]bool)
	seenJS := make(map[string]bool)
	_ = c.Walk(func(_ []string, comp *Component) error {
		if comp.CSS != "" && !seenCSS[comp.CSS] {
			seenCSS[comp.CSS] = true
			css = append(css, comp.CSS)
		}
		if comp.JS != "" && !seenJS[comp.JS] {
			seenJS[comp.JS] = true
			js = append(js, comp.JS)
		}
		return nil
	})
	return css, js
}
