// Package uritree provides a generic hierarchical registry keyed by
// slash-separated paths. Each node holds named items (unique keys), an
// ordered sequence of anonymous items, and child nodes. It is the backing
// structure for multiform form groups and has no external dependencies so
// registry logic stays pure and testable.
package uritree

import (
	"regexp"
	"sort"
	"strings"
)

// Separator divides path segments.
const Separator = "/"

// RootName is the reserved name of a tree's top-level node.
const RootName = "root"

// Tree is a single node in the registry. The zero value is not usable;
// create trees with New.
//
// Operations are not safe for concurrent use. A tree is owned and mutated
// by exactly one owner (the engine runs a single logical update thread).
type Tree[T comparable] struct {
	name      string
	named     map[string]T
	anonymous []T
	children  map[string]*Tree[T]
}

// New creates an empty tree whose root node uses the reserved root name.
func New[T comparable]() *Tree[T] {
	return newNode[T](RootName)
}

func newNode[T comparable](name string) *Tree[T] {
	return &Tree[T]{
		name:     name,
		named:    make(map[string]T),
		children: make(map[string]*Tree[T]),
	}
}

// Name returns this node's segment name.
func (t *Tree[T]) Name() string {
	return t.name
}

// splitPath splits a path into segments, tolerating leading, trailing and
// repeated separators.
func splitPath(path string) []string {
	parts := strings.Split(path, Separator)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// descend resolves the node for the given segments. When create is true,
// missing children are created along the way; otherwise a missing segment
// yields a PathNotFoundError carrying the full original path.
func (t *Tree[T]) descend(segments []string, create bool, fullPath string) (*Tree[T], error) {
	node := t
	for _, seg := range segments {
		child, ok := node.children[seg]
		if !ok {
			if !create {
				return nil, &PathNotFoundError{Path: fullPath}
			}
			child = newNode[T](seg)
			node.children[seg] = child
		}
		node = child
	}
	return node, nil
}

// Insert adds item under the final segment of path as a named item,
// creating intermediate nodes as needed. It fails with a DuplicateItemError
// if the name is already taken at the target node.
func (t *Tree[T]) Insert(path string, item T) error {
	return t.insert(path, item, false)
}

// Put behaves like Insert but silently overwrites an existing item. It
// still fails with a PathNotFoundError when the path has no segments.
func (t *Tree[T]) Put(path string, item T) error {
	return t.insert(path, item, true)
}

func (t *Tree[T]) insert(path string, item T, overwrite bool) error {
	segments := splitPath(path)
	if len(segments) == 0 {
		return &PathNotFoundError{Path: path}
	}
	name := segments[len(segments)-1]
	node, _ := t.descend(segments[:len(segments)-1], true, path)
	if _, exists := node.named[name]; exists && !overwrite {
		return &DuplicateItemError{Path: path}
	}
	node.named[name] = item
	return nil
}

// InsertAnonymous appends item to the anonymous sequence of the node at
// groupPath, creating the node if needed. Anonymous items carry no identity
// key, so there is no duplicate check.
func (t *Tree[T]) InsertAnonymous(groupPath string, item T) {
	node, _ := t.descend(splitPath(groupPath), true, groupPath)
	node.anonymous = append(node.anonymous, item)
}

// AddAnonymous appends item to this node's anonymous sequence.
func (t *Tree[T]) AddAnonymous(item T) {
	t.anonymous = append(t.anonymous, item)
}

// Get returns the named item at path. A missing intermediate segment yields
// a PathNotFoundError; a missing final name yields an ItemNotFoundError.
func (t *Tree[T]) Get(path string) (T, error) {
	var zero T
	segments := splitPath(path)
	if len(segments) == 0 {
		return zero, &PathNotFoundError{Path: path}
	}
	name := segments[len(segments)-1]
	node, err := t.descend(segments[:len(segments)-1], false, path)
	if err != nil {
		return zero, err
	}
	item, ok := node.named[name]
	if !ok {
		return zero, &ItemNotFoundError{Path: path}
	}
	return item, nil
}

// Subnode resolves the node at path, creating missing nodes along the way.
// Creation mirrors insert behavior so a valid future-insert path never
// reports not-found; use Lookup for a non-creating resolve.
func (t *Tree[T]) Subnode(path string) *Tree[T] {
	node, _ := t.descend(splitPath(path), true, path)
	return node
}

// Lookup resolves the node at path without creating anything, failing with
// a PathNotFoundError if any segment is absent.
func (t *Tree[T]) Lookup(path string) (*Tree[T], error) {
	return t.descend(splitPath(path), false, path)
}

// Child returns the direct child with the given segment name.
func (t *Tree[T]) Child(name string) (*Tree[T], bool) {
	c, ok := t.children[name]
	return c, ok
}

// Remove deletes the named item at path. It fails with an ItemNotFoundError
// if the final name is absent, or a PathNotFoundError if a segment is.
func (t *Tree[T]) Remove(path string) error {
	segments := splitPath(path)
	if len(segments) == 0 {
		return &PathNotFoundError{Path: path}
	}
	name := segments[len(segments)-1]
	node, err := t.descend(segments[:len(segments)-1], false, path)
	if err != nil {
		return err
	}
	if _, ok := node.named[name]; !ok {
		return &ItemNotFoundError{Path: path}
	}
	delete(node.named, name)
	return nil
}

// RemoveAnonymous removes the first item equal to the argument from this
// node's anonymous sequence. With recursive set, descendants are searched
// depth-first (children in sorted name order) until one match is removed.
// At most one occurrence is removed; the return reports whether one was.
func (t *Tree[T]) RemoveAnonymous(item T, recursive bool) bool {
	for i, existing := range t.anonymous {
		if existing == item {
			t.anonymous = append(t.anonymous[:i], t.anonymous[i+1:]...)
			return true
		}
	}
	if !recursive {
		return false
	}
	for _, name := range t.childNames() {
		if t.children[name].RemoveAnonymous(item, true) {
			return true
		}
	}
	return false
}

// RemoveAnonymousAt removes the first matching item from the anonymous
// sequence at the resolved groupPath node only (non-recursive).
func (t *Tree[T]) RemoveAnonymousAt(groupPath string, item T) error {
	node, err := t.descend(splitPath(groupPath), false, groupPath)
	if err != nil {
		return err
	}
	if !node.RemoveAnonymous(item, false) {
		return &ItemNotFoundError{Path: groupPath}
	}
	return nil
}

// Clear empties both named and anonymous collections at this node, and at
// every descendant when recursive is set. Child nodes themselves remain.
func (t *Tree[T]) Clear(recursive bool) {
	t.ClearNamed(recursive)
	t.ClearAnonymous(recursive)
}

// ClearNamed empties only the named items, optionally recursively.
func (t *Tree[T]) ClearNamed(recursive bool) {
	clear(t.named)
	if recursive {
		for _, child := range t.children {
			child.ClearNamed(true)
		}
	}
}

// ClearNamedMatching deletes named items whose keys match the regular
// expression pattern, optionally recursively. Anonymous items are never
// touched.
func (t *Tree[T]) ClearNamedMatching(pattern string, recursive bool) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	t.clearNamedMatching(re, recursive)
	return nil
}

func (t *Tree[T]) clearNamedMatching(re *regexp.Regexp, recursive bool) {
	for name := range t.named {
		if re.MatchString(name) {
			delete(t.named, name)
		}
	}
	if recursive {
		for _, child := range t.children {
			child.clearNamedMatching(re, true)
		}
	}
}

// ClearAnonymous empties only the anonymous items, optionally recursively.
func (t *Tree[T]) ClearAnonymous(recursive bool) {
	t.anonymous = nil
	if recursive {
		for _, child := range t.children {
			child.ClearAnonymous(true)
		}
	}
}

// Named returns this node's named items in sorted key order.
func (t *Tree[T]) Named() []T {
	keys := t.NamedKeys()
	items := make([]T, 0, len(keys))
	for _, k := range keys {
		items = append(items, t.named[k])
	}
	return items
}

// NamedKeys returns this node's named item keys, sorted.
func (t *Tree[T]) NamedKeys() []string {
	keys := make([]string, 0, len(t.named))
	for k := range t.named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Anonymous returns a copy of this node's anonymous sequence in insertion
// order. Insertion order is stable for iteration but carries no meaning.
func (t *Tree[T]) Anonymous() []T {
	out := make([]T, len(t.anonymous))
	copy(out, t.anonymous)
	return out
}

// Len returns the number of items held directly at this node.
func (t *Tree[T]) Len() int {
	return len(t.named) + len(t.anonymous)
}

func (t *Tree[T]) childNames() []string {
	names := make([]string, 0, len(t.children))
	for name := range t.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
