package uritree

import "fmt"

// DuplicateItemError is returned when inserting a named item whose name
// already exists at the target node and overwriting is not requested.
type DuplicateItemError struct {
	Path string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("uritree: item %q already exists", e.Path)
}

// ItemNotFoundError is returned when a named item is absent at a path
// whose node exists.
type ItemNotFoundError struct {
	Path string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("uritree: item %q not found", e.Path)
}

// PathNotFoundError is returned when a path segment does not resolve to a
// node during a read or remove operation.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("uritree: path %q not found", e.Path)
}
