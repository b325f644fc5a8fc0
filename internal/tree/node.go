// Package tree turns a flat list of paths into a directory hierarchy and
// renders it with the box-drawing connectors used by tree(1).
package tree

import (
	"maps"
	"slices"

	"pathtree/internal/model"
)

// Kind discriminates the two shapes a Node can take.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// Node is either a file leaf (Status set, Children nil) or a directory
// (Children non-nil). Directory children are unordered; Names sorts them.
type Node struct {
	Kind     Kind
	Status   string
	Children map[string]*Node
}

// NewDirectory returns an empty directory node. It is also the root of every tree.
func NewDirectory() *Node {
	return &Node{Kind: KindDirectory, Children: make(map[string]*Node)}
}

// NewFile returns a leaf carrying status, which may be empty.
func NewFile(status string) *Node {
	return &Node{Kind: KindFile, Status: status}
}

func (n *Node) IsDir() bool {
	return n.Kind == KindDirectory
}

// Names returns the child names in ascending byte order.
func (n *Node) Names() []string {
	if !n.IsDir() {
		return nil
	}
	return slices.Sorted(maps.Keys(n.Children))
}

// Count tallies every node below n. n itself is not counted.
func (n *Node) Count() model.Summary {
	var s model.Summary
	for _, child := range n.Children {
		if child.IsDir() {
			s.Directories++
			sub := child.Count()
			s.Directories += sub.Directories
			s.Files += sub.Files
		} else {
			s.Files++
		}
	}
	return s
}

// Insert files segments under root. Existing nodes are never replaced: a
// name already filed as a file stops the walk, and the last segment keeps
// whatever was created first, status included.
func Insert(root *Node, segments []string, status string) {
	if len(segments) == 0 {
		return
	}

	current := root
	for _, name := range segments[:len(segments)-1] {
		child, ok := current.Children[name]
		if !ok {
			child = NewDirectory()
			current.Children[name] = child
		}
		if !child.IsDir() {
			return
		}
		current = child
	}

	last := segments[len(segments)-1]
	if _, ok := current.Children[last]; !ok {
		current.Children[last] = NewFile(status)
	}
}

// Build folds entries into a new tree in input order. Blank paths are skipped.
func Build(entries []model.Entry) *Node {
	root := NewDirectory()
	for _, e := range entries {
		if isBlank(e.Path) {
			continue
		}
		Insert(root, Segments(e.Path), e.Status)
	}
	return root
}
