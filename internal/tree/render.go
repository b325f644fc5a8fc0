package tree

import "fmt"

// Connector and indent glyphs. Other tools parse this output, so these must
// not change.
const (
	GlyphBranch     = "├── "
	GlyphLastBranch = "└── "
	GlyphPipe       = "│   "
	GlyphBlank      = "    "
)

// FragmentKind identifies what a Fragment holds.
type FragmentKind int

const (
	FragmentIndent FragmentKind = iota
	FragmentConnector
	FragmentDirectory
	FragmentFile
)

var fragmentKindNames = [...]string{"indent", "connector", "directory", "file"}

func (k FragmentKind) String() string {
	if k < 0 || int(k) >= len(fragmentKindNames) {
		return fmt.Sprintf("FragmentKind(%d)", int(k))
	}
	return fragmentKindNames[k]
}

func (k FragmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FragmentKind) UnmarshalText(b []byte) error {
	for i, name := range fragmentKindNames {
		if name == string(b) {
			*k = FragmentKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown fragment kind %q", b)
}

// Fragment is one piece of a rendered line. Indent and connector fragments
// never end a line; directory and file labels always do.
type Fragment struct {
	Kind   FragmentKind `json:"kind"`
	Text   string       `json:"text"`
	Status string       `json:"status,omitempty"`
}

// IsLabel reports whether f terminates a line.
func (f Fragment) IsLabel() bool {
	return f.Kind == FragmentDirectory || f.Kind == FragmentFile
}

// Render walks root depth-first in name order and returns the fragments of
// every line. With compact set, chains of single-child directories are
// printed as one joined label.
func Render(root *Node, compact bool) []Fragment {
	return renderLevel(nil, root, "", compact)
}

func renderLevel(out []Fragment, dir *Node, prefix string, compact bool) []Fragment {
	names := dir.Names()
	for i, name := range names {
		isLast := i == len(names)-1

		label, node := name, dir.Children[name]
		if compact {
			label, node = collapse(label, node)
		}

		connector := GlyphBranch
		if isLast {
			connector = GlyphLastBranch
		}
		out = append(out,
			Fragment{Kind: FragmentIndent, Text: prefix},
			Fragment{Kind: FragmentConnector, Text: connector},
		)

		if !node.IsDir() {
			out = append(out, Fragment{Kind: FragmentFile, Text: label, Status: node.Status})
			continue
		}

		out = append(out, Fragment{Kind: FragmentDirectory, Text: label})
		childPrefix := prefix + GlyphPipe
		if isLast {
			childPrefix = prefix + GlyphBlank
		}
		out = renderLevel(out, node, childPrefix, compact)
	}
	return out
}

// collapse follows node while it is a directory whose only child is also a
// directory, appending each name to label. It returns the joined label and
// the last directory of the chain.
func collapse(label string, node *Node) (string, *Node) {
	for node.IsDir() && len(node.Children) == 1 {
		var (
			name  string
			child *Node
		)
		for name, child = range node.Children {
		}
		if !child.IsDir() {
			break
		}
		label += "/" + name
		node = child
	}
	return label, node
}
