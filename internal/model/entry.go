package model

// Version is the pathtree release version.
const Version = "0.3.0"

// Entry is one input line after status pre-parsing.
type Entry struct {
	Path   string // Path as written in the input (e.g. src/main.go)
	Status string // Short status code (e.g. "M", "??"), empty when absent
}

// Summary counts the nodes of a built tree.
type Summary struct {
	Directories int
	Files       int
}
