package syntax

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Capture is a single named capture from a query match.
type Capture struct {
	Name string
	Node *Node
}

// Match groups the captures of one query match, in capture order.
type Match struct {
	Pattern  uint
	Captures []Capture
}

// Get returns the first capture with the given name, or nil.
func (m Match) Get(name string) *Node {
	for _, c := range m.Captures {
		if c.Name == name {
			return c.Node
		}
	}
	return nil
}

// Query runs a tree-sitter query against the tree and returns all matches.
// A query that fails to compile is reported as an error; callers decide
// whether that aborts the analysis.
func (t *Tree) Query(source string) ([]Match, error) {
	root := t.Root()
	if root == nil {
		return nil, nil
	}

	grammar, err := Grammar(t.Language)
	if err != nil {
		return nil, err
	}

	q, qerr := sitter.NewQuery(grammar, source)
	if qerr != nil {
		return nil, fmt.Errorf("compile query: %w", qerr)
	}
	defer q.Close()

	names := q.CaptureNames()

	qc := sitter.NewQueryCursor()
	defer qc.Close()

	var out []Match
	matches := qc.Matches(q, root, t.Source)
	for {
		m := matches.Next()
		if m == nil {
			break
		}
		match := Match{Pattern: m.PatternIndex, Captures: make([]Capture, 0, len(m.Captures))}
		for _, c := range m.Captures {
			node := c.Node
			name := ""
			if int(c.Index) < len(names) {
				name = names[c.Index]
			}
			match.Captures = append(match.Captures, Capture{Name: name, Node: &node})
		}
		out = append(out, match)
	}

	return out, nil
}
