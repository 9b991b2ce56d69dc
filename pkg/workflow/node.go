// Package workflow converts GitHub Actions workflow and action definition
// files into a small tagged union of YAML nodes.
// Every node keeps the line it was found on so that lint findings can point
// at the source.
package workflow

// Node is one of *Mapping, *Sequence, or *Scalar.
type Node interface {
	Line() int
	node()
}

type Mapping struct {
	Pairs []*Pair
	line  int
}

// Pair is a key value pair of a mapping.
// Keys are always converted to strings.
type Pair struct {
	Key     string
	KeyLine int
	Value   Node
}

type Sequence struct {
	Items []Node
	line  int
}

type Scalar struct {
	Value   string
	Null    bool
	Comment string
	line    int
}

func (m *Mapping) Line() int  { return m.line }
func (s *Sequence) Line() int { return s.line }
func (s *Scalar) Line() int   { return s.line }

func (m *Mapping) node()  {}
func (s *Sequence) node() {}
func (s *Scalar) node()   {}

// Get returns the first pair whose key is key.
func (m *Mapping) Get(key string) (*Pair, bool) {
	for _, p := range m.Pairs {
		if p.Key == key {
			return p, true
		}
	}
	return nil, false
}
