package tree

import (
	"strings"

	"github.com/YuminosukeSato/id3/dataset"
)

// Node is a node of an induced decision tree. It is either a *Leaf or a
// *Decision; the unexported methods keep other implementations out.
//
// Nodes are immutable once built.
type Node interface {
	// predict returns the label for instance and whether fallback was used
	// because the instance's value was not observed at some decision node.
	predict(instance dataset.Example, fallback string) (string, bool)
	depth() int
	leaves() int
	format(b *strings.Builder, indent string)

	String() string
}

// Leaf is a terminal node holding a class label.
type Leaf struct {
	label string
}

// NewLeaf returns a leaf predicting label.
func NewLeaf(label string) *Leaf {
	return &Leaf{label: label}
}

// Label returns the class label of the leaf.
func (l *Leaf) Label() string {
	return l.label
}

func (l *Leaf) predict(_ dataset.Example, _ string) (string, bool) {
	return l.label, false
}

func (l *Leaf) depth() int {
	return 0
}

func (l *Leaf) leaves() int {
	return 1
}

func (l *Leaf) format(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString(l.label)
	b.WriteString("\n")
}

func (l *Leaf) String() string {
	return l.label
}

// Decision is an internal node splitting on one feature. It has exactly one
// child per value of the feature observed in the examples that reached it.
type Decision struct {
	feature  string
	values   []string // observed values in order of first appearance
	children map[string]Node
}

// NewDecision returns a decision node on feature with one child per entry of
// values, taken from children. It copies its arguments. It panics if a value
// has no child, since such a node could never be produced by BuildTree.
func NewDecision(feature string, values []string, children map[string]Node) *Decision {
	n := &Decision{
		feature:  feature,
		values:   make([]string, len(values)),
		children: make(map[string]Node, len(values)),
	}
	copy(n.values, values)
	for _, v := range values {
		child, ok := children[v]
		if !ok || child == nil {
			panic("tree: decision on " + feature + " has no child for value " + v)
		}
		n.children[v] = child
	}
	return n
}

// Feature returns the name of the feature the node splits on.
func (n *Decision) Feature() string {
	return n.feature
}

// Values returns the feature values the node has children for, in order of
// first appearance in the training data.
func (n *Decision) Values() []string {
	values := make([]string, len(n.values))
	copy(values, n.values)
	return values
}

// Child returns the subtree for value and whether one exists.
func (n *Decision) Child(value string) (Node, bool) {
	child, ok := n.children[value]
	return child, ok
}

func (n *Decision) predict(instance dataset.Example, fallback string) (string, bool) {
	value, ok := instance[n.feature]
	if !ok {
		return fallback, true
	}
	child, ok := n.children[value]
	if !ok {
		return fallback, true
	}
	return child.predict(instance, fallback)
}

func (n *Decision) depth() int {
	deepest := 0
	for _, child := range n.children {
		if d := child.depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

func (n *Decision) leaves() int {
	count := 0
	for _, child := range n.children {
		count += child.leaves()
	}
	return count
}

func (n *Decision) format(b *strings.Builder, indent string) {
	for _, v := range n.values {
		b.WriteString(indent)
		b.WriteString(n.feature)
		b.WriteString(" = ")
		b.WriteString(v)
		child := n.children[v]
		if leaf, ok := child.(*Leaf); ok {
			b.WriteString(": ")
			b.WriteString(leaf.label)
			b.WriteString("\n")
			continue
		}
		b.WriteString("\n")
		child.format(b, indent+"|   ")
	}
}

func (n *Decision) String() string {
	var b strings.Builder
	n.format(&b, "")
	return strings.TrimSuffix(b.String(), "\n")
}

// Depth returns the number of decision levels on the longest root-to-leaf
// path of n. A lone leaf has depth 0.
func Depth(n Node) int {
	return n.depth()
}

// Leaves returns the number of leaves under n.
func Leaves(n Node) int {
	return n.leaves()
}

// Format renders n as indented text, one line per branch, with branches in
// order of first appearance in the training data.
func Format(n Node) string {
	return n.String()
}
