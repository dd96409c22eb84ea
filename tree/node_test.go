package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaf(t *testing.T) {
	leaf := NewLeaf("Yes")
	assert.Equal(t, "Yes", leaf.Label())
	assert.Equal(t, "Yes", leaf.String())
	assert.Equal(t, "Yes", Format(leaf))
	assert.Equal(t, 0, Depth(leaf))
	assert.Equal(t, 1, Leaves(leaf))
}

func TestNewDecisionCopiesInputs(t *testing.T) {
	values := []string{"a", "b"}
	children := map[string]Node{"a": NewLeaf("X"), "b": NewLeaf("Y")}

	n := NewDecision("f", values, children)
	values[0] = "changed"
	children["a"] = NewLeaf("Z")
	delete(children, "b")

	assert.Equal(t, []string{"a", "b"}, n.Values())
	child, ok := n.Child("a")
	assert.True(t, ok)
	assert.Equal(t, NewLeaf("X"), child)
	_, ok = n.Child("b")
	assert.True(t, ok)

	got := n.Values()
	got[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, n.Values())
}

func TestNewDecisionPanicsOnMissingChild(t *testing.T) {
	assert.Panics(t, func() {
		NewDecision("f", []string{"a", "b"}, map[string]Node{"a": NewLeaf("X")})
	})
	assert.Panics(t, func() {
		NewDecision("f", []string{"a"}, map[string]Node{"a": nil})
	})
}

func TestDecisionShape(t *testing.T) {
	n := NewDecision("Outlook", []string{"Sunny", "Overcast"}, map[string]Node{
		"Sunny": NewDecision("Humidity", []string{"High", "Normal"}, map[string]Node{
			"High":   NewLeaf("No"),
			"Normal": NewLeaf("Yes"),
		}),
		"Overcast": NewLeaf("Yes"),
	})

	assert.Equal(t, 2, Depth(n))
	assert.Equal(t, 3, Leaves(n))
	assert.Equal(t, "Outlook = Sunny\n"+
		"|   Humidity = High: No\n"+
		"|   Humidity = Normal: Yes\n"+
		"Outlook = Overcast: Yes", n.String())
	assert.Equal(t, n.String(), Format(n))

	_, ok := n.Child("Rainy")
	assert.False(t, ok)
}
