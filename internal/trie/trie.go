package trie

import (
	"sort"
	"strings"
)

/*
Arena-based prefix trie over grapheme sequences.

The segmenter uses it to split an unquoted run such as "tʃa" into the
longest phonemes the alphabet declares ("tʃ", "a"). Keys are sequences of
graphemes, one edge per grapheme.

Nodes live in one slice and refer to their children by index, so building a
trie for an alphabet is a handful of allocations and lookups walk contiguous
memory. Node 0 is the root.
*/

// NodeIndex represents the index of a trie node.
type NodeIndex int

const root NodeIndex = 0

// Arena stores all nodes of a trie.
type Arena[V any] struct {
	nodes []arenaNode[V]
}

type arenaNode[V any] struct {
	children map[string]NodeIndex
	value    V
	isEnd    bool
}

// NewArena creates an arena holding only the root.
func NewArena[V any]() *Arena[V] {
	arena := &Arena[V]{nodes: make([]arenaNode[V], 0, 64)}
	arena.newNode()
	return arena
}

func (a *Arena[V]) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode[V]{children: make(map[string]NodeIndex)})
	return idx
}

// Insert stores value under sequence, replacing any previous value.
func (a *Arena[V]) Insert(sequence []string, value V) {
	current := root
	for _, part := range sequence {
		childIdx, exists := a.nodes[current].children[part]
		if !exists {
			// newNode may grow the slice, so index again afterwards
			childIdx = a.newNode()
			a.nodes[current].children[part] = childIdx
		}
		current = childIdx
	}
	a.nodes[current].value = value
	a.nodes[current].isEnd = true
}

// LongestPrefix finds the longest inserted sequence that prefixes sequence.
// It returns the value stored there and the prefix length, or n == 0 when no
// non-empty prefix was inserted.
func (a *Arena[V]) LongestPrefix(sequence []string) (value V, n int) {
	current := root
	for i, part := range sequence {
		next, ok := a.nodes[current].children[part]
		if !ok {
			break
		}
		current = next
		if a.nodes[current].isEnd {
			value, n = a.nodes[current].value, i+1
		}
	}
	return value, n
}

// Get returns the value stored under exactly sequence.
func (a *Arena[V]) Get(sequence []string) (V, bool) {
	var zero V
	current := root
	for _, part := range sequence {
		next, ok := a.nodes[current].children[part]
		if !ok {
			return zero, false
		}
		current = next
	}
	if !a.nodes[current].isEnd {
		return zero, false
	}
	return a.nodes[current].value, true
}

func (a *Arena[V]) Len() int { return len(a.nodes) }

// DebugString renders the structure, marking sequence ends with '*'.
func (a *Arena[V]) DebugString() string {
	return a.debugStringNode(root)
}

func (a *Arena[V]) debugStringNode(idx NodeIndex) string {
	node := a.nodes[idx]
	var sb strings.Builder

	if node.isEnd {
		sb.WriteString("*")
	}

	// sort keys for a stable rendering
	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString("(")
		sb.WriteString(a.debugStringNode(node.children[key]))
		sb.WriteString(")")
	}

	return sb.String()
}
