// Package ledger keeps the clues a player has discovered, without duplicates
// and in lexicographic order.
package ledger

import (
	"iter"
	"slices"
)

type node struct {
	text        string
	left, right *node
}

// Ledger is an unbalanced binary search tree of clue texts. The zero value is
// an empty ledger ready to use.
type Ledger struct {
	root *node
	size int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Insert adds text to the ledger. Empty text and text already present are
// ignored; the first copy stays. Returns true when a new clue was stored.
func (l *Ledger) Insert(text string) bool {
	if text == "" {
		return false
	}
	link := &l.root
	for *link != nil {
		switch cur := *link; {
		case text == cur.text:
			return false
		case text < cur.text:
			link = &cur.left
		default:
			link = &cur.right
		}
	}
	*link = &node{text: text}
	l.size++
	return true
}

// Contains reports whether text has been recorded.
func (l *Ledger) Contains(text string) bool {
	cur := l.root
	for cur != nil {
		switch {
		case text == cur.text:
			return true
		case text < cur.text:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return false
}

// Len returns the number of distinct clues.
func (l *Ledger) Len() int {
	return l.size
}

// All yields the clues in ascending order. Each call starts a new traversal.
func (l *Ledger) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inOrder(l.root, yield)
	}
}

// Items returns a snapshot of the clues in ascending order.
func (l *Ledger) Items() []string {
	return slices.Collect(l.All())
}

func inOrder(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.text) && inOrder(n.right, yield)
}
