package ast

import (
	"iter"
	"slices"
)

// ChildList is an ordered list of children of static type T. Each element
// sits in its own ChildLink, so ReplaceWith and Remove work on list elements
// the same way they do on single links.
//
// The list may be mutated while it is being visited. The first structural
// change made during a traversal clones the backing slice; the traversal in
// flight keeps iterating the old slice and sees the change next time.
// Removed elements are cleared in place, so an in-flight iteration skips
// them if it has not reached them yet.
type ChildList[T any] struct {
	holder   Node
	name     string
	links    []*ChildLink[T]
	visiting int
	owned    bool
}

func (c *ChildList[T]) init(parent Node, name string) {
	c.holder = parent
	c.name = name
}

// Len returns the number of children.
func (c *ChildList[T]) Len() int { return len(c.links) }

// IsEmpty reports whether the list has no children.
func (c *ChildList[T]) IsEmpty() bool { return len(c.links) == 0 }

// Get returns the child at index i. It panics if i is out of range.
func (c *ChildList[T]) Get(i int) T {
	c.check(i, len(c.links))
	return c.links[i].Get()
}

// Set replaces the child at index i. Setting nil removes the element.
func (c *ChildList[T]) Set(i int, n T) {
	c.check(i, len(c.links))
	if isNil(asNode(n)) {
		c.Remove(i)
		return
	}
	c.links[i].Set(n)
}

// Add appends children in order.
func (c *ChildList[T]) Add(nodes ...T) {
	for _, n := range nodes {
		c.Insert(len(c.links), n)
	}
}

// Insert places n before index i; i == Len appends.
func (c *ChildList[T]) Insert(i int, n T) {
	c.check(i, len(c.links)+1)
	if isNil(asNode(n)) {
		panic(&InvariantError{Err: ErrNilChild, Op: "insert", Parent: c.holder.Kind(), Slot: c.name, Index: i})
	}
	l := c.newLink()
	l.Set(n)
	c.prepareMutation()
	c.links = slices.Insert(c.links, i, l)
}

// Remove detaches and returns the child at index i.
func (c *ChildList[T]) Remove(i int) T {
	c.check(i, len(c.links))
	l := c.links[i]
	n := l.Get()
	c.prepareMutation()
	c.links = slices.Delete(c.links, i, i+1)
	l.list = nil
	l.set(nil)
	return n
}

// RemoveNode removes n if it is a member and reports whether it was.
func (c *ChildList[T]) RemoveNode(n T) bool {
	i := c.IndexOf(n)
	if i < 0 {
		return false
	}
	c.Remove(i)
	return true
}

// Clear detaches every child.
func (c *ChildList[T]) Clear() {
	for len(c.links) > 0 {
		c.Remove(len(c.links) - 1)
	}
}

// IndexOf returns the index of n, or -1.
func (c *ChildList[T]) IndexOf(n T) int {
	x := asNode(n)
	if isNil(x) {
		return -1
	}
	for i, l := range c.links {
		if l.child == x {
			return i
		}
	}
	return -1
}

// Slice returns the current children as a new slice.
func (c *ChildList[T]) Slice() []T {
	out := make([]T, 0, len(c.links))
	for _, l := range c.links {
		out = append(out, l.Get())
	}
	return out
}

// All iterates over a snapshot of the list, so the loop body may mutate it.
func (c *ChildList[T]) All() iter.Seq2[int, T] {
	links := slices.Clone(c.links)
	return func(yield func(int, T) bool) {
		for i, l := range links {
			if l.child == nil {
				continue
			}
			if !yield(i, l.Get()) {
				return
			}
		}
	}
}

// CopyFrom replaces the contents with deep copies of other's children.
func (c *ChildList[T]) CopyFrom(other *ChildList[T]) {
	c.Clear()
	for _, l := range other.links {
		if l.child != nil {
			c.Add(l.child.Copy().(T))
		}
	}
}

// AddCopies appends deep copies of nodes.
func (c *ChildList[T]) AddCopies(nodes ...T) {
	for _, n := range nodes {
		if x := asNode(n); !isNil(x) {
			c.Add(x.Copy().(T))
		}
	}
}

func (c *ChildList[T]) newLink() *ChildLink[T] {
	l := &ChildLink[T]{list: c}
	l.init(c.holder, c.name, false)
	return l
}

// prepareMutation gives the list a private backing slice before a
// structural change made during a traversal of the list.
func (c *ChildList[T]) prepareMutation() {
	if c.visiting > 0 && !c.owned {
		c.links = slices.Clone(c.links)
		c.owned = true
	}
}

func (c *ChildList[T]) removeLink(l *ChildLink[T]) {
	if i := slices.Index(c.links, l); i >= 0 {
		c.Remove(i)
	}
}

func (c *ChildList[T]) check(i, n int) {
	if i < 0 || i >= n {
		panic(&InvariantError{
			Err:    ErrIndexOutOfRange,
			Op:     "index",
			Parent: c.holder.Kind(),
			Slot:   c.name,
			Index:  i,
		})
	}
}

func (c *ChildList[T]) slotName() string { return c.name }
func (c *ChildList[T]) isRequired() bool { return false }

func (c *ChildList[T]) nodes() []Node {
	out := make([]Node, 0, len(c.links))
	for _, l := range c.links {
		if l.child != nil {
			out = append(out, l.child)
		}
	}
	return out
}

func (c *ChildList[T]) accept(v Visitor) {
	c.visiting++
	c.owned = false
	defer func() { c.visiting-- }()
	for _, l := range c.links {
		if child := l.child; child != nil {
			child.Accept(v)
		}
	}
}

func (c *ChildList[T]) copyFrom(src slot) {
	c.CopyFrom(src.(*ChildList[T]))
}
