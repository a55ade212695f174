package ast

// owner is the back reference from a child to the slot holding it.
type owner interface {
	parent() Node
	replace(n Node)
	detach()
}

// slot is a child link or list as seen by traversal, copying and
// validation.
type slot interface {
	slotName() string
	isRequired() bool
	nodes() []Node
	accept(v Visitor)
	copyFrom(src slot)
}

// ChildLink holds at most one child of static type T for its parent.
// Setting a child clears the owner of the previous child before attaching
// the new one; attaching a child that already has an owner panics.
type ChildLink[T any] struct {
	holder   Node
	name     string
	required bool
	child    Node
	list     *ChildList[T]
}

func (l *ChildLink[T]) init(parent Node, name string, required bool) {
	l.holder = parent
	l.name = name
	l.required = required
}

// Get returns the child, or the zero value of T when the slot is empty.
func (l *ChildLink[T]) Get() T {
	if l.child == nil {
		var zero T
		return zero
	}
	return l.child.(T)
}

// Set attaches n, detaching the previous child. A nil n empties the slot.
func (l *ChildLink[T]) Set(n T) {
	l.set(asNode(n))
}

// CopyFrom sets a deep copy of other's child.
func (l *ChildLink[T]) CopyFrom(other *ChildLink[T]) {
	if other.child == nil {
		l.set(nil)
		return
	}
	l.set(other.child.Copy())
}

// asNode converts a child of static type T to a Node. T is always a node
// type; it cannot be constrained by Node, which refers back to every node
// through Visitor.
func asNode[T any](n T) Node {
	x, _ := any(n).(Node)
	return x
}

func (l *ChildLink[T]) set(n Node) {
	if isNil(n) {
		n = nil
	}
	if l.child == n {
		return
	}
	if n != nil {
		if cb := n.common(); cb.owner != nil {
			panic(&InvariantError{
				Err:    ErrAlreadyOwned,
				Op:     "set",
				Parent: l.holder.Kind(),
				Slot:   l.name,
				Child:  n.Kind(),
			})
		}
	}
	if l.child != nil {
		l.child.common().owner = nil
	}
	l.child = n
	if n != nil {
		n.common().owner = l
	}
}

func (l *ChildLink[T]) parent() Node     { return l.holder }
func (l *ChildLink[T]) slotName() string { return l.name }
func (l *ChildLink[T]) isRequired() bool { return l.required }

func (l *ChildLink[T]) replace(n Node) {
	if _, ok := n.(T); !ok {
		panic(&InvariantError{
			Err:    ErrWrongChildType,
			Op:     "replace",
			Parent: l.holder.Kind(),
			Slot:   l.name,
			Child:  n.Kind(),
		})
	}
	l.set(n)
}

func (l *ChildLink[T]) detach() {
	if l.list != nil {
		l.list.removeLink(l)
		return
	}
	l.set(nil)
}

func (l *ChildLink[T]) nodes() []Node {
	if l.child == nil {
		return nil
	}
	return []Node{l.child}
}

func (l *ChildLink[T]) accept(v Visitor) {
	if l.child != nil {
		l.child.Accept(v)
	}
}

func (l *ChildLink[T]) copyFrom(src slot) {
	l.CopyFrom(src.(*ChildLink[T]))
}
