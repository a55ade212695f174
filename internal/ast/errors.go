package ast

import (
	"errors"
	"fmt"
	"strings"
)

// Structural invariant violations. They are programming errors in a pass and
// are raised as panics carrying an *InvariantError.
var (
	ErrAlreadyOwned    = errors.New("node already has an owner")
	ErrUnparentedNode  = errors.New("node has no owner")
	ErrIndexOutOfRange = errors.New("child index out of range")
	ErrWrongChildType  = errors.New("node kind not allowed in slot")
	ErrNilChild        = errors.New("nil child")
)

// InvariantError describes a structural invariant violation.
type InvariantError struct {
	Err    error
	Op     string
	Parent Kind
	Slot   string
	Child  Kind
	Index  int
}

func (e *InvariantError) Error() string {
	var sb strings.Builder
	sb.WriteString("ast: ")
	sb.WriteString(e.Op)
	if e.Parent != KindInvalid {
		fmt.Fprintf(&sb, " %s.%s", e.Parent, e.Slot)
	}
	if errors.Is(e.Err, ErrIndexOutOfRange) || errors.Is(e.Err, ErrNilChild) {
		fmt.Fprintf(&sb, "[%d]", e.Index)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Child != KindInvalid {
		fmt.Fprintf(&sb, " (%s)", e.Child)
	}
	return sb.String()
}

func (e *InvariantError) Unwrap() error { return e.Err }

// ValidationError reports the first violated node invariant found by
// Validate.
type ValidationError struct {
	Kind   Kind
	Field  string
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing required " + e.Field
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s: %s", e.Line, e.Kind, reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, reason)
}

// TraversalError wraps a failure raised while visiting a node with the
// location of that node.
type TraversalError struct {
	File  string
	Line  int
	Kind  Kind
	Err   error
	Stack []byte
}

func (e *TraversalError) Error() string {
	file := e.File
	if file == "" {
		file = "<unknown>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: error in %s: %v", file, e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: error in %s: %v", file, e.Kind, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }
