package astbridge

import (
	"errors"
	"fmt"

	"github.com/orizon-lang/j2o/internal/frontend"
)

var (
	// ErrUnknownKind is wrapped by every UnknownKindError.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrUnsupported marks source constructs the tree cannot represent.
	ErrUnsupported = errors.New("unsupported construct")
	// ErrMalformed marks input nodes missing a required part.
	ErrMalformed = errors.New("malformed input")
	// ErrNilInput is returned for a nil unit or root.
	ErrNilInput = errors.New("nil input")
)

// UnknownKindError reports an input discriminant the converter has no
// mapping for.
type UnknownKindError struct {
	Kind string
	Line int
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("line %d: unknown node kind %q", e.Line, e.Kind)
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

// ConversionError locates a conversion failure in a source file.
type ConversionError struct {
	File string
	Line int
	Err  error
}

func (e *ConversionError) Error() string {
	switch {
	case e.File == "" && e.Line <= 0:
		return fmt.Sprintf("convert: %v", e.Err)
	case e.Line <= 0:
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// nodeError is a failure at a known input node, before the file is known.
type nodeError struct {
	line int
	err  error
}

func (e *nodeError) Error() string { return fmt.Sprintf("line %d: %v", e.line, e.err) }
func (e *nodeError) Unwrap() error { return e.err }

func errorf(n frontend.Node, format string, args ...any) error {
	return &nodeError{line: n.Line(), err: fmt.Errorf(format, args...)}
}

func unsupported(n frontend.Node, what string) error {
	return &nodeError{line: n.Line(), err: fmt.Errorf("%w: %s", ErrUnsupported, what)}
}

func malformed(n frontend.Node, missing string) error {
	return &nodeError{line: n.Line(), err: fmt.Errorf("%w: %s without %s", ErrMalformed, n.Kind(), missing)}
}

// wrap attaches the file to err, keeping the line of the failing node.
func wrap(file string, err error) error {
	ce := &ConversionError{File: file, Err: err}
	var ne *nodeError
	var uk *UnknownKindError
	switch {
	case errors.As(err, &ne):
		ce.Line, ce.Err = ne.line, ne.err
	case errors.As(err, &uk):
		ce.Line = uk.Line
	}
	return ce
}
