package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/astbridge"
	"github.com/orizon-lang/j2o/internal/driver"
	"github.com/orizon-lang/j2o/internal/frontend/javats"
	"github.com/orizon-lang/j2o/internal/position"
)

func (a *app) report(r *driver.Result) {
	if r.Err != nil {
		fmt.Fprintln(a.stdout, a.styles.Status(false, r.Path))
		fmt.Fprintf(a.stdout, "    %s\n", a.styles.Render(a.styles.Error, r.Err.Error()))
		if ex := excerpt(r.Err); ex != "" {
			fmt.Fprint(a.stdout, a.styles.Render(a.styles.Muted, ex))
		}
		return
	}
	line := r.Path
	if r.Output != "" {
		line += " -> " + r.Output
	}
	fmt.Fprintln(a.stdout, a.styles.Status(true, line))
}

// excerpt shows the source lines an error points at, if it carries a
// location.
func excerpt(err error) string {
	var (
		file         string
		line, column int
		se           *javats.SyntaxError
		ce           *astbridge.ConversionError
		te           *ast.TraversalError
	)
	switch {
	case errors.As(err, &se):
		file, line, column = se.Path, se.Line, se.Column
	case errors.As(err, &ce):
		file, line = ce.File, ce.Line
	case errors.As(err, &te):
		file, line = te.File, te.Line
	default:
		return ""
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	return position.NewSourceFile(file, string(src)).Excerpt(line, column)
}
