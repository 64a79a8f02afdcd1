package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// printer reports submissions, colored when stdout is a terminal.
type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, out: termenv.NewOutput(w)}
}

func (p *printer) submitted(field int, text string) {
	label := p.out.String(fmt.Sprintf("input %d:", field)).Foreground(p.out.Color("2")).Bold()
	fmt.Fprintf(p.w, "%s %s\n", label, text)
}
