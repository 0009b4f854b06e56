// Package demo writes the shapes demonstration trace.
//
// The trace is a fixed sequence of sections, each printing one line per
// example invocation. Diagnostics go to the logger, never to the trace
// writer, so the trace stays byte-exact.
package demo

import (
	"errors"
	"io"
	"strconv"

	"github.com/sghaida/shapes/shape"
	"go.uber.org/zap"
)

// ErrNilWriter is returned by Run when the runner has no trace writer.
var ErrNilWriter = errors.New("demo: nil writer")

// Section is one named group of examples.
type Section struct {
	Name string
	Run  func(p *Printer)
}

// Sections returns the demonstration sections in trace order.
func Sections() []Section {
	return []Section{
		{Name: "method syntax", Run: methodSyntax},
		{Name: "traits", Run: traits},
		{Name: "trait objects", Run: traitObjects},
		{Name: "catalog", Run: catalog},
	}
}

// Runner executes sections against a trace writer.
type Runner struct {
	out      io.Writer
	logger   *zap.Logger
	sections []Section
}

// New returns a Runner over the default Sections. A nil logger is replaced
// by a no-op logger.
func New(out io.Writer, logger *zap.Logger) *Runner {
	return NewWithSections(out, logger, Sections()...)
}

// NewWithSections returns a Runner over the given sections.
func NewWithSections(out io.Writer, logger *zap.Logger, sections ...Section) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{out: out, logger: logger, sections: sections}
}

// Run writes every section in order.
//
// It stops at the first write error and returns it.
func (r *Runner) Run() error {
	if r.out == nil {
		return ErrNilWriter
	}

	p := &Printer{w: r.out}
	for _, s := range r.sections {
		before := p.lines
		r.logger.Debug("section started", zap.String("section", s.Name))

		s.Run(p)
		if p.err != nil {
			r.logger.Error("section failed", zap.String("section", s.Name), zap.Error(p.err))
			return p.err
		}

		r.logger.Debug("section finished",
			zap.String("section", s.Name),
			zap.Int("lines", p.lines-before))
	}

	r.logger.Info("demo finished",
		zap.Int("sections", len(r.sections)),
		zap.Int("lines", p.lines))
	return nil
}

// Printer writes trace lines and remembers the first write error.
// Once an error is recorded, further lines are dropped.
type Printer struct {
	w     io.Writer
	err   error
	lines int
}

// Line writes s followed by a newline.
func (p *Printer) Line(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, s+"\n"); err != nil {
		p.err = err
		return
	}
	p.lines++
}

// Lines returns the number of lines written so far.
func (p *Printer) Lines() int { return p.lines }

func methodSyntax(p *Printer) {
	c := shape.NewCircle(0, 0, 2)
	p.Line("area is " + shape.FormatArea(c.Area()))
	p.Line("c2's area is " + shape.FormatArea(c.Grow(2).Area()))

	c3 := shape.NewCircleBuilder().
		SetX(3).
		SetRadius(10).
		Finalize()
	p.Line("area is " + shape.FormatArea(c3.Area()))
}

func traits(p *Printer) {
	p.Line(shape.Describe(shape.NewCircle(0, 0, 2)))
	p.Line(shape.Describe(shape.NewSquare(2)))

	r := shape.NewRectangle(47, 47)
	p.Line("This is a square? " + strconv.FormatBool(r.IsSquare()))

	p.Line("silly " + shape.FormatArea(shape.Scalar(5).Area()))
}

func traitObjects(p *Printer) {
	c := shape.NewCircle(0, 0, 2)

	// Same value, two resolution paths, identical output.
	p.Line(shape.Describe(c))
	p.Line(shape.DescribeDyn(&c))
}

func catalog(p *Printer) {
	shapes := shape.NewMapRegistry().
		Provide("circle", shape.NewCircle(0, 0, 2)).
		Provide("square", shape.NewSquare(2)).
		Provide("scalar", shape.Scalar(5)).
		Provide("built", shape.NewCircleBuilder().SetX(3).SetRadius(10).Finalize())

	describeCatalog(p, shapes, shapes.Names())
}

// describeCatalog prints one line per name, resolved through reg.
// Lookup failures are printed in place of the description.
func describeCatalog(p *Printer, reg shape.Registry, names []string) {
	for _, name := range names {
		line, err := shape.DescribeIn(reg, name)
		if err != nil {
			line = err.Error()
		}
		p.Line(name + ": " + line)
	}
}
