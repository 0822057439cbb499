package dump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/internal/options"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
	"github.com/arloliu/sbeview/visit"
)

const defaultIndent = 2

// TextRenderer writes messages as indented text.
type TextRenderer struct {
	w        io.Writer
	indent   int
	colorSet bool
	colored  bool
}

// TextOption configures a TextRenderer.
type TextOption = options.Option[*TextRenderer]

// WithColor forces colored output on or off. By default color is enabled only when the
// writer is a terminal.
func WithColor(on bool) TextOption {
	return options.NoError(func(r *TextRenderer) {
		r.colorSet = true
		r.colored = on
	})
}

// WithIndent sets the number of spaces per nesting level.
func WithIndent(n int) TextOption {
	return options.New(func(r *TextRenderer) error {
		if n < 0 || n > 8 {
			return fmt.Errorf("invalid indent %d: must be within [0, 8]", n)
		}
		r.indent = n

		return nil
	})
}

// NewTextRenderer returns a renderer writing to w.
func NewTextRenderer(w io.Writer, opts ...TextOption) (*TextRenderer, error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}

	r := &TextRenderer{w: w, indent: defaultIndent}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}
	if !r.colorSet {
		if f, ok := w.(*os.File); ok {
			r.colored = isatty.IsTerminal(f.Fd())
		}
	}

	return r, nil
}

// Render writes m. The output is buffered and written with a single call.
func (r *TextRenderer) Render(m view.Message) error {
	tv := &textVisitor{indent: r.indent, pal: newPalette(r.colored)}

	h := m.Header()
	tv.line(0, "%s templateId=%d schemaId=%d version=%d blockLength=%d",
		tv.pal.title(m.Traits().Name), h.TemplateID(), h.SchemaID(), h.Version(), h.BlockLength())
	c := m.Cursor()
	tv.depth = 1
	visit.VisitChildren(m, &c, tv)

	_, err := r.w.Write(tv.buf.Bytes())

	return err
}

// Text renders m without color.
func Text(m view.Message) string {
	var sb strings.Builder
	r := &TextRenderer{w: &sb, indent: defaultIndent, colorSet: true}
	_ = r.Render(m)

	return sb.String()
}

type palette struct {
	title func(a ...any) string
	name  func(a ...any) string
	num   func(a ...any) string
	str   func(a ...any) string
	sym   func(a ...any) string
}

func newPalette(colored bool) palette {
	if !colored {
		return palette{title: fmt.Sprint, name: fmt.Sprint, num: fmt.Sprint, str: fmt.Sprint, sym: fmt.Sprint}
	}

	fn := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()

		return c.SprintFunc()
	}

	return palette{
		title: fn(color.Bold),
		name:  fn(color.FgCyan),
		num:   fn(color.FgYellow),
		str:   fn(color.FgGreen),
		sym:   fn(color.FgMagenta),
	}
}

type textVisitor struct {
	buf    bytes.Buffer
	indent int
	depth  int
	pal    palette
}

func (tv *textVisitor) line(depth int, format string, args ...any) {
	tv.buf.WriteString(strings.Repeat(" ", depth*tv.indent))
	fmt.Fprintf(&tv.buf, format, args...)
	tv.buf.WriteByte('\n')
}

func (tv *textVisitor) field(name, value string) {
	tv.line(tv.depth, "%s: %s", tv.pal.name(name), value)
}

func (tv *textVisitor) OnPrimitive(p view.Primitive, f *traits.Field) bool {
	t := p.Traits()
	switch {
	case t.Primitive == format.Char && (t.IsArray() || p.IsConstant()):
		tv.field(f.Name, tv.pal.str(strconv.Quote(p.String())))
	case p.IsNull():
		tv.field(f.Name, tv.pal.sym("null"))
	default:
		tv.field(f.Name, tv.pal.num(p.String()))
	}

	return false
}

func (tv *textVisitor) OnEnum(e view.Enum, f *traits.Field) bool {
	tv.field(f.Name, tv.pal.sym(e.String()))
	return false
}

func (tv *textVisitor) OnSet(s view.Set, f *traits.Field) bool {
	tv.field(f.Name, tv.pal.sym(s.String()))
	return false
}

func (tv *textVisitor) OnComposite(comp view.Composite, f *traits.Field) bool {
	tv.line(tv.depth, "%s:", tv.pal.name(f.Name))
	tv.depth++
	stop := visit.VisitCompositeChildren(comp, tv)
	tv.depth--

	return stop
}

func (tv *textVisitor) OnGroup(g view.Group, c *view.Cursor) bool {
	tv.line(tv.depth, "%s[%d]:", tv.pal.name(g.Traits().Name), g.Len())
	tv.depth++
	defer func() { tv.depth-- }()

	for i, e := range g.Range(c) {
		tv.line(tv.depth, "- [%d]", i)
		tv.depth++
		stop := visit.VisitEntryChildren(e, c, tv)
		tv.depth--
		if stop {
			return true
		}
	}

	return false
}

func (tv *textVisitor) OnData(d view.Data) bool {
	tv.field(d.Traits().Name, tv.pal.str(strconv.Quote(d.String())))
	return false
}
