package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wzshiming/easydata"
)

// Printer writes a classified value as an indented tree, one node per line.
type Printer struct {
	w          io.Writer
	classifier *easydata.Classifier
	depth      int
	kinds      map[easydata.Kind]*color.Color
	muted      *color.Color
	truncated  bool
}

type Option func(*Printer)

// WithDepth limits how many levels below the root are printed. Zero means unlimited.
func WithDepth(depth int) Option {
	return func(p *Printer) {
		p.depth = depth
	}
}

// WithColor enables or disables colored output.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		if enabled {
			return
		}
		for _, c := range p.kinds {
			c.DisableColor()
		}
		p.muted.DisableColor()
	}
}

// WithClassifier sets the Classifier used for nested values.
func WithClassifier(c *easydata.Classifier) Option {
	return func(p *Printer) {
		p.classifier = c
	}
}

// New creates a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w: w,
		kinds: map[easydata.Kind]*color.Color{
			easydata.ListKind:    color.New(color.FgCyan),
			easydata.MappingKind: color.New(color.FgMagenta),
			easydata.ObjectKind:  color.New(color.FgBlue),
			easydata.LiteralKind: color.New(color.FgGreen),
		},
		muted: color.New(color.Faint),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.classifier == nil {
		p.classifier = easydata.NewClassifier()
	}
	return p
}

// Print writes d and, depth permitting, its children.
func (p *Printer) Print(d easydata.Data) error {
	return p.node(d, "", 0)
}

// Truncated reports whether the depth limit hid children in any Print so far.
func (p *Printer) Truncated() bool {
	return p.truncated
}

func (p *Printer) child(val any, label string, level int) error {
	d, err := p.classifier.Classify(val)
	if err != nil {
		if errors.Is(err, easydata.ErrInvalidInput) {
			return p.line(level, label, p.muted.Sprint("null"))
		}
		return err
	}
	return p.node(d, label, level)
}

func (p *Printer) node(d easydata.Data, label string, level int) error {
	kind := p.kinds[d.Kind()].Sprint(d.Kind())
	expand := p.depth == 0 || level < p.depth
	switch d := d.(type) {
	case *easydata.ListData:
		if err := p.line(level, label, fmt.Sprintf("%s (%d)", kind, d.Len())); err != nil {
			return err
		}
		if !expand {
			p.truncated = p.truncated || d.Len() > 0
			return nil
		}
		for i, n := 0, d.Len(); i < n; i++ {
			if err := p.child(d.Index(i), fmt.Sprintf("[%d]", i), level+1); err != nil {
				return err
			}
		}
	case *easydata.MappingData:
		if err := p.line(level, label, fmt.Sprintf("%s (%d)", kind, d.Len())); err != nil {
			return err
		}
		if !expand {
			p.truncated = p.truncated || d.Len() > 0
			return nil
		}
		var err error
		d.Range(func(key, value any) bool {
			err = p.child(value, fmt.Sprint(key), level+1)
			return err == nil
		})
		return err
	case *easydata.ObjectData:
		if err := p.line(level, label, fmt.Sprintf("%s %s", kind, p.muted.Sprint(d.TypeName()))); err != nil {
			return err
		}
		if !expand {
			p.truncated = p.truncated || len(d.Fields()) > 0
			return nil
		}
		for _, name := range d.Fields() {
			val, _ := d.Field(name)
			if err := p.child(val, name, level+1); err != nil {
				return err
			}
		}
	case *easydata.LiteralData:
		return p.line(level, label, fmt.Sprintf("%s %s = %s", kind, p.muted.Sprintf("%T", d.Value()), formatLiteral(d.Value())))
	}
	return nil
}

func (p *Printer) line(level int, label, text string) error {
	indent := strings.Repeat("  ", level)
	if label != "" {
		text = label + ": " + text
	}
	_, err := fmt.Fprintln(p.w, indent+text)
	return err
}

func formatLiteral(val any) string {
	switch v := val.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(val)
}
