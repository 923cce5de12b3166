package dock

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Owner is the object a parameter adjusts. Invalidate is called after every
// committed change so the owner can re-layout or redraw.
type Owner interface {
	Invalidate()
}

// Broadcaster is implemented by owners that publish changes to other
// listeners. BroadcastChange runs after Invalidate.
type Broadcaster interface {
	BroadcastChange(p *Parameter)
}

// OwnerFunc adapts a plain function to Owner.
type OwnerFunc func()

func (f OwnerFunc) Invalidate() { f() }

// ParamOption customizes a Parameter at construction.
type ParamOption func(*Parameter)

// WithTitle sets the row label. Without it the label is the id with
// underscores removed, set on first read.
func WithTitle(title string) ParamOption {
	return func(p *Parameter) { p.title = title }
}

// WithOnChange registers a callback invoked for every committed change.
func WithOnChange(fn func(owner Owner, value float64)) ParamOption {
	return func(p *Parameter) { p.onChange = fn }
}

// Parameter is a named float64 bounded to [Min, Max], created and held by its
// owner. The value shown by the slider and the value read by the owner are
// the same storage.
type Parameter struct {
	id    string
	title string

	value  float64
	lo, hi float64

	owner    Owner
	onChange func(Owner, float64)

	reg *Registry
	row *Row
	// attached is set once the parameter has been offered to the registry.
	// After that only an explicit Register puts it back on the panel.
	attached bool
}

// NewParameter creates a parameter bound to reg. It panics if lo > hi or
// either bound is NaN: there is no sensible clamp for such a range.
func NewParameter(reg *Registry, owner Owner, id string, initial, lo, hi float64, opts ...ParamOption) *Parameter {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		panic(fmt.Sprintf("dock: parameter %q has invalid range [%v, %v]", id, lo, hi))
	}
	p := &Parameter{
		id:    id,
		lo:    lo,
		hi:    hi,
		owner: owner,
		reg:   reg,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.value = p.clamp(initial)
	return p
}

// ID returns the identifier the parameter was declared with.
func (p *Parameter) ID() string { return p.id }

// Title returns the row label, or "" before the first read.
func (p *Parameter) Title() string { return p.title }

// Range returns the bounds.
func (p *Parameter) Range() (lo, hi float64) { return p.lo, p.hi }

// Value returns the current value. The first read names the parameter and
// puts it on the panel; later reads only return the value.
func (p *Parameter) Value() float64 {
	p.attach()
	return p.value
}

// Set stores v, clamped, without notifying anyone. Owners use it for
// programmatic changes.
func (p *Parameter) Set(v float64) {
	p.value = p.clamp(v)
}

// Row returns the slider row, or nil while the parameter is not displayed.
func (p *Parameter) Row() *Row { return p.row }

// Release removes the parameter from the panel for good. Later reads do not
// bring it back.
func (p *Parameter) Release() {
	p.attached = true
	if p.row != nil && p.reg != nil {
		p.reg.Unregister(p.row)
	}
	p.row = nil
}

func (p *Parameter) attach() {
	if p.title == "" {
		p.title = strings.ReplaceAll(p.id, "_", "")
	}
	if p.attached {
		return
	}
	p.attached = true
	if p.reg != nil {
		p.row = p.reg.Register(p)
	}
}

func (p *Parameter) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return p.lo
	}
	if v < p.lo {
		return p.lo
	}
	if v > p.hi {
		return p.hi
	}
	return v
}

// Fraction returns the value's position within the range, from 0 to 1.
func (p *Parameter) Fraction() float64 {
	if p.hi == p.lo {
		return 0
	}
	return (p.value - p.lo) / (p.hi - p.lo)
}

// Row is one slider on the panel.
type Row struct {
	Param *Parameter
	// Frame is the row rectangle in content coordinates, set by layout.
	Frame Rect
}

// SetValue applies a user-driven change. The value is clamped and stored;
// if it differs from the previous value the owner is invalidated, the
// owner's broadcast fires, then the parameter's change callback. It reports
// whether anything changed.
func (r *Row) SetValue(raw float64) bool {
	p := r.Param
	v := p.clamp(raw)
	if v == p.value {
		return false
	}
	p.value = v
	if p.owner != nil {
		p.owner.Invalidate()
		if b, ok := p.owner.(Broadcaster); ok {
			b.BroadcastChange(p)
		}
	}
	if p.onChange != nil {
		p.onChange(p.owner, v)
	}
	return true
}

// SetFromTrack maps a pointer x over the slider track to a value, like
// dragging the thumb, and applies it with SetValue.
func (r *Row) SetFromTrack(x float64, track Rect) bool {
	w := track.Width()
	if w <= 0 {
		return r.SetValue(r.Param.lo)
	}
	ratio := (x - track.X0) / w
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	lo, hi := r.Param.lo, r.Param.hi
	return r.SetValue(lo + ratio*(hi-lo))
}

// Track returns the slider track inside frame: the lower half, inset
// horizontally by pad. The upper half carries the title and stays draggable.
func (r *Row) Track(frame Rect, pad float64) Rect {
	t := Rect{X0: frame.X0 + pad, Y0: frame.Y0 + frame.Height()/2, X1: frame.X1 - pad, Y1: frame.Y1}
	if t.X1 < t.X0 {
		t.X1 = t.X0
	}
	return t
}

// Label formats the current value for display, with two decimals and
// thousands separators.
func (r *Row) Label() string {
	return humanize.FormatFloat("#,###.##", r.Param.value)
}
