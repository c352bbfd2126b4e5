package index

import (
	"fmt"

	"github.com/hupe1980/labelframe/scalar"
)

type selectorKind uint8

const (
	selAll selectorKind = iota
	selLabel
	selLabelRange
	selLabels
	selPos
	selPosSlice
	selPositions
	selMask
)

// Selector addresses positions along one axis.
//
// Label selectors (Label, LabelRange, LabelFrom, LabelTo, Labels) are
// resolved by Locate; positional selectors (Pos, PosRange, PosSlice,
// Positions) by ILocate. All and Where work with both.
type Selector struct {
	kind      selectorKind
	label     scalar.Value
	labels    []scalar.Value
	start     *scalar.Value
	end       *scalar.Value
	pos       int
	positions []int
	pstart    *int
	pend      *int
	step      int
	mask      *Mask
}

// All selects the whole axis.
func All() Selector { return Selector{kind: selAll} }

// Label selects a single label.
func Label(v scalar.Value) Selector { return Selector{kind: selLabel, label: v} }

// LabelRange selects start through end, both inclusive.
func LabelRange(start, end scalar.Value) Selector {
	return Selector{kind: selLabelRange, start: &start, end: &end}
}

// LabelFrom selects start through the end of the axis.
func LabelFrom(start scalar.Value) Selector {
	return Selector{kind: selLabelRange, start: &start}
}

// LabelTo selects the beginning of the axis through end, inclusive.
func LabelTo(end scalar.Value) Selector {
	return Selector{kind: selLabelRange, end: &end}
}

// Labels selects a list of labels in the given order.
func Labels(vs ...scalar.Value) Selector {
	return Selector{kind: selLabels, labels: vs}
}

// Pos selects a single position. Negative positions count from the end.
func Pos(p int) Selector { return Selector{kind: selPos, pos: p} }

// PosRange selects positions start up to but excluding end.
func PosRange(start, end int) Selector {
	return Selector{kind: selPosSlice, pstart: &start, pend: &end, step: 1}
}

// PosFrom selects positions start through the end of the axis.
func PosFrom(start int) Selector {
	return Selector{kind: selPosSlice, pstart: &start, step: 1}
}

// PosTo selects positions from the beginning up to but excluding end.
func PosTo(end int) Selector {
	return Selector{kind: selPosSlice, pend: &end, step: 1}
}

// PosSlice is the general start:end:step slice. Nil bounds are open.
func PosSlice(start, end *int, step int) Selector {
	return Selector{kind: selPosSlice, pstart: start, pend: end, step: step}
}

// Positions selects a list of positions in the given order.
func Positions(ps ...int) Selector {
	return Selector{kind: selPositions, positions: ps}
}

// Where selects the positions set in m. The mask length must equal the
// axis length.
func Where(m *Mask) Selector { return Selector{kind: selMask, mask: m} }

// IsScalar reports whether the selector names a single label or position.
// Containers reduce dimensionality for scalar selectors.
func (s Selector) IsScalar() bool { return s.kind == selLabel || s.kind == selPos }

func (s Selector) isPositional() bool {
	return s.kind == selPos || s.kind == selPosSlice || s.kind == selPositions
}

func (s Selector) isLabel() bool {
	return s.kind == selLabel || s.kind == selLabelRange || s.kind == selLabels
}

// Locate resolves a label selector to positions.
func (ix *Index) Locate(sel Selector) ([]int, error) {
	if sel.isPositional() {
		return nil, fmt.Errorf("%w: positional selector used with label access", ErrInvalidSelector)
	}

	switch sel.kind {
	case selLabel:
		ps := ix.Positions(sel.label)
		if ps == nil {
			return nil, &KeyError{Label: sel.label}
		}
		return ps, nil
	case selLabelRange:
		return ix.labelSlice(sel.start, sel.end)
	case selLabels:
		var out []int
		for _, l := range sel.labels {
			ps := ix.Positions(l)
			if ps == nil {
				return nil, &KeyError{Label: l}
			}
			out = append(out, ps...)
		}
		return out, nil
	default:
		return ix.resolveCommon(sel)
	}
}

// ILocate resolves a positional selector to positions.
func (ix *Index) ILocate(sel Selector) ([]int, error) {
	if sel.isLabel() {
		return nil, fmt.Errorf("%w: label selector used with positional access", ErrInvalidSelector)
	}

	n := len(ix.labels)
	switch sel.kind {
	case selPos:
		p, err := normalize(sel.pos, n)
		if err != nil {
			return nil, err
		}
		return []int{p}, nil
	case selPosSlice:
		return slicePositions(n, sel.pstart, sel.pend, sel.step)
	case selPositions:
		out := make([]int, len(sel.positions))
		for i, p := range sel.positions {
			q, err := normalize(p, n)
			if err != nil {
				return nil, err
			}
			out[i] = q
		}
		return out, nil
	default:
		return ix.resolveCommon(sel)
	}
}

func (ix *Index) resolveCommon(sel Selector) ([]int, error) {
	n := len(ix.labels)
	switch sel.kind {
	case selAll:
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	case selMask:
		if sel.mask == nil {
			return nil, fmt.Errorf("%w: nil mask", ErrInvalidSelector)
		}
		if sel.mask.Len() != n {
			return nil, &LengthError{Expected: n, Actual: sel.mask.Len()}
		}
		return sel.mask.Positions(), nil
	default:
		return nil, fmt.Errorf("%w: unknown selector kind %d", ErrInvalidSelector, sel.kind)
	}
}

func normalize(p, n int) (int, error) {
	q := p
	if q < 0 {
		q += n
	}
	if q < 0 || q >= n {
		return 0, &RangeError{Position: p, Length: n}
	}
	return q, nil
}
