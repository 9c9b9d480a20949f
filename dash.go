package gg

import "math"

// Dash is a dash pattern for stroking: alternating dash and gap lengths,
// plus a phase offset into the pattern cycle. [5, 3] means 5 units drawn,
// 3 units skipped, repeating.
type Dash struct {
	// Array holds alternating dash/gap lengths. An odd-length array is
	// logically duplicated when the pattern is walked, so [5] behaves
	// like [5, 5].
	Array []float64

	// Offset is where along the pattern cycle the stroke begins.
	Offset float64
}

// NewDash builds a dash pattern from alternating dash/gap lengths,
// taking the absolute value of any negative entry. It returns nil if no
// lengths are given or every length is zero or negative, since such a
// pattern draws nothing.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 || !hasPositive(lengths) {
		return nil
	}

	array := make([]float64, len(lengths))
	for i, l := range lengths {
		array[i] = math.Abs(l)
	}
	return &Dash{Array: array}
}

func hasPositive(lengths []float64) bool {
	for _, l := range lengths {
		if l > 0 {
			return true
		}
	}
	return false
}

// WithOffset returns a copy of d starting at a different point in the
// pattern cycle; calling it on a nil Dash yields nil.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the length of one full cycle through the
// pattern, counting the implicit duplication for an odd-length array.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether d describes an actual dash pattern rather
// than an effectively solid line — false for nil, empty, or all-zero
// patterns.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	return hasPositive(d.Array)
}

// Clone returns an independent copy of d; a nil Dash clones to nil.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	array := make([]float64, len(d.Array))
	copy(array, d.Array)
	return &Dash{Array: array, Offset: d.Offset}
}

// NormalizedOffset returns d's Offset reduced modulo PatternLength into
// [0, PatternLength), the form pattern-walking code wants to start from.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}

	length := d.PatternLength()
	if length <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, length)
	if offset < 0 {
		offset += length
	}
	return offset
}

// Scale returns a copy of d with every length — dash, gap, and offset —
// multiplied by factor. Dash lengths live in user-space units, so per
// Cairo/Skia convention they scale along with a coordinate transform
// applied to the stroked path. A non-positive factor is a no-op, and d
// is returned unchanged (nil-safe).
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

// effectiveArray returns Array with odd-length patterns duplicated into
// an even-length cycle, the form pattern-walking code iterates over.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}

	doubled := make([]float64, len(d.Array)*2)
	copy(doubled, d.Array)
	copy(doubled[len(d.Array):], d.Array)
	return doubled
}
