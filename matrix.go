package gg

import "math"

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// homogeneous matrix, row-major:
//
//	| A  B  C |
//	| D  E  F |
//	| 0  0  1 |
//
// Mapping a point applies:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity is the no-op transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate builds a matrix that offsets points by (x, y).
func Translate(x, y float64) Matrix {
	m := Identity()
	m.C, m.F = x, y
	return m
}

// Scale builds a matrix that scales the x and y axes independently.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate builds a counter-clockwise rotation matrix; angle is in radians.
func Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{A: c, B: -s, D: s, E: c}
}

// Shear builds a matrix that skews the axes by x and y.
func Shear(x, y float64) Matrix {
	return Matrix{A: 1, B: x, D: y, E: 1}
}

// Multiply composes m with other, applying other first: (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint maps p through the full affine transform, including
// translation.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector maps p through the matrix's linear part only; the
// translation column (C, F) is ignored. Use this for direction/offset
// vectors that should not shift with the matrix's origin.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the matrix M such that m.Multiply(M) is the identity.
// A singular matrix (determinant near zero) has no inverse; Invert falls
// back to Identity() in that case rather than dividing by zero.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	inv := 1.0 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m.linearIsIdentity() && m.C == 0 && m.F == 0
}

// IsTranslation reports whether m's linear part (everything but the C, F
// translation column) is the identity — so m is a pure translation, or
// the identity itself.
func (m Matrix) IsTranslation() bool {
	return m.linearIsIdentity()
}

// IsTranslationOnly is an alias of IsTranslation kept for call sites that
// read more naturally asking "only a translation?" alongside IsScaleOnly.
func (m Matrix) IsTranslationOnly() bool {
	return m.IsTranslation()
}

// IsScaleOnly reports whether m has no rotation or shear component — its
// linear part is diagonal, so it scales (and optionally translates) the
// axes without rotating or skewing them. Degenerate (all-zero) matrices
// count as scale-only, since a diagonal with zero entries is still
// diagonal.
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.D == 0
}

// linearIsIdentity reports whether the A,B,D,E linear part equals the
// 2x2 identity, independent of any translation.
func (m Matrix) linearIsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// MaxScaleFactor returns the largest factor by which m can stretch a unit
// vector — the largest singular value of m's linear part. Callers use
// this to size curve-flattening tolerance and stroke offsets so that
// shapes stay smooth after an anisotropic transform (non-uniform scale,
// shear, or a composition of the two) is applied.
//
// The singular values of a 2x2 matrix M are the square roots of the
// eigenvalues of M^T*M; for a symmetric 2x2 matrix [[p,q],[q,r]] those
// eigenvalues have the closed form (p+r ± sqrt((p-r)^2 + 4q^2)) / 2.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E

	sum := p + r
	halfDiff := p - r
	discriminant := math.Sqrt(halfDiff*halfDiff + 4*q*q)

	maxEigenvalue := (sum + discriminant) / 2
	if maxEigenvalue < 0 {
		// Guards against a tiny negative value from floating-point
		// cancellation when the true eigenvalue is exactly zero.
		maxEigenvalue = 0
	}
	return math.Sqrt(maxEigenvalue)
}
