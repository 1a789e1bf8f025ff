package pixbuf

import (
	"fmt"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// Elementwise arithmetic on integer receivers with integer operands runs in
// the receiver's type: results are exact while they fit and wrap modulo the
// type's width otherwise. As soon as a floating-point operand or a ratio is
// involved, the computation runs in float64 and integer receivers get the
// result truncated and saturated to their range. Binary and ternary forms
// check the operand shapes first; on mismatch they return an error wrapping
// ErrShapeMismatch and leave the receiver untouched. Otherwise the receiver
// is reshaped to the operands if needed.

// integral reports whether R, A and B are all integer types.
func integral[R, A, B Scalar]() bool {
	return !numeric.IsFloat[R]() && !numeric.IsFloat[A]() && !numeric.IsFloat[B]()
}

func mismatch(op string, shapes ...Shape) error {
	err := fmt.Errorf("%w in %s: %v", ErrShapeMismatch, op, shapes)
	Logger().Warn("pixbuf: operation rejected", "op", op, "error", err)
	return err
}

// Multiply sets r[i] = a[i] * b[i].
func Multiply[R, A, B Scalar](r *Buffer[R], a *Buffer[A], b *Buffer[B]) error {
	if !MatchShape(a, b) {
		return mismatch("Multiply", a.Shape(), b.Shape())
	}
	ensureShape(r, a.width, a.height, a.channels)
	if integral[R, A, B]() {
		for i := range r.data {
			r.data[i] = R(a.data[i]) * R(b.data[i])
		}
		return nil
	}
	for i := range r.data {
		r.data[i] = numeric.FromFloat[R](float64(a.data[i]) * float64(b.data[i]))
	}
	return nil
}

// Multiply3 sets r[i] = a[i] * b[i] * c[i].
func Multiply3[R, A, B, C Scalar](r *Buffer[R], a *Buffer[A], b *Buffer[B], c *Buffer[C]) error {
	if !MatchShape(a, b) || !MatchShape(b, c) {
		return mismatch("Multiply3", a.Shape(), b.Shape(), c.Shape())
	}
	ensureShape(r, a.width, a.height, a.channels)
	if integral[R, A, B]() && !numeric.IsFloat[C]() {
		for i := range r.data {
			r.data[i] = R(a.data[i]) * R(b.data[i]) * R(c.data[i])
		}
		return nil
	}
	for i := range r.data {
		r.data[i] = numeric.FromFloat[R](float64(a.data[i]) * float64(b.data[i]) * float64(c.data[i]))
	}
	return nil
}

// MultiplyWith sets r[i] *= a[i]. Unlike Multiply it never reshapes r: a must
// already match it.
func MultiplyWith[R, A Scalar](r *Buffer[R], a *Buffer[A]) error {
	if !MatchShape(r, a) {
		return mismatch("MultiplyWith", r.Shape(), a.Shape())
	}
	if integral[R, A, A]() {
		for i := range r.data {
			r.data[i] *= R(a.data[i])
		}
		return nil
	}
	for i := range r.data {
		r.data[i] = numeric.FromFloat[R](float64(r.data[i]) * float64(a.data[i]))
	}
	return nil
}

// Add sets r[i] = a[i] + b[i].
func Add[R, A, B Scalar](r *Buffer[R], a *Buffer[A], b *Buffer[B]) error {
	if !MatchShape(a, b) {
		return mismatch("Add", a.Shape(), b.Shape())
	}
	ensureShape(r, a.width, a.height, a.channels)
	if integral[R, A, B]() {
		for i := range r.data {
			r.data[i] = R(a.data[i]) + R(b.data[i])
		}
		return nil
	}
	for i := range r.data {
		r.data[i] = numeric.FromFloat[R](float64(a.data[i]) + float64(b.data[i]))
	}
	return nil
}

// AddScaled sets r[i] = a[i] + b[i]*ratio.
func AddScaled[R, A, B Scalar](r *Buffer[R], a *Buffer[A], b *Buffer[B], ratio float64) error {
	if !MatchShape(a, b) {
		return mismatch("AddScaled", a.Shape(), b.Shape())
	}
	ensureShape(r, a.width, a.height, a.channels)
	for i := range r.data {
		r.data[i] = numeric.FromFloat[R](float64(a.data[i]) + float64(b.data[i])*ratio)
	}
	return nil
}

// Accumulate sets r[i] += a[i]*ratio in place.
//
// No shape check is made. a must hold at least r.Elements() elements; a
// shorter a panics with an index error.
func Accumulate[R, A Scalar](r *Buffer[R], a *Buffer[A], ratio float64) {
	for i := range r.data {
		r.data[i] = numeric.FromFloat[R](float64(r.data[i]) + float64(a.data[i])*ratio)
	}
}

// Subtract sets r[i] = a[i] - b[i].
func Subtract[R, A, B Scalar](r *Buffer[R], a *Buffer[A], b *Buffer[B]) error {
	if !MatchShape(a, b) {
		return mismatch("Subtract", a.Shape(), b.Shape())
	}
	ensureShape(r, a.width, a.height, a.channels)
	if integral[R, A, B]() {
		for i := range r.data {
			r.data[i] = R(a.data[i]) - R(b.data[i])
		}
		return nil
	}
	for i := range r.data {
		r.data[i] = numeric.FromFloat[R](float64(a.data[i]) - float64(b.data[i]))
	}
	return nil
}

// AddScalar adds v to every element.
func (b *Buffer[T]) AddScalar(v T) {
	for i := range b.data {
		b.data[i] += v
	}
}

// MultiplyScalar multiplies every element by v.
func (b *Buffer[T]) MultiplyScalar(v float64) {
	for i, x := range b.data {
		b.data[i] = numeric.FromFloat[T](float64(x) * v)
	}
}
