package funcdrills

import (
	"reflect"
	"strings"
)

// Declined is the sentinel returned by the guarded primitives when the
// predicate rejects the argument.
const Declined = false

// Transform is a one-argument function supplied by the caller.
type Transform func(x any) any

// Predicate decides whether an argument is legal input for a Transform.
type Predicate func(x any) bool

// SafeFunc is a Transform that has been guarded by a Predicate. It returns
// Declined instead of running on illegal input.
type SafeFunc func(x any) any

// ============================================================================
// Guarded application
// ============================================================================

// TypeCheck applies f to arg if p accepts arg, and returns Declined otherwise.
func TypeCheck(f Transform, p Predicate, arg any) any {
	if p(arg) {
		return f(arg)
	}
	return Declined
}

// MakeSafe returns a reusable function that applies f to its argument when p
// accepts it, and returns Declined otherwise.
//
// Example:
//
//	safeDouble := MakeSafe(Doubling, IsPositiveInteger)
//	safeDouble(5)     // 10
//	safeDouble("bad") // false
func MakeSafe(f Transform, p Predicate) SafeFunc {
	return func(arg any) any {
		if p(arg) {
			return f(arg)
		}
		return Declined
	}
}

// MakeSafeLambda behaves exactly like MakeSafe, written as a single-expression
// closure over TypeCheck.
func MakeSafeLambda(f Transform, p Predicate) SafeFunc {
	return func(arg any) any { return TypeCheck(f, p, arg) }
}

// SafeApply is the typed counterpart of MakeSafe. Instead of a sentinel it
// reports whether f ran using the comma-ok idiom.
func SafeApply[A, B any](f func(A) B, p func(A) bool) func(A) (B, bool) {
	return func(arg A) (B, bool) {
		if !p(arg) {
			var zero B
			return zero, false
		}
		return f(arg), true
	}
}

// IsDeclined reports whether v is the Declined sentinel. A transform that
// itself returns false is indistinguishable from a declined call.
func IsDeclined(v any) bool {
	b, ok := v.(bool)
	return ok && b == Declined
}

// Apply calls the guarded function.
func (f SafeFunc) Apply(x any) any {
	return f(x)
}

// ============================================================================
// Combinators
// ============================================================================

// Identity returns its argument unchanged.
func Identity(x any) any { return x }

// Then returns a Transform that runs f and feeds its result to next.
func (f Transform) Then(next Transform) Transform {
	return func(x any) any {
		return next(f(x))
	}
}

// Guard is shorthand for MakeSafe(f, p).
func (f Transform) Guard(p Predicate) SafeFunc {
	return MakeSafe(f, p)
}

// And accepts x only when both predicates do.
func (p Predicate) And(other Predicate) Predicate {
	return func(x any) bool {
		return p(x) && other(x)
	}
}

// Or accepts x when either predicate does.
func (p Predicate) Or(other Predicate) Predicate {
	return func(x any) bool {
		return p(x) || other(x)
	}
}

// Not inverts the predicate.
func (p Predicate) Not() Predicate {
	return func(x any) bool {
		return !p(x)
	}
}

// ============================================================================
// Building blocks
// ============================================================================

// Doubling multiplies numbers by two, keeping their dynamic type, and repeats
// strings twice. Booleans and every other type are Declined.
func Doubling(x any) any {
	if x == nil {
		return Declined
	}

	rv := reflect.ValueOf(x)
	out := reflect.New(rv.Type()).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(rv.Int() * 2)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		out.SetUint(rv.Uint() * 2)
	case reflect.Float32, reflect.Float64:
		out.SetFloat(rv.Float() * 2)
	case reflect.Complex64, reflect.Complex128:
		out.SetComplex(rv.Complex() * 2)
	case reflect.String:
		out.SetString(strings.Repeat(rv.String(), 2))
	default:
		return Declined
	}
	return out.Interface()
}

// IsPositiveInteger reports whether x is an integer greater than zero.
// Booleans are not integers.
func IsPositiveInteger(x any) bool {
	if x == nil {
		return false
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() > 0
	default:
		return false
	}
}
