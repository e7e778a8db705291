package properties

import "math"

// MaybeFloat is a used value, either a resolved length (Float)
// or the "auto" keyword.
type MaybeFloat interface {
	V() Float
}

func (f Float) V() Float { return f }

type autoType uint8

func (autoType) V() Float { return 0 }

// AutoF is the special "auto" used value.
const AutoF = autoType(1)

var Inf = Float(math.Inf(+1))

// Is returns true if `m` is a set, non zero length.
func Is(m MaybeFloat) bool {
	f, ok := m.(Float)
	return ok && f != 0
}

func Min(x, y Float) Float {
	if x < y {
		return x
	}
	return y
}

func Max(x, y Float) Float {
	if x > y {
		return x
	}
	return y
}

func Abs(x Float) Float {
	if x < 0 {
		return -x
	}
	return x
}

// ResolvePercentage returns the used value from a computed value,
// against the given reference length. Percentages are resolved;
// absolute lengths must already be in pixels.
func ResolvePercentage(value DimOrS, referTo Float) MaybeFloat {
	switch {
	case value.IsNone():
		return nil
	case value.S == "auto", value.S == "none":
		return AutoF
	case value.Unit == Px:
		return value.Value
	case value.Unit == Perc:
		return referTo * value.Value / 100
	default:
		panic("expected percentage or pixels, got " + value.String())
	}
}
