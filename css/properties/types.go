package properties

import "fmt"

// ------------- Top level types, implementing CssProperty ------------

type String string

type Float Fl

type Unit uint8

const (
	_      Unit = iota
	Scalar      // no unit, but a valid value (line-height number)
	Perc        // percentage (%)
	Ex
	Em
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Q
)

func (u Unit) String() string {
	switch u {
	case Scalar:
		return ""
	case Perc:
		return "%"
	case Ex:
		return "ex"
	case Em:
		return "em"
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	default:
		return "<invalid unit>"
	}
}

// Dimension without unit is interpreted as float
type Dimension struct {
	Value Float
	Unit  Unit
}

func NewDim(v Float, u Unit) Dimension { return Dimension{Value: v, Unit: u} }

func (d Dimension) String() string {
	return fmt.Sprintf("<%g%s>", d.Value, d.Unit)
}

func (d Dimension) IsNone() bool {
	return d == Dimension{}
}

func (d Dimension) ToValue() DimOrS {
	return DimOrS{Dimension: d}
}

// DimOrS is a dimension or a keyword, like "auto".
type DimOrS struct {
	S string
	Dimension
}

func (ds DimOrS) String() string {
	if ds.S != "" {
		return ds.S
	}
	return ds.Dimension.String()
}

func (ds DimOrS) IsNone() bool {
	return ds == DimOrS{}
}

// SToV wraps a keyword into a DimOrS value.
func SToV(s string) DimOrS { return DimOrS{S: s} }

// FToV wraps a pixel length into a DimOrS value.
func FToV(f Fl) DimOrS { return DimOrS{Dimension: Dimension{Value: Float(f), Unit: Px}} }

// FToD wraps a pixel length into a Dimension.
func FToD(f Fl) Dimension { return Dimension{Value: Float(f), Unit: Px} }

var ZeroPixels = Dimension{Unit: Px}

// How many CSS pixels is one <unit>?
// http://www.w3.org/TR/CSS21/syndata.html#length-units
var LengthsToPixels = map[Unit]Float{
	Px: 1,
	Pt: 1. / 0.75,
	Pc: 16.,             // LengthsToPixels[Pt] * 12
	In: 96.,             // LengthsToPixels[Pt] * 72
	Cm: 96. / 2.54,      // LengthsToPixels[In] / 2.54
	Mm: 96. / 25.4,      // LengthsToPixels[In] / 25.4
	Q:  96. / 25.4 / 4., // LengthsToPixels[Mm] / 4
}

type Point [2]Dimension

// method tags

func (String) isCssProperty() {}
func (Float) isCssProperty()  {}
func (DimOrS) isCssProperty() {}

func (String) isDeclaredValue() {}
func (Float) isDeclaredValue()  {}
func (DimOrS) isDeclaredValue() {}
