package validation

import (
	"testing"

	pr "github.com/flowrender/flowrender/css/properties"
	tu "github.com/flowrender/flowrender/utils/testutils"
)

func sides(t *testing.T, out []ValidatedProperty, top, right, bottom, left pr.KnownProp) [4]pr.DeclaredValue {
	t.Helper()
	tu.AssertEqual(t, len(out), 4)
	return [4]pr.DeclaredValue{
		propValue(out, top), propValue(out, right),
		propValue(out, bottom), propValue(out, left),
	}
}

func marginSides(t *testing.T, css string) [4]pr.DeclaredValue {
	t.Helper()
	return sides(t, validate(t, css),
		pr.PMarginTop, pr.PMarginRight, pr.PMarginBottom, pr.PMarginLeft)
}

func TestExpandFourSides(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, marginSides(t, "margin: 1px"),
		[4]pr.DeclaredValue{pr.FToV(1), pr.FToV(1), pr.FToV(1), pr.FToV(1)})
	tu.AssertEqual(t, marginSides(t, "margin: 1px 2px"),
		[4]pr.DeclaredValue{pr.FToV(1), pr.FToV(2), pr.FToV(1), pr.FToV(2)})
	tu.AssertEqual(t, marginSides(t, "margin: 1px 2px 3px"),
		[4]pr.DeclaredValue{pr.FToV(1), pr.FToV(2), pr.FToV(3), pr.FToV(2)})
	tu.AssertEqual(t, marginSides(t, "margin: 1px 2px 3px 4px"),
		[4]pr.DeclaredValue{pr.FToV(1), pr.FToV(2), pr.FToV(3), pr.FToV(4)})
}

func TestExpandFourSidesValues(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, marginSides(t, "margin: auto 10%"),
		[4]pr.DeclaredValue{pr.SToV("auto"), pr.NewDim(10, pr.Perc).ToValue(),
			pr.SToV("auto"), pr.NewDim(10, pr.Perc).ToValue()})

	out := validate(t, "padding: 1px 2px")
	got := sides(t, out, pr.PPaddingTop, pr.PPaddingRight, pr.PPaddingBottom, pr.PPaddingLeft)
	tu.AssertEqual(t, got,
		[4]pr.DeclaredValue{pr.FToV(1), pr.FToV(2), pr.FToV(1), pr.FToV(2)})

	out = validate(t, "border-style: solid dotted")
	tu.AssertEqual(t, propValue(out, pr.PBorderTopStyle), pr.String("solid"))
	tu.AssertEqual(t, propValue(out, pr.PBorderRightStyle), pr.String("dotted"))

	out = validate(t, "border-width: thin 2px")
	tu.AssertEqual(t, propValue(out, pr.PBorderTopWidth), pr.FToV(1))
	tu.AssertEqual(t, propValue(out, pr.PBorderRightWidth), pr.FToV(2))
}

func TestExpandFourSidesInherit(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, marginSides(t, "margin: inherit"),
		[4]pr.DeclaredValue{pr.Inherit, pr.Inherit, pr.Inherit, pr.Inherit})
}

func TestExpandFourSidesInvalid(t *testing.T) {
	logs := tu.CaptureLogs()

	// one bad value invalidates the whole shorthand
	tu.AssertEqual(t, len(validate(t, "margin: 1px 2px 3px 4px 5px")), 0)
	tu.AssertEqual(t, len(validate(t, "padding: 1px bogus")), 0)
	tu.AssertEqual(t, len(validate(t, "padding: -1px")), 0)
	tu.AssertEqual(t, len(logs.Logs()), 3)
}

func TestExpandBorder(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	out := validate(t, "border: 2px solid")
	tu.AssertEqual(t, len(out), 8)
	for _, side := range []pr.KnownProp{
		pr.PBorderTopWidth, pr.PBorderRightWidth, pr.PBorderBottomWidth, pr.PBorderLeftWidth,
	} {
		tu.AssertEqual(t, propValue(out, side), pr.FToV(2))
	}
	for _, side := range []pr.KnownProp{
		pr.PBorderTopStyle, pr.PBorderRightStyle, pr.PBorderBottomStyle, pr.PBorderLeftStyle,
	} {
		tu.AssertEqual(t, propValue(out, side), pr.String("solid"))
	}

	// order does not matter
	out = validate(t, "border: solid 2px")
	tu.AssertEqual(t, propValue(out, pr.PBorderTopWidth), pr.FToV(2))
}

func TestExpandBorderDefaults(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	// a missing width is medium, a missing style is none
	out := validate(t, "border: solid")
	tu.AssertEqual(t, propValue(out, pr.PBorderTopWidth), pr.FToV(3))

	out = validate(t, "border: 2px")
	tu.AssertEqual(t, propValue(out, pr.PBorderTopStyle), pr.String("none"))
}

func TestExpandBorderInvalid(t *testing.T) {
	logs := tu.CaptureLogs()

	tu.AssertEqual(t, len(validate(t, "border: 2px 3px")), 0)
	tu.AssertEqual(t, len(validate(t, "border: 1px solid red")), 0)
	tu.AssertEqual(t, len(logs.Logs()), 2)
}
