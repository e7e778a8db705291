package validation

import (
	"testing"

	pa "github.com/flowrender/flowrender/css/parser"
	pr "github.com/flowrender/flowrender/css/properties"
	tu "github.com/flowrender/flowrender/utils/testutils"
)

func validate(t *testing.T, css string) []ValidatedProperty {
	t.Helper()
	decls, errs := pa.ParseDeclarationList(css)
	tu.AssertEqual(t, len(errs), 0)
	return PreprocessDeclarations(decls)
}

// validateOne expects a single valid declaration and returns its value.
func validateOne(t *testing.T, css string) pr.DeclaredValue {
	t.Helper()
	out := validate(t, css)
	tu.AssertEqual(t, len(out), 1)
	return out[0].Value
}

func propValue(out []ValidatedProperty, name pr.KnownProp) pr.DeclaredValue {
	for _, v := range out {
		if v.Name == name {
			return v.Value
		}
	}
	return nil
}

func TestLengths(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, validateOne(t, "width: 10px"), pr.FToV(10))
	tu.AssertEqual(t, validateOne(t, "width: 50%"), pr.NewDim(50, pr.Perc).ToValue())
	tu.AssertEqual(t, validateOne(t, "width: 2em"), pr.NewDim(2, pr.Em).ToValue())
	tu.AssertEqual(t, validateOne(t, "width: auto"), pr.SToV("auto"))

	// a unitless zero is zero pixels
	tu.AssertEqual(t, validateOne(t, "width: 0"), pr.FToV(0))

	// margins may be negative, widths may not
	tu.AssertEqual(t, validateOne(t, "margin-top: -5px"), pr.FToV(-5))
}

func TestInvalidDropped(t *testing.T) {
	logs := tu.CaptureLogs()

	out := validate(t, `
		width: -5px;
		width: 5;
		flavor: strawberry;
		display: flex;
	`)
	tu.AssertEqual(t, len(out), 0)
	tu.AssertEqual(t, len(logs.Logs()), 4)
}

func TestMinMaxWidthHeight(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	// max-width: none computes to infinity, min-width: auto to zero
	none := validateOne(t, "max-width: none").(pr.DimOrS)
	tu.AssertEqual(t, none.Unit, pr.Px)
	tu.AssertEqual(t, none.Value, pr.Inf)

	tu.AssertEqual(t, validateOne(t, "min-height: auto"), pr.FToV(0))
	tu.AssertEqual(t, validateOne(t, "max-height: 20px"), pr.FToV(20))
}

func TestBorderWidth(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, validateOne(t, "border-top-width: thin"), pr.FToV(1))
	tu.AssertEqual(t, validateOne(t, "border-top-width: medium"), pr.FToV(3))
	tu.AssertEqual(t, validateOne(t, "border-top-width: thick"), pr.FToV(5))
	tu.AssertEqual(t, validateOne(t, "border-top-width: 2px"), pr.FToV(2))

	// no percentages for border widths
	logs := tu.CaptureLogs()
	tu.AssertEqual(t, len(validate(t, "border-top-width: 10%")), 0)
	tu.AssertEqual(t, len(logs.Logs()), 1)
}

func TestKeywordProperties(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range [][2]string{
		{"display", "inline"},
		{"position", "absolute"},
		{"float", "right"},
		{"clear", "both"},
		{"direction", "rtl"},
		{"unicode-bidi", "bidi-override"},
		{"white-space", "pre-wrap"},
		{"border-top-style", "solid"},
	} {
		got := validateOne(t, test[0]+": "+test[1])
		tu.AssertEqual(t, got, pr.String(test[1]))
	}
}

func TestKeywordPropertiesInvalid(t *testing.T) {
	logs := tu.CaptureLogs()

	out := validate(t, `
		float: center;
		clear: all;
		direction: up;
		white-space: dense;
	`)
	tu.AssertEqual(t, len(out), 0)
	tu.AssertEqual(t, len(logs.Logs()), 4)
}

func TestFontSize(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, validateOne(t, "font-size: 20px"), pr.FToV(20))
	tu.AssertEqual(t, validateOne(t, "font-size: 150%"), pr.NewDim(150, pr.Perc).ToValue())
	tu.AssertEqual(t, validateOne(t, "font-size: medium"), pr.FToV(16))
	tu.AssertEqual(t, validateOne(t, "font-size: xx-large"), pr.FToV(32))
}

func TestLineHeight(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, validateOne(t, "line-height: normal"), pr.SToV("normal"))
	tu.AssertEqual(t, validateOne(t, "line-height: 20px"), pr.FToV(20))

	// a unitless number is kept as a number
	tu.AssertEqual(t, validateOne(t, "line-height: 1.5"), pr.NewDim(1.5, pr.Scalar).ToValue())

	logs := tu.CaptureLogs()
	tu.AssertEqual(t, len(validate(t, "line-height: -2")), 0)
	tu.AssertEqual(t, len(logs.Logs()), 1)
}

func TestWordSpacing(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, validateOne(t, "word-spacing: normal"), pr.FToV(0))
	tu.AssertEqual(t, validateOne(t, "word-spacing: 4px"), pr.FToV(4))
	tu.AssertEqual(t, validateOne(t, "word-spacing: -2px"), pr.FToV(-2))

	logs := tu.CaptureLogs()
	tu.AssertEqual(t, len(validate(t, "word-spacing: 10%")), 0)
	tu.AssertEqual(t, len(logs.Logs()), 1)
}

func TestInheritInitial(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, validateOne(t, "width: inherit"), pr.Inherit)
	tu.AssertEqual(t, validateOne(t, "width: initial"), pr.Initial)

	// case insensitive property names
	out := validate(t, "WIDTH: 10px")
	tu.AssertEqual(t, out[0].Name, pr.PWidth)
}
