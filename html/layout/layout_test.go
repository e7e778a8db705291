package layout

import (
	"errors"
	"strings"
	"testing"

	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
	"github.com/flowrender/flowrender/html/tree"
	tu "github.com/flowrender/flowrender/utils/testutils"
)

type fl = pr.Fl

// layoutDoc lays out a document in a 800x600 viewport.
func layoutDoc(t *testing.T, source string) *Result {
	t.Helper()
	doc, err := tree.NewHTML(source)
	if err != nil {
		t.Fatal(err)
	}
	result, err := Layout(doc, 800, 600, nil)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

// layoutBody returns the body box of the laid out document.
func layoutBody(t *testing.T, source string) *bo.Box {
	t.Helper()
	return unpack1(layoutDoc(t, source).Root)
}

func unpack1(box *bo.Box) *bo.Box { return box.Children[0] }

func unpack2(box *bo.Box) (*bo.Box, *bo.Box) {
	return box.Children[0], box.Children[1]
}

func unpack3(box *bo.Box) (*bo.Box, *bo.Box, *bo.Box) {
	return box.Children[0], box.Children[1], box.Children[2]
}

// the (x, y, w, h) rectangle of the border area of a box
func borderArea(box *bo.Box) [4]fl {
	return [4]fl{
		fl(box.BorderBoxX()), fl(box.BorderBoxY()),
		fl(box.BorderWidth()), fl(box.BorderHeight()),
	}
}

// the (x, y, w, h) rectangle of the outer (margin) area of a box
func outerArea(box *bo.Box) [4]fl {
	return [4]fl{
		fl(box.PositionX), fl(box.PositionY),
		fl(box.MarginWidth()), fl(box.MarginHeight()),
	}
}

func TestLayoutSmoke(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	result := layoutDoc(t, `<body style="margin: 0"><div style="height: 10px"></div>`)
	html := result.Root
	body := unpack1(html)
	div := unpack1(body)

	tu.AssertEqual(t, html.Width, pr.MaybeFloat(pr.Float(800)))
	tu.AssertEqual(t, borderArea(div), [4]fl{0, 0, 800, 10})
	tu.AssertEqual(t, body.Height, pr.MaybeFloat(pr.Float(10)))

	geom, in := result.Geometry[div]
	tu.AssertEqual(t, in, true)
	tu.AssertEqual(t, geom.Height, pr.Float(10))
}

func TestBodyDefaultMargin(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `<div style="height: 10px"></div>`)
	tu.AssertEqual(t, fl(body.MarginLeft.V()), fl(8))
	tu.AssertEqual(t, fl(body.Width.V()), fl(800-16))
}

func TestLayoutDepthExceeded(t *testing.T) {
	source := strings.Repeat("<div>", 600) + "x" + strings.Repeat("</div>", 600)
	doc, err := tree.NewHTML(source)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Layout(doc, 800, 600, nil)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	const source = `
      <style>
        body { margin: 0; font-size: 16px; line-height: 16px }
        .f { float: left; width: 50px; height: 50px }
        .a { position: absolute; top: 10px; left: 10px; width: 20px; height: 20px }
      </style>
      <div class=f></div><div class=a></div><p>some wrapping text here</p>`
	doc, err := tree.NewHTML(source)
	if err != nil {
		t.Fatal(err)
	}
	first, err := Layout(doc, 800, 600, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Layout(doc, 800, 600, nil)
	if err != nil {
		t.Fatal(err)
	}

	tu.AssertEqual(t, len(second.Geometry), len(first.Geometry))
	tu.AssertEqual(t, second.Root.DumpTree(), first.Root.DumpTree())
	tu.AssertEqual(t, borderArea(unpack1(second.Root)), borderArea(unpack1(first.Root)))
}

func TestCircularPercentageHeight(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	// a percentage height against an auto height resolves to auto
	body := layoutBody(t, `
      <body style="margin: 0">
      <div><div style="height: 50%"><div style="height: 10px"></div></div></div>`)
	outer := unpack1(body)
	inner := unpack1(outer)
	tu.AssertEqual(t, fl(inner.Height.V()), fl(10))
	tu.AssertEqual(t, fl(outer.Height.V()), fl(10))
}

func TestPercentagePaddingInherit(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	// the computed value of a percentage padding is the percentage:
	// inheriting it re-resolves against the child's containing block
	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        #p { width: 150px }
        #k { padding-left: 20%; height: 10px }
        #g { padding-left: inherit; height: 5px }
      </style>
      <div id=p><div id=k><div id=g></div></div></div>`)
	parent := unpack1(body)
	kid := unpack1(parent)
	grandKid := unpack1(kid)
	tu.AssertEqual(t, fl(kid.PaddingLeft.V()), fl(30))      // 20% of 150
	tu.AssertEqual(t, fl(grandKid.PaddingLeft.V()), fl(24)) // 20% of 120
}
