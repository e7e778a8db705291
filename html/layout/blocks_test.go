package layout

import (
	"testing"

	pr "github.com/flowrender/flowrender/css/properties"
	tu "github.com/flowrender/flowrender/utils/testutils"
)

func TestBlockWidths(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        div { height: 10px }
        #a { width: 100px; margin-left: 10px; margin-right: auto }
        #b { margin-left: 20px; padding-left: 5px }
        #c { margin-left: auto }
      </style>
      <div id=a></div><div id=b></div><div id=c></div>`)
	a, b, c := unpack3(body)

	// a fixed width with one auto margin: the margin absorbs the rest
	tu.AssertEqual(t, fl(a.Width.V()), fl(100))
	tu.AssertEqual(t, fl(a.MarginRight.V()), fl(800-100-10))
	tu.AssertEqual(t, fl(a.BorderBoxX()), fl(10))

	// an auto width fills the containing block
	tu.AssertEqual(t, fl(b.Width.V()), fl(800-20-5))
	tu.AssertEqual(t, fl(b.ContentBoxX()), fl(25))

	// auto margins become zero when the width is auto too
	tu.AssertEqual(t, fl(c.MarginLeft.V()), fl(0))
	tu.AssertEqual(t, fl(c.Width.V()), fl(800))
}

func TestBlockAutoMarginsCenter(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style> body { margin: 0 } </style>
      <div style="width: 100px; height: 10px; margin-left: auto; margin-right: auto"></div>`)
	div := unpack1(body)
	tu.AssertEqual(t, fl(div.MarginLeft.V()), fl(350))
	tu.AssertEqual(t, fl(div.MarginRight.V()), fl(350))
	tu.AssertEqual(t, fl(div.BorderBoxX()), fl(350))
}

func TestBlockWidthOverConstrained(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0; width: 200px }
        .t { width: 100px; height: 10px; margin-left: 10px; margin-right: 10px }
        #rtl { direction: rtl }
      </style>
      <div id=ltr><div class=t></div></div>
      <div id=rtl><div class=t></div></div>`)
	ltr, rtl := unpack2(body)

	// margin-right is ignored in ltr, margin-left in rtl: the rtl box
	// is shifted left by the overflow
	tu.AssertEqual(t, fl(unpack1(ltr).BorderBoxX()), fl(10))
	tu.AssertEqual(t, fl(unpack1(rtl).BorderBoxX()), fl(10+200-100-10-10))
}

func TestBlockMinMaxWidth(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0; width: 100px }
        #min { height: 10px; min-width: 150px }
        #max { height: 10px; width: 500px; max-width: 60px }
      </style>
      <div><div id=min></div><div id=max></div></div>`)
	wrapper := unpack1(body)
	min, max := unpack2(wrapper)
	tu.AssertEqual(t, fl(min.Width.V()), fl(150))
	tu.AssertEqual(t, fl(max.Width.V()), fl(60))
}

func TestMarginCollapsingSiblings(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        div { height: 10px }
        #a { margin-bottom: 20px }
        #b { margin-top: 30px }
      </style>
      <div id=a></div><div id=b></div>`)
	a, b := unpack2(body)

	// 20px and 30px collapse to 30px between the two boxes
	tu.AssertEqual(t, fl(a.BorderBoxY()), fl(0))
	tu.AssertEqual(t, fl(b.BorderBoxY()), fl(40))
	tu.AssertEqual(t, fl(body.Height.V()), fl(50))
}

func TestMarginCollapsingNegative(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        div { height: 10px }
        #a { margin-bottom: -10px }
        #b { margin-top: 30px }
      </style>
      <div id=a></div><div id=b></div>`)
	a, b := unpack2(body)

	// max of positives plus min of negatives: 30 - 10 = 20
	tu.AssertEqual(t, fl(a.BorderBoxY()), fl(0))
	tu.AssertEqual(t, fl(b.BorderBoxY()), fl(30))
}

func TestMarginCollapsingParentChild(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        #outer { margin-top: 10px }
        #inner { margin-top: 25px; height: 10px }
      </style>
      <div id=outer><div id=inner></div></div>`)
	outer := unpack1(body)
	inner := unpack1(outer)

	// the parent has no border nor padding: both margins collapse and
	// the two top border edges coincide
	tu.AssertEqual(t, fl(outer.BorderBoxY()), fl(25))
	tu.AssertEqual(t, fl(inner.BorderBoxY()), fl(25))
}

func TestMarginCollapsingPaddingStops(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        #outer { margin-top: 10px; padding-top: 1px }
        #inner { margin-top: 25px; height: 10px }
      </style>
      <div id=outer><div id=inner></div></div>`)
	outer := unpack1(body)
	inner := unpack1(outer)

	tu.AssertEqual(t, fl(outer.BorderBoxY()), fl(10))
	tu.AssertEqual(t, fl(inner.BorderBoxY()), fl(10+1+25))
}

func TestMarginCollapsingThrough(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        #a, #c { height: 10px }
        #b { margin-top: 15px; margin-bottom: 25px }
        #c { margin-top: 5px }
      </style>
      <div id=a></div><div id=b></div><div id=c></div>`)
	a, b, c := unpack3(body)

	// b has no height: its own margins and c's top margin all collapse
	// into a single 25px gap
	tu.AssertEqual(t, fl(a.BorderBoxY()), fl(0))
	tu.AssertEqual(t, fl(b.Height.V()), fl(0))
	tu.AssertEqual(t, fl(b.BorderBoxY()), fl(25))
	tu.AssertEqual(t, fl(c.BorderBoxY()), fl(35))
	tu.AssertEqual(t, fl(body.Height.V()), fl(45))
}

func TestClearanceStopsCollapsing(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        #f { float: left; width: 50px; height: 50px }
        #cleared { clear: left; margin-top: 40px; margin-bottom: 140px }
      </style>
      <div id=c><div id=f></div><div id=cleared></div></div>`)
	container := unpack1(body)
	float, cleared := unpack2(container)

	tu.AssertEqual(t, outerArea(float), [4]fl{0, 0, 50, 50})
	// clearance puts the cleared box right below the float; its
	// margins no longer collapse with the container bottom, so the
	// container is 50 + 100 tall
	tu.AssertEqual(t, fl(cleared.BorderBoxY()), fl(50))
	tu.AssertEqual(t, fl(container.Height.V()), fl(150))
}

func TestBorderPaddingHeights(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        div { height: 20px; padding: 3px; border: 2px solid; margin: 5px }
      </style>
      <div></div>`)
	div := unpack1(body)

	tu.AssertEqual(t, borderArea(div), [4]fl{5, 5, 20 + 2*3 + 2*2, 20 + 2*3 + 2*2})
	tu.AssertEqual(t, fl(div.ContentBoxX()), fl(5+2+3))
	tu.AssertEqual(t, fl(body.Height.V()), fl(20+2*3+2*2+2*5))
}

func TestMinMaxHeight(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        #min { min-height: 30px }
        #inner { height: 10px }
        #max { height: 50px; max-height: 20px }
      </style>
      <div id=min><div id=inner></div></div>
      <div id=max></div>`)
	min, max := unpack2(body)
	tu.AssertEqual(t, fl(min.Height.V()), fl(30))
	tu.AssertEqual(t, fl(max.Height.V()), fl(20))
}

func TestRelativePositioning(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        div { height: 10px }
        #r { position: relative; left: 10px; top: 5px }
        #both { position: relative; left: 10px; right: 40px }
        #rtl { position: relative; right: 40px; direction: rtl }
      </style>
      <div id=r></div><div id=both></div><div id=rtl></div>`)
	r, both, rtl := unpack3(body)

	tu.AssertEqual(t, fl(r.BorderBoxX()), fl(10))
	tu.AssertEqual(t, fl(r.BorderBoxY()), fl(5))

	// with both left and right set, left wins in ltr
	tu.AssertEqual(t, fl(both.BorderBoxX()), fl(10))
	tu.AssertEqual(t, fl(both.BorderBoxY()), fl(10))

	// right moves the box to the left
	tu.AssertEqual(t, fl(rtl.BorderBoxX()), fl(-40))
}

func TestRelativeDoesNotAffectSiblings(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        div { height: 10px }
        #r { position: relative; top: 100px }
      </style>
      <div id=r></div><div id=s></div>`)
	r, s := unpack2(body)

	tu.AssertEqual(t, fl(r.BorderBoxY()), fl(100))
	// the sibling flows as if #r had not moved
	tu.AssertEqual(t, fl(s.BorderBoxY()), fl(10))
	tu.AssertEqual(t, fl(body.Height.V()), fl(20))
}

func TestDisplayNoneSkipped(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	body := layoutBody(t, `
      <style>
        body { margin: 0 }
        div { height: 10px }
        #hidden { display: none }
      </style>
      <div></div><div id=hidden></div><div></div>`)
	tu.AssertEqual(t, len(body.Children), 2)
	tu.AssertEqual(t, fl(body.Height.V()), fl(20))
}

func TestCollapseMargin(t *testing.T) {
	for _, test := range []struct {
		margins []pr.Float
		exp     pr.Float
	}{
		{nil, 0},
		{[]pr.Float{10}, 10},
		{[]pr.Float{10, 30, 20}, 30},
		{[]pr.Float{-10, 30}, 20},
		{[]pr.Float{-10, -30}, -30},
	} {
		tu.AssertEqual(t, collapseMargin(test.margins), test.exp)
	}
}
