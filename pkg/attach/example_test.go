package attach_test

import (
	"fmt"

	"github.com/perchkit/perch/pkg/anchor"
	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
)

func ExampleResolve() {
	// Hang a 200x300 menu below a menu bar item.
	p := attach.NewParams()
	p.SetAttachRect(geom.Rect{X: 40, Y: 0, W: 80, H: 24}, nil)
	p.SetAnchors(anchor.BottomLeft, anchor.TopLeft)

	workarea := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	res, _ := attach.Resolve(p, geom.Size{W: 200, H: 300}, geom.Insets{}, &workarea)

	fmt.Println(res)
	// Output:
	// origin=(40, 24) offset=(0, 0) flipped=(false, false)
}

func ExampleResolve_flip() {
	// The same menu near the bottom edge flips above the item.
	p := attach.NewParams()
	p.SetAttachRect(geom.Rect{X: 40, Y: 1000, W: 80, H: 24}, nil)
	p.SetAnchors(anchor.BottomLeft, anchor.TopLeft)

	workarea := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	res, _ := attach.Resolve(p, geom.Size{W: 200, H: 300}, geom.Insets{}, &workarea)

	fmt.Println("origin:", res.Origin())
	fmt.Println("flipped vertically:", res.FlippedY)
	// Output:
	// origin: (40, 700)
	// flipped vertically: true
}

func ExampleResolve_clamp() {
	// A tooltip pinned to a point near the right screen edge slides
	// back on-screen; the feedback offset says by how much.
	p := attach.NewParams()
	p.SetAttachRect(geom.Rect{X: 1900, Y: 500}, nil)
	p.SetAnchors(anchor.Middle, anchor.Top)

	workarea := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	res, _ := attach.Resolve(p, geom.Size{W: 120, H: 40}, geom.Insets{}, &workarea)

	fmt.Println("origin:", res.Origin())
	fmt.Println("feedback offset x:", res.OffsetX)
	// Output:
	// origin: (1800, 500)
	// feedback offset x: -40
}
