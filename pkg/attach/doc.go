// Package attach computes where a floating window (menu, combo-box popup,
// tooltip) should be placed relative to an attachment rectangle.
//
// Certain windows don't want explicit absolute positions; they only need
// to be aligned with respect to an anchoring widget, such as a menu item,
// in a way that keeps them on-screen. This package is the positioning
// engine for that problem: a [Params] value describes the desired
// relationship between the attachment rectangle and the window, and
// [Resolve] turns that description plus concrete window and monitor
// geometry into a final on-screen origin.
//
// # Describing a placement
//
// A Params pairs an anchor point on the attachment rectangle with an
// anchor point on the window; the resolver aligns the two. A dropdown
// hangs the window's top edge from the rectangle's bottom edge:
//
//	p := attach.NewParams()
//	p.SetAttachRect(itemBounds, frame)
//	p.SetAnchors(anchor.BottomLeft, anchor.TopLeft)
//
// Flip hints allow the resolver to try the mirror-image anchor pair on an
// axis when the preferred side runs out of room; both axes are allowed by
// default. An extra offset displaces the window from the anchored
// position before any bounds adjustment.
//
// # Resolution
//
// Resolve is a pure function; it performs no I/O, keeps no state between
// calls, and is deterministic. The strategy is anchor, then flip, then
// clamp:
//
//  1. Project the rectangle anchor and align the window's content box
//     (its frame inset by the shadow) to it, then apply the offset.
//  2. Per axis, if the result overflows the monitor bounds and flipping
//     is allowed, try the opposite anchor pair with the offset negated;
//     adopt it only if it fits entirely.
//  3. Clamp whatever remains into bounds, reporting the net shift per
//     axis as the feedback offset so callers can e.g. redraw a pointer
//     arrow toward the true anchor.
//
// Without bounds, steps 2 and 3 are skipped and the offsets are zero.
//
// # Shadows
//
// Client-side decorations often draw a drop shadow around the content
// box. The shadow insets passed to Resolve make the engine anchor and
// constrain the content box only, letting the decoration overlap the
// attachment rectangle or hang past the workarea edge without being
// treated as misplacement.
package attach
