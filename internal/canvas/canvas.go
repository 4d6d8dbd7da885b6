// Package canvas is the opaque preview sink referenced by §3 as
// "Canvas": an on-screen rendering collaborator that plays no role in
// correctness. It replaces the original source's platform console
// graphics calls (hdc_init/hdc_base_point/hdc_release, §9 "Platform
// rendering dependency") with a small interface no numerical code
// depends on.
package canvas

// Sink receives preview pixels. Implementations may render them,
// discard them, or anything in between — nothing in the watermarking
// pipeline observes a Sink's behavior.
type Sink interface {
	// Point sets the pixel at (x, y) to the given grayscale level.
	Point(x, y int, level uint8)
	// Flush signals that a full frame has been submitted.
	Flush()
}

// Discard is a Sink that does nothing; it is the default when no
// preview surface is wired in.
type Discard struct{}

func (Discard) Point(x, y int, level uint8) {}
func (Discard) Flush()                      {}
