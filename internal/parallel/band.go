// Package parallel provides the fork-join infrastructure used to evaluate a
// frame on all available cores.
//
// A canvas is cut into horizontal bands of whole rows. Every band covers a
// disjoint, contiguous range of a row-major buffer, so workers can write
// their results without locks:
//
//   - Bands partition [0, width*height) exactly, in order
//   - BandHeight rows per band (the last band may be shorter)
//   - WorkerPool.ForEach hands every band to exactly one worker and waits
package parallel

// BandHeight is the default number of rows per band.
// 16 rows of a 1280 px canvas is ~20K pixels, small enough that the
// interior-heavy bands get stolen by idle workers.
const BandHeight = 16

// Band is a horizontal strip of whole rows of a canvas.
type Band struct {
	// Index is the band number, counting from the top.
	Index int

	// Y0 is the first row (inclusive).
	Y0 int

	// Y1 is the last row (exclusive).
	Y1 int

	// Width is the canvas width in pixels.
	Width int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Start returns the index of the band's first pixel in a row-major buffer.
func (b Band) Start() int {
	return b.Y0 * b.Width
}

// End returns the index one past the band's last pixel.
func (b Band) End() int {
	return b.Y1 * b.Width
}

// Len returns the number of pixels in the band.
func (b Band) Len() int {
	return b.End() - b.Start()
}

// Bands splits a width x height canvas into bands of at most rows rows.
// If rows is 0 or negative, BandHeight is used.
// Returns nil for an empty canvas.
func Bands(width, height, rows int) []Band {
	if width <= 0 || height <= 0 {
		return nil
	}
	if rows <= 0 {
		rows = BandHeight
	}

	n := (height + rows - 1) / rows
	bands := make([]Band, 0, n)
	for y := 0; y < height; y += rows {
		y1 := y + rows
		if y1 > height {
			y1 = height
		}
		bands = append(bands, Band{
			Index: len(bands),
			Y0:    y,
			Y1:    y1,
			Width: width,
		})
	}
	return bands
}
