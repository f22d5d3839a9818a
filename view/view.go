/*
Package view maps between screen pixels and grid cells for a zoomed and
panned view of a grid.

The grid is drawn centred on the canvas, scaled by the zoom factor about its
own centre and then offset by the pan:

	screen = canvasCentre + pan + zoom * (gridPixel - gridCentre)

where gridPixel is a cell coordinate multiplied by the cell size. The zoom
factor is always kept within [MinZoom, MaxZoom].
*/
package view

import "math"

const (
	// MinZoom is the smallest zoom factor
	MinZoom = 0.1
	// MaxZoom is the largest zoom factor
	MaxZoom = 10.0
	// DefaultCellSize is the unscaled size of a cell in screen pixels
	DefaultCellSize = 20.0
)

// Transform holds the view state. It is independent of the grid contents
// and of any edit history.
type Transform struct {
	canvasWidth, canvasHeight float64
	gridWidth, gridHeight     int
	cellSize                  float64
	zoom                      float64
	panX, panY                float64
}

// New returns a Transform for a gridWidth by gridHeight grid drawn on a
// canvas of the given size. A non-positive cellSize uses DefaultCellSize.
func New(canvasWidth, canvasHeight float64, gridWidth, gridHeight int, cellSize float64) *Transform {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Transform{
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
		gridWidth:    gridWidth,
		gridHeight:   gridHeight,
		cellSize:     cellSize,
		zoom:         1,
	}
}

func clamp(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Zoom returns the zoom factor.
func (t *Transform) Zoom() float64 {
	return t.zoom
}

// Pan returns the pan offset in screen pixels.
func (t *Transform) Pan() (float64, float64) {
	return t.panX, t.panY
}

// CellSize returns the unscaled cell size.
func (t *Transform) CellSize() float64 {
	return t.cellSize
}

// SetCanvas changes the canvas size, for example after a window resize.
func (t *Transform) SetCanvas(width, height float64) {
	t.canvasWidth, t.canvasHeight = width, height
}

// SetGrid changes the grid dimensions.
func (t *Transform) SetGrid(width, height int) {
	t.gridWidth, t.gridHeight = width, height
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (t *Transform) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	t.zoom = clamp(z)
}

// ZoomBy multiplies the zoom factor by factor, such as a wheel or pinch
// delta. Non-positive factors are ignored.
func (t *Transform) ZoomBy(factor float64) {
	if !(factor > 0) {
		return
	}
	t.SetZoom(t.zoom * factor)
}

// ZoomAt multiplies the zoom factor by factor while keeping the grid point
// under the screen point (sx, sy) in place.
func (t *Transform) ZoomAt(factor, sx, sy float64) {
	if !(factor > 0) {
		return
	}
	cx, cy := t.canvasWidth/2, t.canvasHeight/2
	px := (sx - cx - t.panX) / t.zoom
	py := (sy - cy - t.panY) / t.zoom

	t.SetZoom(t.zoom * factor)

	t.panX = sx - cx - t.zoom*px
	t.panY = sy - cy - t.zoom*py
}

// PanBy moves the view by (dx, dy) screen pixels.
func (t *Transform) PanBy(dx, dy float64) {
	t.panX += dx
	t.panY += dy
}

// SetPan sets the pan offset.
func (t *Transform) SetPan(x, y float64) {
	t.panX, t.panY = x, y
}

// Reset restores a zoom of one and no pan.
func (t *Transform) Reset() {
	t.zoom = 1
	t.panX, t.panY = 0, 0
}

// Fit removes any pan and picks the largest zoom at which the whole grid is
// visible.
func (t *Transform) Fit() {
	t.panX, t.panY = 0, 0
	w := float64(t.gridWidth) * t.cellSize
	h := float64(t.gridHeight) * t.cellSize
	if w <= 0 || h <= 0 || t.canvasWidth <= 0 || t.canvasHeight <= 0 {
		t.zoom = 1
		return
	}
	t.SetZoom(math.Min(t.canvasWidth/w, t.canvasHeight/h))
}

// Forward maps a possibly fractional cell coordinate to a screen point.
func (t *Transform) Forward(gx, gy float64) (float64, float64) {
	sx := t.canvasWidth/2 + t.panX + t.zoom*(gx*t.cellSize-float64(t.gridWidth)*t.cellSize/2)
	sy := t.canvasHeight/2 + t.panY + t.zoom*(gy*t.cellSize-float64(t.gridHeight)*t.cellSize/2)
	return sx, sy
}

// CellCenter returns the screen point at the centre of cell (x, y).
func (t *Transform) CellCenter(x, y int) (float64, float64) {
	return t.Forward(float64(x)+0.5, float64(y)+0.5)
}

// Unproject is the inverse of Forward.
func (t *Transform) Unproject(sx, sy float64) (float64, float64) {
	gx := ((sx-t.canvasWidth/2-t.panX)/t.zoom + float64(t.gridWidth)*t.cellSize/2) / t.cellSize
	gy := ((sy-t.canvasHeight/2-t.panY)/t.zoom + float64(t.gridHeight)*t.cellSize/2) / t.cellSize
	return gx, gy
}

// Inverse returns the cell under the screen point (sx, sy). The last return
// value is false if the point is not over the grid.
func (t *Transform) Inverse(sx, sy float64) (int, int, bool) {
	gx, gy := t.Unproject(sx, sy)
	x, y := int(math.Floor(gx)), int(math.Floor(gy))
	if math.IsNaN(gx) || math.IsNaN(gy) || x < 0 || x >= t.gridWidth || y < 0 || y >= t.gridHeight {
		return 0, 0, false
	}
	return x, y, true
}
