package render

import "math"

// Camera is the viewport into the flat texture canvas
type Camera struct {
	X, Y    float64 // camera center position (canvas pixels)
	Zoom    float64 // zoom level (1.0 = one canvas pixel per screen pixel)
	MinZoom float64
	MaxZoom float64
	ScreenW int     // viewport width in pixels
	ScreenH int     // viewport height in pixels
	Speed   float64 // pan speed (pixels per second)
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    8.0,
		MinZoom: 1.0,
		MaxZoom: 32.0,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   500,
	}
}

// Pan moves the camera by screen pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms toward a screen point, keeping that point stationary
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	c.X += wx - wx2
	c.Y += wy - wy2
}

// CenterOn centers the camera on a canvas position
func (c *Camera) CenterOn(wx, wy float64) {
	c.X = wx
	c.Y = wy
}

// Fit centers a w x h canvas and picks the largest whole zoom that shows
// it with margin pixels to spare on each side
func (c *Camera) Fit(w, h, margin int) {
	c.CenterOn(float64(w)/2, float64(h)/2)
	if w <= 0 || h <= 0 {
		return
	}
	zx := float64(c.ScreenW-2*margin) / float64(w)
	zy := float64(c.ScreenH-2*margin) / float64(h)
	c.SetZoom(math.Floor(math.Min(zx, zy)))
}

// WorldToScreen converts a canvas position to a screen pixel position
func (c *Camera) WorldToScreen(wx, wy float64) (int, int) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// ScreenToWorld converts a screen pixel to canvas coordinates
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	wy := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return wx, wy
}

// Resize updates the viewport size
func (c *Camera) Resize(screenW, screenH int) {
	c.ScreenW = screenW
	c.ScreenH = screenH
}
