package life3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// EyeToScreen is the distance from the eye to the projection screen.
	EyeToScreen = 72.0
	// HalfScreenD is half the diameter of the projection screen.
	HalfScreenD = 14.0

	projectEpsilon = 1e-6
)

// Camera wanders around the world center. Its state is three phase
// accumulators; the angles are closed-form functions of them.
type Camera struct {
	altPhase  float64
	azmPhase  float64
	distPhase float64

	AltStep  float64
	AzmStep  float64
	DistStep float64
	// Speed scales every step; zero freezes the camera.
	Speed float64
}

// NewCamera returns a camera at phase zero: altitude 20, azimuth 10,
// distance 50.
func NewCamera() *Camera {
	return &Camera{AltStep: 0.011, AzmStep: 0.0037, DistStep: 0.0053, Speed: 1}
}

// Advance moves every phase forward by one frame.
func (c *Camera) Advance() {
	c.altPhase += c.AltStep * c.Speed
	c.azmPhase += c.AzmStep * c.Speed
	c.distPhase += c.DistStep * c.Speed
}

// Reset returns the camera to phase zero.
func (c *Camera) Reset() {
	c.altPhase, c.azmPhase, c.distPhase = 0, 0, 0
}

// Angles returns altitude and azimuth in degrees and the distance from the
// world center.
func (c *Camera) Angles() (alt, azm, dist float64) {
	alt = mgl64.Clamp(20+25*math.Sin(c.altPhase), -89, 89)
	azm = 10 + 180*math.Sin(c.azmPhase)
	dist = 50 + 15*math.Sin(c.distPhase)
	return alt, azm, dist
}

// Eye returns the viewpoint relative to the world center.
func (c *Camera) Eye() mgl64.Vec3 {
	alt, azm, dist := c.Angles()
	return EyeAt(alt, azm, dist)
}

// View returns the projection for a surface of the given size.
func (c *Camera) View(width, height int) View {
	_, azm, _ := c.Angles()
	v := NewView(c.Eye(), width, height)
	v.Azimuth = azm
	return v
}

// EyeAt converts spherical camera angles (degrees) into a viewpoint.
func EyeAt(alt, azm, dist float64) mgl64.Vec3 {
	a := mgl64.DegToRad(alt)
	z := mgl64.DegToRad(azm)
	return mgl64.Vec3{
		math.Sin(z) * math.Cos(a) * dist,
		math.Cos(z) * math.Cos(a) * dist,
		math.Sin(a) * dist,
	}
}

// View projects points relative to the world center onto a surface with one
// perspective divide per point.
type View struct {
	Eye     mgl64.Vec3
	Azimuth float64
	Width   int
	Height  int

	A, B, C, F float64
}

// NewView derives the projection scalars for an eye position. The eye must
// not lie on the vertical axis.
func NewView(eye mgl64.Vec3, width, height int) View {
	x, y, z := eye.Elem()
	k := x*x + y*y
	l := math.Sqrt(k + z*z)
	k = math.Sqrt(k)
	w, h := float64(width), float64(height)
	d1 := EyeToScreen / HalfScreenD
	d2 := EyeToScreen / (HalfScreenD * h / w)
	return View{
		Eye:    eye,
		Width:  width,
		Height: height,
		A:      d1 * l * (w / 2) / k,
		B:      l * l,
		C:      d2 * (h / 2) / k,
		F:      k * k,
	}
}

// Project returns the surface coordinates of p. It fails when p lies on or
// behind the plane through the eye facing the center.
func (v View) Project(p mgl64.Vec3) (sx, sy float64, ok bool) {
	vx, vy, vz := v.Eye.Elem()
	x, y, z := p.Elem()
	p1 := x*vx + y*vy
	e := v.B - p1 - z*vz
	if e <= projectEpsilon {
		return 0, 0, false
	}
	sx = float64(v.Width)/2 - v.A*(vx*y-vy*x)/e
	sy = float64(v.Height)/2 - v.C*(z*v.F-vz*p1)/e
	return sx, sy, true
}

// Facing reports whether p lies in front of the eye, looking at the center.
func (v View) Facing(p mgl64.Vec3) bool {
	return v.Eye.Dot(v.Eye.Sub(p)) > 0
}

// Inside reports whether a surface coordinate lies on the surface.
func (v View) Inside(sx, sy float64) bool {
	return sx >= 0 && sy >= 0 && sx < float64(v.Width) && sy < float64(v.Height)
}
