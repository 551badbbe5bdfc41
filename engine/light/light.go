package light

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Path selects the curve an OrbitLight follows.
type Path int

const (
	// PathCircle circles the center horizontally at a fixed height.
	PathCircle Path = iota
	// PathWander follows a bounded product-of-sines curve around the center, within radius on each axis.
	PathWander
)

func (p Path) String() string {
	switch p {
	case PathCircle:
		return "circle"
	case PathWander:
		return "wander"
	default:
		return "unknown"
	}
}

// PathByName looks up a path by its String form.
func PathByName(name string) (Path, bool) {
	switch name {
	case "circle":
		return PathCircle, true
	case "wander":
		return PathWander, true
	}
	return PathCircle, false
}

// orbitLightImpl is the implementation of the OrbitLight interface.
type orbitLightImpl struct {
	path   Path
	center mgl64.Vec3
	radius float64
	height float64
	speed  float64 // radians per second
	angle  float64
	phase  float64 // unwrapped angle, drives PathWander

	ambient  mgl64.Vec4
	diffuse  mgl64.Vec4
	specular mgl64.Vec4
}

// OrbitLight is a point light moving around a pivot, by default in a horizontal circle at a fixed height.
type OrbitLight interface {
	// Advance moves the light along its orbit.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Advance(dt float64)

	// Path returns the curve the light follows.
	Path() Path

	// Position returns the world-space light position for the current angle.
	//
	// Returns:
	//   - mgl64.Vec3: the position
	Position() mgl64.Vec3

	// Angle returns the current orbit angle in radians, wrapped to [0, 2π).
	Angle() float64

	// Speed returns the angular speed in radians per second.
	Speed() float64

	// SetSpeed changes the angular speed; negative values orbit the other way.
	SetSpeed(speed float64)

	// Ambient returns the ambient colour (RGBA).
	Ambient() mgl64.Vec4

	// Diffuse returns the diffuse colour (RGBA).
	Diffuse() mgl64.Vec4

	// Specular returns the specular colour (RGBA).
	Specular() mgl64.Vec4
}

var _ OrbitLight = &orbitLightImpl{}

// NewOrbitLight creates a white light (ambient 0.4, diffuse 0.6, specular 1) orbiting the origin at
// radius 3, height 2, a quarter turn per second.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - OrbitLight: the new light
func NewOrbitLight(options ...OrbitLightOption) OrbitLight {
	l := &orbitLightImpl{
		radius:   3,
		height:   2,
		speed:    math.Pi / 2,
		ambient:  Gray(0.4),
		diffuse:  Gray(0.6),
		specular: Gray(1),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Gray returns an opaque white light colour scaled by intensity.
func Gray(intensity float64) mgl64.Vec4 {
	return mgl64.Vec4{intensity, intensity, intensity, 1}
}

func (l *orbitLightImpl) Advance(dt float64) {
	l.phase += l.speed * dt
	l.angle = math.Mod(l.angle+l.speed*dt, 2*math.Pi)
	if l.angle < 0 {
		l.angle += 2 * math.Pi
	}
}

func (l *orbitLightImpl) Path() Path {
	return l.path
}

func (l *orbitLightImpl) Position() mgl64.Vec3 {
	if l.path == PathWander {
		t := l.phase
		return l.center.Add(mgl64.Vec3{
			math.Cos(0.6*t) * math.Sin(0.5*t),
			math.Cos(0.3*t) * math.Sin(0.2*t),
			math.Cos(0.1*t) * math.Sin(0.4*t),
		}.Mul(l.radius))
	}
	return l.center.Add(mgl64.Vec3{
		l.radius * math.Cos(l.angle),
		l.height,
		l.radius * math.Sin(l.angle),
	})
}

func (l *orbitLightImpl) Angle() float64 {
	return l.angle
}

func (l *orbitLightImpl) Speed() float64 {
	return l.speed
}

func (l *orbitLightImpl) SetSpeed(speed float64) {
	l.speed = speed
}

func (l *orbitLightImpl) Ambient() mgl64.Vec4 {
	return l.ambient
}

func (l *orbitLightImpl) Diffuse() mgl64.Vec4 {
	return l.diffuse
}

func (l *orbitLightImpl) Specular() mgl64.Vec4 {
	return l.specular
}
