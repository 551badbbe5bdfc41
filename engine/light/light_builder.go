package light

import "github.com/go-gl/mathgl/mgl64"

// OrbitLightOption is a functional option for configuring an OrbitLight.
type OrbitLightOption func(*orbitLightImpl)

// WithOrbit sets the orbit geometry.
//
// Parameters:
//   - radius: horizontal distance from the center
//   - height: vertical offset above the center
//
// Returns:
//   - OrbitLightOption: option function to apply
func WithOrbit(radius, height float64) OrbitLightOption {
	return func(l *orbitLightImpl) {
		l.radius = radius
		l.height = height
	}
}

// WithPath selects the curve the light follows. Wander ignores the orbit height.
func WithPath(path Path) OrbitLightOption {
	return func(l *orbitLightImpl) {
		l.path = path
	}
}

// WithCenter sets the point the light orbits around.
func WithCenter(center mgl64.Vec3) OrbitLightOption {
	return func(l *orbitLightImpl) {
		l.center = center
	}
}

// WithSpeed sets the angular speed in radians per second.
func WithSpeed(speed float64) OrbitLightOption {
	return func(l *orbitLightImpl) {
		l.speed = speed
	}
}

// WithStartAngle sets the initial orbit angle in radians.
func WithStartAngle(angle float64) OrbitLightOption {
	return func(l *orbitLightImpl) {
		l.angle = angle
	}
}

// WithColors sets the ambient, diffuse and specular colours (RGBA).
//
// Parameters:
//   - ambient, diffuse, specular: light colours
//
// Returns:
//   - OrbitLightOption: option function to apply
func WithColors(ambient, diffuse, specular mgl64.Vec4) OrbitLightOption {
	return func(l *orbitLightImpl) {
		l.ambient = ambient
		l.diffuse = diffuse
		l.specular = specular
	}
}
