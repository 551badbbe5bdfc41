package light

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// near compares per component with an absolute tolerance; a relative comparison never matches
// trig noise against a zero component.
func near(got, want mgl64.Vec3, eps float64) bool {
	for i := range 3 {
		if math.Abs(got[i]-want[i]) > eps {
			return false
		}
	}
	return true
}

func TestOrbitLightPosition(t *testing.T) {
	tests := []struct {
		name    string
		options []OrbitLightOption
		dt      float64
		want    mgl64.Vec3
	}{
		{"start", nil, 0, mgl64.Vec3{3, 2, 0}},
		{"quarter turn", nil, 1, mgl64.Vec3{0, 2, 3}},
		{"half turn custom orbit", []OrbitLightOption{WithOrbit(1, 0), WithSpeed(math.Pi)}, 1, mgl64.Vec3{-1, 0, 0}},
		{"offset center", []OrbitLightOption{WithCenter(mgl64.Vec3{1, 1, 1}), WithOrbit(2, 0.5)}, 0, mgl64.Vec3{3, 1.5, 1}},
		{"start angle", []OrbitLightOption{WithStartAngle(math.Pi / 2), WithSpeed(0)}, 10, mgl64.Vec3{0, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewOrbitLight(tt.options...)
			l.Advance(tt.dt)
			if got := l.Position(); !near(got, tt.want, 1e-9) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWanderPath(t *testing.T) {
	l := NewOrbitLight(WithPath(PathWander), WithOrbit(5, 0), WithSpeed(0.25), WithCenter(mgl64.Vec3{1, 0, 0}))
	if got := l.Position(); got != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("expected wander to start at the center, got %v", got)
	}

	for range 1000 {
		l.Advance(0.1)
		p := l.Position().Sub(mgl64.Vec3{1, 0, 0})
		for i := range 3 {
			if math.Abs(p[i]) > 5+1e-9 {
				t.Fatalf("position %v leaves the radius box", p)
			}
		}
	}

	want := mgl64.Vec3{
		math.Cos(0.6*25) * math.Sin(0.5*25),
		math.Cos(0.3*25) * math.Sin(0.2*25),
		math.Cos(0.1*25) * math.Sin(0.4*25),
	}.Mul(5).Add(mgl64.Vec3{1, 0, 0})
	if got := l.Position(); !near(got, want, 1e-6) {
		t.Errorf("expected %v after 100s, got %v", want, got)
	}
}

func TestPathByName(t *testing.T) {
	for _, p := range []Path{PathCircle, PathWander} {
		if got, ok := PathByName(p.String()); !ok || got != p {
			t.Errorf("round trip of %v failed", p)
		}
	}
	if _, ok := PathByName("spiral"); ok {
		t.Error("unknown path accepted")
	}
}

func TestOrbitLightAngleWraps(t *testing.T) {
	l := NewOrbitLight(WithSpeed(1))
	for range 100 {
		l.Advance(0.5)
		if a := l.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %v outside [0, 2π)", a)
		}
	}

	l.SetSpeed(-1)
	for range 100 {
		l.Advance(0.5)
		if a := l.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %v outside [0, 2π) when orbiting backwards", a)
		}
	}
}

func TestOrbitLightDefaultColors(t *testing.T) {
	l := NewOrbitLight()
	if l.Ambient() != Gray(0.4) || l.Diffuse() != Gray(0.6) || l.Specular() != Gray(1) {
		t.Errorf("unexpected defaults %v %v %v", l.Ambient(), l.Diffuse(), l.Specular())
	}
	if Gray(0.6) != (mgl64.Vec4{0.6, 0.6, 0.6, 1}) {
		t.Errorf("unexpected gray %v", Gray(0.6))
	}
}

func TestOrbitLightColors(t *testing.T) {
	a, d, s := mgl64.Vec4{0.1, 0.1, 0.1, 1}, mgl64.Vec4{0.5, 0, 0, 1}, mgl64.Vec4{0, 0, 1, 1}
	l := NewOrbitLight(WithColors(a, d, s))
	if l.Ambient() != a || l.Diffuse() != d || l.Specular() != s {
		t.Error("colours not applied")
	}
}

func TestLightingToggles(t *testing.T) {
	l := NewLighting()
	if l.String() != "on[ambient diffuse specular]" {
		t.Errorf("unexpected default %q", l.String())
	}

	l.ToggleSpecular()
	l.ToggleAmbient()
	if l.String() != "on[diffuse]" {
		t.Errorf("unexpected state %q", l.String())
	}

	l.ToggleEnabled()
	if l.String() != "off" {
		t.Errorf("expected off, got %q", l.String())
	}
	l.ToggleEnabled()
	l.ToggleDiffuse()
	if l.String() != "on[]" {
		t.Errorf("expected no terms, got %q", l.String())
	}
}
