package light

import "strings"

// Lighting is the set of lighting terms the renderer applies. The zero value has everything off;
// use NewLighting for the all-on default.
type Lighting struct {
	Enabled  bool
	Ambient  bool
	Diffuse  bool
	Specular bool
}

// NewLighting returns a Lighting with every term enabled.
func NewLighting() Lighting {
	return Lighting{Enabled: true, Ambient: true, Diffuse: true, Specular: true}
}

// ToggleEnabled flips lighting as a whole. Disabled lighting renders unlit colours.
func (l *Lighting) ToggleEnabled() {
	l.Enabled = !l.Enabled
}

// ToggleAmbient flips the ambient term.
func (l *Lighting) ToggleAmbient() {
	l.Ambient = !l.Ambient
}

// ToggleDiffuse flips the diffuse term.
func (l *Lighting) ToggleDiffuse() {
	l.Diffuse = !l.Diffuse
}

// ToggleSpecular flips the specular term.
func (l *Lighting) ToggleSpecular() {
	l.Specular = !l.Specular
}

// String renders the state for log lines, e.g. "on[ambient diffuse]" or "off".
func (l Lighting) String() string {
	if !l.Enabled {
		return "off"
	}
	var terms []string
	if l.Ambient {
		terms = append(terms, "ambient")
	}
	if l.Diffuse {
		terms = append(terms, "diffuse")
	}
	if l.Specular {
		terms = append(terms, "specular")
	}
	return "on[" + strings.Join(terms, " ") + "]"
}
