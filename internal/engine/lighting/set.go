package lighting

// Set tracks which of the four lights are on. Lights are independent.
type Set struct {
	enabled [RoleCount]bool
}

// NewSet returns a set with every light off.
func NewSet() *Set {
	return &Set{}
}

// ApplyDefaults switches on the overhead and viewpoint lights and switches
// off the rest.
func (s *Set) ApplyDefaults() {
	for r := Role(0); r < RoleCount; r++ {
		s.enabled[r] = DefaultEnabled(r)
	}
}

// SetEnabled switches a light and reports whether its state changed.
// Unknown roles are ignored.
func (s *Set) SetEnabled(r Role, on bool) bool {
	if r < 0 || r >= RoleCount || s.enabled[r] == on {
		return false
	}
	s.enabled[r] = on
	return true
}

// Enabled reports whether the light is on.
func (s *Set) Enabled(r Role) bool {
	if r < 0 || r >= RoleCount {
		return false
	}
	return s.enabled[r]
}

// Active returns the enabled lights in role order.
func (s *Set) Active() []Light {
	lights := make([]Light, 0, RoleCount)
	for r := Role(0); r < RoleCount; r++ {
		if s.enabled[r] {
			lights = append(lights, definitions[r])
		}
	}
	return lights
}

// ActiveCount returns the number of enabled lights.
func (s *Set) ActiveCount() int {
	n := 0
	for _, on := range s.enabled {
		if on {
			n++
		}
	}
	return n
}
