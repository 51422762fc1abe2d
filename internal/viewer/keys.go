package viewer

// Key is a keyboard key the router understands. Host key codes are mapped
// onto these before posting; anything else arrives as KeyNone.
type Key int

// Recognised keys.
const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
)

var keyNames = map[Key]string{
	KeyNone:     "none",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
	KeyHome:     "home",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}
