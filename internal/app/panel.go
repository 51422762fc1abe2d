package app

import (
	"fmt"

	"github.com/Faultbox/windturbine/internal/engine/lighting"
	"github.com/Faultbox/windturbine/internal/engine/ui2d"
	"github.com/Faultbox/windturbine/internal/viewer"
)

const (
	panelWidth  = 230
	panelMargin = 10
	rowHeight   = 22
)

// panel is the controls overlay. It reads session state and posts events;
// it never mutates the session directly.
type panel struct {
	slider int
}

func newPanel(slider float32) *panel {
	return &panel{slider: int(slider + 0.5)}
}

// panelHeight fits the fixed rows plus title bar, padding and separators.
func panelHeight() float32 {
	rows := 2 + int(lighting.RoleCount) + 2
	return float32(rows*(rowHeight+4)) + 24 + 32
}

func (p *panel) draw(ui *ui2d.Context, s *viewer.Session) {
	screenW, _ := ui.GetScreenSize()
	x := screenW - panelWidth - panelMargin
	ui.BeginWindow("controls", x, panelMargin, panelWidth, panelHeight(), "Controls")
	defer ui.EndWindow()

	running := s.Controller.Running()
	half := float32(panelWidth-16-4) / 2

	ui.Row(rowHeight)
	if ui.Button("play", half, "Play") && !running {
		s.Post(viewer.PlayEvent{})
	}
	if ui.Button("stop", half, "Stop") && running {
		s.Post(viewer.StopEvent{})
	}

	ui.Row(rowHeight)
	status := "stopped"
	if running {
		status = "running"
	}
	ui.LabelColored(fmt.Sprintf("Rotor %s", status), ui2d.ColorTextDim)

	ui.Separator()
	for r := lighting.Role(0); r < lighting.RoleCount; r++ {
		ui.Row(rowHeight)
		on := s.Lights.Enabled(r)
		if next := ui.Checkbox(r.String(), r.Label(), on); next != on {
			s.Post(viewer.LightEvent{Role: r, On: next})
		}
	}

	ui.Separator()
	ui.Row(rowHeight)
	ui.Label("Speed")
	ui.Row(rowHeight)
	if v, changed := ui.Slider("speed", 0, p.slider, viewer.SliderMin, viewer.SliderMax); changed {
		p.slider = v
		s.Post(viewer.SliderEvent{Value: float32(v)})
	}
}
