package lighting

import "github.com/Faultbox/windturbine/pkg/math"

// MaxLights is the number of light slots in the shader.
const MaxLights = int(RoleCount)

// Buffer holds the active lights flattened for GPU upload.
type Buffer struct {
	Count      int
	Kinds      [MaxLights]int32
	Directions [MaxLights * 3]float32 // world space, normalized
	Colors     [MaxLights * 3]float32 // pre-multiplied by intensity
}

// Fill replaces the buffer contents with lights. invView maps view space to
// world space and resolves lights that follow the camera. Extra lights past
// MaxLights are dropped.
func (b *Buffer) Fill(lights []Light, invView math.Mat4) {
	*b = Buffer{}
	for _, l := range lights {
		if b.Count >= MaxLights {
			break
		}
		i := b.Count
		dir := l.Direction
		if l.FollowsCamera {
			dir = invView.TransformDirection(dir)
		}
		dir = dir.Normalize()
		c := l.Radiance()

		b.Kinds[i] = int32(l.Kind)
		copy(b.Directions[i*3:], []float32{dir.X, dir.Y, dir.Z})
		copy(b.Colors[i*3:], c[:])
		b.Count++
	}
}
