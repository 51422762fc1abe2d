// Package renderer draws the scene graph with flat Lambert shading.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/windturbine/internal/engine/framebuffer"
	"github.com/Faultbox/windturbine/internal/engine/lighting"
	"github.com/Faultbox/windturbine/internal/engine/model"
	"github.com/Faultbox/windturbine/internal/engine/scene"
	"github.com/Faultbox/windturbine/internal/engine/shader"
	"github.com/Faultbox/windturbine/internal/logger"
	"github.com/Faultbox/windturbine/internal/viewer"
	"github.com/Faultbox/windturbine/pkg/math"
)

// ClearColor is the background behind the scene.
const ClearColor = 0x444444

// Config holds renderer configuration.
type Config struct {
	Width   int
	Height  int
	Samples int
}

// Stats describes the last rendered frame.
type Stats struct {
	DrawCalls int
	Triangles int
	Lights    int
}

// Renderer draws viewer frames into an offscreen target.
// IMPORTANT: Must be created AFTER the OpenGL context is current.
type Renderer struct {
	config Config

	target *framebuffer.Framebuffer
	scene  *shader.Program
	blit   *shader.Program
	// blit draws from gl_VertexID but core profile still needs a bound VAO
	emptyVAO uint32

	meshes map[*model.Mesh]*gpuMesh
	lights lighting.Buffer
	clear  [3]float32
	stats  Stats
}

var _ viewer.Renderer = (*Renderer)(nil)

// New compiles shaders and allocates the offscreen target.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*model.Mesh]*gpuMesh),
		clear:  model.RGB(ClearColor),
	}

	var err error
	if r.scene, err = shader.New("lambert", sceneVertexShader, sceneFragmentShader); err != nil {
		return nil, err
	}
	if r.blit, err = shader.New("blit", blitVertexShader, blitFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.target, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height), int32(cfg.Samples)); err != nil {
		r.Close()
		return nil, fmt.Errorf("offscreen target: %w", err)
	}
	gl.GenVertexArrays(1, &r.emptyVAO)

	logger.Info("renderer created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int32("samples", r.target.Samples()),
	)
	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for m, g := range r.meshes {
		g.release()
		delete(r.meshes, m)
	}
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}
	if r.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.emptyVAO)
		r.emptyVAO = 0
	}
	if r.scene != nil {
		r.scene.Delete()
	}
	if r.blit != nil {
		r.blit.Delete()
	}
}

// Resize reallocates the offscreen target to the new drawable size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.target.Resize(int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the offscreen target size.
func (r *Renderer) Size() (width, height int) {
	w, h := r.target.Size()
	return int(w), int(h)
}

// Stats returns counters for the last rendered frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Texture returns the colour texture holding the last rendered frame.
func (r *Renderer) Texture() uint32 {
	return r.target.ColorTexture()
}

// Pixels reads back the last rendered frame as bottom-up RGBA rows.
func (r *Renderer) Pixels() ([]byte, int, int) {
	w, h := r.target.Size()
	return r.target.ReadPixels(), int(w), int(h)
}

// Render draws frame into the offscreen target.
func (r *Renderer) Render(frame viewer.Frame) {
	restore := r.target.BindWithViewport()
	defer restore()

	r.target.Clear(r.clear[0], r.clear[1], r.clear[2], 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	r.stats = Stats{}
	if frame.Root == nil || frame.Camera == nil {
		r.target.Resolve()
		return
	}

	cam := frame.Camera
	r.lights.Fill(frame.Lights, cam.InverseView())
	r.stats.Lights = r.lights.Count

	p := r.scene
	p.Use()
	p.SetMat4("uView", cam.ViewMatrix())
	p.SetMat4("uProjection", cam.ProjectionMatrix())
	gl.Uniform1i(p.Uniform("uLightCount"), int32(r.lights.Count))
	gl.Uniform1iv(p.Uniform("uLightKind"), int32(lighting.MaxLights), &r.lights.Kinds[0])
	gl.Uniform3fv(p.Uniform("uLightDir"), int32(lighting.MaxLights), &r.lights.Directions[0])
	gl.Uniform3fv(p.Uniform("uLightColor"), int32(lighting.MaxLights), &r.lights.Colors[0])

	frame.Root.Walk(func(n *scene.Node, world math.Mat4) {
		if n.Mesh == nil || len(n.Mesh.Indices) == 0 {
			return
		}
		g := r.meshes[n.Mesh]
		if g == nil {
			g = uploadMesh(n.Mesh)
			r.meshes[n.Mesh] = g
		}
		p.SetMat4("uModel", world)
		p.SetMat4("uNormalMatrix", world.NormalMatrix())
		p.SetVec3("uColor", n.Material.Color)
		g.draw()

		r.stats.DrawCalls++
		r.stats.Triangles += n.Mesh.TriangleCount()
	})
	gl.BindVertexArray(0)
	gl.Disable(gl.CULL_FACE)

	r.target.Resolve()
}

// Present draws the last rendered frame over the current framebuffer.
func (r *Renderer) Present(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Disable(gl.DEPTH_TEST)

	r.blit.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.target.ColorTexture())
	r.blit.SetInt("uTexture", 0)

	gl.BindVertexArray(r.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}
