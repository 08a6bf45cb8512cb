package webdemo

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-gmath/mat"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

const (
	minFovDeg      = 1
	maxFovDeg      = 179
	maxStepSeconds = 0.25
)

// CameraParams defines the viewer position and lens.
type CameraParams struct {
	Eye    vec.Vec3
	Center vec.Vec3
	Up     vec.Vec3

	FovYDeg scalar.Float
	Near    scalar.Float
	Far     scalar.Float

	// OrthoHeight is the visible height in world units in ortho mode.
	OrthoHeight scalar.Float
}

// Engine holds the state of the web demo scene: a camera, a viewport and
// a model that spins around an axis.
type Engine struct {
	width, height scalar.Float
	mode          string
	camera        CameraParams
	running       bool

	spinAxis   vec.Vec3
	spinDegSec scalar.Float
	angle      scalar.Float

	view mat.Mat4
	proj mat.Mat4
}

// NewEngine creates a scene for a viewport of the given pixel size.
func NewEngine(width, height scalar.Float) (*Engine, error) {
	e := &Engine{
		mode: projectionPerspective,
		camera: CameraParams{
			Eye:         vec.New3(3, 2, 4),
			Up:          vec.New3(0, 1, 0),
			FovYDeg:     60,
			Near:        0.1,
			Far:         100,
			OrthoHeight: 4,
		},
		spinAxis:   vec.New3(0, 1, 0),
		spinDegSec: 45,
	}
	if err := e.SetViewport(width, height); err != nil {
		return nil, err
	}
	return e, nil
}

// SetViewport updates the output size and rebuilds the projection.
func (e *Engine) SetViewport(width, height scalar.Float) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport must be > 0: %gx%g", width, height)
	}
	oldW, oldH := e.width, e.height
	e.width, e.height = width, height
	if err := e.rebuild(e.camera, e.mode); err != nil {
		e.width, e.height = oldW, oldH
		return err
	}
	return nil
}

// SetCamera replaces the camera. On error the previous camera is kept.
func (e *Engine) SetCamera(c CameraParams) error {
	c.FovYDeg = clamp(c.FovYDeg, minFovDeg, maxFovDeg)
	if c.OrthoHeight <= 0 {
		c.OrthoHeight = e.camera.OrthoHeight
	}
	return e.rebuild(c, e.mode)
}

// SetProjectionMode switches between "perspective" and "ortho".
func (e *Engine) SetProjectionMode(mode string) error {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case projectionPerspective, projectionOrtho:
	default:
		return fmt.Errorf("unknown projection mode %q", mode)
	}
	return e.rebuild(e.camera, mode)
}

// SetSpin sets the model rotation axis and speed in degrees per second.
func (e *Engine) SetSpin(axis vec.Vec3, degPerSec scalar.Float) error {
	if scalar.IsNaN(degPerSec) || scalar.IsInf(degPerSec) {
		return fmt.Errorf("spin speed must be finite: %g", degPerSec)
	}
	n, err := axis.TryNormalize()
	if err != nil {
		return fmt.Errorf("spin axis: %w", err)
	}
	e.spinAxis = n
	e.spinDegSec = degPerSec
	return nil
}

// SetRunning starts or stops the model rotation.
func (e *Engine) SetRunning(running bool) {
	e.running = running
}

// Advance moves the animation forward by dt seconds. Large steps are
// clamped so a stalled browser tab does not make the model jump. A NaN dt
// is ignored.
func (e *Engine) Advance(dt scalar.Float) {
	if !e.running || !(dt > 0) {
		return
	}
	dt = clamp(dt, 0, maxStepSeconds)
	e.angle = wrapDegrees(e.angle + e.spinDegSec*dt)
}

// AngleDeg returns the current model rotation in degrees.
func (e *Engine) AngleDeg() scalar.Float {
	return e.angle
}

// Model returns the model matrix for the current rotation.
func (e *Engine) Model() mat.Mat4 {
	return mat.Rotate4(scalar.DegToRad(e.angle), e.spinAxis)
}

// View returns the camera's view matrix.
func (e *Engine) View() mat.Mat4 { return e.view }

// Projection returns the projection matrix for the current mode.
func (e *Engine) Projection() mat.Mat4 { return e.proj }

// MVP returns projection·view·model.
func (e *Engine) MVP() mat.Mat4 {
	return e.proj.Mul(e.view).Mul(e.Model())
}

// Project maps a model-space point to viewport pixels with the origin in
// the top-left corner. ok is false for points behind the camera or outside
// the depth range.
func (e *Engine) Project(p vec.Vec3) (screen vec.Vec2, ok bool) {
	return e.project(e.MVP(), p)
}

func (e *Engine) project(mvp mat.Mat4, p vec.Vec3) (vec.Vec2, bool) {
	clip := mvp.MulVec(p.Vec4(1))
	if clip.W <= 0 {
		return vec.Vec2{}, false
	}
	ndc := clip.Vec3().Scale(1 / clip.W)
	if ndc.Z < -1 || ndc.Z > 1 {
		return vec.Vec2{}, false
	}
	return vec.Vec2{
		X: (ndc.X + 1) / 2 * e.width,
		Y: (1 - ndc.Y) / 2 * e.height,
	}, true
}

func (e *Engine) rebuild(c CameraParams, mode string) error {
	view, err := mat.LookAt(c.Eye, c.Center, c.Up)
	if err != nil {
		return fmt.Errorf("build view: %w", err)
	}

	aspect := e.width / e.height
	var proj mat.Mat4
	switch mode {
	case projectionOrtho:
		h := c.OrthoHeight / 2
		w := h * aspect
		// The camera looks down -z, so the box spans z in [-far, -near].
		proj, err = mat.Orthographic(-w, w, -h, h, -c.Near, -c.Far)
	default:
		proj, err = mat.Perspective(scalar.DegToRad(c.FovYDeg), aspect, c.Near, c.Far)
	}
	if err != nil {
		return fmt.Errorf("build %s projection: %w", mode, err)
	}

	e.camera = c
	e.mode = mode
	e.view = view
	e.proj = proj
	return nil
}

// wrapDegrees maps a finite angle into [0, 360).
func wrapDegrees(deg scalar.Float) scalar.Float {
	deg = scalar.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func clamp(v, minV, maxV scalar.Float) scalar.Float {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
