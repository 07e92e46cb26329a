package vantage

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const degenerateEpsilon = 1e-6

// CameraPose is the placement part of a camera: where it sits, what it looks
// at, and which way is up.
type CameraPose struct {
	Eye, Target, Up mgl32.Vec3
}

// homeAnim eases the camera from a starting pose back to its home pose.
type homeAnim struct {
	from     CameraPose
	progress *gween.Tween
}

// Camera is a perspective camera. All fields are plain values so the overlay
// can edit them in place; nothing is validated on write. Derived matrices are
// recomputed on every call.
type Camera struct {
	Eye, Target, Up mgl32.Vec3

	// Aspect is width/height. It follows the viewport on every accepted
	// resize; an overlay edit holds until the next resize.
	Aspect float32
	// FovyDegrees is the vertical field of view in degrees.
	FovyDegrees float32
	// ZNear and ZFar bound the view frustum. Valid when 0 < ZNear < ZFar.
	ZNear, ZFar float32

	// Home is the pose ResetToHome returns to.
	Home CameraPose

	anim *homeAnim
}

// DefaultCamera returns a camera two units back and one up from the origin,
// looking at the origin.
func DefaultCamera() Camera {
	pose := CameraPose{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
	return Camera{
		Eye:         pose.Eye,
		Target:      pose.Target,
		Up:          pose.Up,
		Aspect:      16.0 / 9.0,
		FovyDegrees: 45,
		ZNear:       0.1,
		ZFar:        100,
		Home:        pose,
	}
}

// Pose returns the current placement.
func (c *Camera) Pose() CameraPose {
	return CameraPose{Eye: c.Eye, Target: c.Target, Up: c.Up}
}

// SetPose replaces the placement and cancels any running animation.
func (c *Camera) SetPose(p CameraPose) {
	c.Eye, c.Target, c.Up = p.Eye, p.Target, p.Up
	c.anim = nil
}

// ViewMatrix returns the right-handed look-at matrix, or identity when the
// placement is degenerate (eye on target, zero up, or up parallel to the
// view direction).
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	if !finiteVec3(c.Eye) || !finiteVec3(c.Target) || !finiteVec3(c.Up) {
		return mgl32.Ident4()
	}
	forward := c.Target.Sub(c.Eye)
	if forward.Len() < degenerateEpsilon {
		return mgl32.Ident4()
	}
	if forward.Normalize().Cross(c.Up).Len() < degenerateEpsilon {
		return mgl32.Ident4()
	}
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective matrix, or identity when the
// projection parameters cannot describe a frustum.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if !finite(c.Aspect) || !finite(c.FovyDegrees) || !finite(c.ZNear) || !finite(c.ZFar) {
		return mgl32.Ident4()
	}
	if c.Aspect <= 0 || c.FovyDegrees <= 0 || c.FovyDegrees >= 180 {
		return mgl32.Ident4()
	}
	if c.ZNear <= 0 || c.ZNear >= c.ZFar {
		return mgl32.Ident4()
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovyDegrees), c.Aspect, c.ZNear, c.ZFar)
}

// ViewProjectionMatrix returns projection × view from the current fields.
// The result never contains NaN or Inf.
func (c *Camera) ViewProjectionMatrix() mgl32.Mat4 {
	m := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	for _, v := range m {
		if !finite(v) {
			return mgl32.Ident4()
		}
	}
	return m
}

// ResetToHome eases the camera back to its Home pose over duration seconds.
// A non-positive duration snaps immediately.
func (c *Camera) ResetToHome(duration float32) {
	if duration <= 0 {
		c.SetPose(c.Home)
		return
	}
	c.anim = &homeAnim{
		from:     c.Pose(),
		progress: gween.New(0, 1, duration, ease.InOutCubic),
	}
}

// Animating reports whether a home animation is running.
func (c *Camera) Animating() bool { return c.anim != nil }

// CancelAnimation stops a running home animation where it is.
func (c *Camera) CancelAnimation() { c.anim = nil }

// Update advances a running animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.anim == nil {
		return
	}
	t, done := c.anim.progress.Update(dt)
	from, to := c.anim.from, c.Home
	c.Eye = lerpVec3(from.Eye, to.Eye, t)
	c.Target = lerpVec3(from.Target, to.Target, t)
	c.Up = lerpVec3(from.Up, to.Up, t)
	if done {
		c.Eye, c.Target, c.Up = to.Eye, to.Target, to.Up
		c.anim = nil
	}
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec3(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
