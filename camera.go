package learngl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera defaults.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	maxPitch float32 = 89
	minZoom  float32 = 1
	maxZoom  float32 = 45

	nearPlane float32 = 0.1
	farPlane  float32 = 100
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera is a fly camera driven by Euler angles. A yaw of -90 degrees points
// it down the negative z-axis.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees

	Speed       float32 // world units per second
	Sensitivity float32
	Zoom        float32 // vertical field of view in degrees
}

// NewCamera returns a camera at position looking down -z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns a perspective projection for the current zoom.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, nearPlane, farPlane)
}

// ProcessKeyboard moves the camera for dt seconds in dir.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.Speed * dt
	right := c.Front.Cross(c.Up).Normalize()
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset. yOffset is
// positive when the cursor moved up.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.Yaw += xOffset * c.Sensitivity
	c.Pitch += yOffset * c.Sensitivity

	// Past +-90 degrees the view flips.
	if constrainPitch {
		c.Pitch = clampf(c.Pitch, -maxPitch, maxPitch)
	}
	c.updateVectors()
}

// ProcessMouseScroll zooms by the vertical scroll offset.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = clampf(c.Zoom-yOffset, minZoom, maxZoom)
}

// ProcessInput applies one frame of input: WASD movement, mouse look and
// scroll zoom.
func (c *Camera) ProcessInput(in *InputState, dt float32) {
	if in.KeyDown(KeyW) {
		c.ProcessKeyboard(Forward, dt)
	}
	if in.KeyDown(KeyS) {
		c.ProcessKeyboard(Backward, dt)
	}
	if in.KeyDown(KeyA) {
		c.ProcessKeyboard(Left, dt)
	}
	if in.KeyDown(KeyD) {
		c.ProcessKeyboard(Right, dt)
	}
	if in.MouseDeltaX != 0 || in.MouseDeltaY != 0 {
		c.ProcessMouseMovement(in.MouseDeltaX, in.MouseDeltaY, true)
	}
	if in.ScrollY != 0 {
		c.ProcessMouseScroll(in.ScrollY)
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	right := c.Front.Cross(c.WorldUp).Normalize()
	c.Up = right.Cross(c.Front).Normalize()
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
