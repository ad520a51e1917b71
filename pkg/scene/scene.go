package scene

import (
	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
	"github.com/constancadcunha/GPU-PathTracer/pkg/geometry"
	"github.com/constancadcunha/GPU-PathTracer/pkg/renderer"
)

// Scene is an ordered collection of primitives with their materials, plus
// the camera parameters and background colors for a frame
type Scene struct {
	CameraConfig renderer.CameraConfig
	Shapes       []geometry.Shape
	TopColor     core.Vec3
	BottomColor  core.Vec3
}

// GetCameraConfig returns the camera construction parameters
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetShapes returns the scene's primitives in insertion order
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetBackgroundColors returns the gradient colors used on ray miss
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// Add appends a primitive to the scene
func (s *Scene) Add(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}
