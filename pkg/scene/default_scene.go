package scene

import (
	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
	"github.com/constancadcunha/GPU-PathTracer/pkg/geometry"
	"github.com/constancadcunha/GPU-PathTracer/pkg/material"
	"github.com/constancadcunha/GPU-PathTracer/pkg/renderer"
)

// NewDefaultScene builds the cover scene: a diffuse ground, a glass shell
// (outer sphere plus negative-radius inner sphere), a metal and a diffuse
// sphere, a motion-blurred sphere, and a triangle. The camera uses a
// two-pixel aperture for depth of field and a full shutter interval for
// motion blur.
func NewDefaultScene() *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:          core.NewVec3(0, 1.2, 3),
			LookAt:       core.NewVec3(0, 0.5, -1),
			Up:           core.NewVec3(0, 1, 0),
			VFov:         40,
			Aperture:     2,
			FocusDist:    1.0,
			ShutterOpen:  0,
			ShutterClose: 1,
		},
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	ground := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))

	center := material.NewDiffuse(core.NewVec3(0.7, 0.3, 0.3))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, center))

	metal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0)
	s.Add(geometry.NewSphere(core.NewVec3(1.1, 0.5, -1), 0.5, metal))

	// Hollow glass shell: the inner sphere's negative radius points its
	// normal inward
	glass := material.NewDielectric(core.NewVec3(0.05, 0.15, 0.05), 1.5, 0)
	s.Add(geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1), 0.5, glass))
	s.Add(geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1), -0.45, glass))

	moving := material.NewDiffuse(core.NewVec3(0.3, 0.3, 0.8))
	s.Add(geometry.NewMovingSphere(
		core.NewVec3(0.4, 0.2, -0.3),
		core.NewVec3(0.4, 0.35, -0.3),
		0, 1, 0.2, moving))

	mirror := material.NewMetal(core.NewVec3(0.9, 0.7, 0.5), 0.1)
	s.Add(geometry.NewTriangle(
		core.NewVec3(-0.8, 0, 0.2),
		core.NewVec3(-0.2, 0, 0.2),
		core.NewVec3(-0.5, 0.7, 0.1),
		mirror))

	return s
}

// NewPinholeTestScene builds the minimal calibration scene: a pinhole
// camera at the origin looking down -z at a single diffuse unit sphere
// two units away. A ray through the exact center pixel hits the near pole
// at distance 1.
func NewPinholeTestScene() *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:          core.NewVec3(0, 0, 0),
			LookAt:       core.NewVec3(0, 0, -1),
			Up:           core.NewVec3(0, 1, 0),
			VFov:         90,
			Aperture:     0,
			FocusDist:    1.0,
			ShutterOpen:  0,
			ShutterClose: 0,
		},
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	diffuse := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, diffuse))

	return s
}
