package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

// RenderImage renders the full frame, distributing rows across a pool of
// workers. Every pixel sample owns its RandomStream, so workers share no
// mutable state beyond the output buffer rows they own.
func (rt *Raytracer) RenderImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	rows := make(chan int, rt.height)
	for y := 0; y < rt.height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	numWorkers := runtime.NumCPU()
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				rt.renderRow(img, y)
			}
		}()
	}
	wg.Wait()

	return img
}

// renderRow accumulates all samples for one row of the image
func (rt *Raytracer) renderRow(img *image.RGBA, y int) {
	for x := 0; x < rt.width; x++ {
		accum := core.NewVec3(0, 0, 0)
		for s := 0; s < rt.config.SamplesPerPixel; s++ {
			accum = accum.Add(rt.SamplePixel(x, y, s))
		}
		avg := accum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
		img.Set(x, rt.height-1-y, toRGBA(avg))
	}
}

// toRGBA converts a linear-light color to a display pixel. Gamma
// correction is a display concern and deliberately lives outside the
// scattering core.
func toRGBA(c core.Vec3) color.RGBA {
	corrected := c.GammaCorrect(2.0).Clamp(0, 1)
	return color.RGBA{
		R: uint8(corrected.X * 255.99),
		G: uint8(corrected.Y * 255.99),
		B: uint8(corrected.Z * 255.99),
		A: 255,
	}
}
