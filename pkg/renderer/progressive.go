package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

// PassResult carries one completed progressive pass
type PassResult struct {
	Image       *image.RGBA
	PassNumber  int // 1-based
	TotalPasses int
	Samples     int // Samples per pixel accumulated so far
}

// RenderProgressive renders the frame in passes, emitting the accumulated
// image after each pass. Sample indices continue across passes, so the
// final pass equals a single render with the same total sample count.
// Cancelling the context stops between pixels; the error channel reports
// either the cancellation or nil on completion.
func (rt *Raytracer) RenderProgressive(ctx context.Context, passes, samplesPerPass int) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, passes)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		accum := make([][]core.Vec3, rt.height)
		for y := range accum {
			accum[y] = make([]core.Vec3, rt.width)
		}

		for pass := 0; pass < passes; pass++ {
			if err := rt.renderPass(ctx, accum, pass, samplesPerPass); err != nil {
				errChan <- err
				return
			}

			samples := (pass + 1) * samplesPerPass
			passChan <- PassResult{
				Image:       rt.resolve(accum, samples),
				PassNumber:  pass + 1,
				TotalPasses: passes,
				Samples:     samples,
			}
		}
		errChan <- nil
	}()

	return passChan, errChan
}

// renderPass adds samplesPerPass samples to every pixel of the
// accumulation buffer, rows in parallel
func (rt *Raytracer) renderPass(ctx context.Context, accum [][]core.Vec3, pass, samplesPerPass int) error {
	rows := make(chan int, rt.height)
	for y := 0; y < rt.height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < rt.width; x++ {
					// Checked per pixel so cancellation interrupts even a
					// single wide row at high sample counts
					select {
					case <-ctx.Done():
						return
					default:
					}
					for s := 0; s < samplesPerPass; s++ {
						sample := pass*samplesPerPass + s
						accum[y][x] = accum[y][x].Add(rt.SamplePixel(x, y, sample))
					}
				}
			}
		}()
	}
	wg.Wait()

	if ctx.Err() != nil {
		return fmt.Errorf("render cancelled: %w", ctx.Err())
	}
	return nil
}

// resolve averages the accumulation buffer into a displayable image
func (rt *Raytracer) resolve(accum [][]core.Vec3, samples int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	inv := 1.0 / float64(samples)
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			img.Set(x, rt.height-1-y, toRGBA(accum[y][x].Multiply(inv)))
		}
	}
	return img
}
