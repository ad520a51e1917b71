package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/constancadcunha/GPU-PathTracer/pkg/renderer"
	"github.com/constancadcunha/GPU-PathTracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'pinhole'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("GPU-PathTracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Cover scene with glass, metal, motion blur and depth of field")
		fmt.Println("  pinhole - Single-sphere calibration scene with a pinhole camera")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	var selectedScene *scene.Scene
	switch *sceneType {
	case "pinhole":
		selectedScene = scene.NewPinholeTestScene()
	case "default":
		selectedScene = scene.NewDefaultScene()
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene = scene.NewDefaultScene()
		*sceneType = "default"
	}

	rt := renderer.NewRaytracer(selectedScene, *width, *height, nil)
	rt.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})

	fmt.Printf("Rendering %s scene at %dx%d, %d samples per pixel...\n",
		*sceneType, *width, *height, *samples)

	startTime := time.Now()
	img := rt.RenderImage()
	elapsed := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", elapsed)

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(outputDir,
		fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved to %s\n", filename)
}
