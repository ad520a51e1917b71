package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/constancadcunha/GPU-PathTracer/pkg/renderer"
	"github.com/constancadcunha/GPU-PathTracer/pkg/scene"
)

// FrameUpdate is one message to the viewer. Type is "frame", "complete"
// or "error"; frames carry a base64-encoded PNG of the accumulated image.
type FrameUpdate struct {
	Type        string `json:"type"`
	ImageData   string `json:"imageData,omitempty"`
	PassNumber  int    `json:"passNumber,omitempty"`
	TotalPasses int    `json:"totalPasses,omitempty"`
	Samples     int    `json:"samples,omitempty"`
	Elapsed     string `json:"elapsed,omitempty"`
	Error       string `json:"error,omitempty"`
}

// renderRequest holds the parsed query parameters for one render
type renderRequest struct {
	Scene          string
	Width, Height  int
	Passes         int
	SamplesPerPass int
	MaxDepth       int
}

func parseRenderRequest(r *http.Request) (renderRequest, error) {
	req := renderRequest{
		Scene:          "default",
		Width:          400,
		Height:         225,
		Passes:         10,
		SamplesPerPass: 10,
		MaxDepth:       50,
	}
	q := r.URL.Query()
	if v := q.Get("scene"); v != "" {
		req.Scene = v
	}
	for _, p := range []struct {
		key string
		dst *int
	}{
		{"width", &req.Width},
		{"height", &req.Height},
		{"passes", &req.Passes},
		{"samplesPerPass", &req.SamplesPerPass},
		{"maxDepth", &req.MaxDepth},
	} {
		if v := q.Get(p.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return req, fmt.Errorf("invalid %s: %q", p.key, v)
			}
			*p.dst = n
		}
	}
	if req.Width > 2000 || req.Height > 2000 {
		return req, fmt.Errorf("image size %dx%d too large", req.Width, req.Height)
	}
	return req, nil
}

// handleRenderWS streams progressive passes to a WebSocket client.
// Closing the socket cancels the render.
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	req, err := parseRenderRequest(r)
	if err != nil {
		conn.WriteJSON(FrameUpdate{Type: "error", Error: err.Error()})
		return
	}

	var selectedScene *scene.Scene
	switch req.Scene {
	case "pinhole":
		selectedScene = scene.NewPinholeTestScene()
	default:
		selectedScene = scene.NewDefaultScene()
	}

	rt := renderer.NewRaytracer(selectedScene, req.Width, req.Height, s.logger)
	rt.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: req.Passes * req.SamplesPerPass,
		MaxDepth:        req.MaxDepth,
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client never sends data; reads only detect the socket closing
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	s.logger.Printf("render started: scene=%s %dx%d passes=%d spp/pass=%d",
		req.Scene, req.Width, req.Height, req.Passes, req.SamplesPerPass)

	startTime := time.Now()
	passChan, errChan := rt.RenderProgressive(ctx, req.Passes, req.SamplesPerPass)

	for pass := range passChan {
		encoded, err := encodeFrame(pass)
		if err != nil {
			conn.WriteJSON(FrameUpdate{Type: "error", Error: err.Error()})
			return
		}
		if err := conn.WriteJSON(encoded); err != nil {
			cancel()
			return
		}
	}

	if err := <-errChan; err != nil {
		s.logger.Printf("render aborted: %v", err)
		conn.WriteJSON(FrameUpdate{Type: "error", Error: err.Error()})
		return
	}

	elapsed := time.Since(startTime).Round(time.Millisecond)
	s.logger.Printf("render complete in %v", elapsed)
	conn.WriteJSON(FrameUpdate{Type: "complete", Elapsed: elapsed.String()})
}

// encodeFrame converts a progressive pass into a frame message
func encodeFrame(pass renderer.PassResult) (FrameUpdate, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, pass.Image); err != nil {
		return FrameUpdate{}, fmt.Errorf("encoding pass %d: %w", pass.PassNumber, err)
	}
	return FrameUpdate{
		Type:        "frame",
		ImageData:   base64.StdEncoding.EncodeToString(buf.Bytes()),
		PassNumber:  pass.PassNumber,
		TotalPasses: pass.TotalPasses,
		Samples:     pass.Samples,
	}, nil
}
