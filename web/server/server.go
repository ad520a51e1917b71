package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

// Server hosts the progressive render preview over WebSocket
type Server struct {
	port     int
	logger   core.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a preview server on the given port
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NewStdLogger()
	}
	return &Server{
		port:   port,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The viewer page is served from this process; accept it
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Start runs the HTTP server until it fails
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws/render", s.handleRenderWS)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Preview server listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>GPU-PathTracer</title></head>
<body style="background:#111;color:#ddd;font-family:monospace">
<h3>GPU-PathTracer progressive preview</h3>
<div id="status">connecting...</div>
<img id="frame" width="400" />
<script>
const ws = new WebSocket("ws://" + location.host + "/ws/render" + location.search);
ws.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  if (msg.type === "frame") {
    document.getElementById("frame").src = "data:image/png;base64," + msg.imageData;
    document.getElementById("status").textContent =
      "pass " + msg.passNumber + "/" + msg.totalPasses + " (" + msg.samples + " spp)";
  } else if (msg.type === "complete") {
    document.getElementById("status").textContent = "complete in " + msg.elapsed;
  } else if (msg.type === "error") {
    document.getElementById("status").textContent = "error: " + msg.error;
  }
};
ws.onclose = () => { document.getElementById("status").textContent += " [closed]"; };
</script>
</body>
</html>`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}
