package main

import (
	"flag"
	"log"

	"github.com/constancadcunha/GPU-PathTracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the preview server")
	flag.Parse()

	s := server.NewServer(*port, nil)
	if err := s.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
