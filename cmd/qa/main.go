// qa prints the release identity of this module, or serves it over HTTP
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/supporttools/qa/pkg/config"
	"github.com/supporttools/qa/pkg/metrics"
	"github.com/supporttools/qa/pkg/version"
)

var (
	format = flag.String("format", "", "Output format: text, json or yaml (overrides OUTPUT_FORMAT)")
	serve  = flag.Bool("serve", false, "Serve /metrics, /health and /version on METRICS_PORT")
)

func main() {
	flag.Parse()

	config.LoadConfiguration()
	if *format != "" {
		config.CFG.OutputFormat = strings.ToLower(*format)
	}
	if err := config.ValidateConfig(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	if config.CFG.Debug {
		config.DisplayConfiguration()
	}

	if !*serve {
		out, err := Render(version.Get(), config.CFG.OutputFormat)
		if err != nil {
			log.Fatalf("Failed to render version: %v", err)
		}
		fmt.Println(out)
		return
	}

	if err := config.ValidateMetricsConfig(); err != nil {
		log.Fatalf("Metrics configuration validation failed: %v", err)
	}

	server := metrics.NewServer(config.CFG.Metrics.Port)
	setupSignalHandling(server)

	if err := metrics.StartMetricsServer(server); err != nil {
		log.Fatalf("Failed to start metrics server: %v", err)
	}
}

// setupSignalHandling closes the server on SIGINT or SIGTERM
func setupSignalHandling(server *http.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-c
		log.Printf("Received signal %s, shutting down...", sig)
		if err := server.Close(); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		}
	}()
}
