// Package metrics provides Prometheus metrics and HTTP endpoints for qa.
package metrics

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/supporttools/qa/pkg/version"
)

var (
	// BuildInfo is always 1; the labels carry the release identity
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "qa_build_info",
		Help: "Build information of the running qa binary",
	}, []string{"version", "git_commit", "build_time"})
)

// RecordBuildInfo publishes the current version.Get() on BuildInfo
func RecordBuildInfo() {
	info := version.Get()
	BuildInfo.WithLabelValues(info.Version, info.GitCommit, info.BuildTime).Set(1)
}

// VersionHandler writes version.Get() as JSON
func VersionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Get()); err != nil {
		log.Printf("Error encoding version response: %v", err)
	}
}

// NewMux returns the handler tree served by StartMetricsServer
func NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/version", VersionHandler)
	return mux
}

// NewServer builds the metrics HTTP server without starting it
func NewServer(port string) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      NewMux(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// StartMetricsServer records build info and serves until the server is closed
func StartMetricsServer(server *http.Server) error {
	RecordBuildInfo()

	log.Printf("Starting metrics server on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
