package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/internal/version"
	"github.com/lotayaai/lotaya-io/internal/website/config"
	"github.com/lotayaai/lotaya-io/internal/website/handlers"
	"github.com/lotayaai/lotaya-io/internal/website/static"
	"github.com/lotayaai/lotaya-io/pkg/logger"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

func main() {
	cfg := config.Load()

	client, err := sdk.New(sdk.Config{
		ServerURL: cfg.APIURL,
		UserAgent: "lotaya-website/" + version.Version,
	})
	if err != nil {
		log.Fatal("Invalid API URL:", err)
	}

	h, err := handlers.New(tools.Default(), client, logger.NewLogger())
	if err != nil {
		log.Fatal("Failed to create handlers:", err)
	}
	defer h.Close()

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	h.Routes(r)

	log.Printf("🚀 Server starting on http://localhost%s (API %s)", cfg.Port, cfg.APIURL)
	if err := http.ListenAndServe(cfg.Port, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
