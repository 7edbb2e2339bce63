package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"prof-bot/api/internal/config"
	"prof-bot/api/internal/handle"
	"prof-bot/api/internal/httpserver"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", httpserver.Healthz(nil))

	h := handle.New(nil)
	mux.HandleFunc("/v1/router/route", h.Route)

	addr := ":" + cfg.Port
	log.Printf("router listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
