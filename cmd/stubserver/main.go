package main

import (
	"log"
	"net/http"

	"restaurant-admin/internal/config"
	"restaurant-admin/internal/logger"
	"restaurant-admin/internal/stubserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	lg := logger.New("stubserver")
	srv := stubserver.New(lg)

	lg.Info("", "startup", "listening on "+cfg.StubAddr, nil)
	if err := http.ListenAndServe(cfg.StubAddr, srv.Handler()); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
