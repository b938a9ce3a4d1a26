package main

import (
	"net/http"
	"os"
	"time"

	"petpal/internal/platform/logger"
	"petpal/internal/router"
)

// @title PetPal API
// @version 1.0
// @description Tracker de cuidado de mascotas: usuarios, perfiles de mascota, recordatorios e historial de salud. Todo el estado vive en un key-value store de colecciones JSON.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
