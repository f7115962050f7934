package main

import (
	"net/http"
	"os"
	"time"

	"glucose-iob/internal/adapters/auth/secret"
	"glucose-iob/internal/adapters/profile/remote"
	"glucose-iob/internal/domain/profile"
	"glucose-iob/internal/platform/logger"
	"glucose-iob/internal/ports/auth"
	"glucose-iob/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// API_SECRET vacío => modo dev (X-Debug-User-ID)
	var verifier auth.AuthVerifier
	if v, err := secret.NewVerifierFromEnv(); err != nil {
		log.Error("api secret inválido", map[string]any{"error": err.Error()})
		os.Exit(1)
	} else if v != nil {
		verifier = v
	}

	var profiles profile.Provider
	if base := os.Getenv("PROFILE_SVC_URL"); base != "" {
		c, err := remote.NewClient(remote.Config{
			BaseURL: base,
			APIKey:  os.Getenv("PROFILE_SVC_API_KEY"),
		})
		if err != nil {
			log.Error("profile client inválido", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		profiles = c
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Profiles:     profiles,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
