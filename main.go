package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railticket/internal/catalog"
	intconfig "railticket/internal/config"
	router "railticket/internal/http"
	"railticket/internal/http/handlers"
	"railticket/internal/ledger"
	"railticket/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	cat, err := catalog.Open(env.DataDir)
	if err != nil {
		log.Fatalf("cannot open catalog: %v", err)
	}

	handlers.Configure(handlers.App{
		Catalog:   cat,
		Ledger:    ledger.New(env.DataDir),
		Users:     repositories.NewUserStore(env.DataDir),
		JWTSecret: []byte(env.JWTSecret),
	})

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("railticket api listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
