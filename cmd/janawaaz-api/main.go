package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/achantasri/JanAwaaz/internal/config"
	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/directory"
	"github.com/achantasri/JanAwaaz/internal/logging"
	"github.com/achantasri/JanAwaaz/internal/webserver"
)

func main() {
	logging.BootstrapLogger()
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logging.Log.Fatal("JWT_SECRET must be set")
	}

	db := data.MustMySQL(cfg.MySQLDSN)
	if err := data.LoadSettings(db); err != nil {
		logging.Log.Warnf("load settings: %v", err)
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := data.RefreshSettings(db); err != nil {
				logging.Log.Warnf("refresh settings: %v", err)
			}
		}
	}()
	rdb := data.MustRedis(cfg.RedisURL)

	dir := directory.New()
	store := data.NewStore(db, rdb)
	verifier := webserver.HMACVerifier{Secret: []byte(cfg.JWTSecret)}

	router := webserver.New(cfg, store, rdb, dir, verifier)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("http: %v", err)
		}
	}()

	logging.Log.Infof("JanAwaaz API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutCtx)
}
