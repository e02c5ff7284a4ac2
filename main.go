package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	jsonhandler "github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/profile"
)

var (
	addr        = flag.String("addr", ":8080", "listen address")
	storeKind   = flag.String("store", "postgres", "game store: postgres or memory")
	retention   = flag.Duration("retention", 24*time.Hour, "prune finished games idle for longer than this")
	idleEvery   = flag.Duration("idle", 30*time.Second, "interval between idle passes")
	logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error or fatal")
	logFormat   = flag.String("log-format", "text", "log format: text or json")
	profileMode = flag.String("profile", "", "enable profiling: cpu or mem")
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open serves the API on addr until an interrupt arrives.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle() {
	idleError("game idle complete:", gameIdle(*retention))
}

// Close releases the game store.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

func setupLogging(level, format string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(parsed)
	switch format {
	case "json":
		log.SetHandler(jsonhandler.New(os.Stderr))
	default:
		log.SetHandler(text.New(os.Stderr))
	}
	return nil
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	return nil
}

func main() {
	flag.Parse()
	if err := setupLogging(*logLevel, *logFormat); err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	if p := startProfile(*profileMode); p != nil {
		defer p.Stop()
	}

	games, err := openStore(*storeKind)
	if err != nil {
		log.WithError(err).WithField("store", *storeKind).Fatal("failed to open store")
	}
	db = games
	defer func() {
		idleError("close server:", Close())
	}()

	go func() {
		ticker := time.NewTicker(*idleEvery)
		defer ticker.Stop()
		for range ticker.C {
			idle()
		}
	}()
	log.WithField("addr", *addr).WithField("store", *storeKind).Info("listening")
	Open(*addr)
}
