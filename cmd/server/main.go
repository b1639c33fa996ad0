package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"miniblog/app/db"
	"miniblog/global"
	"miniblog/initialize"
	"miniblog/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	srv := server.New(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router)
	go func() {
		global.Logger.Info().Str("addr", srv.Addr).Str("env", app.Cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			global.Logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	global.Logger.Info().Msg("shutting down")
	if err := server.Shutdown(srv, 10*time.Second); err != nil {
		global.Logger.Error().Err(err).Msg("shutdown error")
	}
	if err := db.Close(app.DB); err != nil {
		global.Logger.Error().Err(err).Msg("close db")
	}
}
