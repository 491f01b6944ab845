package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/minesweeper/internal/adapters/http"
	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/infrastructure/memstore"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/validator"
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games over HTTP/JSON",
		RunE:  runServe,
	}
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int("max-cells", config.DefaultMaxCells, "largest board a client may request (0 = no limit)")
	addGameFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	binds := map[string]string{"server.addr": "addr", "game.max_cells": "max-cells"}
	for k, v := range gameBinds {
		binds[k] = v
	}
	cfg, log, err := load(cmd, binds)
	if err != nil {
		return err
	}
	defaults := cfg.Game.Board()
	if err := validator.Config(defaults); err != nil {
		return err
	}
	if cfg.Game.MaxCells < 0 {
		return fmt.Errorf("max cells must not be negative, got %d", cfg.Game.MaxCells)
	}
	if cfg.Game.MaxCells > 0 {
		if err := validator.Size(defaults, cfg.Game.MaxCells); err != nil {
			return err
		}
	}

	// Wire providers → use cases → HTTP adapter
	gin.SetMode(gin.ReleaseMode)
	uc := usecase.NewService(generator.NewShuffleGenerator(), memstore.New(), log)
	uc.MaxCells = cfg.Game.MaxCells
	h := httpadapter.New(uc, defaults, cfg.Game.SeedPtr(), log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
