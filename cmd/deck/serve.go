package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jacksmith/deck/internal/api"
	"github.com/jacksmith/deck/internal/storage"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the deck over HTTP",
	Long: `Serve the deck as a JSON API.

Routes:
  GET    /deck             the whole deck
  GET    /cards?q=         cards with their positions, optionally filtered
  POST   /cards            {"tagline": "..."} adds a card
  PUT    /cards/{index}    {"tagline": "..."} renames the card at index
  DELETE /cards/{index}    deletes the card at index
  POST   /import           merges the deck document in the body
  POST   /save             saves the deck

Positions are zero-based and change after every edit.
The address defaults to listen from .deckconfig.yaml.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveListen string

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "address to listen on (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}
	addr := cfg.Listen
	if serveListen != "" {
		addr = serveListen
	}

	sess, err := openSession(false)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           middleware.Logger(api.NewRouter(sess)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("serving deck", slog.String("address", addr), slog.String("deck", sess.Path()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return sess.Close()
}
