package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/statements/internal/buildinfo"
	"github.com/cleared-dev/statements/internal/httpapi"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var repoDir, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the statement builders over HTTP",
		Long: `Start a JSON API exposing validation, statement building, ratios,
classification and levy calculations. The project's configuration and
account mapping are loaded once at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.env.Addr
			}
			return runServe(cmd.Context(), a, repoDir, addr)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from STATEMENTS_ADDR)")

	return cmd
}

func runServe(ctx context.Context, a *app, repoDir, addr string) error {
	p, err := loadProject(repoDir)
	if err != nil {
		return err
	}
	for _, me := range p.mappingErrors {
		a.logger.Warn("ignoring account mapping", slog.String("error", me.Error()))
	}

	api := httpapi.New(httpapi.Options{
		Logger:         a.logger,
		Classifier:     p.classifier,
		Builder:        p.builder,
		Catalogue:      p.catalogue,
		Rates:          p.levies,
		Formatter:      p.formatter,
		Overrides:      p.overrides,
		RateLimit:      a.env.RateLimit,
		RequestTimeout: a.env.RequestTimeout,
		MaxBodyBytes:   a.env.MaxBodyBytes,
		Version:        buildinfo.String(),
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      api.Handler(),
		ReadTimeout:  a.env.ReadTimeout,
		WriteTimeout: a.env.WriteTimeout,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server starting", slog.String("addr", addr), slog.String("root", p.root))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
