package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"remotework/internal/app/config"
	httpapi "remotework/internal/app/http"
	"remotework/internal/app/http/handler"
	"remotework/internal/domain/team"
	"remotework/internal/infrastructure/async"
	"remotework/internal/infrastructure/logging"
	"remotework/internal/infrastructure/teamfile"
)

func newServeCmd() *cobra.Command {
	var addr, teamFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr = addr
			}
			if cmd.Flags().Changed("team") {
				cfg.Team.File = teamFile
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	cmd.Flags().StringVar(&teamFile, "team", "", "team definition file, overrides TEAM_FILE")
	return cmd
}

func serve(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer log.Sync()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	eventBus := async.NewAsyncEventBus(ctx, cfg.Events.Workers, log)
	defer eventBus.Close()

	loader := teamfile.NewLoader(cfg.Team.File, log)
	teamSvc := team.NewService(loader, eventBus)

	if _, err := teamSvc.Reload(ctx); err != nil {
		log.Error("initial team load failed", zap.String("file", cfg.Team.File), zap.Error(err))
		return err
	}

	if cfg.Team.Watch {
		loader.Watch(ctx, func(ctx context.Context) {
			if _, err := teamSvc.Reload(ctx); err != nil {
				log.Warn("team reload failed, keeping previous snapshot", zap.Error(err))
			}
		})
	}

	h := handler.New(teamSvc, cfg.DisplayOffset(), time.Now, log)
	router := httpapi.NewRouter(h, log)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("team_file", cfg.Team.File),
			zap.Int("members", teamSvc.Team().Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
		return err
	}
	return nil
}
