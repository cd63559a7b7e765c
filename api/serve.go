package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/auth"
	api "github.com/rogerio-castellano/paintchain/internal/http"
	"github.com/rogerio-castellano/paintchain/internal/http/handlers"
	rl "github.com/rogerio-castellano/paintchain/internal/http/rate_limiter"
	"github.com/rogerio-castellano/paintchain/internal/movements"
	"github.com/rogerio-castellano/paintchain/internal/redissvc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().Int("port", 0, "port to listen on")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()
	handlers.SetStore(store)

	var movementLog movements.Log = movements.NewInMemoryLog()
	if a.cfg.Redis.Addr != "" {
		rs, err := redissvc.Connect(ctx, a.cfg.Redis.Addr)
		if err != nil {
			return err
		}
		defer rs.Close()
		movementLog = movements.NewRedisLog(rs, a.cfg.Redis.Key)
		log.Info().Str("addr", a.cfg.Redis.Addr).Msg("movement log backed by Redis")
	}
	handlers.SetMovementLog(movementLog)

	issuer := auth.NewIssuer(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.cfg.Auth.AdminPasswordHash)
	handlers.SetEngine(a.newEngine())
	handlers.SetIssuer(issuer)
	handlers.SetStrictDates(a.cfg.Analytics.StrictDates)

	limiter := rl.New(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst)
	go limiter.StartVisitorCleanupLoop(ctx)

	srv := &http.Server{
		Addr: a.cfg.Server.Addr(),
		Handler: api.NewRouter(
			api.WithIssuer(issuer),
			api.WithLimiter(limiter),
			api.WithRequestLogging(),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", a.cfg.Storage.Backend).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
