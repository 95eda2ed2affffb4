package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	redisstore "github.com/robalobadob/wordle/apps/go-wordle/internal/store/redis"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rounds over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(a.cfg.LogLevel, cmd.ErrOrStderr(), false)
			if port == "" {
				port = a.cfg.Port
			}

			list, err := a.loadWords("", "")
			if err != nil {
				return fmt.Errorf("load words: %w", err)
			}
			st, closeStore, err := openStore(a.cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			srv := httpserver.New(httpserver.Options{
				Store:        st,
				Words:        list,
				QuitToken:    a.cfg.QuitToken,
				ClientOrigin: a.cfg.ClientOrigin,
			})
			return run(cmd.Context(), ":"+port, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (env: PORT)")
	return cmd
}

// openStore picks the round store named by STORE_TYPE.
func openStore(cfg config.Config) (store.Store, func(), error) {
	if cfg.StoreType != config.StoreRedis {
		return store.NewMemoryStore(), func() {}, nil
	}
	rc := redisstore.DefaultConfig()
	rc.URL = cfg.RedisURL
	rc.RoundTTL = cfg.RoundTTL
	rs, err := redisstore.New(rc)
	if err != nil {
		return nil, nil, fmt.Errorf("open redis store: %w", err)
	}
	log.Info().Str("url", cfg.RedisURL).Msg("using redis round store")
	return rs, func() { _ = rs.Close() }, nil
}

// run serves h on addr until ctx ends or SIGINT/SIGTERM arrives.
func run(ctx context.Context, addr string, h http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()
	log.Info().Str("addr", addr).Msg("starting go-wordle server")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
