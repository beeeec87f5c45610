package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"recharge-portal/config"
	"recharge-portal/database"
	authapi "recharge-portal/internal/api/auth"
	routes "recharge-portal/internal/app/http"
	"recharge-portal/internal/auth"
	"recharge-portal/internal/storage"
)

const (
	sessionTTL      = 7 * 24 * time.Hour
	shutdownTimeout = 30 * time.Second
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Seed the catalog if needed and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if err := cfg.RequireServer(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.InitDB(cfg.DBURL)
	if err != nil {
		return err
	}
	defer closeDB(db)

	store := storage.New(db)
	seeded, err := store.SeedIfEmpty(ctx)
	if err != nil {
		return wrap("seed", err)
	}
	if seeded {
		log.Info("plan catalog seeded")
	}

	var identity auth.IdentityProvider
	if cfg.OIDCEnabled() {
		p, err := auth.NewOIDCProvider(ctx, auth.OIDCConfig{
			IssuerURL:    cfg.OIDCIssuerURL,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
		})
		if err != nil {
			return err
		}
		identity = p
	} else {
		log.Warn("OIDC issuer not configured, login routes disabled")
	}
	if cfg.AdminEmail == "" {
		log.Warn("ADMIN_EMAIL not set, admin routes will refuse everyone")
	}

	corsOrigins := []string{}
	if cfg.CORSOrigin != "" {
		corsOrigins = append(corsOrigins, cfg.CORSOrigin)
	}

	router := routes.NewRouter(routes.Deps{
		Store:    store,
		Sessions: auth.NewSessionManager(cfg.SessionSecret, sessionTTL),
		Admin:    auth.EmailAllowList{Email: cfg.AdminEmail, Users: store},
		Identity: identity,
		Auth: authapi.Config{
			FrontendURL:   cfg.FrontendURL,
			SecureCookies: cfg.GinMode == gin.ReleaseMode,
		},
		Middleware: []gin.HandlerFunc{cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		})},
	}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", srv.Addr, "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return wrap("listen", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return wrap("shutdown", err)
	}
	log.Info("server exited gracefully")
	return nil
}
