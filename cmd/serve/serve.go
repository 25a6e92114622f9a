package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/bootstrap"
	"github.com/fekuna/omnipos-catalog-service/internal/server"
)

const envFileFlag = "env-file"

var serveFlags = map[string]cobraflags.Flag{
	envFileFlag: &cobraflags.StringFlag{
		Name:  envFileFlag,
		Value: ".env",
		Usage: "Dotenv file loaded before reading the environment",
	},
}

func NewServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog HTTP API",
		Long: `Start the catalog HTTP API.

Configuration comes from the environment, optionally seeded from a dotenv
file. With DB_AUTO_MIGRATE=true pending migrations are applied before
listening.`,
		RunE: serveCommand,
	}

	cobraflags.RegisterMap(serveCmd, serveFlags)
	return serveCmd
}

func serveCommand(_ *cobra.Command, _ []string) error {
	cfg, err := bootstrap.LoadConfig(serveFlags[envFileFlag].GetString())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger := bootstrap.NewLogger(cfg)
	defer appLogger.Sync()

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDatabase(ctx, cfg, cfg.Database.AutoMigrate, appLogger)
	if err != nil {
		appLogger.Error("Could not connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	tokens, err := auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.TTL)
	if err != nil {
		return err
	}

	router := server.NewApp(db, tokens, server.AppConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Cookie: auth.CookieConfig{
			Name:   cfg.JWT.CookieName,
			Secure: cfg.JWT.CookieSecure,
		},
	}, appLogger)

	addr := cfg.Server.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return server.New(addr, router, cfg.Server.ShutdownTimeout, appLogger).Run(ctx)
}
