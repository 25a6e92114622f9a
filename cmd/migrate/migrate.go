package migrate

import (
	"context"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-service/internal/bootstrap"
)

const envFileFlag = "env-file"

var migrateFlags = map[string]cobraflags.Flag{
	envFileFlag: &cobraflags.StringFlag{
		Name:  envFileFlag,
		Value: ".env",
		Usage: "Dotenv file loaded before reading the environment",
	},
}

func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Long: `Apply every embedded goose migration not yet recorded in
goose_db_version for the configured DB_DRIVER (postgres or sqlite).`,
		RunE: migrateCommand,
	}

	cobraflags.RegisterMap(migrateCmd, migrateFlags)
	return migrateCmd
}

func migrateCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := bootstrap.LoadConfig(migrateFlags[envFileFlag].GetString())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger := bootstrap.NewLogger(cfg)
	defer appLogger.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := bootstrap.OpenDatabase(ctx, cfg, true, appLogger)
	if err != nil {
		return err
	}
	return db.Close()
}
