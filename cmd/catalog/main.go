package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-service/cmd/migrate"
	"github.com/fekuna/omnipos-catalog-service/cmd/serve"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Product and category catalog service",
		Long: `Catalog serves the product/category HTTP API.

Running without a subcommand is the same as "catalog serve".`,
		SilenceUsage: true,
	}

	serveCmd := serve.NewServeCommand()
	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrate.NewMigrateCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
