package cmd

import (
	"github.com/nguyentranbao-ct/product-catalog/internal/app"
	"github.com/nguyentranbao-ct/product-catalog/internal/server"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Product catalog with search, sorting and image preview",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog page and JSON API over HTTP",
	Run:   serve,
}

func serve(cmd *cobra.Command, args []string) {
	app.Invoke(
		app.LoadCatalog,
		server.StartServer,
	).Run()
}

func init() {
	rootCmd.AddCommand(serveCmd, browseCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.MustNamed("cmd").Fatal(err)
	}
}
