package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentranbao-ct/product-catalog/internal/app"
	"github.com/nguyentranbao-ct/product-catalog/internal/coordinator"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/render"
	"github.com/nguyentranbao-ct/product-catalog/internal/tui"
	"github.com/nguyentranbao-ct/product-catalog/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var browseFlags struct {
	search string
	sort   string
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			catalog usecase.CatalogUsecase
			cards   *render.CardBuilder
		)
		a := app.New(fx.Populate(&catalog, &cards))
		if err := a.Err(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := a.Start(ctx); err != nil {
			return fmt.Errorf("start app: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = a.Stop(stopCtx)
		}()

		list := &tui.ListRenderer{}
		co := coordinator.New(catalog, cards, list,
			coordinator.WithCriteria(models.NewCriteria(browseFlags.search, browseFlags.sort)),
		)
		if err := co.Start(ctx); err != nil {
			return err
		}
		return tui.Run(ctx, co, list)
	},
}

func init() {
	browseCmd.Flags().StringVarP(&browseFlags.search, "search", "q", "", "initial search text")
	browseCmd.Flags().StringVarP(&browseFlags.sort, "sort", "s", "", "initial sort: price-asc, price-desc, name-asc or name-desc")
}
