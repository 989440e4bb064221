// Command seed carga compras (y opcionalmente las porciones) desde un archivo YAML
// contra el almacenamiento configurado, pasando por los mismos casos de uso que la API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/kondate-api/internal/application/inventory"
	"github.com/jhoicas/kondate-api/internal/application/usecase"
	"github.com/jhoicas/kondate-api/internal/infrastructure/document"
	"github.com/jhoicas/kondate-api/internal/infrastructure/storage"
	"github.com/jhoicas/kondate-api/pkg/config"
	"github.com/jhoicas/kondate-api/pkg/logger"
)

var (
	seedFile string
	dryRun   bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga compras de ingredientes desde YAML",
	Long: `Aplica cada compra del archivo como un POST /api/ingredients.

Formato:
  servings: 3            # opcional
  purchases:
    - name: 鶏肉
      unit: g
      quantity: 300
      totalPrice: 600`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&seedFile, "file", "f", "purchases.yaml", "archivo YAML de compras")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "solo validar el archivo, sin escribir")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("leer %s: %w", seedFile, err)
	}
	file, err := parseSeedFile(raw)
	if err != nil {
		return err
	}
	reqs, err := file.requests()
	if err != nil {
		return err
	}
	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d compras válidas\n", seedFile, len(reqs))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Zerolog()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	ledgerUC := inventory.NewLedgerUseCase(document.NewLedgerRepository(store, log), nil, log)
	for i, req := range reqs {
		if _, err := ledgerUC.Add(ctx, req); err != nil {
			return fmt.Errorf("compra #%d (%s): %w", i+1, req.Name, err)
		}
	}

	if file.Servings > 0 {
		servingsUC := usecase.NewServingsUseCase(document.NewConfigRepository(store, log), log)
		if _, err := servingsUC.Set(ctx, file.Servings); err != nil {
			return err
		}
	}

	ledger, err := ledgerUC.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d compras aplicadas; %d ingredientes en el ledger\n", len(reqs), len(ledger))
	return nil
}
