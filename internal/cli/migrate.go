package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/postgres"
)

// NewMigrateCommand aplica las migraciones embebidas pendientes.
func NewMigrateCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				files, err := postgres.MigrationFiles()
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			for _, name := range applied {
				log.Info().Str("migracion", name).Msg("aplicada")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d migraciones aplicadas\n", len(applied))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "listar", false, "solo lista las migraciones embebidas, sin conectar")
	return cmd
}
