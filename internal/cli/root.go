// Package cli comandos de mantenimiento: migraciones, hash de contraseñas y alta del admin.
package cli

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/postgres"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/config"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/logger"
)

// RootOptions flags globales.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand construye supermercadoctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "supermercadoctl",
		Short: "Tareas de mantenimiento de la API del supermercado",
		Long:  "Aplica migraciones, genera hashes bcrypt y crea el usuario administrador inicial.",
		PersistentPreRun: func(*cobra.Command, []string) {
			level := "info"
			if opts.Verbose {
				level = "debug"
			}
			logger.New(logger.Config{Env: "development", Level: level})
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log detallado")

	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewHashPasswordCommand())
	cmd.AddCommand(NewSeedAdminCommand())

	return cmd
}

// openPool carga la configuración y abre el pool de PostgreSQL.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return postgres.NewPool(ctx, cfg.DB)
}
