package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/memory"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/postgres"
)

// Registrar alta de usuarios. auth.AuthUseCase lo implementa.
type Registrar interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error)
}

// SeedAdminInput datos del administrador inicial.
type SeedAdminInput struct {
	Usuario    string
	Contrasena string
	Nombre     string
	Email      string
}

// NewSeedAdminCommand crea el usuario admin si no existe.
func NewSeedAdminCommand() *cobra.Command {
	var in SeedAdminInput

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea el usuario administrador (idempotente)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			// Register no abre sesión; el store en memoria basta.
			uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), memory.NewSessionStore(), auth.SessionConfig{})
			return SeedAdmin(ctx, uc, in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&in.Usuario, "usuario", "admin", "nombre de usuario")
	cmd.Flags().StringVar(&in.Contrasena, "contrasena", "", "contraseña (obligatoria)")
	cmd.Flags().StringVar(&in.Nombre, "nombre", "Administrador", "nombre visible")
	cmd.Flags().StringVar(&in.Email, "email", "", "correo del administrador")
	_ = cmd.MarkFlagRequired("contrasena")
	return cmd
}

// SeedAdmin registra el admin. Si el usuario ya existe no es error.
func SeedAdmin(ctx context.Context, r Registrar, in SeedAdminInput, out io.Writer) error {
	res, err := r.Register(ctx, dto.RegisterRequest{
		Usuario:    in.Usuario,
		Contrasena: in.Contrasena,
		Nombre:     in.Nombre,
		Email:      in.Email,
		Rol:        entity.RoleAdmin,
	})
	if errors.Is(err, domain.ErrConflict) {
		log.Info().Str("usuario", in.Usuario).Msg("seed-admin: el usuario ya existe, sin cambios")
		fmt.Fprintf(out, "el usuario %s ya existe\n", in.Usuario)
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed-admin: %w", err)
	}
	fmt.Fprintf(out, "admin %s creado (id %d)\n", in.Usuario, res.UsuarioID)
	return nil
}
