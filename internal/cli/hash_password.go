package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// NewHashPasswordCommand imprime el hash bcrypt de una contraseña.
// Sirve para migrar a mano filas heredadas en texto plano.
func NewHashPasswordCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password <contrasena>",
		Short: "Genera el hash bcrypt de una contraseña",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New("la contraseña no puede estar vacía")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "costo", bcrypt.DefaultCost, "costo bcrypt (4-31)")
	return cmd
}
