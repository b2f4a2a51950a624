package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
)

// ── comandos ──

func TestRootCommand_Subcomandos(t *testing.T) {
	root := NewRootCommand()
	for _, name := range []string{"migrate", "hash-password", "seed-admin"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestSeedAdmin_ContrasenaObligatoria(t *testing.T) {
	flag := NewSeedAdminCommand().Flags().Lookup("contrasena")
	require.NotNil(t, flag)
	assert.Equal(t, []string{"true"}, flag.Annotations["cobra_annotation_bash_completion_one_required_flag"])
}

func TestHashPassword_GeneraHashVerificable(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"hash-password", "--costo", "4", "s3cr3ta"})

	require.NoError(t, root.Execute())
	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cr3ta")))
}

func TestMigrate_ListarNoConecta(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"migrate", "--listar"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "001_esquema.sql")
	assert.Contains(t, out.String(), "002_factura_secuencia.sql")
}

// ── seed-admin ──

type fakeRegistrar struct {
	got dto.RegisterRequest
	err error
}

func (f *fakeRegistrar) Register(_ context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &dto.RegisterResponse{Success: true, UsuarioID: 7}, nil
}

func TestSeedAdmin_CreaConRolAdmin(t *testing.T) {
	r := &fakeRegistrar{}
	var out bytes.Buffer

	err := SeedAdmin(context.Background(), r, SeedAdminInput{Usuario: "root", Contrasena: "x", Nombre: "Root"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "admin", r.got.Rol)
	assert.Contains(t, out.String(), "id 7")
}

func TestSeedAdmin_ExistenteNoEsError(t *testing.T) {
	r := &fakeRegistrar{err: fmt.Errorf("%w: El usuario ya existe", domain.ErrConflict)}
	var out bytes.Buffer

	require.NoError(t, SeedAdmin(context.Background(), r, SeedAdminInput{Usuario: "root", Contrasena: "x"}, &out))
	assert.Contains(t, out.String(), "ya existe")
}

func TestSeedAdmin_OtroErrorSePropaga(t *testing.T) {
	boom := errors.New("sin conexión")
	err := SeedAdmin(context.Background(), &fakeRegistrar{err: boom}, SeedAdminInput{Usuario: "root"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, boom)
}
