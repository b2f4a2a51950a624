package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
)

func TestSessionStore_GuardarLeerBorrar(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()

	require.NoError(t, s.Save(ctx, &auth.Session{ID: "a", UserID: 1, Username: "ana", Role: "cliente"}, time.Minute))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana", got.Username)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"), "borrar dos veces no es error")

	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Expira(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	require.NoError(t, s.Save(ctx, &auth.Session{ID: "b", UserID: 2}, time.Minute))

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	got, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)

	// La siguiente escritura purga la vencida.
	require.NoError(t, s.Save(ctx, &auth.Session{ID: "c", UserID: 3}, time.Minute))
	s.mu.RLock()
	_, exists := s.items["b"]
	s.mu.RUnlock()
	assert.False(t, exists)
}
