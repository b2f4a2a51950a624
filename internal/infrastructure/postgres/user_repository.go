package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (tabla usuario).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id_usuario, usuario, contrasena, rol, nombre,
	COALESCE(email, ''), COALESCE(telefono, ''), COALESCE(nit, ''), COALESCE(direccion, '')`

// Create persiste un nuevo usuario y llena su ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuario (usuario, contrasena, rol, nombre, email, telefono, nit, direccion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_usuario`
	err := r.q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.Name,
		nullIfEmpty(user.Email), nullIfEmpty(user.Phone), nullIfEmpty(user.NIT), nullIfEmpty(user.Address),
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: El usuario ya existe", domain.ErrConflict)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuario WHERE id_usuario = $1`, id)
}

// GetByUsername obtiene un usuario por nombre de usuario. (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuario WHERE usuario = $1`, username)
}

// UpdatePassword reemplaza la contraseña guardada (migración de texto plano a bcrypt).
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE usuario SET contrasena = $2 WHERE id_usuario = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update contrasena: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Name,
		&u.Email, &u.Phone, &u.NIT, &u.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
