package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/jwt"
)

// Destinos tras el login según el rol.
const (
	RedirectAdmin   = "/dashboard-admin"
	RedirectCliente = "/dashboard"
)

// SessionConfig firma y duración de las sesiones.
type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y resolución de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions SessionStore
	cfg      SessionConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions SessionStore, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, cfg: cfg, now: time.Now}
}

// SessionTTL duración configurada de las sesiones (para la cookie).
func (uc *AuthUseCase) SessionTTL() time.Duration { return uc.cfg.TTL }

// Register crea un usuario con contraseña bcrypt. Rol por defecto: cliente.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Usuario == "" || in.Contrasena == "" || in.Nombre == "" {
		return nil, fmt.Errorf("%w: Usuario, contraseña y nombre son requeridos", domain.ErrInvalidInput)
	}
	role := in.Rol
	if role == "" {
		role = entity.RoleCliente
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol no válido", domain.ErrInvalidInput)
	}

	existing, err := uc.userRepo.GetByUsername(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: El usuario ya existe", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash de contraseña: %w", err)
	}
	user := &entity.User{
		Username:     in.Usuario,
		PasswordHash: string(hash),
		Role:         role,
		Name:         in.Nombre,
		Email:        in.Email,
		Phone:        in.Telefono,
		NIT:          in.NIT,
		Address:      in.Direccion,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Success:   true,
		Message:   "Usuario registrado exitosamente",
		UsuarioID: user.ID,
	}, nil
}

// Login verifica credenciales, abre una sesión en el store y devuelve el token firmado.
// Usuario inexistente: ErrUserNotFound. Contraseña incorrecta: ErrUnauthorized (sin sesión).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Contrasena == "" {
		return nil, fmt.Errorf("%w: Usuario y contraseña son requeridos", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: Usuario no encontrado", domain.ErrUserNotFound)
	}
	if err := uc.checkPassword(ctx, user, in.Contrasena); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: Contraseña incorrecta", err)
		}
		return nil, err
	}

	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: uc.now(),
	}
	if err := uc.sessions.Save(ctx, sess, uc.cfg.TTL); err != nil {
		return nil, fmt.Errorf("auth: guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, jwt.Claims{
		SessionID: sess.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}, uc.cfg.TTL)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sess.ID)
		return nil, fmt.Errorf("auth: firmar token: %w", err)
	}

	redirect := RedirectCliente
	if user.IsAdmin() {
		redirect = RedirectAdmin
	}
	return &dto.LoginResponse{
		Success:  true,
		Message:  "Login exitoso",
		Usuario:  user.Username,
		Rol:      user.Role,
		Redirect: redirect,
		Token:    token,
	}, nil
}

// checkPassword compara contra bcrypt. Si la fila aún guarda texto plano y coincide,
// se reemplaza por su hash.
func (uc *AuthUseCase) checkPassword(ctx context.Context, user *entity.User, plain string) error {
	if user.HasHashedPassword() {
		err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(plain))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrUnauthorized
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(plain)) != 1 {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: hash de contraseña: %w", err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		// El login sigue siendo válido; se reintentará en el próximo inicio de sesión.
		log.Warn().Err(err).Int64("usuario_id", user.ID).Msg("auth: no se pudo migrar contraseña a bcrypt")
	}
	return nil
}

// Logout elimina la sesión. Sin sesión no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, sessionID)
}

// ResolveToken valida el token y devuelve la sesión vigente del store.
// Token inválido, expirado o de una sesión cerrada: ErrUnauthenticated.
func (uc *AuthUseCase) ResolveToken(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	sess, err := uc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("auth: leer sesión: %w", err)
	}
	if sess == nil || sess.UserID != claims.UserID {
		return nil, domain.ErrUnauthenticated
	}
	return sess, nil
}
