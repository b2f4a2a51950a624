package dto

// RegisterRequest entrada de POST /registro.
// Los campos obligatorios se revisan en el caso de uso para devolver un único mensaje.
type RegisterRequest struct {
	Usuario    string `json:"usuario" validate:"max=50"`
	Contrasena string `json:"contrasena" validate:"max=72"`
	Nombre     string `json:"nombre" validate:"max=100"`
	Rol        string `json:"rol" validate:"omitempty,oneof=cliente admin"`
	Email      string `json:"email" validate:"omitempty,email"`
	Telefono   string `json:"telefono" validate:"omitempty,max=20"`
	NIT        string `json:"nit" validate:"omitempty,max=20"`
	Direccion  string `json:"direccion" validate:"omitempty,max=200"`
}

// RegisterResponse salida de registro.
type RegisterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	UsuarioID int64  `json:"usuario_id"`
}

// LoginRequest entrada de POST /login.
type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse salida de login. Token también viaja en la cookie de sesión.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Usuario  string `json:"usuario"`
	Rol      string `json:"rol"`
	Redirect string `json:"redirect"`
	Token    string `json:"token"`
}

// SessionUserResponse salida de GET /obtener-usuario.
type SessionUserResponse struct {
	Success   bool   `json:"success"`
	Usuario   string `json:"usuario"`
	UsuarioID int64  `json:"usuario_id"`
	Rol       string `json:"rol"`
}
