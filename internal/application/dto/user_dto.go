package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string
	Password string
}

// UserResponse usuario sin la contraseña.
type UserResponse struct {
	ID       int
	Username string
	Name     string
	Role     string
	Email    string
}

// Session resultado de un login correcto: identificador de sesión y token
// firmado que porta id, username y rol para el control de acceso.
type Session struct {
	ID    string
	Token string
	User  UserResponse
}

// CreateUserRequest alta de usuario.
type CreateUserRequest struct {
	Username string
	Password string
	Name     string
	Role     string
	Email    string
}

// UpdateUserRequest edición parcial de usuario: solo los campos no nil se
// aplican.
type UpdateUserRequest struct {
	Name     *string
	Role     *string
	Email    *string
	Password *string
}

// ChangePasswordRequest cambio de contraseña con verificación de la actual.
type ChangePasswordRequest struct {
	UserID  int
	Current string
	New     string
	Confirm string
}
