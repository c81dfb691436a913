package auth

import (
	"github.com/google/uuid"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
	"github.com/igosistemas/igo/pkg/logger"
	"github.com/igosistemas/igo/pkg/token"
)

// SessionConfig configuración para la emisión de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación y sesión: login, cambio de contraseña y pista de
// contraseña por defecto. Las contraseñas se comparan en claro: el contrato
// del documento las fija así y excluye el hashing.
type AuthUseCase struct {
	store *store.Store
	cfg   SessionConfig
	log   *logger.Logger
}

// NewAuthUseCase construye el caso de uso de autenticación.
func NewAuthUseCase(st *store.Store, cfg SessionConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{store: st, cfg: cfg, log: log}
}

// Login verifica username/contraseña contra la colección de usuarios y emite
// una sesión con token firmado. Credenciales incorrectas -> ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.Session, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	users := uc.store.Users(func(u entity.User) bool {
		return u.Username == in.Username
	})
	if len(users) == 0 {
		uc.log.Warn().Str("username", in.Username).Msg("login de usuario inexistente")
		return nil, domain.ErrUnauthorized
	}
	user := users[0]
	if user.Password != in.Password {
		uc.log.Warn().Str("username", in.Username).Msg("contraseña incorrecta")
		return nil, domain.ErrUnauthorized
	}

	tok, err := token.Generate(uc.cfg.Secret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("sesión iniciada")
	return &dto.Session{
		ID:    uuid.New().String(),
		Token: tok,
		User:  toUserResponse(user),
	}, nil
}

// Verify valida un token de sesión y devuelve el rol que porta.
func (uc *AuthUseCase) Verify(tok string) (userID int, username, role string, err error) {
	return token.Parse(uc.cfg.Secret, tok)
}

// ChangePassword cambia la contraseña del usuario verificando la actual y la
// confirmación de la nueva.
func (uc *AuthUseCase) ChangePassword(in dto.ChangePasswordRequest) error {
	user, err := uc.store.GetUser(in.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	if user.Password != in.Current {
		return domain.ErrUnauthorized
	}
	if in.New == "" {
		return domain.ErrInvalidInput
	}
	if in.New != in.Confirm {
		return domain.ErrInvalidInput
	}
	user.Password = in.New
	if _, err := uc.store.UpdateUser(user.ID, user); err != nil {
		return err
	}
	uc.log.Info().Int("user_id", user.ID).Msg("contraseña actualizada")
	return nil
}

// defaultPasswords pistas de recuperación para los usuarios semilla.
var defaultPasswords = map[string]string{
	"admin":    "admin123",
	"gerente":  "gerente123",
	"vendedor": "vendedor123",
	"cliente":  "cliente123",
}

// PasswordHint devuelve el usuario y, si es un usuario semilla, su contraseña
// por defecto. Usuario inexistente -> ErrUserNotFound; sin pista -> cadena
// vacía.
func (uc *AuthUseCase) PasswordHint(username string) (dto.UserResponse, string, error) {
	users := uc.store.Users(func(u entity.User) bool {
		return u.Username == username
	})
	if len(users) == 0 {
		return dto.UserResponse{}, "", domain.ErrUserNotFound
	}
	return toUserResponse(users[0]), defaultPasswords[username], nil
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		Email:    u.Email,
	}
}
