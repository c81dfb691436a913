package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igosistemas/igo/internal/application/auth"
	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
	"github.com/igosistemas/igo/pkg/logger"
)

type memStorage struct{ doc *store.Document }

func (m *memStorage) Load() (*store.Document, error) {
	if m.doc == nil {
		return nil, errors.New("documento ausente")
	}
	return m.doc, nil
}
func (m *memStorage) Save(doc *store.Document) error { m.doc = doc; return nil }

func setup(t *testing.T) (*auth.AuthUseCase, *store.Store) {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	st, err := store.Open(&memStorage{}, log)
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(st, auth.SessionConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 60,
		Issuer:     "sistema-igo",
	}, log)
	return uc, st
}

func TestLoginEmiteSesionConToken(t *testing.T) {
	uc, _ := setup(t)

	session, err := uc.Login(dto.LoginRequest{Username: "gerente", Password: "gerente123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "gerente", session.User.Username)
	assert.Equal(t, entity.RoleGerente, session.User.Role)

	userID, username, role, err := uc.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)
	assert.Equal(t, "gerente", username)
	assert.Equal(t, entity.RoleGerente, role)
}

func TestLoginRechazaCredencialesIncorrectas(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Login(dto.LoginRequest{Username: "gerente", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVerifyRechazaTokenAjeno(t *testing.T) {
	uc, _ := setup(t)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	st, err := store.Open(&memStorage{}, log)
	require.NoError(t, err)
	other := auth.NewAuthUseCase(st, auth.SessionConfig{
		Secret: "otro-secreto", ExpMinutes: 60, Issuer: "sistema-igo",
	}, log)

	session, err := other.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	_, _, _, err = uc.Verify(session.Token)
	assert.Error(t, err, "un token firmado con otro secreto no pasa la verificación")
}

func TestChangePassword(t *testing.T) {
	uc, _ := setup(t)
	session, err := uc.Login(dto.LoginRequest{Username: "vendedor", Password: "vendedor123"})
	require.NoError(t, err)
	id := session.User.ID

	err = uc.ChangePassword(dto.ChangePasswordRequest{UserID: id, Current: "mala", New: "n", Confirm: "n"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword(dto.ChangePasswordRequest{UserID: id, Current: "vendedor123", New: "nova", Confirm: "outra"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ChangePassword(dto.ChangePasswordRequest{UserID: id, Current: "vendedor123", New: "nova123", Confirm: "nova123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "vendedor", Password: "vendedor123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la contraseña anterior deja de valer")
	_, err = uc.Login(dto.LoginRequest{Username: "vendedor", Password: "nova123"})
	assert.NoError(t, err)
}

func TestPasswordHint(t *testing.T) {
	uc, st := setup(t)

	user, hint, err := uc.PasswordHint("cliente")
	require.NoError(t, err)
	assert.Equal(t, "cliente", user.Username)
	assert.Equal(t, "cliente123", hint)

	_, err = st.AddUser(entity.User{Username: "novo", Password: "x", Name: "Novo", Role: entity.RoleVendedor})
	require.NoError(t, err)
	_, hint, err = uc.PasswordHint("novo")
	require.NoError(t, err)
	assert.Empty(t, hint, "solo los usuarios semilla tienen pista")

	_, _, err = uc.PasswordHint("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
