package auth_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-api/internal/application/auth"
	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/infrastructure/sqlite"
	pkgjwt "github.com/jhoicas/facturador-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "facturador-test"
)

func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return auth.NewAuthUseCase(sqlite.NewUserRepository(store.DB()), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

func TestRegister_CreaUsuario(t *testing.T) {
	uc := newAuthUseCase(t)

	user, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3creta"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestRegister_UsernameDuplicado_RetornaErrConflict(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3creta"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "alice", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegister_CamposVacios_RetornaErrInvalidInput(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesValidas_EmiteTokenVerificable(t *testing.T) {
	uc := newAuthUseCase(t)

	registered, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3creta"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "alice", Password: "s3creta"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.UserID)
	require.NotEmpty(t, out.Token)

	// El token debe ser verificable con el mismo secret y llevar los claims.
	userID, username, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "alice", username)
}

func TestLogin_PasswordIncorrecta_RetornaErrUnauthorized(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3creta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "alice", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_RetornaErrUnauthorized(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestProfile_UsuarioDeLaSesion(t *testing.T) {
	uc := newAuthUseCase(t)

	registered, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3creta"})
	require.NoError(t, err)

	profile, err := uc.Profile(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)

	_, err = uc.Profile("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
