package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/WallaceSt/bzutils/internal/application/auth"
	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
	pkgjwt "github.com/WallaceSt/bzutils/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserRepo solo implementa lo que el login necesita.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByID(int64) (*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByUsernameOrEmail(string, string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) Update(*entity.User) error { return nil }

func (f *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) Delete(int64) error { return nil }

func newAuthUC(t *testing.T, active bool) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"maria": {ID: 7, Username: "maria", PasswordHash: string(hash), IsActive: active, Role: "manager"},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "bzutils-test"})
}

func TestLogin_OK_EmiteTokenConClaims(t *testing.T) {
	uc := newAuthUC(t, true)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)

	userID, username, role, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "maria", username)
	assert.Equal(t, "manager", role)
}

// Usuario inexistente y password incorrecto devuelven el mismo error para no
// filtrar qué usernames existen.
func TestLogin_PasswordIncorrecto_EsUnauthorized(t *testing.T) {
	uc := newAuthUC(t, true)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_EsUnauthorized(t *testing.T) {
	uc := newAuthUC(t, true)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Credenciales válidas sobre cuenta inactiva: la identidad se probó, el
// acceso está vedado.
func TestLogin_CuentaInactiva_EsForbidden(t *testing.T) {
	uc := newAuthUC(t, false)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
