package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/studio-ayni/ayni-api/internal/application/auth"
	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	pkgjwt "github.com/studio-ayni/ayni-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "studio-ayni-test"
)

type fakeUsuarioRepo struct {
	items  map[int64]*entity.Usuario
	nextID int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{items: map[int64]*entity.Usuario{}, nextID: 1}
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.items))
	for _, u := range r.items {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, ex := range r.items {
		if ex.Email == u.Email {
			return domain.ErrDuplicado
		}
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUsuarioRepo) {
	t.Helper()
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   testIssuer,
	})
	return uc, repo
}

func seedUser(t *testing.T, repo *fakeUsuarioRepo, email, username, password string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLogin_PorEmail(t *testing.T) {
	uc, repo := newAuthFixture(t)
	seedUser(t, repo, "ana@ayni.com", "ana", "secreto123")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ayni.com", Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, "ana@ayni.com", out.User.Email)
	userID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID, "el token debe vincular al usuario autenticado")
}

func TestLogin_PorUsername(t *testing.T) {
	uc, repo := newAuthFixture(t)
	seedUser(t, repo, "ana@ayni.com", "ana", "secreto123")

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.User.Username)
}

// Cuenta inexistente y password incorrecto deben producir exactamente el mismo
// error: la respuesta no puede filtrar qué cuentas existen.
func TestLogin_ErrorUniforme(t *testing.T) {
	uc, repo := newAuthFixture(t)
	seedUser(t, repo, "ana@ayni.com", "ana", "secreto123")

	_, errDesconocido := uc.Login(dto.LoginRequest{Email: "nadie@ayni.com", Password: "loquesea"})
	_, errPassword := uc.Login(dto.LoginRequest{Email: "ana@ayni.com", Password: "incorrecta"})

	assert.ErrorIs(t, errDesconocido, domain.ErrCredencialesInvalidas)
	assert.ErrorIs(t, errPassword, domain.ErrCredencialesInvalidas)
	assert.Equal(t, errDesconocido, errPassword)
}

func TestLogin_SinPassword(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@ayni.com"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestLogin_HashCorrupto(t *testing.T) {
	uc, repo := newAuthFixture(t)
	u := &entity.Usuario{
		Email:        "rota@ayni.com",
		PasswordHash: "esto-no-es-un-hash-bcrypt",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(u))

	_, err := uc.Login(dto.LoginRequest{Email: "rota@ayni.com", Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrCredencialCorrupta,
		"hash ilegible es fallo del servidor, no credencial inválida")
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	uc, repo := newAuthFixture(t)
	seed := auth.AdminSeed{Email: "admin@ayni.com", Username: "admin", Password: "admin123"}

	admin, created, err := uc.EnsureAdmin(seed)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	again, created, err := uc.EnsureAdmin(seed)
	require.NoError(t, err)
	assert.False(t, created, "segunda siembra no debe crear otro admin")
	assert.Equal(t, admin.ID, again.ID)
	assert.Len(t, repo.items, 1)
}

func TestEnsureAdmin_LuegoLogin(t *testing.T) {
	uc, _ := newAuthFixture(t)
	seed := auth.AdminSeed{Email: "admin@ayni.com", Username: "admin", Password: "admin123"}

	_, _, err := uc.EnsureAdmin(seed)
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@ayni.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin@ayni.com", out.User.Email)
}
