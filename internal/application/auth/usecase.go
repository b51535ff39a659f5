package auth

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
	"github.com/studio-ayni/ayni-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AdminSeed datos del administrador sembrado al arrancar.
type AdminSeed struct {
	Email    string
	Username string
	Password string
}

// AuthUseCase casos de uso de autenticación: login y siembra del admin.
type AuthUseCase struct {
	userRepo repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica identificador/password y emite un token de 24h.
// El identificador se busca como email si contiene '@', como username si no.
// Identificador desconocido y password incorrecto devuelven exactamente el mismo
// error: la respuesta no filtra la existencia de la cuenta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	ident := in.Identificador()
	if ident == "" || in.Password == "" {
		return nil, domain.ErrCredencialesInvalidas
	}

	var user *entity.Usuario
	var err error
	if strings.Contains(ident, "@") {
		user, err = uc.userRepo.FindByEmail(ident)
	} else {
		user, err = uc.userRepo.FindByUsername(ident)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrCredencialesInvalidas
		}
		// Hash almacenado ilegible: esto sí es un fallo del servidor, no del cliente.
		return nil, domain.ErrCredencialCorrupta
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUsuarioResponse(user),
	}, nil
}

// EnsureAdmin crea el usuario administrador si aún no existe (idempotente).
// Se invoca una vez en el arranque, igual que initializeAdmin del servicio original.
func (uc *AuthUseCase) EnsureAdmin(seed AdminSeed) (*entity.Usuario, bool, error) {
	existing, err := uc.userRepo.FindByEmail(seed.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}
	admin := &entity.Usuario{
		Email:        seed.Email,
		Username:     seed.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(admin); err != nil {
		return nil, false, err
	}
	return admin, true, nil
}
