package usecase

import (
	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
)

// UsuarioUseCase consultas sobre usuarios. Toda salida pasa por la vista pública:
// el hash de contraseña no tiene campo en el DTO, así que la redacción es
// incondicional por construcción.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List devuelve las vistas públicas de todos los usuarios.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUsuarioResponse(u))
	}
	return out, nil
}
