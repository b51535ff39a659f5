package repository

import "github.com/studio-ayni/ayni-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
// La API no expone borrado de usuarios; solo alta (seed), búsqueda y listado.
type UsuarioRepository interface {
	List() ([]*entity.Usuario, error)
	GetByID(id int64) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	FindByUsername(username string) (*entity.Usuario, error)
	Create(u *entity.Usuario) error
}
