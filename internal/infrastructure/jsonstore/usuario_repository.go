package jsonstore

import (
	"time"

	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// usuarioRecord forma persistida de un usuario en usuarios.json. El hash bcrypt
// vive solo aquí y en la entidad; nunca en una respuesta HTTP.
type usuarioRecord struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UsuarioRepo implementación del puerto UsuarioRepository sobre usuarios.json.
type UsuarioRepo struct {
	col *coleccion[usuarioRecord]
}

// NewUsuarioRepository construye el repositorio sobre dir/usuarios.json.
func NewUsuarioRepository(dir string) *UsuarioRepo {
	return &UsuarioRepo{col: newColeccion[usuarioRecord](dir, "usuarios.json")}
}

// List devuelve todos los usuarios ordenados por creación descendente.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	records, err := r.col.snapshot()
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(records, func(rec usuarioRecord) (time.Time, int64) {
		return rec.CreatedAt, rec.ID
	})
	list := make([]*entity.Usuario, 0, len(records))
	for _, rec := range records {
		list = append(list, usuarioFromRecord(rec))
	}
	return list, nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	return r.findOne(func(rec usuarioRecord) bool { return rec.ID == id })
}

// FindByEmail busca por email exacto. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.findOne(func(rec usuarioRecord) bool { return rec.Email == email })
}

// FindByUsername busca por username exacto. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	if username == "" {
		return nil, nil
	}
	return r.findOne(func(rec usuarioRecord) bool { return rec.Username == username })
}

// Create asigna ID y CreatedAt, y persiste. Email duplicado → ErrDuplicado.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	return r.col.mutate(func(records []usuarioRecord) ([]usuarioRecord, error) {
		for _, rec := range records {
			if rec.Email == u.Email {
				return nil, domain.ErrDuplicado
			}
		}
		u.ID = nextID(records, func(rec usuarioRecord) int64 { return rec.ID })
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now().UTC()
		}
		return append(records, usuarioToRecord(u)), nil
	})
}

func (r *UsuarioRepo) findOne(match func(usuarioRecord) bool) (*entity.Usuario, error) {
	records, err := r.col.snapshot()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if match(rec) {
			return usuarioFromRecord(rec), nil
		}
	}
	return nil, nil
}

func usuarioToRecord(u *entity.Usuario) usuarioRecord {
	return usuarioRecord{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

func usuarioFromRecord(rec usuarioRecord) *entity.Usuario {
	return &entity.Usuario{
		ID:           rec.ID,
		Email:        rec.Email,
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		Role:         rec.Role,
		CreatedAt:    rec.CreatedAt,
	}
}
