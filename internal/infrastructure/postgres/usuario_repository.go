package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, email, username, password_hash, role, created_at`

// List devuelve todos los usuarios.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := scanUsuario(rows, &u); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	return r.findOne(`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// FindByEmail busca por email exacto. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.findOne(`SELECT `+usuarioCols+` FROM usuarios WHERE email = $1`, email)
}

// FindByUsername busca por username exacto. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	return r.findOne(`SELECT `+usuarioCols+` FROM usuarios WHERE username = $1`, username)
}

// Create inserta el usuario y materializa ID y CreatedAt desde la base.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (email, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		u.Email, u.Username, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) findOne(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := scanUsuario(r.q.QueryRow(context.Background(), query, arg), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

func scanUsuario(row pgx.Row, u *entity.Usuario) error {
	return row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
}
