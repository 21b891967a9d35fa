package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con DB o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar *sql.DB o *sql.Tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Retorna domain.ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt.Unix(), user.UpdatedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Retorna (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.get(`SELECT id, username, password_hash, created_at, updated_at FROM users WHERE id = ?`, id)
}

// GetByUsername obtiene un usuario por username. Retorna (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.get(`SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ?`, username)
}

func (r *UserRepo) get(query string, arg any) (*entity.User, error) {
	var u entity.User
	var createdAt, updatedAt int64
	err := r.q.QueryRow(query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.CreatedAt = unixTime(createdAt)
	u.UpdatedAt = unixTime(updatedAt)
	return &u, nil
}
