// Package sqlite implementa los puertos de persistencia sobre un único
// archivo SQLite local (driver puro Go, sin CGO).
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Querier abstrae *sql.DB y *sql.Tx para que los repositorios funcionen
// igual dentro y fuera de una transacción.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store es el handle de persistencia con ciclo de vida explícito:
// se abre en el arranque del proceso y se cierra en el apagado.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo de base de datos, activa foreign keys
// y aplica el esquema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de la DB: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	// SQLite no aplica foreign keys por defecto
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("activar foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("aplicar esquema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB expone la conexión subyacente para construir repositorios y el TxRunner.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close cierra la conexión a la base de datos.
func (s *Store) Close() error {
	return s.db.Close()
}
