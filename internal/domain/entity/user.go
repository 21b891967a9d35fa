package entity

import "time"

// User representa un usuario del sistema. Se crea vía registro y se consume en login;
// en este alcance nunca se actualiza ni se elimina.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
