package teacher

import "time"

// Teacher represents a registered teacher account. PasswordHash holds the
// bcrypt derivation of the credential; the plaintext is never stored.
type Teacher struct {
	ID           int64
	Nombre       string
	Correo       string
	PasswordHash string
	CreatedAt    time.Time
}

// Registration carries the input of one registration call.
type Registration struct {
	Nombre   string
	Correo   string
	Password string
}

// Credentials carries the input of one login call.
type Credentials struct {
	Correo   string
	Password string
}
