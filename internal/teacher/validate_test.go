package teacher

import (
	"errors"
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name string
		reg  Registration
		want error
	}{
		{"valid", Registration{Nombre: "Ana", Correo: "ana@test.com", Password: "secret123"}, nil},
		{"missing nombre", Registration{Correo: "ana@test.com", Password: "secret123"}, ErrMissingField},
		{"missing correo", Registration{Nombre: "Ana", Password: "secret123"}, ErrMissingField},
		{"missing password", Registration{Nombre: "Ana", Correo: "ana@test.com"}, ErrMissingField},
		{"bad email", Registration{Nombre: "Ana", Correo: "not-an-email", Password: "secret123"}, ErrInvalidEmail},
		{"tld too long", Registration{Nombre: "Ana", Correo: "ana@test.verylongtld", Password: "secret123"}, ErrInvalidEmail},
		{"short password", Registration{Nombre: "Ana", Correo: "ana@test.com", Password: "short1"}, ErrWeakPassword},
		{"seven chars", Registration{Nombre: "Ana", Correo: "ana@test.com", Password: "1234567"}, ErrWeakPassword},
		{"eight chars", Registration{Nombre: "Ana", Correo: "ana@test.com", Password: "12345678"}, nil},
		{"seven multibyte chars", Registration{Nombre: "Ana", Correo: "ana@test.com", Password: "ñéñéñéñ"}, ErrWeakPassword},
		{"eight multibyte chars", Registration{Nombre: "Ana", Correo: "ana@test.com", Password: "ñéñéñéñé"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validateRegistration(tc.reg); !errors.Is(got, tc.want) && got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestValidateRegistrationOrder(t *testing.T) {
	// Presence beats format, format beats length.
	reg := Registration{Correo: "bad", Password: "x"}
	if err := validateRegistration(reg); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField first, got %v", err)
	}
	reg = Registration{Nombre: "Ana", Correo: "bad", Password: "x"}
	if err := validateRegistration(reg); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail before length check, got %v", err)
	}
}

func TestValidateLogin(t *testing.T) {
	if err := validateLogin(Credentials{Correo: "ana@test.com", Password: "x"}); err != nil {
		t.Fatalf("login validation only checks presence, got %v", err)
	}
	if err := validateLogin(Credentials{Password: "x"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if err := validateLogin(Credentials{Correo: "ana@test.com"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
