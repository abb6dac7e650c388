package teacher

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service implements the registration and login flows.
type Service struct {
	repo   Repository
	hasher PasswordHasher
}

// NewService creates a teacher service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, hasher: NewPasswordHasher()}
}

// Register validates the input, checks correo availability, hashes the
// credential and inserts the record. The lookup is only a fast path for a
// friendly conflict answer; the store's unique constraint decides races.
func (s *Service) Register(ctx context.Context, reg Registration) (Teacher, error) {
	if err := validateRegistration(reg); err != nil {
		return Teacher{}, err
	}

	_, err := s.repo.FindByCorreo(ctx, reg.Correo)
	switch {
	case err == nil:
		return Teacher{}, ErrEmailTaken
	case !errors.Is(err, ErrNotFound):
		return Teacher{}, fmt.Errorf("lookup correo: %w", err)
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return Teacher{}, fmt.Errorf("hash password: %w", err)
	}

	t := Teacher{
		Nombre:       reg.Nombre,
		Correo:       reg.Correo,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return Teacher{}, ErrEmailTaken
		}
		return Teacher{}, fmt.Errorf("insert teacher: %w", err)
	}
	t.ID = id

	return t, nil
}

// Authenticate validates the input, loads the record and verifies the
// credential against the stored hash.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (Teacher, error) {
	if err := validateLogin(creds); err != nil {
		return Teacher{}, err
	}

	t, err := s.repo.FindByCorreo(ctx, creds.Correo)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Teacher{}, ErrNotFound
		}
		return Teacher{}, fmt.Errorf("lookup correo: %w", err)
	}

	if !s.hasher.Verify(creds.Password, t.PasswordHash) {
		return Teacher{}, ErrBadCredential
	}

	return t, nil
}
