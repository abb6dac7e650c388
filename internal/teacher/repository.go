package teacher

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists teacher records.
type Repository interface {
	Create(ctx context.Context, t Teacher) (int64, error)
	FindByCorreo(ctx context.Context, correo string) (Teacher, error)
	FindByID(ctx context.Context, id int64) (Teacher, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed teacher repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new record and returns the store-assigned id. The unique
// constraint on correo is the real uniqueness enforcement point; a violation
// surfaces as ErrEmailTaken so a registration that loses a race gets the same
// conflict answer as one caught by the lookup fast path.
func (r *PostgresRepository) Create(ctx context.Context, t Teacher) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `INSERT INTO profesor (nombre, correo, contrasena_hash, created_at)
        VALUES ($1, $2, $3, $4) RETURNING id`, t.Nombre, t.Correo, t.PasswordHash, t.CreatedAt.UTC()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// FindByCorreo fetches a record by email.
func (r *PostgresRepository) FindByCorreo(ctx context.Context, correo string) (Teacher, error) {
	row := r.db.QueryRow(ctx, `SELECT id, nombre, correo, contrasena_hash, created_at FROM profesor WHERE correo = $1`, correo)
	return scanTeacher(row)
}

// FindByID fetches a record by its identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Teacher, error) {
	row := r.db.QueryRow(ctx, `SELECT id, nombre, correo, contrasena_hash, created_at FROM profesor WHERE id = $1`, id)
	return scanTeacher(row)
}

func scanTeacher(row pgx.Row) (Teacher, error) {
	var (
		t         Teacher
		createdAt time.Time
	)
	if err := row.Scan(&t.ID, &t.Nombre, &t.Correo, &t.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Teacher{}, ErrNotFound
		}
		return Teacher{}, err
	}
	t.CreatedAt = createdAt.UTC()
	return t, nil
}
