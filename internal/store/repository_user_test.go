package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubHasher is a deterministic PasswordHasher for repository tests.
type stubHasher struct {
	form string
	err  error
}

func (s *stubHasher) Hash(string) (string, error) { return s.form, s.err }

func (s *stubHasher) Verify(_, storedForm string) bool { return storedForm == s.form }

func newTestUserRepo(t *testing.T, hasher *stubHasher) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		hasher: hasher,
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	hasher := &stubHasher{form: "$2a$10$storedform"}
	repo, mock, db := newTestUserRepo(t, hasher)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "email", "credential", "created_at"}).
		AddRow(1, "john@example.com", hasher.form, now)

	// the INSERT must receive the hashed form, never the plaintext
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john@example.com", hasher.form).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, "john@example.com", "plaintext-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != "john@example.com" {
		t.Errorf("expected email john@example.com, got %s", created.Email)
	}
	if created.Credential == "plaintext-secret" {
		t.Errorf("plaintext credential must never round-trip through the store")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	ctx := context.Background()

	for _, email := range []string{"", "plainstring", "missing-domain@", "@missing-local.com", "two words@example.com", "no-tld@host"} {
		_, err := repo.CreateUser(ctx, email, "secret")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}

	// nothing may reach the database
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database interaction: %v", err)
	}
}

func TestCreateUser_EmptyCredential(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	_, err := repo.CreateUser(context.Background(), "john@example.com", "")
	if !errors.Is(err, ErrEmptyCredential) {
		t.Fatalf("expected ErrEmptyCredential, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database interaction: %v", err)
	}
}

func TestCreateUser_HashError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{err: errors.New("hashing broke")})
	defer db.Close()

	_, err := repo.CreateUser(context.Background(), "john@example.com", "secret")
	if err == nil || !strings.Contains(err.Error(), "error hashing credential") {
		t.Fatalf("expected wrapped hashing error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database interaction: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), "john@example.com", "secret")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), "john@example.com", "secret")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(context.Background(), "john@example.com", "secret")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "email", "credential", "created_at"}).
		AddRow(1, "john@example.com", "$2a$10$storedform", now)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "john@example.com" {
		t.Errorf("expected email john@example.com, got %s", found.Email)
	}
	if found.Credential != "$2a$10$storedform" {
		t.Errorf("expected stored credential form, got %s", found.Credential)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	// zero rows makes Scan yield sql.ErrNoRows
	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "credential", "created_at"}))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_CaseSensitiveLookup(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, &stubHasher{form: "x"})
	defer db.Close()

	// the exact bytes of the email must be passed through to the query
	mock.ExpectQuery("SELECT user_id").
		WithArgs("John@Example.COM").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "credential", "created_at"}))

	_, err := repo.FindUserByEmail(context.Background(), "John@Example.COM")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}
