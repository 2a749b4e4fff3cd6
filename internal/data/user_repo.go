package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shopforge/admin-api/internal/data/pgxutil"
	"github.com/shopforge/admin-api/internal/domain/model"
	apperrors "github.com/shopforge/admin-api/internal/errors"
	"github.com/shopforge/admin-api/internal/ports"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameExists is returned when provisioning a user with a duplicate username.
	ErrUsernameExists = errors.New("username already exists")
	// ErrDuplicateUserRecords is returned when a username lookup matches more
	// than one row. That state is a provisioning defect, not a choice the auth
	// path is allowed to make.
	ErrDuplicateUserRecords = errors.New("duplicate user records for username")
)

var _ ports.UserRepository = (*UserRepo)(nil)

// UserRepo provides database operations for operator accounts.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

const userColumns = "id, username, password_hash, role, created_at"

// GetByUsername retrieves a user by exact, case-sensitive username.
// Two matching rows means the store constraints were bypassed; surface that as
// a configuration error instead of silently picking one.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var usersOut []model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT "+userColumns+" FROM users WHERE username = $1 LIMIT 2", username)
		if err != nil {
			return err
		}
		defer rows.Close()
		usersOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	switch len(usersOut) {
	case 0:
		return nil, ErrUserNotFound
	case 1:
		return &usersOut[0], nil
	default:
		return nil, ErrDuplicateUserRecords
	}
}

// List retrieves users with pagination, newest first.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT "+userColumns+" FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	res := make([]*model.User, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Create inserts a provisioned user. passwordHash must already be the
// composite salt:key value; plaintext never reaches this layer.
func (r *UserRepo) Create(
	ctx context.Context,
	req *model.CreateUserRequest,
	passwordHash string,
) (*model.User, error) {
	if req == nil {
		return nil, errors.New("create user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errors.New("password hash is required and cannot be empty")
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (username, password_hash, role, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+userColumns,
			strings.TrimSpace(req.Username),
			passwordHash,
			req.Role,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		if apperrors.IsUniqueViolation(err, "") {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &out, nil
}
