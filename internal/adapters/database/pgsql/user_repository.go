package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgledger/orgledger-backend/internal/apperrors"
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool, timeout time.Duration) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool, Timeout: timeout},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const fullUserSelect = `
SELECT u."id", u."email", u."password", u."firstName", u."lastName", u."phone",
	u."role", u."isActive", u."organizationId", u."createdAt", u."updatedAt"
FROM "User" u
`

// getUsers runs the shared select with the given filter clause and collects rows.
func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, fullUserSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.User{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u."id" = $1 AND u."organizationId" = $2`, userID, organizationID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u."email" = $1`, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return &users[0], nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, organizationID string) ([]domain.User, error) {
	return r.getUsers(ctx, `WHERE u."organizationId" = $1 ORDER BY u."createdAt" DESC`, organizationID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO "User" ("id", "email", "password", "firstName", "lastName", "phone", "role", "isActive", "organizationId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.IsActive,
		user.OrganizationID,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("user with email " + user.Email + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save user "+user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE "User"
		SET "firstName" = $1, "lastName" = $2, "phone" = $3, "role" = $4, "isActive" = $5, "updatedAt" = $6
		WHERE "id" = $7 AND "organizationId" = $8;
	`
	result, err := r.Pool.Exec(ctx, query,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.IsActive,
		user.UpdatedAt,
		user.UserID,
		user.OrganizationID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}
