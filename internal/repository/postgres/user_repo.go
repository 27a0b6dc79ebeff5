// internal/repository/postgres/user_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"hr-identity-service/internal/domain/identity"
	xerrors "hr-identity-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByPersonnelNumber retrieves one employee record with credentials
// and eligibility fields
func (r *UserRepository) FindUserByPersonnelNumber(ctx context.Context, personnelNumber int32) (*identity.User, error) {
	query := `
		SELECT personnel_nr, salt, password, password_expiration_date,
		       username, account_disabled, date_dismiss, telefon, email
		FROM security.users
		WHERE personnel_nr = $1
	`

	var user identity.User
	err := r.db.QueryRow(ctx, query, personnelNumber).Scan(
		&user.PersonnelNumber, &user.Salt, &user.PasswordHash, &user.PasswordExpiresAt,
		&user.Username, &user.AccountDisabled, &user.DismissedAt, &user.Phone, &user.Email,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// ListUserRoles retrieves the roles granted to an employee
func (r *UserRepository) ListUserRoles(ctx context.Context, personnelNumber int32) ([]identity.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM security.roles r
		JOIN security.user_roles ur ON ur.role_id = r.id
		WHERE ur.personnel_nr = $1
		ORDER BY r.id
	`

	rows, err := r.db.Query(ctx, query, personnelNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	defer rows.Close()

	var roles []identity.Role
	for rows.Next() {
		var role identity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roles: %w", err)
	}

	return roles, nil
}

// ListUserResources retrieves the resources an employee may access
func (r *UserRepository) ListUserResources(ctx context.Context, personnelNumber int32) ([]identity.Resource, error) {
	query := `
		SELECT res.id, res.name, ures.writable
		FROM security.resources res
		JOIN security.user_resources ures ON ures.resource_id = res.id
		WHERE ures.personnel_nr = $1
		ORDER BY res.id
	`

	rows, err := r.db.Query(ctx, query, personnelNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list user resources: %w", err)
	}
	defer rows.Close()

	var resources []identity.Resource
	for rows.Next() {
		var res identity.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Writable); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resources: %w", err)
	}

	return resources, nil
}

// CountRoles returns the total number of defined roles
func (r *UserRepository) CountRoles(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM security.roles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count roles: %w", err)
	}
	return count, nil
}

// Ping verifies database connectivity for health reporting
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
