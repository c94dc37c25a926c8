package repositories

import (
	"context"
	"database/sql"

	"bountyboard_backend/internal/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, email, password_hash, role, username, first_name, last_name, is_onboarded,
	org_name, org_slug, org_logo_url, org_website, org_description,
	created_at, updated_at`

func scanUser(row rowScanner, u *models.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Username, &u.FirstName, &u.LastName, &u.IsOnboarded,
		&u.OrgName, &u.OrgSlug, &u.OrgLogoURL, &u.OrgWebsite, &u.OrgDescription,
		&u.CreatedAt, &u.UpdatedAt,
	)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err := scanUser(row, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err := scanUser(row, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
