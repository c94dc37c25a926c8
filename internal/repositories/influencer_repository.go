package repositories

import (
	"context"
	"database/sql"

	"bountyboard_backend/internal/models"
)

type InfluencerRepository interface {
	Create(ctx context.Context, a *models.InfluencerApplication) error
	FindByID(ctx context.Context, id int64) (*models.InfluencerApplication, error)
	List(ctx context.Context) ([]*models.InfluencerApplication, error)
	ListByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.InfluencerApplication, error)
	UpdateStatus(ctx context.Context, a *models.InfluencerApplication) error
}

type influencerRepository struct {
	db *sql.DB
}

func NewInfluencerRepository(db *sql.DB) InfluencerRepository {
	return &influencerRepository{db: db}
}

const applicationColumns = `
	id, first_name, last_name, email, phone,
	instagram_handle, tiktok_handle, youtube_channel,
	status, id_verified, bank_verified, instagram_verified,
	admin_notes, rejection_reason,
	applied_at, approved_at, rejected_at`

func scanApplication(row rowScanner, a *models.InfluencerApplication) error {
	return row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.InstagramHandle, &a.TiktokHandle, &a.YoutubeChannel,
		&a.Status, &a.IDVerified, &a.BankVerified, &a.InstagramVerified,
		&a.AdminNotes, &a.RejectionReason,
		&a.AppliedAt, &a.ApprovedAt, &a.RejectedAt,
	)
}

// Create вставляет заявку. Дубль email ловится unique-констрейнтом,
// предварительной проверки существования нет намеренно.
func (r *influencerRepository) Create(ctx context.Context, a *models.InfluencerApplication) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO influencer_applications (
			first_name, last_name, email, phone,
			instagram_handle, tiktok_handle, youtube_channel, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, applied_at
	`,
		a.FirstName, a.LastName, a.Email, a.Phone,
		a.InstagramHandle, a.TiktokHandle, a.YoutubeChannel, a.Status,
	).Scan(&a.ID, &a.AppliedAt)
}

func (r *influencerRepository) FindByID(ctx context.Context, id int64) (*models.InfluencerApplication, error) {
	var a models.InfluencerApplication
	row := r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM influencer_applications WHERE id = $1`, id)
	if err := scanApplication(row, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *influencerRepository) List(ctx context.Context) ([]*models.InfluencerApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM influencer_applications ORDER BY applied_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *influencerRepository) ListByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.InfluencerApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM influencer_applications WHERE status = $1 ORDER BY applied_at DESC`,
		status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows *sql.Rows) ([]*models.InfluencerApplication, error) {
	var apps []*models.InfluencerApplication
	for rows.Next() {
		var a models.InfluencerApplication
		if err := scanApplication(rows, &a); err != nil {
			return nil, err
		}
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}

func (r *influencerRepository) UpdateStatus(ctx context.Context, a *models.InfluencerApplication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE influencer_applications SET
			status = $1, admin_notes = $2, rejection_reason = $3,
			approved_at = $4, rejected_at = $5
		WHERE id = $6
	`,
		a.Status, a.AdminNotes, a.RejectionReason,
		a.ApprovedAt, a.RejectedAt,
		a.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
