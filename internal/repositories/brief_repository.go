package repositories

import (
	"context"
	"database/sql"

	"bountyboard_backend/internal/models"
)

// BriefWithOwner - строка списочного запроса: бриф + владелец (left join) + счетчик сабмишенов
type BriefWithOwner struct {
	Brief           models.Brief
	Owner           *models.User
	SubmissionCount int64
}

type BriefRepository interface {
	Create(ctx context.Context, b *models.Brief) error
	FindByID(ctx context.Context, id int64) (*models.Brief, error)
	FindBySlug(ctx context.Context, slug string) (*models.Brief, error)
	Update(ctx context.Context, b *models.Brief) error
	UpdateSlug(ctx context.Context, id int64, slug string) error
	ListWithOwners(ctx context.Context) ([]*BriefWithOwner, error)
	ListMissingSlug(ctx context.Context) ([]*models.Brief, error)
}

type briefRepository struct {
	db *sql.DB
}

func NewBriefRepository(db *sql.DB) BriefRepository {
	return &briefRepository{db: db}
}

const briefColumns = `
	id, slug, title, org_name, business_line, state, overview, requirements,
	deliverable_ratio, deliverable_length, deliverable_format,
	reward_type, reward_amount, reward_currency, reward_description,
	deadline, status, password, max_winners, max_submissions_per_creator,
	owner_id, created_at, updated_at`

func scanBrief(row rowScanner, b *models.Brief) error {
	var requirements []byte
	err := row.Scan(
		&b.ID, &b.Slug, &b.Title, &b.OrgName, &b.BusinessLine, &b.State, &b.Overview, &requirements,
		&b.DeliverableRatio, &b.DeliverableLength, &b.DeliverableFormat,
		&b.RewardType, &b.RewardAmount, &b.RewardCurrency, &b.RewardDescription,
		&b.Deadline, &b.Status, &b.Password, &b.MaxWinners, &b.MaxSubmissionsPerCreator,
		&b.OwnerID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	b.Requirements = requirements
	return nil
}

func (r *briefRepository) Create(ctx context.Context, b *models.Brief) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO briefs (
			slug, title, org_name, business_line, state, overview, requirements,
			deliverable_ratio, deliverable_length, deliverable_format,
			reward_type, reward_amount, reward_currency, reward_description,
			deadline, status, password, max_winners, max_submissions_per_creator,
			owner_id
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17, $18, $19,
			$20
		)
		RETURNING id, created_at, updated_at
	`,
		b.Slug, b.Title, b.OrgName, b.BusinessLine, b.State, b.Overview, []byte(b.Requirements),
		b.DeliverableRatio, b.DeliverableLength, b.DeliverableFormat,
		b.RewardType, b.RewardAmount, b.RewardCurrency, b.RewardDescription,
		b.Deadline, b.Status, b.Password, b.MaxWinners, b.MaxSubmissionsPerCreator,
		b.OwnerID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *briefRepository) FindByID(ctx context.Context, id int64) (*models.Brief, error) {
	var b models.Brief
	row := r.db.QueryRowContext(ctx, `SELECT `+briefColumns+` FROM briefs WHERE id = $1`, id)
	if err := scanBrief(row, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *briefRepository) FindBySlug(ctx context.Context, slug string) (*models.Brief, error) {
	var b models.Brief
	row := r.db.QueryRowContext(ctx, `SELECT `+briefColumns+` FROM briefs WHERE slug = $1`, slug)
	if err := scanBrief(row, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update перезаписывает все изменяемые поля одной командой.
func (r *briefRepository) Update(ctx context.Context, b *models.Brief) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE briefs SET
			title = $1, org_name = $2, business_line = $3, state = $4, overview = $5,
			requirements = $6,
			deliverable_ratio = $7, deliverable_length = $8, deliverable_format = $9,
			reward_type = $10, reward_amount = $11, reward_currency = $12, reward_description = $13,
			deadline = $14, status = $15,
			max_winners = $16, max_submissions_per_creator = $17,
			updated_at = now()
		WHERE id = $18
	`,
		b.Title, b.OrgName, b.BusinessLine, b.State, b.Overview,
		[]byte(b.Requirements),
		b.DeliverableRatio, b.DeliverableLength, b.DeliverableFormat,
		b.RewardType, b.RewardAmount, b.RewardCurrency, b.RewardDescription,
		b.Deadline, b.Status,
		b.MaxWinners, b.MaxSubmissionsPerCreator,
		b.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *briefRepository) UpdateSlug(ctx context.Context, id int64, slug string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE briefs SET slug = $1, updated_at = now() WHERE id = $2
	`, slug, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListWithOwners возвращает все брифы с владельцем (left join, организация
// может отсутствовать) и счетчиком сабмишенов, новые первыми.
func (r *briefRepository) ListWithOwners(ctx context.Context) ([]*BriefWithOwner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			b.id, b.slug, b.title, b.org_name, b.business_line, b.state, b.overview, b.requirements,
			b.deliverable_ratio, b.deliverable_length, b.deliverable_format,
			b.reward_type, b.reward_amount, b.reward_currency, b.reward_description,
			b.deadline, b.status, b.password, b.max_winners, b.max_submissions_per_creator,
			b.owner_id, b.created_at, b.updated_at,
			u.id, u.email, u.username, u.first_name, u.last_name,
			u.org_name, u.org_slug, u.org_logo_url, u.org_website, u.org_description,
			(SELECT COUNT(*) FROM submissions s WHERE s.brief_id = b.id) AS submission_count
		FROM briefs b
		LEFT JOIN users u ON u.id = b.owner_id
		ORDER BY b.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*BriefWithOwner

	for rows.Next() {
		var item BriefWithOwner
		var requirements []byte
		var (
			ownerID                                     sql.NullInt64
			ownerEmail, ownerUsername                   sql.NullString
			ownerFirstName, ownerLastName, ownerOrgName sql.NullString
			ownerOrgSlug, ownerOrgLogoURL               sql.NullString
			ownerOrgWebsite, ownerOrgDescription        sql.NullString
		)

		b := &item.Brief
		err := rows.Scan(
			&b.ID, &b.Slug, &b.Title, &b.OrgName, &b.BusinessLine, &b.State, &b.Overview, &requirements,
			&b.DeliverableRatio, &b.DeliverableLength, &b.DeliverableFormat,
			&b.RewardType, &b.RewardAmount, &b.RewardCurrency, &b.RewardDescription,
			&b.Deadline, &b.Status, &b.Password, &b.MaxWinners, &b.MaxSubmissionsPerCreator,
			&b.OwnerID, &b.CreatedAt, &b.UpdatedAt,
			&ownerID, &ownerEmail, &ownerUsername, &ownerFirstName, &ownerLastName,
			&ownerOrgName, &ownerOrgSlug, &ownerOrgLogoURL, &ownerOrgWebsite, &ownerOrgDescription,
			&item.SubmissionCount,
		)
		if err != nil {
			return nil, err
		}
		b.Requirements = requirements

		if ownerID.Valid {
			item.Owner = &models.User{
				Email:          ownerEmail.String,
				Username:       ownerUsername.String,
				FirstName:      ownerFirstName.String,
				LastName:       ownerLastName.String,
				OrgName:        ownerOrgName.String,
				OrgSlug:        nullableString(ownerOrgSlug),
				OrgLogoURL:     nullableString(ownerOrgLogoURL),
				OrgWebsite:     nullableString(ownerOrgWebsite),
				OrgDescription: nullableString(ownerOrgDescription),
			}
			item.Owner.ID = ownerID.Int64
		}

		result = append(result, &item)
	}

	return result, rows.Err()
}

// ListMissingSlug - брифы без slug, для backfill-утилиты.
func (r *briefRepository) ListMissingSlug(ctx context.Context) ([]*models.Brief, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+briefColumns+` FROM briefs WHERE slug IS NULL OR slug = '' ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var briefs []*models.Brief
	for rows.Next() {
		var b models.Brief
		if err := scanBrief(rows, &b); err != nil {
			return nil, err
		}
		briefs = append(briefs, &b)
	}

	return briefs, rows.Err()
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
