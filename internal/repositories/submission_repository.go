package repositories

import (
	"context"
	"database/sql"

	"bountyboard_backend/internal/models"
)

// SubmissionWithUser - строка списочного запроса: сабмишен + привязанный юзер (left join)
type SubmissionWithUser struct {
	Submission models.Submission
	User       *models.User
}

type SubmissionRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Submission, error)
	ListForBrief(ctx context.Context, briefID int64) ([]*SubmissionWithUser, error)
	CountForBrief(ctx context.Context, briefID int64) (int64, error)
	UpdateReview(ctx context.Context, s *models.Submission) error
}

type submissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

const submissionColumns = `
	id, brief_id, user_id, creator_name, creator_email, creator_username,
	video_url, video_file_name, video_mime_type, video_size_bytes,
	status, feedback, payout_amount, payout_status,
	submitted_at, reviewed_by, reviewed_at,
	parent_submission_id, submission_version, allows_resubmission,
	created_at, updated_at`

func scanSubmission(row rowScanner, s *models.Submission) error {
	return row.Scan(
		&s.ID, &s.BriefID, &s.UserID, &s.CreatorName, &s.CreatorEmail, &s.CreatorUsername,
		&s.VideoURL, &s.VideoFileName, &s.VideoMimeType, &s.VideoSizeBytes,
		&s.Status, &s.Feedback, &s.PayoutAmount, &s.PayoutStatus,
		&s.SubmittedAt, &s.ReviewedBy, &s.ReviewedAt,
		&s.ParentSubmissionID, &s.SubmissionVersion, &s.AllowsResubmission,
		&s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *submissionRepository) FindByID(ctx context.Context, id int64) (*models.Submission, error) {
	var s models.Submission
	row := r.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)
	if err := scanSubmission(row, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListForBrief возвращает сабмишены брифа с привязанным юзером, новые первыми.
// Пустой бриф дает пустой список - различение "брифа нет" лежит на сервисе.
func (r *submissionRepository) ListForBrief(ctx context.Context, briefID int64) ([]*SubmissionWithUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			s.id, s.brief_id, s.user_id, s.creator_name, s.creator_email, s.creator_username,
			s.video_url, s.video_file_name, s.video_mime_type, s.video_size_bytes,
			s.status, s.feedback, s.payout_amount, s.payout_status,
			s.submitted_at, s.reviewed_by, s.reviewed_at,
			s.parent_submission_id, s.submission_version, s.allows_resubmission,
			s.created_at, s.updated_at,
			u.id, u.email, u.username, u.first_name, u.last_name
		FROM submissions s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE s.brief_id = $1
		ORDER BY s.submitted_at DESC
	`, briefID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*SubmissionWithUser

	for rows.Next() {
		var item SubmissionWithUser
		var (
			userID                      sql.NullInt64
			userEmail, userUsername     sql.NullString
			userFirstName, userLastName sql.NullString
		)

		s := &item.Submission
		err := rows.Scan(
			&s.ID, &s.BriefID, &s.UserID, &s.CreatorName, &s.CreatorEmail, &s.CreatorUsername,
			&s.VideoURL, &s.VideoFileName, &s.VideoMimeType, &s.VideoSizeBytes,
			&s.Status, &s.Feedback, &s.PayoutAmount, &s.PayoutStatus,
			&s.SubmittedAt, &s.ReviewedBy, &s.ReviewedAt,
			&s.ParentSubmissionID, &s.SubmissionVersion, &s.AllowsResubmission,
			&s.CreatedAt, &s.UpdatedAt,
			&userID, &userEmail, &userUsername, &userFirstName, &userLastName,
		)
		if err != nil {
			return nil, err
		}

		if userID.Valid {
			item.User = &models.User{
				Email:     userEmail.String,
				Username:  userUsername.String,
				FirstName: userFirstName.String,
				LastName:  userLastName.String,
			}
			item.User.ID = userID.Int64
		}

		result = append(result, &item)
	}

	return result, rows.Err()
}

func (r *submissionRepository) CountForBrief(ctx context.Context, briefID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE brief_id = $1`, briefID,
	).Scan(&count)
	return count, err
}

// UpdateReview записывает результат ревью: статус, фидбек, выплату, ревьюера.
func (r *submissionRepository) UpdateReview(ctx context.Context, s *models.Submission) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE submissions SET
			status = $1, feedback = $2,
			payout_amount = $3, payout_status = $4,
			reviewed_by = $5, reviewed_at = $6,
			allows_resubmission = $7,
			updated_at = now()
		WHERE id = $8
	`,
		s.Status, s.Feedback,
		s.PayoutAmount, s.PayoutStatus,
		s.ReviewedBy, s.ReviewedAt,
		s.AllowsResubmission,
		s.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
