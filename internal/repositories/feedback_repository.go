package repositories

import (
	"context"
	"database/sql"

	"bountyboard_backend/internal/models"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *models.Feedback) error
	FindByID(ctx context.Context, id int64) (*models.Feedback, error)
	ListForSubmission(ctx context.Context, submissionID int64) ([]*models.Feedback, error)
	UpdateComment(ctx context.Context, id int64, comment string) error
	Delete(ctx context.Context, id int64) error
}

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, f *models.Feedback) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO feedbacks (submission_id, author_id, author_name, comment, requires_action)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		f.SubmissionID, f.AuthorID, f.AuthorName, f.Comment, f.RequiresAction,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *feedbackRepository) FindByID(ctx context.Context, id int64) (*models.Feedback, error) {
	var f models.Feedback
	err := r.db.QueryRowContext(ctx, `
		SELECT id, submission_id, author_id, author_name, comment, requires_action, created_at, updated_at
		FROM feedbacks WHERE id = $1
	`, id).Scan(
		&f.ID, &f.SubmissionID, &f.AuthorID, &f.AuthorName, &f.Comment, &f.RequiresAction,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *feedbackRepository) ListForSubmission(ctx context.Context, submissionID int64) ([]*models.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, submission_id, author_id, author_name, comment, requires_action, created_at, updated_at
		FROM feedbacks WHERE submission_id = $1 ORDER BY created_at DESC
	`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*models.Feedback
	for rows.Next() {
		var f models.Feedback
		err := rows.Scan(
			&f.ID, &f.SubmissionID, &f.AuthorID, &f.AuthorName, &f.Comment, &f.RequiresAction,
			&f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, &f)
	}

	return feedbacks, rows.Err()
}

func (r *feedbackRepository) UpdateComment(ctx context.Context, id int64, comment string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE feedbacks SET comment = $1, updated_at = now() WHERE id = $2
	`, comment, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
