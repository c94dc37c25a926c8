package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/internal/validator"
	"bountyboard_backend/pkg/apperrors"
)

type stubFeedbackService struct {
	listFn   func(ctx context.Context, submissionID int64) ([]*dto.FeedbackResponse, error)
	createFn func(ctx context.Context, submissionID int64, authorID *int64, authorName string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	updateFn func(ctx context.Context, id int64, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubFeedbackService) ListForSubmission(ctx context.Context, submissionID int64) ([]*dto.FeedbackResponse, error) {
	return s.listFn(ctx, submissionID)
}

func (s *stubFeedbackService) CreateFeedback(ctx context.Context, submissionID int64, authorID *int64, authorName string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	return s.createFn(ctx, submissionID, authorID, authorName, req)
}

func (s *stubFeedbackService) UpdateFeedback(ctx context.Context, id int64, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubFeedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newFeedbackTestRouter(svc *stubFeedbackService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFeedbackHandler(NewBaseHandler(validator.New()), svc)

	r := gin.New()
	r.GET("/submissions/:submissionId/feedback", h.ListForSubmission)
	r.POST("/submissions/:submissionId/feedback", h.Create)
	r.PATCH("/feedback/:feedbackId", h.Update)
	r.DELETE("/feedback/:feedbackId", h.Delete)
	return r
}

func TestFeedbackHandler_Create(t *testing.T) {
	svc := &stubFeedbackService{
		createFn: func(_ context.Context, submissionID int64, _ *int64, authorName string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
			assert.Equal(t, int64(10), submissionID)
			return &dto.FeedbackResponse{ID: 1, SubmissionID: submissionID, AuthorName: authorName, Comment: req.Comment}, nil
		},
	}
	r := newFeedbackTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/submissions/10/feedback", jsonBody(`{"comment":"Nice pacing"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Nice pacing")
}

func TestFeedbackHandler_CreateMissingComment(t *testing.T) {
	r := newFeedbackTestRouter(&stubFeedbackService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/submissions/10/feedback", jsonBody(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

// Комментарий из одних пробелов проходит биндинг, но отклоняется сервисом
func TestFeedbackHandler_CreateWhitespaceComment(t *testing.T) {
	svc := &stubFeedbackService{
		createFn: func(_ context.Context, _ int64, _ *int64, _ string, _ *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
			return nil, apperrors.NewBadRequestError("Comment is required")
		},
	}
	r := newFeedbackTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/submissions/10/feedback", jsonBody(`{"comment":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Comment is required")
}

func TestFeedbackHandler_Delete(t *testing.T) {
	svc := &stubFeedbackService{
		deleteFn: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(4), id)
			return nil
		},
	}
	r := newFeedbackTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/feedback/4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestFeedbackHandler_DeleteNotFound(t *testing.T) {
	svc := &stubFeedbackService{
		deleteFn: func(_ context.Context, _ int64) error {
			return apperrors.ErrNotFound(nil, "feedback", "Feedback not found")
		},
	}
	r := newFeedbackTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/feedback/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
