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

type stubSubmissionService struct {
	listFn   func(ctx context.Context, briefID int64) ([]*dto.SubmissionResponse, error)
	reviewFn func(ctx context.Context, id int64, reviewer string, req *dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, error)
}

func (s *stubSubmissionService) ListForBrief(ctx context.Context, briefID int64) ([]*dto.SubmissionResponse, error) {
	return s.listFn(ctx, briefID)
}

func (s *stubSubmissionService) ReviewSubmission(ctx context.Context, id int64, reviewer string, req *dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, error) {
	return s.reviewFn(ctx, id, reviewer, req)
}

func newSubmissionTestRouter(svc *stubSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSubmissionHandler(NewBaseHandler(validator.New()), svc)

	r := gin.New()
	r.GET("/submissions", h.ListForBrief)
	r.PATCH("/submissions/:submissionId/status", h.Review)
	return r
}

func TestSubmissionHandler_ListRequiresBriefID(t *testing.T) {
	r := newSubmissionTestRouter(&stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/submissions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "briefId")
}

func TestSubmissionHandler_ListRejectsBadBriefID(t *testing.T) {
	r := newSubmissionTestRouter(&stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/submissions?briefId=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Бриф без сабмишенов отдает пустой JSON-массив, не null
func TestSubmissionHandler_ListEmpty(t *testing.T) {
	svc := &stubSubmissionService{
		listFn: func(_ context.Context, briefID int64) ([]*dto.SubmissionResponse, error) {
			assert.Equal(t, int64(3), briefID)
			return []*dto.SubmissionResponse{}, nil
		},
	}
	r := newSubmissionTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/submissions?briefId=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSubmissionHandler_ListBriefNotFound(t *testing.T) {
	svc := &stubSubmissionService{
		listFn: func(_ context.Context, _ int64) ([]*dto.SubmissionResponse, error) {
			return nil, apperrors.ErrBriefNotFound
		},
	}
	r := newSubmissionTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/submissions?briefId=999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestSubmissionHandler_ReviewRejectsUnknownStatus(t *testing.T) {
	r := newSubmissionTestRouter(&stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/submissions/1/status",
		jsonBody(`{"status": "BANNED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}
