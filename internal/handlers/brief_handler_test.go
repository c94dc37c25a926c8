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

type stubBriefService struct {
	createFn   func(ctx context.Context, ownerID *int64, req *dto.CreateBriefRequest) (*dto.BriefResponse, error)
	getFn      func(ctx context.Context, slugOrRef string) (*dto.BriefResponse, error)
	updateFn   func(ctx context.Context, id int64, req *dto.UpdateBriefRequest) (*dto.BriefResponse, error)
	listFn     func(ctx context.Context) ([]*dto.BriefResponse, error)
	assignFn   func(ctx context.Context, id int64) (string, error)
	backfillFn func(ctx context.Context) (int, error)
}

func (s *stubBriefService) CreateBrief(ctx context.Context, ownerID *int64, req *dto.CreateBriefRequest) (*dto.BriefResponse, error) {
	return s.createFn(ctx, ownerID, req)
}

func (s *stubBriefService) GetBriefBySlug(ctx context.Context, slugOrRef string) (*dto.BriefResponse, error) {
	return s.getFn(ctx, slugOrRef)
}

func (s *stubBriefService) UpdateBrief(ctx context.Context, id int64, req *dto.UpdateBriefRequest) (*dto.BriefResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubBriefService) ListBriefs(ctx context.Context) ([]*dto.BriefResponse, error) {
	return s.listFn(ctx)
}

func (s *stubBriefService) AssignSlug(ctx context.Context, id int64) (string, error) {
	return s.assignFn(ctx, id)
}

func (s *stubBriefService) BackfillSlugs(ctx context.Context) (int, error) {
	return s.backfillFn(ctx)
}

func newBriefTestRouter(svc *stubBriefService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBriefHandler(NewBaseHandler(validator.New()), svc)

	r := gin.New()
	r.GET("/briefs", h.List)
	r.POST("/briefs", h.Create)
	r.GET("/briefs/:slug", h.GetBySlug)
	r.PUT("/briefs/:slug", h.Update)
	return r
}

func TestBriefHandler_Create(t *testing.T) {
	svc := &stubBriefService{
		createFn: func(_ context.Context, _ *int64, req *dto.CreateBriefRequest) (*dto.BriefResponse, error) {
			assert.Equal(t, "summer-campaign", req.Slug)
			return &dto.BriefResponse{ID: 1, Slug: req.Slug, Title: req.Title}, nil
		},
	}
	r := newBriefTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/briefs", jsonBody(
		`{"slug":"summer-campaign","title":"Summer Campaign","orgName":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"summer-campaign"`)
}

func TestBriefHandler_CreateMissingRequired(t *testing.T) {
	r := newBriefTestRouter(&stubBriefService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/briefs", jsonBody(`{"title":"No Slug"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, w.Body.String(), "slug")
	assert.Contains(t, w.Body.String(), "orgName")
}

func TestBriefHandler_GetBySlugNotFound(t *testing.T) {
	svc := &stubBriefService{
		getFn: func(_ context.Context, slugOrRef string) (*dto.BriefResponse, error) {
			return nil, apperrors.ErrNotFound(nil, "brief", "Brief not found").
				WithDetails(map[string]string{"slug": slugOrRef})
		},
	}
	r := newBriefTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs/no-such-brief", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	// Запрошенный slug возвращается в деталях ошибки
	assert.Contains(t, w.Body.String(), "no-such-brief")
}

func TestBriefHandler_UpdateRejectsNonNumericID(t *testing.T) {
	r := newBriefTestRouter(&stubBriefService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/briefs/summer-campaign", jsonBody(`{"title":"New"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBriefHandler_UpdateConflictOnSlug(t *testing.T) {
	svc := &stubBriefService{
		updateFn: func(_ context.Context, id int64, _ *dto.UpdateBriefRequest) (*dto.BriefResponse, error) {
			assert.Equal(t, int64(5), id)
			return nil, apperrors.ErrSlugTaken
		},
	}
	r := newBriefTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/briefs/5", jsonBody(`{"title":"New"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBriefHandler_List(t *testing.T) {
	count := int64(2)
	svc := &stubBriefService{
		listFn: func(_ context.Context) ([]*dto.BriefResponse, error) {
			return []*dto.BriefResponse{
				{ID: 1, Slug: "summer-campaign", SubmissionCount: &count},
			}, nil
		},
	}
	r := newBriefTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"submissionCount":2`)
}
