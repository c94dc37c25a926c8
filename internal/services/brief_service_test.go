package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

// --- In-memory фейки репозиториев ---

type fakeBriefRepo struct {
	briefs map[int64]*models.Brief
	nextID int64
}

func newFakeBriefRepo() *fakeBriefRepo {
	return &fakeBriefRepo{briefs: make(map[int64]*models.Brief)}
}

func (f *fakeBriefRepo) add(b *models.Brief) *models.Brief {
	f.nextID++
	b.ID = f.nextID
	f.briefs[b.ID] = b
	return b
}

func (f *fakeBriefRepo) slugTaken(slug string, exceptID int64) bool {
	for id, b := range f.briefs {
		if id != exceptID && b.Slug != nil && *b.Slug == slug {
			return true
		}
	}
	return false
}

func (f *fakeBriefRepo) Create(_ context.Context, b *models.Brief) error {
	if b.Slug != nil && f.slugTaken(*b.Slug, 0) {
		return &pgconn.PgError{Code: "23505"}
	}
	f.add(b)
	return nil
}

func (f *fakeBriefRepo) FindByID(_ context.Context, id int64) (*models.Brief, error) {
	b, ok := f.briefs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBriefRepo) FindBySlug(_ context.Context, slug string) (*models.Brief, error) {
	for _, b := range f.briefs {
		if b.Slug != nil && *b.Slug == slug {
			copied := *b
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeBriefRepo) Update(_ context.Context, b *models.Brief) error {
	if _, ok := f.briefs[b.ID]; !ok {
		return sql.ErrNoRows
	}
	copied := *b
	f.briefs[b.ID] = &copied
	return nil
}

func (f *fakeBriefRepo) UpdateSlug(_ context.Context, id int64, slug string) error {
	b, ok := f.briefs[id]
	if !ok {
		return sql.ErrNoRows
	}
	if f.slugTaken(slug, id) {
		return &pgconn.PgError{Code: "23505"}
	}
	b.Slug = &slug
	return nil
}

func (f *fakeBriefRepo) ListWithOwners(_ context.Context) ([]*repositories.BriefWithOwner, error) {
	var result []*repositories.BriefWithOwner
	for _, b := range f.briefs {
		result = append(result, &repositories.BriefWithOwner{Brief: *b})
	}
	return result, nil
}

func (f *fakeBriefRepo) ListMissingSlug(_ context.Context) ([]*models.Brief, error) {
	var result []*models.Brief
	for _, b := range f.briefs {
		if b.Slug == nil || *b.Slug == "" {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeSubmissionRepo struct {
	submissions map[int64]*models.Submission
	counts      map[int64]int64
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		submissions: make(map[int64]*models.Submission),
		counts:      make(map[int64]int64),
	}
}

func (f *fakeSubmissionRepo) FindByID(_ context.Context, id int64) (*models.Submission, error) {
	s, ok := f.submissions[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSubmissionRepo) ListForBrief(_ context.Context, briefID int64) ([]*repositories.SubmissionWithUser, error) {
	var result []*repositories.SubmissionWithUser
	for _, s := range f.submissions {
		if s.BriefID == briefID {
			result = append(result, &repositories.SubmissionWithUser{Submission: *s})
		}
	}
	return result, nil
}

func (f *fakeSubmissionRepo) CountForBrief(_ context.Context, briefID int64) (int64, error) {
	return f.counts[briefID], nil
}

func (f *fakeSubmissionRepo) UpdateReview(_ context.Context, s *models.Submission) error {
	if _, ok := f.submissions[s.ID]; !ok {
		return sql.ErrNoRows
	}
	copied := *s
	f.submissions[s.ID] = &copied
	return nil
}

type fakeUserRepo struct {
	users map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func newBriefServiceForTest() (BriefService, *fakeBriefRepo, *fakeSubmissionRepo, *fakeUserRepo) {
	briefRepo := newFakeBriefRepo()
	submissionRepo := newFakeSubmissionRepo()
	userRepo := newFakeUserRepo()
	return NewBriefService(briefRepo, submissionRepo, userRepo), briefRepo, submissionRepo, userRepo
}

// --- Тесты ---

func TestCreateBrief_DuplicateSlugConflict(t *testing.T) {
	svc, briefRepo, _, _ := newBriefServiceForTest()

	taken := "summer-campaign"
	briefRepo.add(&models.Brief{Slug: &taken, Title: "Existing", OrgName: "Acme"})

	_, err := svc.CreateBrief(context.Background(), nil, &dto.CreateBriefRequest{
		Slug:    "summer-campaign",
		Title:   "Summer Campaign",
		OrgName: "Acme",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestGetBriefBySlug_LegacyNumericRef(t *testing.T) {
	svc, briefRepo, _, _ := newBriefServiceForTest()

	// Легаси-запись без slug
	legacy := briefRepo.add(&models.Brief{Title: "Legacy Brief", OrgName: "Acme"})

	resp, err := svc.GetBriefBySlug(context.Background(), "brief-1")

	require.NoError(t, err)
	assert.Equal(t, legacy.ID, resp.ID)
	// Производный slug в ответе
	assert.Equal(t, "brief-1", resp.Slug)
}

func TestGetBriefBySlug_NotFound(t *testing.T) {
	svc, _, _, _ := newBriefServiceForTest()

	_, err := svc.GetBriefBySlug(context.Background(), "no-such-brief")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, map[string]string{"slug": "no-such-brief"}, appErr.Details)
}

func TestUpdateBrief_IncludesSubmissionCount(t *testing.T) {
	svc, briefRepo, submissionRepo, _ := newBriefServiceForTest()

	s := "summer-campaign"
	brief := briefRepo.add(&models.Brief{Slug: &s, Title: "Summer", OrgName: "Acme"})
	submissionRepo.counts[brief.ID] = 4

	newTitle := "Summer v2"
	resp, err := svc.UpdateBrief(context.Background(), brief.ID, &dto.UpdateBriefRequest{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, "Summer v2", resp.Title)
	require.NotNil(t, resp.SubmissionCount)
	assert.Equal(t, int64(4), *resp.SubmissionCount)
}

func TestUpdateBrief_NotFound(t *testing.T) {
	svc, _, _, _ := newBriefServiceForTest()

	title := "anything"
	_, err := svc.UpdateBrief(context.Background(), 999, &dto.UpdateBriefRequest{Title: &title})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListBriefs_EmptyIsNotNil(t *testing.T) {
	svc, _, _, _ := newBriefServiceForTest()

	resp, err := svc.ListBriefs(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, resp, 0)
}

func TestAssignSlug_FromTitle(t *testing.T) {
	svc, briefRepo, _, _ := newBriefServiceForTest()

	brief := briefRepo.add(&models.Brief{Title: "Summer Campaign 2025", OrgName: "Acme"})

	got, err := svc.AssignSlug(context.Background(), brief.ID)

	require.NoError(t, err)
	assert.Equal(t, "summer-campaign-2025", got)
	require.NotNil(t, briefRepo.briefs[brief.ID].Slug)
	assert.Equal(t, "summer-campaign-2025", *briefRepo.briefs[brief.ID].Slug)
}

func TestAssignSlug_CollisionAppendsID(t *testing.T) {
	svc, briefRepo, _, _ := newBriefServiceForTest()

	taken := "summer-campaign"
	briefRepo.add(&models.Brief{Slug: &taken, Title: "Summer Campaign", OrgName: "Acme"})
	legacy := briefRepo.add(&models.Brief{Title: "Summer Campaign", OrgName: "Acme"})

	got, err := svc.AssignSlug(context.Background(), legacy.ID)

	require.NoError(t, err)
	assert.Equal(t, "summer-campaign-2", got)
}

func TestAssignSlug_SpecialCharsOnlyTitle(t *testing.T) {
	svc, briefRepo, _, _ := newBriefServiceForTest()

	brief := briefRepo.add(&models.Brief{Title: "!!!", OrgName: "Acme"})

	got, err := svc.AssignSlug(context.Background(), brief.ID)

	require.NoError(t, err)
	assert.Equal(t, "brief-1", got)
}

func TestAssignSlug_AlreadySet(t *testing.T) {
	svc, briefRepo, _, _ := newBriefServiceForTest()

	s := "keep-me"
	brief := briefRepo.add(&models.Brief{Slug: &s, Title: "Other Title", OrgName: "Acme"})

	got, err := svc.AssignSlug(context.Background(), brief.ID)

	require.NoError(t, err)
	assert.Equal(t, "keep-me", got)
}

func TestBackfillSlugs(t *testing.T) {
	svc, briefRepo, _, _ := newBriefServiceForTest()

	s := "has-slug"
	briefRepo.add(&models.Brief{Slug: &s, Title: "Has Slug", OrgName: "Acme"})
	briefRepo.add(&models.Brief{Title: "Legacy One", OrgName: "Acme"})
	briefRepo.add(&models.Brief{Title: "Legacy Two", OrgName: "Acme"})

	assigned, err := svc.BackfillSlugs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, assigned)

	for _, b := range briefRepo.briefs {
		require.NotNil(t, b.Slug)
		assert.NotEmpty(t, *b.Slug)
	}
}
