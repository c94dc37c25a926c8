package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

func newSubmissionServiceForTest() (SubmissionService, *fakeBriefRepo, *fakeSubmissionRepo) {
	briefRepo := newFakeBriefRepo()
	submissionRepo := newFakeSubmissionRepo()
	userRepo := newFakeUserRepo()
	return NewSubmissionService(submissionRepo, briefRepo, userRepo), briefRepo, submissionRepo
}

func TestListForBrief_BriefNotFound(t *testing.T) {
	svc, _, _ := newSubmissionServiceForTest()

	_, err := svc.ListForBrief(context.Background(), 999)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

// Существующий бриф без сабмишенов дает пустой список, не 404
func TestListForBrief_EmptyList(t *testing.T) {
	svc, briefRepo, _ := newSubmissionServiceForTest()

	s := "summer-campaign"
	brief := briefRepo.add(&models.Brief{Slug: &s, Title: "Summer", OrgName: "Acme"})

	resp, err := svc.ListForBrief(context.Background(), brief.ID)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, resp, 0)
}

func TestListForBrief_EmbedsBriefSummary(t *testing.T) {
	svc, briefRepo, submissionRepo := newSubmissionServiceForTest()

	s := "summer-campaign"
	brief := briefRepo.add(&models.Brief{
		Slug: &s, Title: "Summer", OrgName: "Acme",
		RewardType: models.RewardTypeCash, RewardAmount: "500", RewardCurrency: "USD",
	})

	sub := &models.Submission{
		BriefID:      brief.ID,
		CreatorName:  "Anon",
		CreatorEmail: "anon@example.com",
		VideoURL:     "https://cdn.example.com/v.mp4",
		Status:       models.SubmissionStatusPending,
		PayoutAmount: "0",
		PayoutStatus: models.PayoutStatusUnpaid,
	}
	sub.ID = 1
	submissionRepo.submissions[sub.ID] = sub

	resp, err := svc.ListForBrief(context.Background(), brief.ID)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "summer-campaign", resp[0].Brief.Slug)
	assert.Equal(t, "Acme", resp[0].Brief.Organization.Name)
	assert.Equal(t, "Anon", resp[0].CreatorDisplayName)
}

func TestReviewSubmission(t *testing.T) {
	svc, briefRepo, submissionRepo := newSubmissionServiceForTest()

	s := "summer-campaign"
	brief := briefRepo.add(&models.Brief{Slug: &s, Title: "Summer", OrgName: "Acme"})

	sub := &models.Submission{
		BriefID:      brief.ID,
		CreatorEmail: "anon@example.com",
		VideoURL:     "https://cdn.example.com/v.mp4",
		Status:       models.SubmissionStatusPending,
		PayoutAmount: "0",
		PayoutStatus: models.PayoutStatusUnpaid,
	}
	sub.ID = 1
	submissionRepo.submissions[sub.ID] = sub

	feedback := "Solid work"
	payout := "250"
	resp, err := svc.ReviewSubmission(context.Background(), sub.ID, "admin",
		&dto.ReviewSubmissionRequest{
			Status:       models.SubmissionStatusApproved,
			Feedback:     &feedback,
			PayoutAmount: &payout,
		})

	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusApproved, resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, "admin", *resp.ReviewedBy)
	assert.NotNil(t, resp.ReviewedAt)
	assert.Equal(t, 250.0, resp.PayoutAmount)
	// Выплата фиксируется, но не помечается оплаченной
	assert.Equal(t, models.PayoutStatusUnpaid, resp.PayoutStatus)

	stored := submissionRepo.submissions[sub.ID]
	assert.Equal(t, models.SubmissionStatusApproved, stored.Status)
}

func TestReviewSubmission_NotFound(t *testing.T) {
	svc, _, _ := newSubmissionServiceForTest()

	_, err := svc.ReviewSubmission(context.Background(), 999, "admin",
		&dto.ReviewSubmissionRequest{Status: models.SubmissionStatusRejected})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
