package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.ValidateStruct(&dto.ApplyRequest{FirstName: "Jane"})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)

	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	// Поля именуются по json тегам, не по именам Go
	assert.Contains(t, details, "lastName")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "instagramHandle")
	assert.NotContains(t, details, "LastName")
}

func TestValidateStruct_CustomStatusRules(t *testing.T) {
	v := New()

	err := v.ValidateStruct(&dto.ReviewSubmissionRequest{Status: "BANNED"})
	require.Error(t, err)

	err = v.ValidateStruct(&dto.ReviewSubmissionRequest{Status: models.SubmissionStatusApproved})
	assert.NoError(t, err)

	err = v.ValidateStruct(&dto.UpdateApplicationStatusRequest{Status: "banned"})
	require.Error(t, err)

	err = v.ValidateStruct(&dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatusRejected})
	assert.NoError(t, err)
}

func TestValidateStruct_EmailFormat(t *testing.T) {
	v := New()

	err := v.ValidateStruct(&dto.LoginRequest{Email: "not-an-email", Password: "x"})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	details := appErr.Details.(map[string]string)
	assert.Equal(t, "Invalid email format", details["email"])
}
