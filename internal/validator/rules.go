package validator

import (
	"github.com/go-playground/validator/v10"

	"bountyboard_backend/internal/models"
)

func registerCustomRules(v *validator.Validate) {
	v.RegisterValidation("is-brief-status", func(fl validator.FieldLevel) bool {
		switch models.BriefStatus(fl.Field().String()) {
		case models.BriefStatusDraft, models.BriefStatusPublished, models.BriefStatusArchived:
			return true
		}
		return false
	})

	v.RegisterValidation("is-reward-type", func(fl validator.FieldLevel) bool {
		switch models.RewardType(fl.Field().String()) {
		case models.RewardTypeCash, models.RewardTypeBonusBets, models.RewardTypeOther:
			return true
		}
		return false
	})

	v.RegisterValidation("is-submission-status", func(fl validator.FieldLevel) bool {
		switch models.SubmissionStatus(fl.Field().String()) {
		case models.SubmissionStatusPending, models.SubmissionStatusApproved, models.SubmissionStatusRejected:
			return true
		}
		return false
	})

	v.RegisterValidation("is-application-status", func(fl validator.FieldLevel) bool {
		switch models.ApplicationStatus(fl.Field().String()) {
		case models.ApplicationStatusPending, models.ApplicationStatusApproved, models.ApplicationStatusRejected:
			return true
		}
		return false
	})
}
