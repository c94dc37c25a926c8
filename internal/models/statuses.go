package models

type UserRole string
type BriefStatus string
type RewardType string
type SubmissionStatus string
type ApplicationStatus string
type PayoutStatus string

const (
	UserRoleCreator UserRole = "creator"
	UserRoleBrand   UserRole = "brand"
	UserRoleAdmin   UserRole = "admin"

	BriefStatusDraft     BriefStatus = "DRAFT"
	BriefStatusPublished BriefStatus = "PUBLISHED"
	BriefStatusArchived  BriefStatus = "ARCHIVED"

	RewardTypeCash      RewardType = "CASH"
	RewardTypeBonusBets RewardType = "BONUS_BETS"
	RewardTypeOther     RewardType = "OTHER"

	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusApproved SubmissionStatus = "APPROVED"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	PayoutStatusUnpaid PayoutStatus = "unpaid"
	PayoutStatusPaid   PayoutStatus = "paid"
)
