package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleArtisan  UserRole = "artisan"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)
