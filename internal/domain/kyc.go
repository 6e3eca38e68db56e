package domain

type KYCStatus string

const (
	KYCStatusNotSubmitted KYCStatus = "not_submitted"
	KYCStatusPending      KYCStatus = "pending"
	KYCStatusVerified     KYCStatus = "verified"
	KYCStatusRejected     KYCStatus = "rejected"
)

// KYCDocument holds identity details a customer submits before renting.
// One document per user; resubmission overwrites the pending copy.
type KYCDocument struct {
	UserID               int32     `json:"user_id"`
	FullName             string    `json:"full_name"`
	DateOfBirth          string    `json:"date_of_birth"`
	Address              string    `json:"address"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email"`
	DrivingLicenseNumber string    `json:"driving_license_number,omitempty"`
	SecondaryDocType     string    `json:"secondary_doc_type,omitempty"`
	SecondaryDocNumber   string    `json:"secondary_doc_number,omitempty"`
	Status               KYCStatus `json:"status"`
	SubmittedOn          *string   `json:"submitted_on,omitempty"`
	VerifiedOn           *string   `json:"verified_on,omitempty"`
}
