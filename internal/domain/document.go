package domain

import "time"

type DocumentKind string

const (
	DocumentKindVehicleImage DocumentKind = "vehicle_image"
	DocumentKindKYCPhoto     DocumentKind = "kyc_photo"
)

// StoredDocument tracks an uploaded file (vehicle photo or KYC document
// scan) living behind the storage service. Uploads start PENDING and are
// confirmed once the client finishes the PUT; unconfirmed uploads expire.
type StoredDocument struct {
	ID          int32        `json:"id"`
	UserID      int32        `json:"user_id"`
	Kind        DocumentKind `json:"kind"`
	FileName    string       `json:"file_name"`
	FilePath    string       `json:"file_path"`
	FileSize    int64        `json:"file_size"`
	MimeType    string       `json:"mime_type"`
	Status      string       `json:"status"` // PENDING, CONFIRMED, DELETED
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
	CreatedOn   time.Time    `json:"created_on"`
	ConfirmedOn *time.Time   `json:"confirmed_on,omitempty"`
}
