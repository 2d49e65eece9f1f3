package entity

import (
	"time"
)

// DocumentType is the kind of identity proof a user can upload.
type DocumentType string

const (
	DocumentTypeNationalID     DocumentType = "national_id"
	DocumentTypePassport       DocumentType = "passport"
	DocumentTypeDrivingLicense DocumentType = "driving_license"
)

// ValidDocumentType reports whether s names a known document type.
func ValidDocumentType(s string) bool {
	switch DocumentType(s) {
	case DocumentTypeNationalID, DocumentTypePassport, DocumentTypeDrivingLicense:
		return true
	}
	return false
}

// DocumentSide is which face of the document the image shows.
type DocumentSide string

const (
	DocumentSideFront DocumentSide = "front"
	DocumentSideBack  DocumentSide = "back"
)

// DocumentStatus is the review state of an uploaded document.
// pending -> approved | rejected. A reviewed document is immutable;
// resubmission creates a new record.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// Document is an uploaded identity proof awaiting owner review.
type Document struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	UserID          string         `bson:"user_id" json:"user_id"`
	Type            DocumentType   `bson:"type" json:"type"`
	Side            DocumentSide   `bson:"side" json:"side"`
	ImageURL        string         `bson:"image_url" json:"image_url"`
	Status          DocumentStatus `bson:"status" json:"status"`
	RejectionReason *string        `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ReviewedBy      *string        `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
}

// Reviewed reports whether the document has already been approved or rejected.
func (d *Document) Reviewed() bool {
	return d.Status != DocumentStatusPending
}
