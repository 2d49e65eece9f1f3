package dto

import (
	"time"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// UploadDocumentRequest defines the multipart form for an identity upload.
// The image file is read from the form separately.
type UploadDocumentRequest struct {
	Type string `form:"type" binding:"required,documenttype"`
	Side string `form:"side" binding:"required,documentside"`
}

// ReviewDocumentRequest defines the review decision payload. Reason must be
// set when rejecting and must be empty when approving.
type ReviewDocumentRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" binding:"max=500"`
}

// DocumentResponse defines the standard JSON response for a document.
type DocumentResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Type            string     `json:"type"`
	Side            string     `json:"side"`
	ImageURL        string     `json:"image_url"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToDocumentResponse(doc *entity.Document) DocumentResponse {
	return DocumentResponse{
		ID:              doc.ID,
		UserID:          doc.UserID,
		Type:            string(doc.Type),
		Side:            string(doc.Side),
		ImageURL:        doc.ImageURL,
		Status:          string(doc.Status),
		RejectionReason: doc.RejectionReason,
		ReviewedBy:      doc.ReviewedBy,
		ReviewedAt:      doc.ReviewedAt,
		CreatedAt:       doc.CreatedAt,
	}
}

func ToDocumentResponses(docs []*entity.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToDocumentResponse(d))
	}
	return out
}
