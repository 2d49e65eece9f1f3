package contract

import (
	"context"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

type IDocumentRepository interface {
	CreateDocument(ctx context.Context, doc *entity.Document) error
	GetDocumentByID(ctx context.Context, id string) (*entity.Document, error)
	GetDocumentsByUser(ctx context.Context, userID string) ([]*entity.Document, error)
	// GetPendingDocuments lists documents awaiting review, oldest first.
	GetPendingDocuments(ctx context.Context, limit int64) ([]*entity.Document, error)
	// SetReview records the review outcome for a pending document.
	SetReview(ctx context.Context, id string, status entity.DocumentStatus, reason *string, reviewerID string) error
	// HasApprovedDocument reports whether the user has at least one approved document.
	HasApprovedDocument(ctx context.Context, userID string) (bool, error)
}
