package usecasecontract

import (
	"context"
	"mime/multipart"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// IDocumentUseCase defines identity-document operations.
type IDocumentUseCase interface {
	// Upload stores the image and creates a pending document record.
	Upload(ctx context.Context, actor *entity.User, docType, side string, image *multipart.FileHeader) (*entity.Document, error)
	GetDocumentByID(ctx context.Context, actor *entity.User, id string) (*entity.Document, error)
	GetMyDocuments(ctx context.Context, actor *entity.User) ([]*entity.Document, error)
	GetPendingDocuments(ctx context.Context, actor *entity.User, limit int64) ([]*entity.Document, error)
	// Review approves or rejects a pending document. Rejection requires a
	// non-empty reason; approval must not carry one. Approval flips the
	// uploader's id_proof_approved gate.
	Review(ctx context.Context, actor *entity.User, id string, approve bool, reason string) (*entity.Document, error)
}
