package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// DocumentUsecase implements identity-document upload and review.
type DocumentUsecase struct {
	docRepo     contract.IDocumentRepository
	userRepo    contract.IUserRepository
	storage     contract.IFileStorage
	mailService contract.IEmailService
	logger      usecasecontract.IAppLogger
	uuidGen     contract.IUUIDGenerator
}

func NewDocumentUsecase(
	docRepo contract.IDocumentRepository,
	userRepo contract.IUserRepository,
	storage contract.IFileStorage,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	uuidGen contract.IUUIDGenerator,
) *DocumentUsecase {
	return &DocumentUsecase{
		docRepo:     docRepo,
		userRepo:    userRepo,
		storage:     storage,
		mailService: mailService,
		logger:      logger,
		uuidGen:     uuidGen,
	}
}

var _ usecasecontract.IDocumentUseCase = (*DocumentUsecase)(nil)

// Upload stores the image and creates a pending document record. A user
// whose earlier document was rejected resubmits by uploading again; the
// old record stays untouched.
func (uc *DocumentUsecase) Upload(ctx context.Context, actor *entity.User, docType, side string, image *multipart.FileHeader) (*entity.Document, error) {
	if !entity.ValidDocumentType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	docSide := entity.DocumentSide(side)
	if docSide != entity.DocumentSideFront && docSide != entity.DocumentSideBack {
		return nil, fmt.Errorf("unknown document side %q", side)
	}
	if image == nil {
		return nil, errors.New("document image is required")
	}

	url, err := uc.storage.UploadImage(ctx, image, "documents")
	if err != nil {
		uc.logger.Errorf("failed to upload document image for user %s: %v", actor.ID, err)
		return nil, errors.New("failed to upload document image")
	}

	doc := &entity.Document{
		ID:        uc.uuidGen.NewUUID(),
		UserID:    actor.ID,
		Type:      entity.DocumentType(docType),
		Side:      docSide,
		ImageURL:  url,
		Status:    entity.DocumentStatusPending,
		CreatedAt: time.Now(),
	}
	if err := uc.docRepo.CreateDocument(ctx, doc); err != nil {
		uc.logger.Errorf("failed to create document record for user %s: %v", actor.ID, err)
		return nil, errors.New("failed to create document record")
	}
	return doc, nil
}

// GetDocumentByID returns a document visible to the actor: the uploader,
// or a reviewer role.
func (uc *DocumentUsecase) GetDocumentByID(ctx context.Context, actor *entity.User, id string) (*entity.Document, error) {
	doc, err := uc.docRepo.GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, ErrDocumentNotFound
		}
		uc.logger.Errorf("failed to load document %s: %v", id, err)
		return nil, err
	}
	if doc.UserID != actor.ID && !actor.Role.CanReviewDocuments() {
		return nil, ErrForbidden
	}
	return doc, nil
}

func (uc *DocumentUsecase) GetMyDocuments(ctx context.Context, actor *entity.User) ([]*entity.Document, error) {
	docs, err := uc.docRepo.GetDocumentsByUser(ctx, actor.ID)
	if err != nil {
		uc.logger.Errorf("failed to list documents for user %s: %v", actor.ID, err)
		return nil, err
	}
	return docs, nil
}

// GetPendingDocuments lists the review queue, oldest first. Owner only.
func (uc *DocumentUsecase) GetPendingDocuments(ctx context.Context, actor *entity.User, limit int64) ([]*entity.Document, error) {
	if !actor.Role.CanReviewDocuments() {
		return nil, ErrForbidden
	}
	docs, err := uc.docRepo.GetPendingDocuments(ctx, limit)
	if err != nil {
		uc.logger.Errorf("failed to list pending documents: %v", err)
		return nil, err
	}
	return docs, nil
}

// Review approves or rejects a pending document. Rejection requires a
// non-empty reason, approval must not carry one. Approval flips the
// uploader's id_proof_approved gate and notifies them by email.
func (uc *DocumentUsecase) Review(ctx context.Context, actor *entity.User, id string, approve bool, reason string) (*entity.Document, error) {
	if !actor.Role.CanReviewDocuments() {
		return nil, ErrForbidden
	}

	reason = strings.TrimSpace(reason)
	if approve && reason != "" {
		return nil, ErrApprovalReasonForbidden
	}
	if !approve && reason == "" {
		return nil, ErrRejectionReasonRequired
	}

	doc, err := uc.docRepo.GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, ErrDocumentNotFound
		}
		uc.logger.Errorf("failed to load document %s: %v", id, err)
		return nil, err
	}
	if doc.Reviewed() {
		return nil, ErrDocumentReviewed
	}

	status := entity.DocumentStatusApproved
	var pReason *string
	if !approve {
		status = entity.DocumentStatusRejected
		pReason = &reason
	}

	if err := uc.docRepo.SetReview(ctx, id, status, pReason, actor.ID); err != nil {
		uc.logger.Errorf("failed to record review for document %s: %v", id, err)
		return nil, errors.New("failed to record document review")
	}

	if approve {
		if err := uc.userRepo.SetIDProofApproved(ctx, doc.UserID, true); err != nil {
			uc.logger.Errorf("failed to flag approved identity for user %s: %v", doc.UserID, err)
			return nil, errors.New("failed to update user verification state")
		}
	}

	uc.notifyUploader(ctx, doc, status, reason)

	now := time.Now()
	doc.Status = status
	doc.RejectionReason = pReason
	doc.ReviewedBy = &actor.ID
	doc.ReviewedAt = &now
	return doc, nil
}

// notifyUploader sends a best-effort email about the review outcome.
func (uc *DocumentUsecase) notifyUploader(ctx context.Context, doc *entity.Document, status entity.DocumentStatus, reason string) {
	user, err := uc.userRepo.GetUserByID(ctx, doc.UserID)
	if err != nil {
		uc.logger.Warnf("failed to load uploader %s for notification: %v", doc.UserID, err)
		return
	}

	var subject, body string
	if status == entity.DocumentStatusApproved {
		subject = "Identity document approved"
		body = fmt.Sprintf("Hi %s,\n\nYour identity document has been approved. You can now book bikes on Bikya.", user.Username)
	} else {
		subject = "Identity document rejected"
		body = fmt.Sprintf("Hi %s,\n\nYour identity document was rejected: %s\n\nPlease upload a new document to try again.", user.Username, reason)
	}

	if err := uc.mailService.SendEmail(ctx, user.Email, subject, body); err != nil {
		uc.logger.Warnf("failed to send review notification to %s: %v", user.Email, err)
	}
}
