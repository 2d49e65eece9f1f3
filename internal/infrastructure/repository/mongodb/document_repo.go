package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	"github.com/bikya/bikya-backend/internal/usecase"
)

// DocumentRepository is the MongoDB implementation of IDocumentRepository.
type DocumentRepository struct {
	collection *mongo.Collection
}

var _ contract.IDocumentRepository = (*DocumentRepository)(nil)

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{collection: db.Collection("documents")}
}

func (r *DocumentRepository) CreateDocument(ctx context.Context, doc *entity.Document) error {
	doc.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetDocumentByID(ctx context.Context, id string) (*entity.Document, error) {
	var doc entity.Document
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve document: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) GetDocumentsByUser(ctx context.Context, userID string) ([]*entity.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*entity.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	if docs == nil {
		docs = []*entity.Document{}
	}
	return docs, nil
}

// GetPendingDocuments lists the review queue, oldest upload first.
func (r *DocumentRepository) GetPendingDocuments(ctx context.Context, limit int64) ([]*entity.Document, error) {
	if limit < 1 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"status": string(entity.DocumentStatusPending)}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve pending documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*entity.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	if docs == nil {
		docs = []*entity.Document{}
	}
	return docs, nil
}

// SetReview records a review outcome. The pending guard in the filter makes
// the first review win; a second attempt matches nothing.
func (r *DocumentRepository) SetReview(ctx context.Context, id string, status entity.DocumentStatus, reason *string, reviewerID string) error {
	filter := bson.M{"_id": id, "status": string(entity.DocumentStatusPending)}
	set := bson.M{
		"status":      string(status),
		"reviewed_by": reviewerID,
		"reviewed_at": time.Now(),
	}
	if reason != nil {
		set["rejection_reason"] = *reason
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to record document review: %w", err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrDocumentNotFound
	}
	return nil
}

// HasApprovedDocument reports whether the user passed identity verification.
func (r *DocumentRepository) HasApprovedDocument(ctx context.Context, userID string) (bool, error) {
	filter := bson.M{"user_id": userID, "status": string(entity.DocumentStatusApproved)}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check approved documents: %w", err)
	}
	return count > 0, nil
}
