package cpn

import (
	"context"
	"time"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const auditCollection = "submission_audits"

type submissionAuditMongoRepository struct {
	collection *mongo.Collection
}

func NewSubmissionAuditMongoRepository(db *mongo.Database) contracts.SubmissionAuditRepository {
	return &submissionAuditMongoRepository{
		collection: db.Collection(auditCollection),
	}
}

func (r *submissionAuditMongoRepository) Insert(ctx context.Context, audit *models.SubmissionAudit) error {
	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *submissionAuditMongoRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"submitted_at": bson.M{"$gte": since}})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
