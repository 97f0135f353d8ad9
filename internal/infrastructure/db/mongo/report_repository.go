package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

const reportCollection = "reportes"

type ReportRepository struct {
	coll *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{coll: db.Collection(reportCollection)}
}

type mongoReport struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Solicitante string             `bson:"solicitante"`
	Categoria   string             `bson:"categoria"`
	Componente  string             `bson:"componente"`
	Descripcion string             `bson:"descripcion"`
	Estado      string             `bson:"estado"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m mongoReport) toDomain() *domain.Report {
	return &domain.Report{
		ID:          m.ID.Hex(),
		Solicitante: m.Solicitante,
		Categoria:   m.Categoria,
		Componente:  m.Componente,
		Descripcion: m.Descripcion,
		Estado:      domain.ReportStatus(m.Estado),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

// Create inserts a new report document and returns the stored record with its
// assigned id.
func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReport{
		Solicitante: report.Solicitante,
		Categoria:   report.Categoria,
		Componente:  report.Componente,
		Descripcion: report.Descripcion,
		Estado:      string(report.Estado),
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert report: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

// List returns every report ordered by created_at descending, fully
// materialized.
func (r *ReportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoReport
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list reports: decode: %w", err)
	}

	reports := make([]*domain.Report, len(docs))
	for i, doc := range docs {
		reports[i] = doc.toDomain()
	}
	return reports, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id string) (*domain.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids cannot reference any report.
		return nil, domain.ErrReportNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoReport
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return doc.toDomain(), nil
}

// Update overwrites the mutable fields of the identified report. The write is
// a single $set with no version check: concurrent updates resolve
// last-writer-wins.
func (r *ReportRepository) Update(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	oid, err := primitive.ObjectIDFromHex(report.ID)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"solicitante": report.Solicitante,
		"categoria":   report.Categoria,
		"componente":  report.Componente,
		"descripcion": report.Descripcion,
		"estado":      string(report.Estado),
		"updated_at":  report.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoReport
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("update report: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete permanently removes the report. There is no soft delete.
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReportNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// EnsureIndexes creates the created_at index backing the list sort.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
