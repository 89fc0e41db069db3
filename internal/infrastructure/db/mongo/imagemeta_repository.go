package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

const imageMetaCollection = "image_metadata"

// ImageMetaRepository is the Mongo-backed store for image metadata documents.
type ImageMetaRepository struct {
	coll *mongo.Collection
}

func NewImageMetaRepository(db *mongo.Database) *ImageMetaRepository {
	return &ImageMetaRepository{coll: db.Collection(imageMetaCollection)}
}

type imageMetaDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	LocationID  string             `bson:"location_id"`
	ImageURL    string             `bson:"image_url"`
	Description string             `bson:"description,omitempty"`
	Labels      []string           `bson:"labels"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d imageMetaDoc) toDomain() domain.ImageMetadata {
	labels := d.Labels
	if labels == nil {
		labels = []string{}
	}
	return domain.ImageMetadata{
		ID:          d.ID.Hex(),
		LocationID:  d.LocationID,
		ImageURL:    d.ImageURL,
		Description: d.Description,
		Labels:      labels,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *ImageMetaRepository) Create(ctx context.Context, meta *domain.ImageMetadata) (*domain.ImageMetadata, error) {
	doc := imageMetaDoc{
		LocationID:  meta.LocationID,
		ImageURL:    meta.ImageURL,
		Description: meta.Description,
		Labels:      meta.Labels,
		CreatedAt:   meta.CreatedAt.Unix(),
		UpdatedAt:   meta.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert image metadata: %w", err)
	}

	created := *meta
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ImageMetaRepository) FindByID(ctx context.Context, id string) (*domain.ImageMetadata, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrImageMetaNotFound
	}

	var doc imageMetaDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrImageMetaNotFound
		}
		return nil, fmt.Errorf("find image metadata: %w", err)
	}

	meta := doc.toDomain()
	return &meta, nil
}

func (r *ImageMetaRepository) FindByLocation(ctx context.Context, locationID string) ([]domain.ImageMetadata, error) {
	cur, err := r.coll.Find(ctx, bson.M{"location_id": locationID})
	if err != nil {
		return nil, fmt.Errorf("list image metadata: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.ImageMetadata
	for cur.Next(ctx) {
		var doc imageMetaDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode image metadata: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate image metadata: %w", err)
	}
	return out, nil
}

func (r *ImageMetaRepository) Update(ctx context.Context, meta *domain.ImageMetadata) error {
	oid, err := primitive.ObjectIDFromHex(meta.ID)
	if err != nil {
		return domain.ErrImageMetaNotFound
	}

	update := bson.M{"$set": bson.M{
		"image_url":   meta.ImageURL,
		"description": meta.Description,
		"labels":      meta.Labels,
		"updated_at":  meta.UpdatedAt.Unix(),
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update image metadata: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrImageMetaNotFound
	}
	return nil
}

func (r *ImageMetaRepository) SetLabels(ctx context.Context, id string, labels []string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrImageMetaNotFound
	}
	if labels == nil {
		labels = []string{}
	}

	update := bson.M{"$set": bson.M{
		"labels":     labels,
		"updated_at": time.Now().UTC().Unix(),
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("set labels: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrImageMetaNotFound
	}
	return nil
}

func (r *ImageMetaRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrImageMetaNotFound
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete image metadata: %w", err)
	}
	return nil
}

func (r *ImageMetaRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count image metadata: %w", err)
	}
	return n, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
