package mongodb

import (
	"context"
	"time"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pharmacyRepository implements the repository.PharmacyRepository interface on a MongoDB collection.
type pharmacyRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewPharmacyRepository is the constructor for pharmacyRepository.
func NewPharmacyRepository(db *mongo.Database) repository.PharmacyRepository {
	return &pharmacyRepository{
		coll: db.Collection(pharmaciesCollection),
		now:  time.Now,
	}
}

// Create inserts a new pharmacy.
func (repo *pharmacyRepository) Create(ctx context.Context, pharmacy *entity.Pharmacy) error {
	now := repo.now().UTC()
	doc := fromPharmacyDomain(pharmacy)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	res, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrPharmacyEmailTaken
		}

		return errors.Wrap(err, "failed to create pharmacy")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		pharmacy.ID = oid.Hex()
	}
	pharmacy.CreatedAt = now
	pharmacy.UpdatedAt = now

	return nil
}

// FindAll returns every pharmacy in insertion order.
func (repo *pharmacyRepository) FindAll(ctx context.Context) ([]*entity.Pharmacy, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacies")
	}

	var docs []*pharmacyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode pharmacies")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(docs))
	for _, doc := range docs {
		pharmacies = append(pharmacies, toPharmacyDomain(doc))
	}

	return pharmacies, nil
}

// FindByID retrieves a pharmacy by its ObjectID hex string.
func (repo *pharmacyRepository) FindByID(ctx context.Context, id string) (*entity.Pharmacy, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrPharmacyNotFound
	}

	var doc pharmacyDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by id")
	}

	return toPharmacyDomain(&doc), nil
}

// Update applies the patch with a single findOneAndUpdate and returns the new document.
func (repo *pharmacyRepository) Update(ctx context.Context, id string, patch *entity.PharmacyPatch) (*entity.Pharmacy, error) {
	if patch.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrPharmacyNotFound
	}

	var doc pharmacyDocument
	err = repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		updatePipeline(patch, repo.now().UTC()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPharmacyNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrPharmacyEmailTaken
		}

		return nil, errors.Wrap(err, "failed to update pharmacy")
	}

	return toPharmacyDomain(&doc), nil
}

// Delete removes a pharmacy.
func (repo *pharmacyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrPharmacyNotFound
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete pharmacy")
	}
	if res.DeletedCount == 0 {
		return repository.ErrPharmacyNotFound
	}

	return nil
}

// Aggregate runs the query as one aggregation pipeline.
func (repo *pharmacyRepository) Aggregate(ctx context.Context, query *repository.PharmacyQuery) ([]*entity.PharmacyMatch, error) {
	cursor, err := repo.coll.Aggregate(ctx, searchPipeline(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pharmacies")
	}

	var docs []*pharmacyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode pharmacy matches")
	}

	matches := make([]*entity.PharmacyMatch, 0, len(docs))
	for _, doc := range docs {
		matches = append(matches, toPharmacyMatch(doc))
	}

	return matches, nil
}
