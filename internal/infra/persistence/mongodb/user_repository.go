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
)

// userRepository implements the repository.UserRepository interface on a MongoDB collection.
type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(usersCollection),
		now:  time.Now,
	}
}

// FindByID retrieves a single user by its ObjectID hex string.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// FindByEmail retrieves a single user by their exact email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, msg string) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toUserDomain(&doc), nil
}

// Create inserts a new user. The unique email index turns a concurrent
// duplicate registration into ErrUserEmailTaken.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now().UTC()
	doc := fromUserDomain(user)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	res, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserEmailTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

// UpdatePasswordHash replaces the password hash of the user owning email.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"password":  passwordHash,
			"updatedAt": repo.now().UTC(),
		}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update password hash")
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
