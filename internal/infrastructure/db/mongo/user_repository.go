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

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	Email          string             `bson:"email"`
	Password       string             `bson:"password"`
	Role           string             `bson:"role"`
	Bio            string             `bson:"bio"`
	Expertise      []string           `bson:"expertise"`
	FavoriteGenre  string             `bson:"favoriteGenre"`
	ProfilePicture string             `bson:"profilePicture"`
	EmailPublic    bool               `bson:"emailPublic"`
	JoinedDate     time.Time          `bson:"joinedDate"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (mu *mongoUser) toDomain() *domain.User {
	expertise := mu.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	return &domain.User{
		ID:             mu.ID.Hex(),
		Username:       mu.Username,
		Email:          mu.Email,
		PasswordHash:   mu.Password,
		Role:           mu.Role,
		Bio:            mu.Bio,
		Expertise:      expertise,
		FavoriteGenre:  mu.FavoriteGenre,
		ProfilePicture: mu.ProfilePicture,
		EmailPublic:    mu.EmailPublic,
		JoinedDate:     mu.JoinedDate.UTC(),
		CreatedAt:      mu.CreatedAt.UTC(),
		UpdatedAt:      mu.UpdatedAt.UTC(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Username:       user.Username,
		Email:          user.Email,
		Password:       user.PasswordHash,
		Role:           user.Role,
		Bio:            user.Bio,
		Expertise:      user.Expertise,
		FavoriteGenre:  user.FavoriteGenre,
		ProfilePicture: user.ProfilePicture,
		EmailPublic:    user.EmailPublic,
		JoinedDate:     user.JoinedDate,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = insertedHex(res)
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

// Update applies the non-nil fields of p and returns the updated document.
func (r *UserRepository) Update(ctx context.Context, id string, p domain.ProfilePatch) (*domain.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": profileSet(p, time.Now().UTC())}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mu)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrUserNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return mu.toDomain(), nil
}

func profileSet(p domain.ProfilePatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.Bio != nil {
		set["bio"] = *p.Bio
	}
	if p.Expertise != nil {
		set["expertise"] = *p.Expertise
	}
	if p.FavoriteGenre != nil {
		set["favoriteGenre"] = *p.FavoriteGenre
	}
	if p.ProfilePicture != nil {
		set["profilePicture"] = *p.ProfilePicture
	}
	if p.EmailPublic != nil {
		set["emailPublic"] = *p.EmailPublic
	}
	return set
}

// EnsureIndexes creates the unique username and email indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
