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

const favoritesCollection = "favorites"

type FavoriteRepository struct {
	coll *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{coll: db.Collection(favoritesCollection)}
}

type mongoFavorite struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	MovieID     string             `bson:"movieId"`
	MovieTitle  string             `bson:"movieTitle"`
	MoviePoster string             `bson:"moviePoster,omitempty"`
	AddedDate   time.Time          `bson:"addedDate"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (mf *mongoFavorite) toDomain() *domain.Favorite {
	return &domain.Favorite{
		ID:          mf.ID.Hex(),
		UserID:      mf.UserID.Hex(),
		MovieID:     mf.MovieID,
		MovieTitle:  mf.MovieTitle,
		MoviePoster: mf.MoviePoster,
		AddedDate:   mf.AddedDate.UTC(),
		CreatedAt:   mf.CreatedAt.UTC(),
		UpdatedAt:   mf.UpdatedAt.UTC(),
	}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	uid, ok := objectID(f.UserID)
	if !ok {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoFavorite{
		UserID:      uid,
		MovieID:     f.MovieID,
		MovieTitle:  f.MovieTitle,
		MoviePoster: f.MoviePoster,
		AddedDate:   f.AddedDate,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFavoriteExists
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	f.ID = insertedHex(res)
	return nil
}

func (r *FavoriteRepository) FindByID(ctx context.Context, id string) (*domain.Favorite, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrFavoriteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mf mongoFavorite
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []*domain.Favorite{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "addedDate", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"userId": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}

	var docs []mongoFavorite
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}

	out := make([]*domain.Favorite, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique (userId, movieId) index.
func (r *FavoriteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "movieId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "addedDate", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
