package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

type mongoReview struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	MovieID     string             `bson:"movieId"`
	MovieTitle  string             `bson:"movieTitle"`
	MoviePoster string             `bson:"moviePoster,omitempty"`
	Rating      int                `bson:"rating"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	Spoilers    bool               `bson:"spoilers"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`

	// Author is only filled by the $lookup pipeline.
	Author *mongoAuthor `bson:"author,omitempty"`
}

type mongoAuthor struct {
	ID             primitive.ObjectID `bson:"_id"`
	Username       string             `bson:"username"`
	Role           string             `bson:"role"`
	ProfilePicture string             `bson:"profilePicture"`
}

func (mr *mongoReview) toDomain() *domain.Review {
	r := &domain.Review{
		ID:          mr.ID.Hex(),
		UserID:      mr.UserID.Hex(),
		MovieID:     mr.MovieID,
		MovieTitle:  mr.MovieTitle,
		MoviePoster: mr.MoviePoster,
		Rating:      mr.Rating,
		Title:       mr.Title,
		Content:     mr.Content,
		Spoilers:    mr.Spoilers,
		CreatedAt:   mr.CreatedAt.UTC(),
		UpdatedAt:   mr.UpdatedAt.UTC(),
	}
	if mr.Author != nil {
		r.Author = &domain.Author{
			ID:             mr.Author.ID.Hex(),
			Username:       mr.Author.Username,
			Role:           mr.Author.Role,
			ProfilePicture: mr.Author.ProfilePicture,
		}
	}
	return r
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	uid, ok := objectID(rv.UserID)
	if !ok {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReview{
		UserID:      uid,
		MovieID:     rv.MovieID,
		MovieTitle:  rv.MovieTitle,
		MoviePoster: rv.MoviePoster,
		Rating:      rv.Rating,
		Title:       rv.Title,
		Content:     rv.Content,
		Spoilers:    rv.Spoilers,
		CreatedAt:   rv.CreatedAt,
		UpdatedAt:   rv.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	rv.ID = insertedHex(res)
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrReviewNotFound
	}

	reviews, err := r.aggregateWithAuthor(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, domain.ErrReviewNotFound
	}
	return reviews[0], nil
}

func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID string) ([]*domain.Review, error) {
	return r.aggregateWithAuthor(ctx, bson.M{"movieId": movieID})
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []*domain.Review{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"userId": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	return decodeReviews(ctx, cur)
}

// aggregateWithAuthor joins each matching review with the public fields of its author.
func (r *ReviewRepository) aggregateWithAuthor(ctx context.Context, match bson.M) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{"author.password": 0, "author.email": 0}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate reviews: %w", err)
	}
	return decodeReviews(ctx, cur)
}

func decodeReviews(ctx context.Context, cur *mongo.Cursor) ([]*domain.Review, error) {
	var docs []mongoReview
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	out := make([]*domain.Review, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "movieId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
