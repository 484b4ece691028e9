package mongorepo

import (
	"context"
	"strings"

	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	coll *mongo.Collection
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.coll.InsertOne(ctx, newUserDoc(user))
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError("Email already registered")
	}
	return storeError(err, "create user", "")
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"telegram_id": telegramID})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, storeError(err, "find user", "User not found")
	}
	return doc.domain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, newUserDoc(user))
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError("Telegram account already linked")
	}
	if err != nil {
		return storeError(err, "update user", "User not found")
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) SetCurrentWeight(ctx context.Context, userID string, weight float64) error {
	_, err := r.coll.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"current_weight": weight}})
	return storeError(err, "update current weight", "User not found")
}
