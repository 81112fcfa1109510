package repository

import (
	"context"
	"time"

	"internship-portal-backend/app/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository menangani dokumen notifikasi di MongoDB
// (collection: notifications). Notifikasi dibuat sinkron sebagai side
// effect transisi workflow; kegagalan insert tidak menggagalkan transisi.
type NotificationRepository interface {
	Insert(ctx context.Context, n *model.Notification) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string, userID uuid.UUID) error
}

type notificationRepository struct {
	mongo *mongo.Database
}

// NewNotificationRepository membuat instance repository notifikasi.
func NewNotificationRepository(mongoDB *mongo.Database) NotificationRepository {
	return &notificationRepository{mongo: mongoDB}
}

func (r *notificationRepository) collection() *mongo.Collection {
	return r.mongo.Collection("notifications")
}

func (r *notificationRepository) Insert(ctx context.Context, n *model.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	_, err := r.collection().InsertOne(ctx, n)
	return err
}

// FindByUser mengambil feed notifikasi satu user, terbaru dulu (max 50).
func (r *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(50)

	cur, err := r.collection().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notifications := []model.Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead menandai satu notifikasi milik user sebagai sudah dibaca.
// Filter menyertakan userId supaya user tidak bisa menandai milik orang lain.
func (r *notificationRepository) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": objID, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
