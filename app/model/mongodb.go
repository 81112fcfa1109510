package model

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification merepresentasikan 1 dokumen notifikasi di MongoDB
// (collection: notifications). Notifikasi dikirim sinkron sebagai side
// effect transisi workflow: perubahan status magang, hasil review laporan,
// dan provisioning presensi kelas bimbingan.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID          `bson:"userId" json:"userId"`       // penerima (users.id di Postgres)
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Category  string             `bson:"category" json:"category"`   // internship | report | guidance_class
	RelatedID string             `bson:"relatedId" json:"relatedId"` // id record Postgres yang memicu notifikasi
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
