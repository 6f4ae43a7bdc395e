package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionUsers = "users"
)

type UserPreferences struct {
	DefaultStyle  string `bson:"default_style" json:"default_style"`
	Notifications bool   `bson:"notifications" json:"notifications"`
}

type User struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	WalletAddress string              `bson:"wallet_address" json:"wallet_address"`
	Username      string              `bson:"username,omitempty" json:"username,omitempty"`
	Email         string              `bson:"email,omitempty" json:"email,omitempty"`
	IsActive      bool                `bson:"is_active" json:"is_active"`
	Preferences   UserPreferences     `bson:"preferences" json:"preferences"`
	TotalRequests int64               `bson:"total_requests" json:"total_requests"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}
