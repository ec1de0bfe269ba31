package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is the marketplace record backing an account. Once it exists its
// role is the most trusted structured role signal.
type Profile struct {
	UserID      string    `json:"user_id" bson:"_id"`
	DisplayName string    `json:"display_name" bson:"display_name"`
	Role        Role      `json:"role" bson:"role"`
	Bio         string    `json:"bio,omitempty" bson:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
