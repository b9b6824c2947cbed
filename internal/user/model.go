package user

import "time"

// User is a stored account record. The hash and salt never leave the
// persistence and password-hashing layers; JSON serialization skips them.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	PasswordSalt string    `bson:"password_salt" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
