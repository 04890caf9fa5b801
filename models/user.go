package models

import "time"

// User is a dashboard account.
type User struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Password    string    `bson:"password,omitempty" json:"password,omitempty"` // bcrypt hash at rest, cleared in responses
	TokenHash   string    `bson:"tokenHash,omitempty" json:"-"`
	CompanyName string    `bson:"companyName,omitempty" json:"companyName,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
