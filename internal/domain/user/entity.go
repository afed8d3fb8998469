// internal/domain/user/entity.go
package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Password is empty for accounts
// provisioned through federated login and is never serialized to JSON.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password,omitempty" json:"-"`
	UID         string             `bson:"uid,omitempty" json:"uid,omitempty"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
}
