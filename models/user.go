package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"explore-simeulue-be/store"
)

// User is an end-user account of the mobile app, managed from the dashboard.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

func UserFromDoc(doc store.Doc) User {
	f := doc.Fields
	return User{
		ID:       doc.ID,
		Username: asString(f["username"]),
		Email:    asString(f["email"]),
		Password: asString(f["password"]),
	}
}

func (u *User) Fields() bson.M {
	return bson.M{
		"username": u.Username,
		"email":    u.Email,
		"password": u.Password,
	}
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
