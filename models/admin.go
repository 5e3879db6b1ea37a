package models

import (
	"golang.org/x/crypto/bcrypt"

	"explore-simeulue-be/store"
)

// Admin is a dashboard operator account from the admins collection.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

func AdminFromDoc(doc store.Doc) Admin {
	return Admin{
		ID:       doc.ID,
		Username: asString(doc.Fields["username"]),
		Password: asString(doc.Fields["password"]),
	}
}

func (a *Admin) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}
