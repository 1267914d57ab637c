package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Role is the capability tag assigned once, at registration. There is
// deliberately no operation that promotes or demotes a user afterwards.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         Role               `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// ParseAllowList splits a comma-separated env value into trimmed,
// non-empty entries.
func ParseAllowList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AssignRole returns RoleAdmin when the username or email appears in the
// corresponding allow-list, RoleUser otherwise. Matching is
// case-insensitive since the lists are hand-maintained strings.
func AssignRole(username, email string, adminUsernames, adminEmails []string) Role {
	for _, u := range adminUsernames {
		if strings.EqualFold(u, username) {
			return RoleAdmin
		}
	}
	for _, e := range adminEmails {
		if strings.EqualFold(e, email) {
			return RoleAdmin
		}
	}
	return RoleUser
}

type UserModelInterface interface {
	Insert(ctx context.Context, username, email, password string, role Role) error
	Authenticate(ctx context.Context, username, password string) (*User, error)
	All(ctx context.Context) ([]*User, error)
}

type UserModel struct {
	C *mongo.Collection
}

func (m *UserModel) Insert(ctx context.Context, username, email, password string, role Role) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	user := User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	_, err = m.C.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCredentials
	}
	return err
}

func (m *UserModel) Authenticate(ctx context.Context, username, password string) (*User, error) {
	var user User
	err := m.C.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return &user, nil
}

func (m *UserModel) All(ctx context.Context) ([]*User, error) {
	var users []*User
	cur, err := m.C.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &users)
	return users, err
}
