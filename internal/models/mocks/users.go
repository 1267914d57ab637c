package mocks

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

type mockUser struct {
	user     models.User
	password string
}

type UserModel struct {
	mu    sync.Mutex
	users map[string]mockUser
}

// NewUserModel seeds a shopper ("alice") and an administrator
// ("bookadmin"), both with password "pa$$word".
func NewUserModel() *UserModel {
	m := &UserModel{users: map[string]mockUser{}}
	m.seed("alice", "alice@example.com", "pa$$word", models.RoleUser)
	m.seed("bookadmin", "admin@example.com", "pa$$word", models.RoleAdmin)
	return m
}

func (m *UserModel) seed(username, email, password string, role models.Role) {
	m.users[username] = mockUser{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Username:  username,
			Email:     email,
			Role:      role,
			CreatedAt: time.Now(),
		},
		password: password,
	}
}

func (m *UserModel) Insert(ctx context.Context, username, email, password string, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[username]; exists {
		return models.ErrDuplicateCredentials
	}
	for _, u := range m.users {
		if u.user.Email == email {
			return models.ErrDuplicateCredentials
		}
	}
	m.users[username] = mockUser{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Username:  username,
			Email:     email,
			Role:      role,
			CreatedAt: time.Now(),
		},
		password: password,
	}
	return nil
}

func (m *UserModel) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok || u.password != password {
		return nil, models.ErrInvalidCredentials
	}
	user := u.user
	return &user, nil
}

func (m *UserModel) All(ctx context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.User
	for _, u := range m.users {
		user := u.user
		out = append(out, &user)
	}
	return out, nil
}

// Role reports the role stored for a username, for assertions.
func (m *UserModel) Role(username string) (models.Role, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	return u.user.Role, ok
}
