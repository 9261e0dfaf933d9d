// Package memory holds the in-process stores. They own their data for
// the lifetime of the process and are safe under true parallelism; all
// reads hand out copies so callers can never reach the live records.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"match-wager/internal/model"
	"match-wager/internal/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*model.User)}
}

func (r *UserRepository) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) FindByNickname(_ context.Context, nickname string) (*model.User, error) {
	target := strings.ToLower(strings.TrimSpace(nickname))
	if target == "" {
		return nil, model.ErrUserNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if strings.ToLower(user.Nickname) == target {
			return cloneUser(user), nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *UserRepository) SetIdentity(_ context.Context, id string, identity model.RiotIdentity) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user.Riot = &model.RiotIdentity{PUUID: identity.PUUID, Region: identity.Region}
	user.UpdatedAt = time.Now().UTC()
	return cloneUser(user), nil
}

func (r *UserRepository) UpdateBalance(_ context.Context, id string, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.Balance = balance
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *UserRepository) SetCooldown(_ context.Context, id string, lastWagerAt, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.LastWagerAt = &lastWagerAt
	user.CooldownUntil = &until
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	if u.Riot != nil {
		riot := *u.Riot
		c.Riot = &riot
	}
	if u.LastWagerAt != nil {
		t := *u.LastWagerAt
		c.LastWagerAt = &t
	}
	if u.CooldownUntil != nil {
		t := *u.CooldownUntil
		c.CooldownUntil = &t
	}
	return &c
}
