// Package session persists the authenticated Session (token + user record)
// under the fixed keys "authToken" and "user".
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/repositories/kv"
	"github.com/dmitrijs2005/authclient/internal/common"
)

// Store is the explicit replacement for browser local storage.
type Store interface {
	// Get returns the stored session, or (nil, nil) when logged out.
	Get(ctx context.Context) (*models.Session, error)
	Set(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
	// HasToken reports whether the token key is present.
	HasToken(ctx context.Context) (bool, error)
	// Token returns the stored token, or "" when logged out. It does not
	// depend on the user record being readable.
	Token(ctx context.Context) (string, error)
	Close() error
}

// KVStore implements Store on top of a kv.Repository.
type KVStore struct {
	repo kv.Repository
}

func NewKVStore(repo kv.Repository) *KVStore {
	return &KVStore{repo: repo}
}

func (s *KVStore) Get(ctx context.Context) (*models.Session, error) {
	token, err := s.repo.Get(ctx, models.TokenKey)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	sess := &models.Session{Token: string(token)}

	raw, err := s.repo.Get(ctx, models.UserKey)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &sess.User); err != nil {
			return nil, fmt.Errorf("%w: user record: %v", common.ErrorCorruptedData, err)
		}
	}
	return sess, nil
}

// Set writes token and user in one atomic repository call, so a reader never
// sees a token without its user.
func (s *KVStore) Set(ctx context.Context, sess *models.Session) error {
	if sess == nil || sess.Token == "" {
		return fmt.Errorf("session without token: %w", common.ErrorInternal)
	}

	user, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return s.repo.Set(ctx, map[string][]byte{
		models.TokenKey: []byte(sess.Token),
		models.UserKey:  user,
	})
}

func (s *KVStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, models.TokenKey, models.UserKey)
}

func (s *KVStore) HasToken(ctx context.Context) (bool, error) {
	token, err := s.repo.Get(ctx, models.TokenKey)
	if err != nil {
		return false, err
	}
	return token != nil, nil
}

func (s *KVStore) Token(ctx context.Context) (string, error) {
	token, err := s.repo.Get(ctx, models.TokenKey)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func (s *KVStore) Close() error {
	return s.repo.Close()
}
