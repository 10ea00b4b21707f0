package wizardinfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vitaehq/vitae/builder/wizard"
	"github.com/vitaehq/vitae/pkg/kernel"
)

const (
	draftKeyPrefix = "wizard:draft:"

	// Abandoned drafts disappear after a day
	draftTTL = 24 * time.Hour
)

// RedisDraftStore keeps wizard sessions in redis with a TTL
type RedisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

func (s *RedisDraftStore) Save(ctx context.Context, session *wizard.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return wizard.ErrRegistry.NewWithCause(wizard.CodeStoreFailure, err).
			WithDetail("session_id", session.ID)
	}

	if err := s.client.Set(ctx, draftKey(session.ID), data, draftTTL).Err(); err != nil {
		return wizard.ErrRegistry.NewWithCause(wizard.CodeStoreFailure, err).
			WithDetail("session_id", session.ID).
			WithDetail("operation", "save")
	}

	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, id kernel.SessionID) (*wizard.Session, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, wizard.ErrSessionNotFound().WithDetail("session_id", id)
	}
	if err != nil {
		return nil, wizard.ErrRegistry.NewWithCause(wizard.CodeStoreFailure, err).
			WithDetail("session_id", id).
			WithDetail("operation", "get")
	}

	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, wizard.ErrRegistry.NewWithCause(wizard.CodeStoreFailure, err).
			WithDetail("session_id", id).
			WithDetail("operation", "decode")
	}

	return &session, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, id kernel.SessionID) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return wizard.ErrRegistry.NewWithCause(wizard.CodeStoreFailure, err).
			WithDetail("session_id", id).
			WithDetail("operation", "delete")
	}
	return nil
}

func draftKey(id kernel.SessionID) string {
	return draftKeyPrefix + id.String()
}
