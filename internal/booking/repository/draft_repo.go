package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mhdatheek136/branfern/internal/booking/domain"
)

const (
	draftKeyPrefix = "booking:draft:" // Draft data: booking:draft:{id}
	lockKeyPrefix  = "booking:lock:"  // Submit lock: booking:lock:{id}
	draftTTL       = 24 * time.Hour   // Drafts expire a day after their last change
	lockTTL        = 30 * time.Second // Upper bound on one submit attempt
)

// DraftRepository stores brand review drafts in Redis.
type DraftRepository struct {
	client *redis.Client
}

func NewDraftRepository(client *redis.Client) *DraftRepository {
	return &DraftRepository{client: client}
}

// Create stores a new draft, assigning an ID when missing.
func (r *DraftRepository) Create(ctx context.Context, draft *domain.Draft) error {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.draftKey(draft.ID), data, draftTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}
	if !ok {
		return fmt.Errorf("draft %s already exists", draft.ID)
	}
	return nil
}

// Get loads a draft by ID.
func (r *DraftRepository) Get(ctx context.Context, id string) (*domain.Draft, error) {
	data, err := r.client.Get(ctx, r.draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft domain.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// Save overwrites an existing draft and refreshes its TTL.
func (r *DraftRepository) Save(ctx context.Context, draft *domain.Draft) error {
	draft.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	ok, err := r.client.SetXX(ctx, r.draftKey(draft.ID), data, draftTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	if !ok {
		return domain.ErrDraftNotFound
	}
	return nil
}

// AcquireSubmitLock guards a draft against concurrent submissions.
// It returns false when another submission holds the lock.
func (r *DraftRepository) AcquireSubmitLock(ctx context.Context, id string) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.lockKey(id), time.Now().UTC().Format(time.RFC3339Nano), lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to lock draft: %w", err)
	}
	return ok, nil
}

func (r *DraftRepository) ReleaseSubmitLock(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.lockKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to unlock draft: %w", err)
	}
	return nil
}

// Delete removes a draft and any lock on it.
func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.draftKey(id))
	pipe.Del(ctx, r.lockKey(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (r *DraftRepository) draftKey(id string) string {
	return draftKeyPrefix + id
}

func (r *DraftRepository) lockKey(id string) string {
	return lockKeyPrefix + id
}
