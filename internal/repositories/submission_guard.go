package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
)

// beginScript moves the key to the pending state unless it is already pending.
var beginScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if current == ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

// SubmissionGuardRepository keeps the request state of a user's entry form in Redis.
type SubmissionGuardRepository struct {
	client *redis.Client
	ttl    time.Duration // a pending state older than ttl is considered abandoned
}

func NewSubmissionGuardRepository(client *redis.Client, ttl time.Duration) *SubmissionGuardRepository {
	return &SubmissionGuardRepository{client: client, ttl: ttl}
}

func submissionKey(userID uuid.UUID) string {
	return fmt.Sprintf("submission:%s", userID)
}

// Begin switches the user's state to pending. It returns false when a submission
// is already pending.
func (r *SubmissionGuardRepository) Begin(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := submissionKey(userID)
	res, err := beginScript.Run(ctx, r.client, []string{key}, string(models.RequestPending), r.ttl.Milliseconds()).Int()

	logger.Log.Infow("redis begin submission",
		"key", key,
		"result", res,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// Finish records the outcome of the submission.
func (r *SubmissionGuardRepository) Finish(ctx context.Context, userID uuid.UUID, state models.RequestState) error {
	key := submissionKey(userID)
	err := r.client.Set(ctx, key, string(state), r.ttl).Err()

	logger.Log.Infow("redis finish submission",
		"key", key,
		"state", state,
		"error", err,
	)

	return err
}

// State returns the current request state, idle when nothing was recorded.
func (r *SubmissionGuardRepository) State(ctx context.Context, userID uuid.UUID) (models.RequestState, error) {
	key := submissionKey(userID)
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("redis get",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return models.RequestIdle, nil
	}
	if err != nil {
		return "", err
	}
	return models.RequestState(val), nil
}
