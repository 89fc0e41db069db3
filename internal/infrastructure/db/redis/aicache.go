package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const answerTTL = time.Hour

// AnswerCache stores chat answers keyed by a digest of the prompt, so
// identical questions are served without a provider round trip.
// Key format: ai:answer:<sha256(prompt)>
type AnswerCache struct {
	client *redis.Client
}

// NewAnswerCache creates an AnswerCache wrapping the given Redis client.
func NewAnswerCache(client *redis.Client) *AnswerCache {
	return &AnswerCache{client: client}
}

// Get returns the cached answer for prompt, if any.
func (c *AnswerCache) Get(ctx context.Context, prompt string) (string, bool, error) {
	answer, err := c.client.Get(ctx, c.key(prompt)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("answer cache get: %w", err)
	}
	return answer, true, nil
}

// Set stores the answer for prompt (expires after answerTTL).
func (c *AnswerCache) Set(ctx context.Context, prompt, answer string) error {
	return c.client.Set(ctx, c.key(prompt), answer, answerTTL).Err()
}

func (c *AnswerCache) key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "ai:answer:" + hex.EncodeToString(sum[:])
}
