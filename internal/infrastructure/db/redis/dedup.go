package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// LabelDeduper suppresses repeat labeling of the same image URL within the
// TTL window. Key format: label:<sha256(image_url)>
type LabelDeduper struct {
	client *redis.Client
}

// NewLabelDeduper creates a LabelDeduper wrapping the given Redis client.
func NewLabelDeduper(client *redis.Client) *LabelDeduper {
	return &LabelDeduper{client: client}
}

// IsDuplicate reports whether this image URL was labeled recently.
func (d *LabelDeduper) IsDuplicate(ctx context.Context, imageURL string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(imageURL)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this image URL has been labeled (expires after dedupTTL).
func (d *LabelDeduper) Mark(ctx context.Context, imageURL string) error {
	return d.client.Set(ctx, d.key(imageURL), "1", dedupTTL).Err()
}

func (d *LabelDeduper) key(imageURL string) string {
	sum := sha256.Sum256([]byte(imageURL))
	return "label:" + hex.EncodeToString(sum[:])
}
