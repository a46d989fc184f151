package redis

import (
	"context"
	"fmt"
	"strconv"

	"inheritance-vault/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// FactStream implements ports.FactPublisher on a Redis Stream. Publishing is
// best-effort fan-out; the database fact log remains the source of truth.
type FactStream struct {
	client *goredis.Client
	stream string
}

// NewFactStream creates a new Redis Stream fact publisher.
func NewFactStream(client *goredis.Client, stream string) *FactStream {
	return &FactStream{client: client, stream: stream}
}

// Publish appends the fact to the stream with XADD.
func (s *FactStream) Publish(ctx context.Context, f *domain.Fact) error {
	values := map[string]any{
		"id":         f.ID.String(),
		"type":       string(f.Type),
		"vault_id":   strconv.FormatInt(f.VaultID, 10),
		"actor":      f.Actor.String(),
		"amount":     strconv.FormatInt(f.Amount, 10),
		"created_at": f.CreatedAt.UnixMilli(),
	}
	if f.Recipient != uuid.Nil {
		values["recipient"] = f.Recipient.String()
	}
	if f.Details != "" {
		values["details"] = f.Details
	}

	err := s.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: s.stream,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd fact: %w", err)
	}
	return nil
}
