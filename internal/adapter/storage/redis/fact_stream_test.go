package redis_test

import (
	"context"
	"testing"
	"time"

	"inheritance-vault/internal/adapter/storage/redis"
	"inheritance-vault/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactStream_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	stream := redis.NewFactStream(client, "vault:facts")
	ctx := context.Background()

	fact := domain.NewFact(domain.FactVaultClaimed, 7, uuid.New(), time.Now().UTC())
	fact.Recipient = uuid.New()
	fact.Amount = 50000

	err := stream.Publish(ctx, fact)
	require.NoError(t, err)

	entries, err := client.XRange(ctx, "vault:facts", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(domain.FactVaultClaimed), entries[0].Values["type"])
	assert.Equal(t, "7", entries[0].Values["vault_id"])
	assert.Equal(t, fact.Recipient.String(), entries[0].Values["recipient"])
	assert.Equal(t, "50000", entries[0].Values["amount"])
}

func TestFactStream_Publish_OmitsEmptyFields(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	stream := redis.NewFactStream(client, "vault:facts")
	ctx := context.Background()

	// Heartbeat facts carry no recipient or details.
	fact := domain.NewFact(domain.FactHeartbeatRecorded, 3, uuid.New(), time.Now().UTC())

	err := stream.Publish(ctx, fact)
	require.NoError(t, err)

	entries, err := client.XRange(ctx, "vault:facts", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Values, "recipient")
	assert.NotContains(t, entries[0].Values, "details")
}

func TestFactStream_Publish_OrderPreserved(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	stream := redis.NewFactStream(client, "vault:facts")
	ctx := context.Background()
	actor := uuid.New()

	for _, ft := range []domain.FactType{domain.FactVaultCreated, domain.FactVaultFunded, domain.FactVaultClaimed} {
		require.NoError(t, stream.Publish(ctx, domain.NewFact(ft, 1, actor, time.Now().UTC())))
	}

	entries, err := client.XRange(ctx, "vault:facts", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, string(domain.FactVaultCreated), entries[0].Values["type"])
	assert.Equal(t, string(domain.FactVaultFunded), entries[1].Values["type"])
	assert.Equal(t, string(domain.FactVaultClaimed), entries[2].Values["type"])
}
