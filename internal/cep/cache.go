package cep

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/carwash-scheduler/internal/validators"
)

// CachedResolver decora o client com cache read-through no Redis.
// Endereço de CEP praticamente não muda; só acerto vai para o cache.
// Com rdb nil o cache é desligado e tudo passa direto.
type CachedResolver struct {
	inner Resolver
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedResolver(inner Resolver, rdb *redis.Client, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func (c *CachedResolver) Lookup(ctx context.Context, cep string) (*Address, error) {
	if c.rdb == nil {
		return c.inner.Lookup(ctx, cep)
	}

	key := "cep:" + validators.NormalizeCEP(cep)

	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var addr Address
		if err := json.Unmarshal([]byte(raw), &addr); err == nil {
			return &addr, nil
		}
	}

	addr, err := c.inner.Lookup(ctx, cep)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(addr); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.Println("cep cache set error:", err)
		}
	}

	return addr, nil
}

// Compile-time check
var _ Resolver = (*CachedResolver)(nil)
