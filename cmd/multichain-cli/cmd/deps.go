package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"multichain-send/internal/balance"
	"multichain-send/internal/builder"
	"multichain-send/internal/event"
	"multichain-send/internal/service/mq"
	"multichain-send/internal/snap"
	"multichain-send/pkg/cache"
	"multichain-send/pkg/config"
	"multichain-send/pkg/database"
)

// deps are the collaborators built from config for one command run.
type deps struct {
	balances *balance.CacheReader
	producer mq.Producer
	rdb      *redis.Client
	// handler delivers signing service requests. Nil leaves builders without
	// a client, so fee estimation and signing fail with a service error.
	handler snap.Handler
}

func newDeps(ctx context.Context, cfg config.Config) (*deps, error) {
	d := &deps{}

	needRedis := cfg.Cache.Driver == "redis" || cfg.Cache.Driver == "multi" || cfg.Events.Driver == "redis"
	if needRedis {
		rdb, err := database.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		d.rdb = rdb
	}

	var c cache.Cache
	switch cfg.Cache.Driver {
	case "memory", "":
		c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	case "redis":
		c = cache.NewRedisCache(d.rdb)
	case "multi":
		c = cache.NewMultiLevelCache(cache.NewMemoryCache(time.Minute, 5*time.Minute), cache.NewRedisCache(d.rdb))
	default:
		d.close()
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
	d.balances = balance.NewCacheReader(c, cfg.Cache.TTL)

	switch cfg.Events.Driver {
	case "none", "":
	case "memory":
		d.producer = mq.NewMemoryProducer()
	case "redis":
		d.producer = mq.NewRedisProducer(d.rdb)
	case "kafka":
		d.producer = mq.NewKafkaProducer(cfg.Events.Brokers, cfg.Events.Topic)
	default:
		d.close()
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}

	return d, nil
}

// options turns the deps into builder options.
func (d *deps) options(cfg config.Config) []builder.Option {
	opts := []builder.Option{
		builder.WithBalanceReader(d.balances),
		builder.WithConfirmationTime(cfg.Fee.ConfirmationTime),
	}
	if d.producer != nil {
		opts = append(opts, builder.WithPublisher(event.NewPublisher(d.producer, cfg.Events.Topic)))
	}
	if d.handler != nil {
		opts = append(opts, builder.WithSnapClient(newSnapClient(cfg, d.handler)))
	}
	return opts
}

// newSnapClient addresses the configured bitcoin signing service through h.
func newSnapClient(cfg config.Config, h snap.Handler) *snap.Client {
	return snap.NewClient(h, cfg.Snap.BitcoinID, cfg.Snap.Origin)
}

// close releases the producer, then the shared redis client.
func (d *deps) close() {
	if d.producer != nil {
		_ = d.producer.Close()
	}
	if d.rdb != nil {
		_ = d.rdb.Close()
	}
}
