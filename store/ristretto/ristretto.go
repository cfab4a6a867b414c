// Package ristretto adapts dgraph-io/ristretto to store.Store for in-process
// scalar caching. Ristretto has no grouped container primitive, so it cannot
// back a HashCache.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	st "github.com/nkanish2002/rediscache/store"
)

type Store struct {
	c *rc.Cache
}

var _ st.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, isBytes := v.([]byte)
	if !isBytes {
		// drop unexpected entry shape; a nil []byte is still a valid value
		s.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set admits the entry with a cost equal to its byte length. Ristretto may
// reject writes under pressure; a rejected write is not an error here, the
// next Get simply misses and recomputes.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl > 0 {
		s.c.SetWithTTL(key, value, int64(len(value)), ttl)
	} else {
		s.c.Set(key, value, int64(len(value)))
	}
	return nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.c.Del(key)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto's counters for the application; not part of the
// store.Store contract.
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
