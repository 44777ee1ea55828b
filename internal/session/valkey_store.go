package session

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

const (
	sessionKeyPrefix = "civicpulse:session:"
	valkeyRetries    = 3
	valkeyRetryDelay = 250 * time.Millisecond
)

type ValkeyConfig struct {
	Address  string
	Password string
	TLS      bool
	TTL      time.Duration
}

// ValkeyStore keeps sessions as JSON values with a sliding expiry, so any
// number of processes can serve the same conversation.
type ValkeyStore struct {
	client valkey.Client
	ttl    time.Duration
}

func NewValkeyStore(ctx context.Context, cfg ValkeyConfig) (*ValkeyStore, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{
			cfg.Address,
		},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyStore] failed to create Valkey client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyStore] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyStore] Successfully connected to valkey",
		slog.String("address", cfg.Address),
		slog.Duration("ttl", cfg.TTL))

	return &ValkeyStore{client: client, ttl: cfg.TTL}, nil
}

func (v *ValkeyStore) Close() {
	v.client.Close()
}

func (v *ValkeyStore) Load(ctx context.Context, id string) (*Session, error) {
	res := v.doWithRetry(ctx, func() valkey.Completed {
		return v.client.B().Get().Key(sessionKey(id)).Build()
	})

	raw, err := res.ToString()
	if valkey.IsValkeyNil(err) {
		return New(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("[ValkeyStore] failed to load session %s: %w", id, err)
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("[ValkeyStore] corrupt session %s: %w", id, err)
	}
	s.ID = id
	return &s, nil
}

func (v *ValkeyStore) Save(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("cannot save session without an id")
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("[ValkeyStore] failed to encode session %s: %w", s.ID, err)
	}

	key := sessionKey(s.ID)
	res := v.doWithRetry(ctx, func() valkey.Completed {
		set := v.client.B().Set().Key(key).Value(string(payload))
		if v.ttl > 0 {
			// PX keeps the write and its expiry atomic at millisecond precision.
			return set.PxMilliseconds(v.ttl.Milliseconds()).Build()
		}
		return set.Build()
	})
	if err := res.Error(); err != nil {
		return fmt.Errorf("[ValkeyStore] failed to save session %s: %w", s.ID, err)
	}
	return nil
}

func (v *ValkeyStore) Delete(ctx context.Context, id string) error {
	res := v.doWithRetry(ctx, func() valkey.Completed {
		return v.client.B().Del().Key(sessionKey(id)).Build()
	})
	if err := res.Error(); err != nil {
		return fmt.Errorf("[ValkeyStore] failed to delete session %s: %w", id, err)
	}
	return nil
}

func (v *ValkeyStore) doWithRetry(ctx context.Context, build func() valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult

	for i := 0; i < valkeyRetries; i++ {
		result = v.client.Do(ctx, build())
		err := result.Error()
		if err == nil || valkey.IsValkeyNil(err) {
			break
		}

		slog.Warn("[ValkeyStore] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		if !sleepCtx(ctx, valkeyRetryDelay) {
			break
		}
	}

	return result
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
