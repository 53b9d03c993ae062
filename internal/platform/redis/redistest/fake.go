// Package redistest provides an in-process stand-in for the redis client
// used by the cache layers in tests.
package redistest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"creon-backend/internal/platform/redis"
)

// Fake keeps string values in a map. TTLs are ignored and SCAN only supports
// trailing-star patterns, which is all the callers use.
type Fake struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

var _ redis.RedisClient = (*Fake)(nil)

func New() *Fake { return &Fake{data: map[string]string{}} }

// FailWith makes every command fail with err until it is called with nil.
func (f *Fake) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Has reports whether key is stored.
func (f *Fake) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

// Len returns the number of stored keys.
func (f *Fake) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data)
}

func (f *Fake) Ping(ctx context.Context) *goredis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewStatusResult("", f.err)
	}
	return goredis.NewStatusResult("PONG", nil)
}

func (f *Fake) Get(ctx context.Context, key string) *goredis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *Fake) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *goredis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewStatusResult("", f.err)
	}
	switch v := value.(type) {
	case string:
		f.data[key] = v
	case []byte:
		f.data[key] = string(v)
	default:
		return goredis.NewStatusResult("", goredis.Nil)
	}
	return goredis.NewStatusResult("OK", nil)
}

func (f *Fake) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func (f *Fake) Exists(ctx context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func (f *Fake) Scan(ctx context.Context, cursor uint64, match string, count int64) *goredis.ScanCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewScanCmdResult(nil, 0, f.err)
	}
	var keys []string
	for k := range f.data {
		if strings.HasPrefix(k, strings.TrimSuffix(match, "*")) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return goredis.NewScanCmdResult(keys, 0, nil)
}

func (f *Fake) Close() error { return nil }
