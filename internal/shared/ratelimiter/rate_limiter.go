// Package ratelimiter は固定ウィンドウ方式の簡易レートリミッターを提供します。
package ratelimiter

import (
	"sync"
	"time"
)

// window はキーごとの固定ウィンドウの状態です。
type window struct {
	count int
	start time.Time
}

// RateLimiter はキー単位で一定期間内の試行回数を制限します。
// ログインのブルートフォース緩和用で、上限を超えた呼び出しは拒否されます。
type RateLimiter struct {
	limit    int           // 1ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow はキーの試行を1回分消費し、上限以内ならtrueを返します。
// ウィンドウを過ぎたカウントはリセットされます。
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		rl.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}
