package bridge

import (
	"context"
	"os"

	"go.uber.org/atomic"
	"moff.io/ual-tokenpocket/pkg/errors"
)

// Replay 回放录制的 getCurrentWallet 响应，用于在桌面环境下本地调试适配器，不与真实钱包通信.
type Replay struct {
	path string
	// connectAfter IsConnected 被调用 connectAfter 次后才返回 true，模拟钱包注入延迟
	connectAfter int64

	connectedChecks atomic.Int64
	walletCalls     atomic.Int64
}

// NewReplay 从 path 读取录制的响应。connectAfter 为负数时钱包永不连接
func NewReplay(path string, connectAfter int) *Replay {
	return &Replay{
		path:         path,
		connectAfter: int64(connectAfter),
	}
}

func (r *Replay) IsConnected() bool {
	n := r.connectedChecks.Inc()
	if r.connectAfter < 0 {
		return false
	}
	return n > r.connectAfter
}

func (r *Replay) GetCurrentWallet(ctx context.Context) (*WalletResponse, error) {
	r.walletCalls.Inc()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read recorded wallet response %s", r.path)
	}
	return ParseWalletResponse(raw)
}

// WalletCalls 返回 GetCurrentWallet 被调用的次数
func (r *Replay) WalletCalls() int64 {
	return r.walletCalls.Load()
}
