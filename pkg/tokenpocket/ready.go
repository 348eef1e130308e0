package tokenpocket

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"moff.io/ual-tokenpocket/pkg/errors"
	"moff.io/ual-tokenpocket/pkg/ual"
)

// CheckReady polls the bridge until it reports connected or the check budget runs out.
// Every check waits one interval first, so a bridge that is already connected still costs
// one interval. Running out of checks is a negative answer, not an error; only ctx ends
// the probe with an error.
func (a *Authenticator) CheckReady(ctx context.Context) (bool, error) {
	if a.bridge == nil {
		a.logger.Warnf("wallet bridge not injected, reporting not ready")
		return false, nil
	}
	schedule := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(a.opts.CheckInterval), uint64(a.opts.NumChecks)),
		ctx,
	)
	connected := false
	for check := 1; ; check++ {
		next := schedule.NextBackOff()
		if next == backoff.Stop {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			a.logger.Infof("wallet bridge not connected after %d checks", a.opts.NumChecks)
			return connected, nil
		}
		if err := sleep(ctx, next); err != nil {
			return false, err
		}
		connected = a.bridge.IsConnected()
		if connected {
			a.logger.Infof("wallet bridge connected after %d checks", check)
			return true, nil
		}
		a.logger.Debugf("wallet bridge not connected, check %d of %d", check, a.opts.NumChecks)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Init 检测钱包接口是否就绪。检测出错时保存为 Initialization 错误，不返回给调用方；
// 无论结果如何，返回时 IsLoading 已不再因本次初始化为 true.
func (a *Authenticator) Init(ctx context.Context) {
	a.inflight.Inc()
	defer a.finishInit()
	a.runInit(ctx, a.generation.Inc())
}

// Reset 同步清除已保存的错误并进入加载状态，随后异步重新初始化。
// 清除错误的同时推进 generation，之前仍在进行的初始化失败后不再保存或上报错误。
// 返回的通道在重新初始化结束后关闭.
func (a *Authenticator) Reset(ctx context.Context) <-chan struct{} {
	a.mu.Lock()
	a.initErr = nil
	gen := a.generation.Inc()
	a.mu.Unlock()
	a.inflight.Inc()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer a.finishInit()
		a.runInit(ctx, gen)
	}()
	return done
}

func (a *Authenticator) runInit(ctx context.Context, gen int64) {
	ready, err := a.CheckReady(ctx)
	if err == nil {
		a.logger.Debugf("initialization finished, ready=%v", ready)
		return
	}
	initErr := ual.NewError("Error occurred during autologin", ual.ErrorTypeInitialization, Name, err)
	a.mu.Lock()
	if a.generation.Load() != gen {
		a.mu.Unlock()
		a.logger.Debugf("dropping initialization error from a superseded run: %v", err)
		return
	}
	a.initErr = initErr
	a.mu.Unlock()
	a.logger.Warnf("initialization failed: %v", err)
	errors.Report(initErr)
}

func (a *Authenticator) finishInit() {
	a.initialized.Store(true)
	a.inflight.Dec()
}

// IsLoading 尚未完成首次初始化，或有初始化正在进行时为 true
func (a *Authenticator) IsLoading() bool {
	return !a.initialized.Load() || a.inflight.Load() > 0
}

func (a *Authenticator) IsErrored() bool {
	return a.GetError() != nil
}

func (a *Authenticator) GetError() *ual.Error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initErr
}
