package tokenpocket

import (
	"context"

	"moff.io/ual-tokenpocket/pkg/errors"
	"moff.io/ual-tokenpocket/pkg/ual"
)

const loginErrorMessage = "Unable to get the current account during login"

var (
	errNoResult      = errors.New("No result returned")
	errNoChain       = errors.New("no chain configured")
	errNoBridge      = errors.New("wallet bridge not injected")
	errEmptyResponse = errors.New("empty wallet response")
)

// Login 返回当前账户会话。已有会话时直接返回缓存，不再访问钱包；
// 钱包调用失败或返回结果为 false 时返回 Login 类型错误，且不缓存任何会话.
func (a *Authenticator) Login(ctx context.Context) ([]ual.User, error) {
	if err := a.loginLock.Acquire(ctx); err != nil {
		return nil, ual.NewError(loginErrorMessage, ual.ErrorTypeLogin, Name, err)
	}
	defer a.loginLock.Release()

	if cached := a.Sessions(); len(cached) > 0 {
		a.logger.Debugf("login served from cached session %s", cached[0].SessionID())
		return cached, nil
	}

	user, err := a.fetchSession(ctx)
	if err != nil {
		loginErr := ual.NewError(loginErrorMessage, ual.ErrorTypeLogin, Name, err)
		errors.Report(loginErr)
		a.logger.Warnf("login failed: %v", err)
		return nil, loginErr
	}

	a.mu.Lock()
	if len(a.sessions) == 0 {
		a.sessions = append(a.sessions, user)
	}
	a.mu.Unlock()
	a.logger.Infof("logged in as %s on chain %s", user.AccountName(), user.ChainID())
	return a.Sessions(), nil
}

func (a *Authenticator) fetchSession(ctx context.Context) (ual.User, error) {
	if a.bridge == nil {
		return nil, errNoBridge
	}
	if len(a.chains) == 0 {
		return nil, errNoChain
	}
	resp, err := a.bridge.GetCurrentWallet(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get current wallet")
	}
	if resp == nil {
		return nil, errEmptyResponse
	}
	if !resp.Result {
		if resp.Msg != "" {
			return nil, errors.Wrap(errNoResult, resp.Msg)
		}
		return nil, errNoResult
	}
	user, err := a.opts.SessionFactory(a.chains[0], resp.Data)
	if err != nil {
		return nil, errors.Wrap(err, "build session")
	}
	return user, nil
}

// Logout 仅清除本地缓存的会话，TokenPocket 没有真正的登出概念
func (a *Authenticator) Logout(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions = nil
	return nil
}

// Sessions returns a copy of the cached sessions, at most one.
func (a *Authenticator) Sessions() []ual.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.sessions) == 0 {
		return nil
	}
	cp := make([]ual.User, len(a.sessions))
	copy(cp, a.sessions)
	return cp
}
