package starter

import (
	"context"
	"sync"

	"moff.io/ual-tokenpocket/pkg/log"
	"moff.io/ual-tokenpocket/pkg/ual"
)

type Initializable interface {
	Init(ctx context.Context)
}

// Start 并发初始化所有认证器，等待全部完成后返回可展示且未出错的认证器
func Start(ctx context.Context, elems ...ual.Authenticator) []ual.Authenticator {
	var wg sync.WaitGroup
	for _, ele := range elems {
		wg.Add(1)
		go func(ele Initializable) {
			defer wg.Done()
			ele.Init(ctx)
		}(ele)
	}
	wg.Wait()

	available := make([]ual.Authenticator, 0, len(elems))
	for _, ele := range elems {
		if ele.IsErrored() {
			log.Warnf("authenticator %s failed to initialize: %v", ele.GetName(), ele.GetError())
			continue
		}
		if !ele.ShouldRender() {
			log.Debugf("authenticator %s is not offered in this environment", ele.GetName())
			continue
		}
		available = append(available, ele)
	}
	return available
}

// AutoLogin 仅当唯一可用的认证器要求自动登录时登录，返回 nil 表示未自动登录
func AutoLogin(ctx context.Context, available []ual.Authenticator) (ual.Authenticator, []ual.User, error) {
	if len(available) != 1 || !available[0].ShouldAutoLogin() {
		return nil, nil, nil
	}
	auth := available[0]
	users, err := auth.Login(ctx)
	if err != nil {
		return auth, nil, err
	}
	return auth, users, nil
}
