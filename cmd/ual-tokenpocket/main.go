package main

import (
	"context"
	"os"
	"os/signal"

	"moff.io/ual-tokenpocket/internal/config"
	"moff.io/ual-tokenpocket/internal/starter"
	"moff.io/ual-tokenpocket/pkg/bridge"
	"moff.io/ual-tokenpocket/pkg/errors"
	"moff.io/ual-tokenpocket/pkg/log"
	"moff.io/ual-tokenpocket/pkg/tokenpocket"
)

func main() {
	log.Infof("Starting TokenPocket authenticator harness")
	startApp()
}

func startApp() {
	defer func() {
		if i := recover(); i != nil {
			log.Fatal(errors.ErrorfAndReport("%v", i))
		}
	}()
	config.Read()
	log.SetLevel(config.Global.LogLevel)
	if err := errors.NewSentryReporter(config.Global.Reporters.SentryDSN); err != nil {
		log.Error(err)
	}
	errors.NewLarkReporter(config.Global.Reporters.LarkWebhook, config.Global.Reporters.ReportSilence)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	replay := bridge.NewReplay(config.Global.BridgeReplayPath, config.Global.BridgeConnectAfter)
	tp := tokenpocket.New(config.Global.Chains, replay,
		tokenpocket.WithOptions(config.Global.TokenPocket.Options()),
		tokenpocket.WithStaticUserAgent(config.Global.UserAgent),
	)

	available := starter.Start(ctx, tp)
	if tp.IsErrored() {
		log.Errorf("initialization failed: %v", tp.GetError())
		return
	}
	log.Infof("%s render=%v autoLogin=%v", tp.GetName(), tp.ShouldRender(), tp.ShouldAutoLogin())
	if len(available) == 0 {
		log.Infof("%s is not available here, onboarding link: %s", tp.GetName(), tp.GetOnboardingLink())
		return
	}

	auth, users, err := starter.AutoLogin(ctx, available)
	if err != nil {
		log.Errorf("auto login failed: %v", err)
		return
	}
	if auth == nil {
		log.Infof("auto login skipped, waiting for the user to choose")
		return
	}
	for _, u := range users {
		log.Infof("logged in with %s: account=%s chain=%s session=%s",
			auth.GetName(), u.AccountName(), u.ChainID(), u.SessionID())
	}
	if err := auth.Logout(ctx); err != nil {
		log.Error(err)
	}
}
