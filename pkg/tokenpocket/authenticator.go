// Package tokenpocket implements the universal authenticator contract for the TokenPocket
// mobile wallet. The wallet only exists inside its own in-app browser, so the adapter
// waits for the injected bridge, offers itself on mobile user agents for EOS mainnet,
// and caches the single account the bridge hands out.
package tokenpocket

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
	"moff.io/ual-tokenpocket/internal/chains"
	"moff.io/ual-tokenpocket/pkg/bridge"
	"moff.io/ual-tokenpocket/pkg/concurrent"
	"moff.io/ual-tokenpocket/pkg/log"
	"moff.io/ual-tokenpocket/pkg/ual"
)

const (
	// Name 钱包名称，同时用作按钮文字与错误来源
	Name = "TokenPocket"

	// DefaultCheckInterval 检测钱包接口是否就绪的间隔
	DefaultCheckInterval = 500 * time.Millisecond
	// DefaultNumChecks 放弃前的检测次数
	DefaultNumChecks = 10
	// DefaultOnboardingLink 未安装钱包时的引导下载地址
	DefaultOnboardingLink = "https://www.mytokenpocket.vip/en/"
)

// Options 适配器配置，零值字段使用默认值
type Options struct {
	CheckInterval   time.Duration
	NumChecks       int
	SupportedChains *chains.Set
	// UserAgent 返回运行环境的 User-Agent，为 nil 时视为非移动端
	UserAgent      func() string
	OnboardingLink string
	SessionFactory SessionFactory
}

type Option func(*Options)

func WithCheckInterval(d time.Duration) Option {
	return func(o *Options) {
		o.CheckInterval = d
	}
}

func WithNumChecks(n int) Option {
	return func(o *Options) {
		o.NumChecks = n
	}
}

func WithSupportedChains(set *chains.Set) Option {
	return func(o *Options) {
		o.SupportedChains = set
	}
}

func WithUserAgent(ua func() string) Option {
	return func(o *Options) {
		o.UserAgent = ua
	}
}

// WithStaticUserAgent is WithUserAgent for a fixed string.
func WithStaticUserAgent(ua string) Option {
	return WithUserAgent(func() string { return ua })
}

func WithOnboardingLink(link string) Option {
	return func(o *Options) {
		o.OnboardingLink = link
	}
}

func WithSessionFactory(f SessionFactory) Option {
	return func(o *Options) {
		o.SessionFactory = f
	}
}

// WithOptions copies every non-zero field of opts.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		if opts.CheckInterval > 0 {
			o.CheckInterval = opts.CheckInterval
		}
		if opts.NumChecks > 0 {
			o.NumChecks = opts.NumChecks
		}
		if opts.SupportedChains != nil {
			o.SupportedChains = opts.SupportedChains
		}
		if opts.UserAgent != nil {
			o.UserAgent = opts.UserAgent
		}
		if opts.OnboardingLink != "" {
			o.OnboardingLink = opts.OnboardingLink
		}
		if opts.SessionFactory != nil {
			o.SessionFactory = opts.SessionFactory
		}
	}
}

func (o *Options) applyDefaults() {
	if o.CheckInterval <= 0 {
		o.CheckInterval = DefaultCheckInterval
	}
	if o.NumChecks <= 0 {
		o.NumChecks = DefaultNumChecks
	}
	if o.SupportedChains == nil {
		o.SupportedChains = chains.DefaultSupported()
	}
	if o.OnboardingLink == "" {
		o.OnboardingLink = DefaultOnboardingLink
	}
	if o.SessionFactory == nil {
		o.SessionFactory = NewUser
	}
}

// Authenticator TokenPocket 钱包适配器，实现 ual.Authenticator
type Authenticator struct {
	chains []ual.Chain
	bridge bridge.Bridge
	opts   Options
	logger *log.Entry

	// initialized 至少完成过一次初始化；inflight 正在进行的初始化数量
	initialized atomic.Bool
	inflight    atomic.Int64
	// generation 每次初始化递增，过期初始化的错误会被丢弃
	generation atomic.Int64

	// loginLock 串行化登录的检查缓存与写入，同一实例同一时间最多一次桥接调用
	loginLock concurrent.Limiter

	mu       sync.Mutex
	initErr  *ual.Error
	sessions []ual.User
}

var _ ual.Authenticator = (*Authenticator)(nil)

// New 创建适配器，chainList 在实例生命周期内只读
func New(chainList []ual.Chain, b bridge.Bridge, opts ...Option) *Authenticator {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	o.applyDefaults()
	cp := make([]ual.Chain, len(chainList))
	copy(cp, chainList)
	return &Authenticator{
		chains:    cp,
		bridge:    b,
		opts:      o,
		logger:    log.Scoped(Name),
		loginLock: concurrent.NewMutex(),
	}
}

func (a *Authenticator) GetName() string {
	return Name
}

// Chains returns a copy of the chain list given at construction.
func (a *Authenticator) Chains() []ual.Chain {
	cp := make([]ual.Chain, len(a.chains))
	copy(cp, a.chains)
	return cp
}

func (a *Authenticator) GetStyle() ual.ButtonStyle {
	return ual.ButtonStyle{
		Icon:       logo,
		Text:       Name,
		TextColor:  "#FFFFFF",
		Background: "#347CEE",
	}
}

func (a *Authenticator) GetOnboardingLink() string {
	return a.opts.OnboardingLink
}

// ShouldRequestAccountName TokenPocket 总是直接返回当前账户，无需用户输入账户名
func (a *Authenticator) ShouldRequestAccountName(context.Context) (bool, error) {
	return false, nil
}

func (a *Authenticator) RequiresGetKeyConfirmation() bool {
	return false
}
