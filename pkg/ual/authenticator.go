// Package ual defines the contract between a universal authenticator host and the
// wallet adapters it drives. Hosts discover adapters, ask whether they should be shown,
// and log users in through them without knowing which wallet sits behind each one.
package ual

import "context"

// Authenticator is implemented by every wallet adapter the host can drive.
type Authenticator interface {

	// Init 检测钱包是否就绪。失败不会返回给调用方，而是保存在实例中，通过 IsErrored / GetError 查询
	Init(ctx context.Context)

	// Reset 清除已保存的初始化错误并重新初始化，返回的通道在重新初始化结束后关闭
	Reset(ctx context.Context) <-chan struct{}

	IsLoading() bool
	IsErrored() bool
	GetError() *Error

	// GetStyle 返回登录按钮的展示信息
	GetStyle() ButtonStyle
	GetName() string
	GetOnboardingLink() string

	// ShouldRender 返回当前链列表与运行环境下是否展示该钱包
	ShouldRender() bool
	ShouldAutoLogin() bool
	ShouldRequestAccountName(ctx context.Context) (bool, error)
	RequiresGetKeyConfirmation() bool

	// Login 登录并返回用户会话，失败时返回 ErrorTypeLogin 类型的 *Error
	Login(ctx context.Context) ([]User, error)
	Logout(ctx context.Context) error
}

// ButtonStyle 登录按钮展示信息
type ButtonStyle struct {
	Icon       string `json:"icon" yaml:"icon"`
	Text       string `json:"text" yaml:"text"`
	TextColor  string `json:"textColor" yaml:"text_color"`
	Background string `json:"background" yaml:"background"`
}
