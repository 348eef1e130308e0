// Package bridge describes the TokenPocket in-app browser bridge as seen by the adapter.
package bridge

import "context"

// Bridge TokenPocket 内置浏览器注入的钱包接口
type Bridge interface {

	// IsConnected 同步返回钱包是否已连接
	IsConnected() bool

	// GetCurrentWallet 获取当前钱包。调用成功但 WalletResponse.Result 为 false 时表示未取到账户
	GetCurrentWallet(ctx context.Context) (*WalletResponse, error)
}

// WalletResponse getCurrentWallet 的返回结果
type WalletResponse struct {
	Result bool   `json:"result"`
	Data   Wallet `json:"data"`
	Msg    string `json:"msg,omitempty"`
}

// Wallet 当前钱包信息
type Wallet struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	BlockchainID int64  `json:"blockchain_id"`
	// Permissions 账户权限，如 active / owner
	Permissions []string `json:"permissions,omitempty"`
}
