package tokenpocket

import (
	"github.com/google/uuid"
	"moff.io/ual-tokenpocket/pkg/bridge"
	"moff.io/ual-tokenpocket/pkg/errors"
	"moff.io/ual-tokenpocket/pkg/ual"
)

// SessionFactory 由链与钱包信息构建会话。签名等能力由会话实现方负责
type SessionFactory func(chain ual.Chain, wallet bridge.Wallet) (ual.User, error)

// User 登录成功后的 TokenPocket 会话
type User struct {
	id     string
	chain  ual.Chain
	wallet bridge.Wallet
}

var _ ual.User = (*User)(nil)

// NewUser is the default SessionFactory.
func NewUser(chain ual.Chain, wallet bridge.Wallet) (ual.User, error) {
	if wallet.Name == "" {
		return nil, errors.New("wallet response carries no account name")
	}
	return &User{
		id:     uuid.NewString(),
		chain:  chain,
		wallet: wallet,
	}, nil
}

func (u *User) SessionID() string {
	return u.id
}

func (u *User) AccountName() string {
	return u.wallet.Name
}

func (u *User) ChainID() string {
	return u.chain.ChainID
}

func (u *User) Chain() ual.Chain {
	return u.chain
}

// Address 账户公钥地址
func (u *User) Address() string {
	return u.wallet.Address
}

func (u *User) Wallet() bridge.Wallet {
	return u.wallet
}
