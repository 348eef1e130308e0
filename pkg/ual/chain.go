package ual

// RPCEndpoint is a node the host talks to for a chain.
type RPCEndpoint struct {
	Protocol string `json:"protocol" yaml:"protocol"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Path     string `json:"path,omitempty" yaml:"path"`
}

// Chain describes one chain the host wants the adapters to log into.
type Chain struct {
	ChainID      string        `json:"chainId" yaml:"chain_id"`
	RPCEndpoints []RPCEndpoint `json:"rpcEndpoints" yaml:"rpc_endpoints"`
}

// User is an authenticated account returned by Login.
// Signing and key retrieval live in the session collaborator, not in this contract.
type User interface {
	// SessionID 会话唯一标识
	SessionID() string
	AccountName() string
	ChainID() string
}
