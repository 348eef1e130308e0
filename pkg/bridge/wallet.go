package bridge

import (
	"strings"

	"github.com/tidwall/gjson"
	"moff.io/ual-tokenpocket/pkg/errors"
)

// ParseWalletResponse 解析桥接层返回的 JSON。
// 钱包不同版本返回的 result 可能是布尔、数字或字符串，缺失时视为 false；
// 账户名在旧版本中位于 data.account 而非 data.name.
func ParseWalletResponse(raw []byte) (*WalletResponse, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("invalid wallet response json")
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return nil, errors.New("wallet response is not an object")
	}
	resp := &WalletResponse{
		Result: parseResult(parsed.Get("result")),
		Msg:    parsed.Get("msg").String(),
	}
	data := parsed.Get("data")
	if !data.Exists() {
		return resp, nil
	}
	resp.Data = Wallet{
		Name:         firstString(data, "name", "account"),
		Address:      data.Get("address").String(),
		BlockchainID: data.Get("blockchain_id").Int(),
	}
	for _, p := range data.Get("permissions").Array() {
		resp.Data.Permissions = append(resp.Data.Permissions, p.String())
	}
	return resp, nil
}

func parseResult(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Int() != 0
	case gjson.String:
		s := strings.ToLower(strings.TrimSpace(r.Str))
		return s == "true" || s == "1"
	default:
		return false
	}
}

func firstString(obj gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := obj.Get(p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
