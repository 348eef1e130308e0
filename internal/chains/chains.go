package chains

import (
	"github.com/emirpasic/gods/sets/hashset"
	"moff.io/ual-tokenpocket/pkg/ual"
)

// Blockchain 已知链的元信息
type Blockchain struct {
	ID   string
	Name string
}

const (
	// EOSMainnetID TokenPocket 仅支持 EOS 主网
	EOSMainnetID = "aca376f206b8fc25a6ed44dbdc66547c36c6c33e3a119ffbeaef943642f0e906"
)

var (
	Array = []*Blockchain{
		{
			ID:   EOSMainnetID,
			Name: "eos",
		},
		{
			ID:   "1064487b3cd1a897ce03ae5b6a865651747e2e152090f99c1d19d44e01aea5a4",
			Name: "wax",
		},
		{
			ID:   "4667b205c6838ef70ff7988f6e8257e8be0e1284a2f59699054a018f743b1d11",
			Name: "telos",
		},
		{
			ID:   "73e4385a2708e6d7048834fbc1079f2fabb17b3c125b146af438971e90716c4d",
			Name: "jungle4",
		},
	}

	Mapping = func() map[string]*Blockchain {
		m := make(map[string]*Blockchain, len(Array))
		for _, b := range Array {
			m[b.ID] = b
		}
		return m
	}()
)

// NameOf 返回链名称，未知链返回链ID本身
func NameOf(chainID string) string {
	if b, ok := Mapping[chainID]; ok {
		return b.Name
	}
	return chainID
}

// Set 支持的链ID集合，仅用于成员判断
type Set struct {
	ids *hashset.Set
}

// NewSet 构建链ID集合，空字符串会被忽略
func NewSet(ids ...string) *Set {
	s := &Set{ids: hashset.New()}
	for _, id := range ids {
		if id == "" {
			continue
		}
		s.ids.Add(id)
	}
	return s
}

// DefaultSupported 返回 TokenPocket 默认支持的链集合
func DefaultSupported() *Set {
	return NewSet(EOSMainnetID)
}

func (s *Set) Contains(chainID string) bool {
	if s == nil || s.ids == nil {
		return false
	}
	return s.ids.Contains(chainID)
}

func (s *Set) Len() int {
	if s == nil || s.ids == nil {
		return 0
	}
	return s.ids.Size()
}

// SupportsAll 链列表为空时返回false，否则要求所有链均在集合中
func (s *Set) SupportsAll(chains []ual.Chain) bool {
	if len(chains) < 1 {
		return false
	}
	for _, chain := range chains {
		if !s.Contains(chain.ChainID) {
			return false
		}
	}
	return true
}
