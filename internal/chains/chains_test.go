package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"moff.io/ual-tokenpocket/pkg/ual"
)

func chainList(ids ...string) []ual.Chain {
	list := make([]ual.Chain, 0, len(ids))
	for _, id := range ids {
		list = append(list, ual.Chain{ChainID: id})
	}
	return list
}

func TestSupportsAll(t *testing.T) {
	const wax = "1064487b3cd1a897ce03ae5b6a865651747e2e152090f99c1d19d44e01aea5a4"
	set := DefaultSupported()

	tests := []struct {
		name   string
		chains []ual.Chain
		want   bool
	}{
		{"Empty", nil, false},
		{"EmptySlice", []ual.Chain{}, false},
		{"MainnetOnly", chainList(EOSMainnetID), true},
		{"MainnetTwice", chainList(EOSMainnetID, EOSMainnetID), true},
		{"UnsupportedFirst", chainList(wax, EOSMainnetID), false},
		{"UnsupportedLast", chainList(EOSMainnetID, EOSMainnetID, wax), false},
		{"UnsupportedOnly", chainList(wax), false},
		{"BlankID", chainList(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.SupportsAll(tt.chains))
		})
	}
}

func TestSetIgnoresBlankAndNil(t *testing.T) {
	set := NewSet("", "abc", "abc")
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains("abc"))

	var missing *Set
	assert.False(t, missing.Contains("abc"))
	assert.Zero(t, missing.Len())
	assert.False(t, missing.SupportsAll(chainList("abc")))
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "eos", NameOf(EOSMainnetID))
	assert.Equal(t, "deadbeef", NameOf("deadbeef"))
	assert.Len(t, Mapping, len(Array))
}
