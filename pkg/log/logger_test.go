package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedEntryPrefixesMessages(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel(0)
	defer SetLevel(1)

	Scoped("TokenPocket").Debugf("tick %d of %d", 3, 10)

	assert.Contains(t, buf.String(), "[DEBUG]")
	assert.Contains(t, buf.String(), "[TokenPocket] tick 3 of 10")
}

func TestScopedEntryCarriesField(t *testing.T) {
	hook := test.NewLocal(logger.Logger)
	defer logger.ReplaceHooks(make(logrus.LevelHooks))
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Scoped("TokenPocket").Warnf("bridge missing")
	Warnf("unscoped")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "TokenPocket", entries[0].Data[ScopeField])
	assert.Equal(t, "bridge missing", entries[0].Message)
	assert.NotContains(t, entries[1].Data, ScopeField)
	assert.Contains(t, buf.String(), "-   unscoped")
}

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel(2)
	defer SetLevel(1)
	buf.Reset()

	Infof("hidden %s", "info")
	Warnf("shown %s", "warn")

	assert.NotContains(t, buf.String(), "hidden info")
	assert.Contains(t, buf.String(), "shown warn")
}
