package errors

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	mu   sync.Mutex
	errs []error
}

func (r *recordingReporter) Report(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}

func TestWrapKeepsCause(t *testing.T) {
	root := New("bridge gone")
	wrapped := Wrap(root, "get current wallet")

	assert.EqualError(t, wrapped, "get current wallet: bridge gone")
	assert.True(t, Is(wrapped, root))
	assert.Equal(t, root, Cause(wrapped))
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, WithStack(nil))
}

func TestReportVariantsReachRegisteredReporters(t *testing.T) {
	t.Setenv(debugMode, "")
	ResetReporters()
	defer ResetReporters()
	rec := &recordingReporter{}
	RegisterReporter(rec)
	RegisterReporter(nil)

	_ = NewWithReport("one")
	_ = WrapAndReport(New("two"), "wrapped")
	_ = ErrorfAndReport("three %d", 3)
	Report(New("four"))
	assert.Nil(t, WrapAndReport(nil, "skipped"))

	require.Equal(t, 4, rec.count())
	assert.EqualError(t, rec.errs[1], "wrapped: two")
	assert.EqualError(t, rec.errs[2], "three 3")
}

func TestDebugModeDisablesReporting(t *testing.T) {
	t.Setenv(debugMode, "1")
	ResetReporters()
	defer ResetReporters()
	rec := &recordingReporter{}
	RegisterReporter(rec)

	_ = NewWithReport("silenced")
	assert.Zero(t, rec.count())
}

func TestStackBasedRateLimited(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	limiter := newRateLimiter(time.Minute)
	limiter.now = func() time.Time { return now }

	limited, stats := limiter.StackBasedRateLimited("site")
	assert.False(t, limited)
	assert.Nil(t, stats.lastReportTime)

	now = now.Add(10 * time.Second)
	limited, _ = limiter.StackBasedRateLimited("site")
	assert.True(t, limited)
	limited, _ = limiter.StackBasedRateLimited("other-site")
	assert.False(t, limited)

	now = now.Add(time.Minute)
	limited, stats = limiter.StackBasedRateLimited("site")
	assert.False(t, limited)
	assert.Equal(t, 1, stats.occurCountSinceLastReport)
	assert.Equal(t, 2, stats.totalOccurCount)
}

func TestFullStackNamesCaller(t *testing.T) {
	stacks := callers().fullStack()
	require.NotEmpty(t, stacks)
	assert.Contains(t, stacks[0], "TestFullStackNamesCaller")
	assert.Equal(t, "", reportSite(nil))
	assert.Equal(t, "main.run app.go:3", reportSite([]string{
		packagePrefix + "(*larkReporter).Report lark.go:1",
		packagePrefix + "report reporter.go:2",
		"main.run app.go:3",
	}))
	assert.Equal(t, packagePrefix+"report x.go:1", reportSite([]string{packagePrefix + "report x.go:1"}))
}

type walletError struct{}

func (walletError) Error() string { return "wallet not ready" }

func (walletError) Classification() (string, string) { return "TokenPocket", "Initialization" }

func TestLarkReportLines(t *testing.T) {
	stats := &errorStats{occurCountSinceLastReport: 2}
	stacks := []string{"main.run app.go:3"}

	lines := larkReportLines(Wrap(walletError{}, "autologin"), stats, stacks)
	assert.Equal(t, []string{
		"Last Report: none",
		"\nError Count Since Last Report: 2",
		"\nAuthenticator: TokenPocket",
		"\nType: Initialization",
		"\nMessage: autologin: wallet not ready",
		"\nStacks:",
		"\n    main.run app.go:3",
	}, lines)

	plain := larkReportLines(New("disk full"), stats, nil)
	assert.NotContains(t, plain, "\nAuthenticator: TokenPocket")
	assert.Equal(t, "\nMessage: disk full", plain[2])
}
