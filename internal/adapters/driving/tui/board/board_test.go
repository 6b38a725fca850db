package board

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

func TestNew_InitialState(t *testing.T) {
	snap := New().Snapshot()
	assert.False(t, snap.StatusVisible)
	assert.Nil(t, snap.Challenge)
	assert.Nil(t, snap.Result)
	assert.True(t, snap.SubmitEnabled)
	assert.Equal(t, domain.SubmitLabel, snap.SubmitLabel)
	assert.Zero(t, snap.Version)
}

func TestBoard_Status(t *testing.T) {
	b := New()
	b.ShowStatus(domain.StatusError, "Invalid CAPTCHA")

	snap := b.Snapshot()
	assert.True(t, snap.StatusVisible)
	assert.Equal(t, domain.StatusError, snap.StatusKind)
	assert.Equal(t, "Invalid CAPTCHA", snap.Status)

	b.ClearStatus()
	snap = b.Snapshot()
	assert.False(t, snap.StatusVisible)
	assert.Empty(t, snap.Status)
}

func TestBoard_ChallengeAndResult(t *testing.T) {
	b := New()
	b.ShowChallenge(domain.Challenge{SessionID: "abc", Image: []byte{1, 2}})

	links := []string{"/f1.pdf"}
	b.ShowResult(domain.CaseResult{Parties: "A vs B", PDFLinks: links})
	links[0] = "/changed.pdf"

	snap := b.Snapshot()
	require.NotNil(t, snap.Challenge)
	assert.Equal(t, domain.SessionToken("abc"), snap.Challenge.SessionID)
	require.NotNil(t, snap.Result)
	assert.Equal(t, []string{"/f1.pdf"}, snap.Result.PDFLinks)

	b.HideResult()
	assert.Nil(t, b.Snapshot().Result)
	assert.NotNil(t, b.Snapshot().Challenge)
}

func TestBoard_SubmitControl(t *testing.T) {
	b := New()
	b.SetSubmitControl(false, domain.SubmitBusyLabel)
	snap := b.Snapshot()
	assert.False(t, snap.SubmitEnabled)
	assert.Equal(t, domain.SubmitBusyLabel, snap.SubmitLabel)
}

func TestBoard_NotifiesEveryChange(t *testing.T) {
	b := New()
	var calls atomic.Int32
	b.OnChange(func() {
		// Reading back from inside the callback must not deadlock.
		_ = b.Snapshot()
		calls.Add(1)
	})

	b.ShowStatus(domain.StatusInfo, "x")
	b.ClearStatus()
	b.HideResult()
	b.SetSubmitControl(true, domain.SubmitLabel)

	assert.EqualValues(t, 4, calls.Load())
	assert.EqualValues(t, 4, b.Snapshot().Version)
}

func TestBoard_ConcurrentUse(t *testing.T) {
	b := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.ShowStatus(domain.StatusInfo, "loading")
			b.ShowChallenge(domain.Challenge{SessionID: "s"})
			_ = b.Snapshot()
			b.ClearStatus()
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 60, b.Snapshot().Version)
}
