package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

func TestFocusTarget_String(t *testing.T) {
	tests := []struct {
		focus FocusTarget
		want  string
	}{
		{FocusCaseType, "case_type"},
		{FocusCaseNumber, "case_number"},
		{FocusCaseYear, "case_year"},
		{FocusCaptcha, "captcha"},
		{FocusSubmit, "submit"},
		{FocusLinks, "links"},
		{FocusTarget(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.focus.String())
	}
}

func TestFocusOrder(t *testing.T) {
	assert.Less(t, int(FocusCaseType), int(FocusCaseNumber))
	assert.Less(t, int(FocusCaseNumber), int(FocusCaseYear))
	assert.Less(t, int(FocusCaseYear), int(FocusCaptcha))
	assert.Less(t, int(FocusCaptcha), int(FocusSubmit))
	assert.Less(t, int(FocusSubmit), int(FocusLinks))
}

func TestQueryFinished(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		msg := QueryFinished{Result: &domain.CaseResult{Parties: "A vs B"}}
		assert.NoError(t, msg.Err)
		assert.Equal(t, "A vs B", msg.Result.Parties)
	})

	t.Run("failure", func(t *testing.T) {
		msg := QueryFinished{Err: errors.New("rejected")}
		assert.Nil(t, msg.Result)
		assert.EqualError(t, msg.Err, "rejected")
	})
}

func TestLinkActionDone(t *testing.T) {
	msg := LinkActionDone{Action: LinkCopied, Link: "/f1.pdf"}
	assert.Equal(t, LinkAction("copied"), msg.Action)
	assert.Equal(t, LinkAction("opened"), LinkOpened)
}
