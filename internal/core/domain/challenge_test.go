package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestDecodeChallengeImage(t *testing.T) {
	std := base64.StdEncoding.EncodeToString(pngMagic)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{name: "plain base64", input: std, want: pngMagic},
		{name: "surrounding whitespace", input: "  " + std + "\n", want: pngMagic},
		{name: "data url", input: "data:image/png;base64," + std, want: pngMagic},
		{name: "unpadded", input: base64.RawStdEncoding.EncodeToString(pngMagic), want: pngMagic},
		{name: "empty", input: "", wantErr: true},
		{name: "data url without comma", input: "data:image/png;base64", wantErr: true},
		{name: "data url without payload", input: "data:image/png;base64,", wantErr: true},
		{name: "not base64", input: "%%%not-base64%%%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeChallengeImage(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChallengeEnvelope_Decode(t *testing.T) {
	env := ChallengeEnvelope{
		SessionID: "sess-123",
		ImageData: base64.StdEncoding.EncodeToString(pngMagic),
	}

	ch, err := env.Decode()

	require.NoError(t, err)
	assert.Equal(t, SessionToken("sess-123"), ch.SessionID)
	assert.Equal(t, pngMagic, ch.Image)
}

func TestChallengeEnvelope_DecodeInvalid(t *testing.T) {
	_, err := ChallengeEnvelope{SessionID: "sess-1", ImageData: ""}.Decode()

	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestNewCaseQuery(t *testing.T) {
	form := QueryForm{CaseType: "Civil", CaseNumber: "456", CaseYear: 2020, CaptchaText: "AB12"}

	t.Run("with token", func(t *testing.T) {
		token := SessionToken("sess-123")
		q := NewCaseQuery(&token, form)

		require.True(t, q.HasSession())
		assert.Equal(t, SessionToken("sess-123"), *q.SessionID)
		assert.Equal(t, "Civil", q.CaseType)
		assert.Equal(t, "456", q.CaseNumber)
		assert.Equal(t, 2020, q.CaseYear)
		assert.Equal(t, "AB12", q.CaptchaText)

		// The query owns its own copy of the token.
		token = "sess-999"
		assert.Equal(t, SessionToken("sess-123"), *q.SessionID)
	})

	t.Run("without token", func(t *testing.T) {
		q := NewCaseQuery(nil, form)

		assert.False(t, q.HasSession())
		assert.Nil(t, q.SessionID)
	})
}

func TestCaseResult_HasDocuments(t *testing.T) {
	assert.False(t, CaseResult{}.HasDocuments())
	assert.True(t, CaseResult{PDFLinks: []string{"/f1.pdf"}}.HasDocuments())
}
