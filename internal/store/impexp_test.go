package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	want := sampleState()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, want))

	got, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportLegacyFileMigrates(t *testing.T) {
	legacy := `{
		"sessions": [{
			"id": "s1", "name": "old export", "date": "d", "createdAt": 1,
			"trades": [{
				"id": "t1", "ticker": "AMC", "status": "win", "timestamp": 2,
				"feedbackAnalysis": "squeeze worked"
			}]
		}],
		"activeSessionId": null
	}`

	got, err := Import(strings.NewReader(legacy))
	require.NoError(t, err)

	trade := got.Sessions[0].Trades[0]
	assert.Equal(t, []string{"squeeze worked"}, trade.FeedbackAnalysis)
	assert.Equal(t, []string{}, trade.LessonsLearned)
	assert.Equal(t, "", trade.EmotionalState)
}

func TestImportRejectsNonJSON(t *testing.T) {
	_, err := Import(strings.NewReader("definitely not json"))
	assert.Error(t, err)
}
