package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/client/internal/session"
)

func TestSelection_ToggleRoundTrip(t *testing.T) {
	for _, start := range []session.Selection{
		{},
		session.NewSelection("a.pdf"),
		session.NewSelection("a.pdf", "b.txt"),
	} {
		once := start.Toggle("a.pdf")
		twice := once.Toggle("a.pdf")

		assert.NotEqual(t, start.Contains("a.pdf"), once.Contains("a.pdf"))
		assert.True(t, start.Equal(twice), "toggling twice restores %v", start.Items())
	}
}

func TestSelection_IsAValue(t *testing.T) {
	base := session.NewSelection("a")

	added := base.Add("b")
	removed := added.Remove("a")

	assert.Equal(t, []string{"a"}, base.Items())
	assert.Equal(t, []string{"a", "b"}, added.Items())
	assert.Equal(t, []string{"b"}, removed.Items())
}

func TestSelection_JSON(t *testing.T) {
	data, err := json.Marshal(session.NewSelection("b", "a"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	var back session.Selection
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(session.NewSelection("a", "b")))

	empty, err := json.Marshal(session.Selection{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(empty))
}
