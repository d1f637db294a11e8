package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalTasks_Format(t *testing.T) {
	data, err := marshalTasks(sampleTasks()[:1])
	require.NoError(t, err)
	assert.Equal(t,
		`[{"id":"t2","text":"Walk dog","completed":false,"createdAt":"2025-03-01T09:01:00Z"}]`,
		data)
}

func TestMarshalTasks_EmptyListIsArray(t *testing.T) {
	data, err := marshalTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", data)
}

func TestMarshalTasks_NoHTMLEscaping(t *testing.T) {
	tasks := sampleTasks()[:1]
	tasks[0].Text = "fix <b> & <i>"

	data, err := marshalTasks(tasks)
	require.NoError(t, err)
	assert.Contains(t, data, `"fix <b> & <i>"`)
}

func TestUnmarshalTasks_RoundTrip(t *testing.T) {
	data, err := marshalTasks(sampleTasks())
	require.NoError(t, err)

	got, err := unmarshalTasks(data)
	require.NoError(t, err)
	assertSameTasks(t, sampleTasks(), got)
}

func TestUnmarshalTasks_BrowserPayload(t *testing.T) {
	// Shape written by the browser version: millisecond ISO timestamps.
	data := `[{"id":"1709283600000","text":"Buy milk","completed":true,"createdAt":"2024-03-01T09:00:00.000Z"}]`

	got, err := unmarshalTasks(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1709283600000", got[0].ID)
	assert.True(t, got[0].Completed)
	assert.Equal(t, 2024, got[0].CreatedAt.Year())
}

func TestUnmarshalTasks_Empty(t *testing.T) {
	for _, data := range []string{"", "  ", "null", "[]"} {
		got, err := unmarshalTasks(data)
		require.NoError(t, err, "data %q", data)
		assert.Empty(t, got, "data %q", data)
	}
}

func TestUnmarshalTasks_ExtraFieldsTolerated(t *testing.T) {
	data := `[{"id":"a","text":"x","completed":false,"createdAt":"2025-03-01T09:00:00Z","priority":3}]`

	got, err := unmarshalTasks(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestUnmarshalTasks_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"truncated", `[{"id":"a","text":"x"`},
		{"object not list", `{"id":"a"}`},
		{"string", `"tasks"`},
		{"missing id", `[{"text":"x","completed":false,"createdAt":"2025-03-01T09:00:00Z"}]`},
		{"empty id", `[{"id":"","text":"x","completed":false,"createdAt":"2025-03-01T09:00:00Z"}]`},
		{"blank text", `[{"id":"a","text":"  ","completed":false,"createdAt":"2025-03-01T09:00:00Z"}]`},
		{"completed not bool", `[{"id":"a","text":"x","completed":"yes","createdAt":"2025-03-01T09:00:00Z"}]`},
		{"bad timestamp", `[{"id":"a","text":"x","completed":false,"createdAt":"yesterday"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unmarshalTasks(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
		})
	}
}

func TestUnmarshalTasks_DuplicateIDsKeepFirst(t *testing.T) {
	data := `[
		{"id":"a","text":"first","completed":false,"createdAt":"2025-03-01T09:00:00Z"},
		{"id":"b","text":"other","completed":false,"createdAt":"2025-03-01T09:00:00Z"},
		{"id":"a","text":"second","completed":true,"createdAt":"2025-03-01T09:00:00Z"}
	]`

	got, err := unmarshalTasks(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "other", got[1].Text)
}
