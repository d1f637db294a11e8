package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltered(t *testing.T) {
	s := seeded(t)
	s = mustApply(t, s, Toggle{ID: "t1"})

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"Read book", "Walk dog", "Buy milk"}},
		{FilterActive, []string{"Read book", "Walk dog"}},
		{FilterCompleted, []string{"Buy milk"}},
		{"", []string{"Read book", "Walk dog", "Buy milk"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			s.Filter = tt.filter
			assert.Equal(t, tt.want, texts(Filtered(s)))
		})
	}
}

func TestActiveCount_IgnoresFilter(t *testing.T) {
	s := seeded(t)
	s = mustApply(t, s, Toggle{ID: "t1"})

	for _, f := range Filters {
		s.Filter = f
		assert.Equal(t, 2, ActiveCount(s.Tasks), "filter %s", f)
	}
	assert.True(t, HasCompleted(s.Tasks))
	assert.Equal(t, 0, ActiveCount(nil))
	assert.False(t, HasCompleted(nil))
}

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"all", "active", "completed", "ACTIVE", " completed "} {
		f, err := ParseFilter(name)
		require.NoError(t, err, name)
		assert.True(t, f.Valid())
	}

	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseFilter("done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}
