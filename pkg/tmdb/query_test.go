package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       string
		expected    string
	}{
		{
			"query without language keywords",
			"the dark knight",
			"the dark knight",
		},
		{
			"query with a trailing language keyword",
			"jawan hindi",
			"jawan",
		},
		{
			"query with mixed-case language keyword",
			"jawan Hindi",
			"jawan",
		},
		{
			"query with multiple language keywords",
			"vikram tamil dubbed",
			"vikram",
		},
		{
			"query made up entirely of language keywords",
			"hindi dubbed",
			"hindi dubbed",
		},
		{
			"query with surrounding whitespace",
			"  batman  ",
			"batman",
		},
		{
			"empty query",
			"",
			"",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, BaseQuery(tc.given))
		})
	}
}
