package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaSchemaValid(t *testing.T) {
	values := map[string]string{
		"title":    "Dune",
		"type":     "MOVIE",
		"director": "Denis Villeneuve",
		"budget":   "$165M",
		"location": "Jordan, Abu Dhabi",
		"duration": "155 min",
		"yearTime": "2021",
	}
	assert.Empty(t, Media.Validate(values))
}

func TestMediaSchemaCollectsAllFailures(t *testing.T) {
	errs := Media.Validate(map[string]string{})
	require.Len(t, errs, 7)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"title", "type", "director", "budget", "location", "duration", "yearTime"}, fields)
}

func TestMediaSchemaSingleFailure(t *testing.T) {
	values := map[string]string{
		"title":    "Dune",
		"type":     "MOVIE",
		"director": "Denis Villeneuve",
		"budget":   "$165M",
		"location": "Jordan, Abu Dhabi",
		"duration": "155 min",
		"yearTime": "   ",
	}
	errs := Media.Validate(values)
	require.Len(t, errs, 1)
	assert.Equal(t, "yearTime", errs[0].Field)
	assert.Equal(t, "Year/Time is required", errs[0].Message)
}

func TestRequiredTrimsWhitespace(t *testing.T) {
	rule := Required("title", "Title")
	assert.False(t, rule.Valid("  \t "))
	assert.True(t, rule.Valid(" x "))
	assert.Equal(t, "Title is required", rule.Message)
}

func TestValidateIsPure(t *testing.T) {
	values := map[string]string{"title": "Dune"}
	_ = Media.Validate(values)
	assert.Equal(t, map[string]string{"title": "Dune"}, values)
}
