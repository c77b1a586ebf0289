package match_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabigot/camelint/checker/match"
)

func TestMatcher_Matches(t *testing.T) {
	tests := []struct {
		name    string
		matcher match.Matcher
		value   string
		want    bool
	}{
		{"literal exact", match.Literal("foo_bar"), "foo_bar", true},
		{"literal is not substring", match.Literal("foo"), "foo_bar", false},
		{"literal empty", match.Literal(""), "", true},
		{"pattern anywhere", match.Pattern(regexp.MustCompile(`_id`)), "category_id", true},
		{"pattern anchored miss", match.Pattern(regexp.MustCompile(`^opt`)), "xopt", false},
		{"pattern anchored hit", match.Pattern(regexp.MustCompile(`^opt`)), "option", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Matches(tt.value))
		})
	}
}

func TestMatcher_StripPrefix(t *testing.T) {
	tests := []struct {
		name    string
		matcher match.Matcher
		value   string
		want    string
		wantOK  bool
	}{
		{"literal prefix", match.Literal("opt_"), "opt_camelCase", "camelCase", true},
		{"literal consumes whole value", match.Literal("opt_"), "opt_", "opt_", false},
		{"literal longer than value", match.Literal("option_"), "opt_", "opt_", false},
		{"literal not at front", match.Literal("opt_"), "xopt_camelCase", "xopt_camelCase", false},
		{"pattern at offset zero", match.Pattern(regexp.MustCompile(`[a-z]+_`)), "opt_id", "id", true},
		{"pattern later in value", match.Pattern(regexp.MustCompile(`x_`)), "ax_b", "ax_b", false},
		{"pattern whole value", match.Pattern(regexp.MustCompile(`.*`)), "anything", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.matcher.StripPrefix(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_StripSuffix(t *testing.T) {
	tests := []struct {
		name    string
		matcher match.Matcher
		value   string
		want    string
		wantOK  bool
	}{
		{"literal suffix", match.Literal("_opt"), "camelCase_opt", "camelCase", true},
		{"literal consumes whole value", match.Literal("_opt"), "_opt", "_opt", false},
		{"literal not at end", match.Literal("_opt"), "camel_optx", "camel_optx", false},
		{"pattern at trailing edge", match.Pattern(regexp.MustCompile(`_v\d+`)), "name_v2", "name", true},
		{"pattern not at trailing edge", match.Pattern(regexp.MustCompile(`_v\d+`)), "name_v2x", "name_v2x", false},
		{"pattern last occurrence wins", match.Pattern(regexp.MustCompile(`a+`)), "banana", "banan", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.matcher.StripSuffix(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripFirstMatchingPrefix(t *testing.T) {
	matchers := []match.Matcher{match.Literal("opt_"), match.Literal("o_")}

	tests := []struct {
		value string
		want  string
	}{
		{"opt_opt_id", "opt_id"},
		{"o_opt_id", "opt_id"},
		{"opt_camelCase", "camelCase"},
		{"xopt_camelCase", "xopt_camelCase"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, match.StripFirstMatchingPrefix(tt.value, matchers))
		})
	}
}

func TestStripFirstMatchingSuffix(t *testing.T) {
	matchers := []match.Matcher{match.Literal("_opt"), match.Literal("_o")}

	assert.Equal(t, "name", match.StripFirstMatchingSuffix("name_opt", matchers))
	assert.Equal(t, "name_x", match.StripFirstMatchingSuffix("name_x_o", matchers))
	assert.Equal(t, "name", match.StripFirstMatchingSuffix("name", matchers))
}

func TestAnyMatches(t *testing.T) {
	matchers := []match.Matcher{
		match.Literal("UNSAFE_componentWillMount"),
		match.Pattern(regexp.MustCompile(`^legacy_`)),
	}

	assert.True(t, match.AnyMatches("UNSAFE_componentWillMount", matchers))
	assert.True(t, match.AnyMatches("legacy_handler", matchers))
	assert.False(t, match.AnyMatches("UNSAFE_componentWillUpdate", matchers))
	assert.False(t, match.AnyMatches("anything", nil))
}

func TestCompile(t *testing.T) {
	t.Run("case insensitive flag", func(t *testing.T) {
		m, err := match.Compile(`^opt_`, "i")
		require.NoError(t, err)
		_, ok := m.StripPrefix("OPT_value")
		assert.True(t, ok)
	})

	t.Run("unicode flag is a no-op", func(t *testing.T) {
		m, err := match.Compile(`^\w+_`, "u")
		require.NoError(t, err)
		assert.True(t, m.IsPattern())
	})

	t.Run("unsupported flag", func(t *testing.T) {
		_, err := match.Compile(`^opt_`, "g")
		require.Error(t, err)
		var patternErr *match.PatternError
		assert.True(t, errors.As(err, &patternErr))
		assert.Equal(t, `^opt_`, patternErr.Pattern)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := match.Compile(`[unclosed`, "")
		require.Error(t, err)
		var patternErr *match.PatternError
		assert.True(t, errors.As(err, &patternErr))
	})
}
