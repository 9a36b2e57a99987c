package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreMatchesSubsequence(t *testing.T) {
	score, ok := Score("getUserName", "user name")
	require.True(t, ok)
	require.Greater(t, score, int64(60))
}

func TestScoreRanksWordStartMatchHigherThanMidwordMatch(t *testing.T) {
	better, ok := Score("getUserName", "user")
	require.True(t, ok)
	worse, ok := Score("xxxuserxxx", "user")
	require.True(t, ok)
	require.Greater(t, better, worse)
}

func TestScoreNoMatchWhenPatternLongerThanText(t *testing.T) {
	_, ok := Score("ab", "abc")
	require.False(t, ok)
}

func TestScoreNoMatchWhenNotSubsequence(t *testing.T) {
	_, ok := Score("function add", "zzz")
	require.False(t, ok)
}

func TestScoreEmptyPatternAlwaysMatches(t *testing.T) {
	score, ok := Score("anything", "")
	require.True(t, ok)
	require.Equal(t, int64(0), score)
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	lower, ok := Score("getUserName", "username")
	require.True(t, ok)
	upper, ok := Score("getUserName", "USERNAME")
	require.True(t, ok)
	require.Equal(t, lower, upper)
}
