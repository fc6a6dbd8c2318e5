package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturesForType(t *testing.T) {
	suite, ok := FeaturesForType("Suite")
	require.True(t, ok)
	assert.Len(t, suite, 11)
	assert.Equal(t, "wifi", suite[0])
	assert.Equal(t, "bed-alt", suite[10])

	standard, ok := FeaturesForType("sTaNdArD")
	require.True(t, ok)
	assert.Equal(t, []string{"wifi", "shower", "heat", "screen", "bed-alt"}, standard)

	economy, ok := FeaturesForType(" economy ")
	require.True(t, ok)
	assert.Equal(t, []string{"wifi", "shower", "bed-alt"}, economy)

	_, ok = FeaturesForType("Penthouse")
	assert.False(t, ok)
}

func TestFeaturesForType_ReturnsCopy(t *testing.T) {
	first, _ := FeaturesForType("Economy")
	first[0] = "changed"

	second, _ := FeaturesForType("Economy")
	assert.Equal(t, "wifi", second[0])
}

func TestSplitGuestName(t *testing.T) {
	tests := []struct {
		in    string
		first string
		last  string
	}{
		{"John", "John", "Guest"},
		{"John Smith", "John", "Smith"},
		{"  John   Ronald  Smith ", "John", "Smith"},
		{"", "", ""},
	}

	for _, tt := range tests {
		first, last := SplitGuestName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}
