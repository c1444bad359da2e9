package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitContactList(t *testing.T) {
	assert.Equal(t, []string{"a@b.gr", "c@d.gr"}, SplitContactList("a@b.gr, c@d.gr"))
	assert.Equal(t, []string{"2101234567"}, SplitContactList(" 2101234567 , "))
	assert.Empty(t, SplitContactList(""))
	assert.Empty(t, SplitContactList(" , ,"))
}

func TestHaversine(t *testing.T) {
	// Athens to Thessaloniki is roughly 300 km as the crow flies
	distance := haversine(37.9838, 23.7275, 40.6401, 22.9444)
	assert.InDelta(t, 300, distance, 10)

	assert.InDelta(t, 0, haversine(37.9838, 23.7275, 37.9838, 23.7275), 1e-9)
}
