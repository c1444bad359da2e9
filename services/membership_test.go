package services

import (
	"testing"

	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testActor = &models.Actor{ID: "user1", Name: "Maria"}

func TestToggleAddsWhenAbsent(t *testing.T) {
	result, err := Toggle([]string{}, "biz1", testActor, FavoriteVariant)
	require.NoError(t, err)

	assert.Equal(t, []string{"biz1"}, result.Set)
	assert.True(t, result.Added)
	assert.Equal(t, models.NotificationFavorite, result.Notification.Type)
	assert.Equal(t, "user1", result.Notification.ActorID)
	assert.Equal(t, "Maria", result.Notification.ActorName)
	assert.False(t, result.Notification.Read)
	assert.False(t, result.Notification.CreatedAt.IsZero())
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	result, err := Toggle([]string{"biz1", "biz2"}, "biz1", testActor, FavoriteVariant)
	require.NoError(t, err)

	assert.Equal(t, []string{"biz2"}, result.Set)
	assert.False(t, result.Added)
	assert.Equal(t, models.NotificationUnfavorite, result.Notification.Type)
}

func TestToggleTwiceRestoresSetButEmitsTwoNotifications(t *testing.T) {
	original := []string{"biz2", "biz3"}

	first, err := Toggle(original, "biz1", testActor, FavoriteVariant)
	require.NoError(t, err)
	second, err := Toggle(first.Set, "biz1", testActor, FavoriteVariant)
	require.NoError(t, err)

	assert.ElementsMatch(t, original, second.Set)

	// Notification emission is an audit trail, not idempotent
	emitted := []models.Notification{first.Notification, second.Notification}
	assert.Len(t, emitted, 2)
	assert.Equal(t, models.NotificationFavorite, emitted[0].Type)
	assert.Equal(t, models.NotificationUnfavorite, emitted[1].Type)
}

func TestToggleUnauthenticated(t *testing.T) {
	original := []string{"biz1"}

	_, err := Toggle(original, "biz2", nil, FavoriteVariant)
	require.Error(t, err)
	assert.True(t, utils.IsUnauthenticated(err))

	_, err = Toggle(original, "biz2", &models.Actor{}, FavoriteVariant)
	require.Error(t, err)
	assert.True(t, utils.IsUnauthenticated(err))

	// Input set untouched
	assert.Equal(t, []string{"biz1"}, original)
}

func TestToggleAttendanceVariant(t *testing.T) {
	going, err := Toggle([]string{}, "user1", testActor, AttendanceVariant)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationGoing, going.Notification.Type)

	notGoing, err := Toggle(going.Set, "user1", testActor, AttendanceVariant)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationNotGoing, notGoing.Notification.Type)
	assert.Empty(t, notGoing.Set)
}

func TestToggleDropsDuplicates(t *testing.T) {
	result, err := Toggle([]string{"biz1", "biz1", "biz2"}, "biz3", testActor, FavoriteVariant)
	require.NoError(t, err)

	assert.Equal(t, []string{"biz1", "biz2", "biz3"}, result.Set)
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	original := []string{"biz1", "biz2"}

	_, err := Toggle(original, "biz3", testActor, FavoriteVariant)
	require.NoError(t, err)

	assert.Equal(t, []string{"biz1", "biz2"}, original)
}
