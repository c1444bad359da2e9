package services

import (
	"time"

	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"
)

// MembershipVariant names the paired notification types a toggle emits
type MembershipVariant struct {
	Add    models.NotificationType
	Remove models.NotificationType
}

var (
	// FavoriteVariant is used for a user's favorites set
	FavoriteVariant = MembershipVariant{Add: models.NotificationFavorite, Remove: models.NotificationUnfavorite}
	// AttendanceVariant is used for an event's attendees set
	AttendanceVariant = MembershipVariant{Add: models.NotificationGoing, Remove: models.NotificationNotGoing}
)

// ToggleResult is the outcome of one membership toggle
type ToggleResult struct {
	// Set is the membership set after the toggle, duplicates removed,
	// original order preserved.
	Set []string
	// Added is true when the target was inserted, false when removed
	Added bool
	// Notification is the audit record to append under the target's owner.
	// Emission is intentionally not idempotent: toggling twice restores the
	// set but produces two notifications.
	Notification models.Notification
}

// Toggle flips targetID's membership in current and emits the matching
// notification record. The caller is responsible for having validated that
// targetID exists; an absent actor is rejected before any state change.
func Toggle(current []string, targetID string, actor *models.Actor, variant MembershipVariant) (ToggleResult, error) {
	if actor == nil || actor.ID == "" {
		return ToggleResult{}, utils.NewUnauthenticatedError()
	}

	newSet := make([]string, 0, len(current)+1)
	seen := make(map[string]bool, len(current)+1)
	removed := false

	for _, id := range current {
		if seen[id] {
			continue
		}
		seen[id] = true
		if id == targetID {
			removed = true
			continue
		}
		newSet = append(newSet, id)
	}

	notificationType := variant.Remove
	if !removed {
		newSet = append(newSet, targetID)
		notificationType = variant.Add
	}

	return ToggleResult{
		Set:   newSet,
		Added: !removed,
		Notification: models.Notification{
			Type:      notificationType,
			ActorID:   actor.ID,
			ActorName: actor.Name,
			CreatedAt: time.Now(),
			Read:      false,
		},
	}, nil
}
