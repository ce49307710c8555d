package algorithms

import (
	"sort"

	"artisanhub/internal/models"
)

// GroupByCounterpart partitions a user's messages by the participant on the
// other end. Every message lands in exactly one group, keyed by
// recipient when the user sent it and by sender otherwise. Groups are
// ascending by timestamp regardless of input order. Self-messages are not
// produced by the send path, but if present they group under the user's
// own ID.
func GroupByCounterpart(userID string, messages []models.Message) map[string][]models.Message {
	groups := make(map[string][]models.Message)

	for _, msg := range messages {
		otherID := msg.CounterpartID(userID)
		groups[otherID] = append(groups[otherID], msg)
	}

	for id := range groups {
		group := groups[id]
		if !sortedAscending(group) {
			sort.SliceStable(group, func(i, j int) bool {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			})
			groups[id] = group
		}
	}

	return groups
}

// CounterpartIDs returns the distinct participant IDs of the grouping, in
// no particular order.
func CounterpartIDs(groups map[string][]models.Message) []string {
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	return ids
}

func sortedAscending(msgs []models.Message) bool {
	for i := 1; i < len(msgs); i++ {
		if msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt) {
			return false
		}
	}
	return true
}
