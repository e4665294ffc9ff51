package models

import (
	"strings"
	"time"
)

// Availability holds the slot strings a technician offers on one calendar day.
// At most one record exists per (technician, date) pair.
type Availability struct {
	Technician string    `bson:"technician" json:"technician"`
	Date       string    `bson:"date" json:"date"` // YYYY-MM-DD
	Slots      []string  `bson:"slots" json:"slots"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeSlots trims every slot string, drops empties, and collapses
// duplicates while keeping first-seen order. Both store implementations run
// incoming slot sets through this before persisting.
func NormalizeSlots(slots []string) []string {
	cleaned := make([]string, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		cleaned = append(cleaned, s)
	}
	return cleaned
}
