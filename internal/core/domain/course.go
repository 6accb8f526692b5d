package domain

import (
	"strings"
	"time"
)

// SortOrder controls the direction of course listings.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder normalizes a query-string value. Anything that is not
// explicitly descending sorts ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// Course is the primary mutable resource. CreatedByID records the identity
// that created the course and is never changed by an update.
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration"`
	Outcome      string    `json:"outcome"`
	CollectionID string    `json:"collection_id,omitempty"`
	CreatedByID  string    `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
