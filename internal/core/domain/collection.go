package domain

import "time"

// Collection groups courses under a common name. Like courses, a collection
// records its creator and is guarded by the same ownership policy.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreatedByID string    `json:"created_by_id"`
	Courses     []*Course `json:"courses"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
