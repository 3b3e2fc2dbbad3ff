package domain

import "time"

const StatusOpen = "open"

// Page is a skip/limit window. A zero Limit means no limit.
type Page struct {
	Skip  int
	Limit int
}

// ElectionQuery describes an election listing before it is executed.
type ElectionQuery struct {
	OwnerID uint

	StartTimeBefore *time.Time
	StartTimeAfter  *time.Time
	CreatedBefore   *time.Time
	CreatedAfter    *time.Time

	// Status is empty when no status filter was requested.
	Status string
	Now    time.Time

	Page Page
}

// ElectionScope describes a listing of resources that hang off one election.
type ElectionScope struct {
	ElectionID uint
	Page       Page
}
