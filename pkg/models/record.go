package models

import "fmt"

// Status is the lifecycle state of a store entry.
type Status int

const (
	Active Status = iota
	Inactive
	PendingChange
)

// Store markers for each Status.
const (
	MarkerActive        = "+"
	MarkerInactive      = "-"
	MarkerPendingChange = "*"
)

// ParseStatus maps a marker token to its Status.
func ParseStatus(marker string) (Status, bool) {
	switch marker {
	case MarkerActive:
		return Active, true
	case MarkerInactive:
		return Inactive, true
	case MarkerPendingChange:
		return PendingChange, true
	}
	return 0, false
}

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	case PendingChange:
		return "pending_change"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Record is one parsed line of the store.
// The byte fields alias the loaded store buffer and are only valid until
// that buffer is closed.
type Record struct {
	Line     int
	Status   Status
	Name     []byte
	Link     []byte
	Username []byte
	Secret   []byte
}

// Tally holds per-status record counts.
type Tally struct {
	Active        int
	Inactive      int
	PendingChange int
}

// Add counts one record of the given status.
func (t *Tally) Add(s Status) {
	switch s {
	case Active:
		t.Active++
	case Inactive:
		t.Inactive++
	case PendingChange:
		t.PendingChange++
	}
}

// Total returns the number of counted records.
func (t Tally) Total() int {
	return t.Active + t.Inactive + t.PendingChange
}
