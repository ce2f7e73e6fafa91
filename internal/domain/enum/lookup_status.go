package enum

// LookupStatus tracks the customer phone lookup on a draft.
type LookupStatus string

const (
	LookupStatusIdle     LookupStatus = "idle"
	LookupStatusPending  LookupStatus = "pending"
	LookupStatusFound    LookupStatus = "found"
	LookupStatusNotFound LookupStatus = "not_found"
)

// String returns the string representation
func (s LookupStatus) String() string {
	return string(s)
}
