package models

// RequestState tracks an in-flight write so a form cannot be submitted twice.
type RequestState string

// Request states of a guarded write
const (
	RequestIdle      RequestState = "idle"
	RequestPending   RequestState = "pending"
	RequestSucceeded RequestState = "succeeded"
	RequestFailed    RequestState = "failed"
)

// CanSubmit reports whether a new write may start from this state.
func (s RequestState) CanSubmit() bool {
	return s != RequestPending
}
