package enum

// SubmitState is the submission lifecycle of a draft invoice.
type SubmitState string

// A failed submission returns to idle with the error kept on the draft view,
// so the operator can correct the problem and resubmit.
const (
	SubmitStateIdle       SubmitState = "idle"
	SubmitStateSubmitting SubmitState = "submitting"
	SubmitStateSuccess    SubmitState = "success"
)

// String returns the string representation
func (s SubmitState) String() string {
	return string(s)
}
