package rules

// ValidationError is returned when the analysis input is unusable. It is the
// only hard failure the engine surfaces; everything else degrades to a
// complete, possibly lower-confidence, result.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid analysis input: " + e.Reason
}
