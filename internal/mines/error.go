package mines

// AssertionError reports a broken programming contract, such as
// sweeping out of bounds or sweeping the same cell twice.
type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}
