package sourcetree

import "fmt"

// TreeInvariantViolation reports a source that cannot be placed without breaking the tree shape,
// typically a file and a directory claiming the same path.
type TreeInvariantViolation struct {
	Path   string
	URL    string
	Reason string
}

func (e *TreeInvariantViolation) Error() string {
	return fmt.Sprintf("source tree invariant violated at %q by %v: %s", e.Path, e.URL, e.Reason)
}
