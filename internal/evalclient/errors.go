package evalclient

import (
	"errors"
	"fmt"
)

// ErrSubmissionPending is returned when a submission is made while another is
// still outstanding.
var ErrSubmissionPending = errors.New("evaluation already in progress")

var errNoService = errors.New("evaluation service is not configured")

// ServiceError reports a failed call to the remote evaluation service.
// StatusCode is 0 for transport failures.
type ServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: service returned status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
