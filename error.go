package simplex

import (
	"os"

	"github.com/stvp/rollbar"
)

// SuppressErrorReporting is a global flag to prevent unexpected errors from being sent to
// Rollbar.  Reports are also skipped when no token is configured.
var SuppressErrorReporting bool

// ErrorReporter sends unexpected errors to an external crash reporting service
type ErrorReporter interface {
	ReportError(err error)
	Flush()
}

type errorService struct{}

var _ ErrorReporter = errorService{}

func init() {
	switch env := os.Getenv("environment"); env {
	case "development":
		rollbar.Environment = "development"
	default:
		rollbar.Environment = "production"
	}
	rollbar.Token = os.Getenv("SIMPLEX_ROLLBAR_TOKEN")
}

// NewErrorReporter returns the Rollbar backed reporter
func NewErrorReporter() ErrorReporter {
	return errorService{}
}

// ReportError will send the error to Rollbar.  Data is anonymous.
func (e errorService) ReportError(err error) {
	if !SuppressErrorReporting && rollbar.Token != "" {
		rollbar.Error(rollbar.ERR, err)
	}
}

// Flush blocks until queued reports are sent
func (e errorService) Flush() {
	if rollbar.Token != "" {
		rollbar.Wait()
	}
}
