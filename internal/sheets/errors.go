package sheets

import (
	"fmt"

	"crm-reporting/internal/shared/svcerrors"
)

const (
	codeAuthorizationFailed = "SHEETS_1000"
	codeWriteFailed         = "SHEETS_9000"
)

// errAuthorizationFailed returns an error when the spreadsheet session cannot
// be established (bad or missing service-account credentials).
func errAuthorizationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewConfigurationError(codeAuthorizationFailed, "spreadsheet authorization failed",
		fmt.Errorf("sheetsAuthorizationFailed: %w", cause))
}

// errWriteFailed returns an error when a spreadsheet read or write fails.
func errWriteFailed(operation string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewPermanentRemoteError(codeWriteFailed, "spreadsheet operation failed",
		fmt.Errorf("sheetsWriteFailed %s: %w", operation, cause))
}
