package tokens

import (
	"fmt"

	"crm-reporting/internal/shared/svcerrors"
)

const (
	codeMissingCredentials = "TOKEN_1000"
	codeTokenUnavailable   = "TOKEN_1001"
)

// errMissingCredentials returns an error when no usable credential is configured.
func errMissingCredentials(message string) *svcerrors.ServiceError {
	return svcerrors.NewConfigurationError(codeMissingCredentials, message, nil)
}

// errTokenUnavailable returns an error when the OAuth exchange or refresh fails.
func errTokenUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewConfigurationError(codeTokenUnavailable, "access token unavailable", fmt.Errorf("tokenUnavailable: %w", cause))
}
