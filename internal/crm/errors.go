package crm

import (
	"fmt"

	"crm-reporting/internal/shared/svcerrors"
)

const (
	codeTransientStatus = "CRM_5000"
	codeNetworkFailure  = "CRM_5001"
	codePermanentStatus = "CRM_4000"
	codePageCapExceeded = "CRM_4001"
	codeDecodeFailed    = "CRM_9000"
)

// errTransientStatus returns an error for a rate-limit or server-side status.
func errTransientStatus(endpoint string, status int) *svcerrors.ServiceError {
	return svcerrors.NewTransientRemoteError(codeTransientStatus,
		fmt.Sprintf("%s returned status %d", endpoint, status), nil)
}

// errNetworkFailure returns an error for a network-level request failure.
func errNetworkFailure(endpoint string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewTransientRemoteError(codeNetworkFailure,
		fmt.Sprintf("request to %s failed", endpoint), fmt.Errorf("networkFailure: %w", cause))
}

// errPermanentStatus returns an error for any other non-success status.
func errPermanentStatus(endpoint string, status int) *svcerrors.ServiceError {
	return svcerrors.NewPermanentRemoteError(codePermanentStatus,
		fmt.Sprintf("%s returned status %d", endpoint, status), nil)
}

// errPageCapExceeded returns an error when the events pagination never terminates.
func errPageCapExceeded(maxPages int) *svcerrors.ServiceError {
	return svcerrors.NewPermanentRemoteError(codePageCapExceeded,
		fmt.Sprintf("event pagination exceeded %d pages", maxPages), nil)
}

// errDecodeFailed returns an error when a response body cannot be decoded.
func errDecodeFailed(endpoint string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeDecodeFailed,
		fmt.Errorf("decodeFailed %s: %w", endpoint, cause))
}
