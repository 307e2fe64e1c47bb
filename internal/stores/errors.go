package stores

import (
	"fmt"

	"crm-reporting/internal/shared/svcerrors"
)

const (
	codeStoreInitFailed      = "STORE_9000"
	codeStoreOperationFailed = "STORE_9001"
)

// errStoreInitFailed returns an error when the store file or schema cannot be set up.
func errStoreInitFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewLocalStoreError(codeStoreInitFailed, "latency store initialization failed",
		fmt.Errorf("storeInitFailed: %w", cause))
}

// errStoreOperationFailed returns an error when a single store statement fails.
func errStoreOperationFailed(operation string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewLocalStoreError(codeStoreOperationFailed, "latency store operation failed",
		fmt.Errorf("storeOperationFailed %s: %w", operation, cause))
}
