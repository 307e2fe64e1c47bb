package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldEndpoint = "endpoint"
	FieldPage     = "page"
	FieldAttempt  = "attempt"
	FieldDuration = "duration"

	FieldReportDate = "report_date"
	FieldErrorCode  = "error_code"
)
