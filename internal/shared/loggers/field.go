package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"
	FieldRunID       = "run_id"
	FieldJobID       = "job_id"
	FieldSource      = "source"
	FieldBatch       = "batch"
	FieldCustomerID  = "customer_id"
	FieldLineNumber  = "line_number"
)
