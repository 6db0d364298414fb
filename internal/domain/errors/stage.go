package errors

import "net/http"

// Stage identifies the pipeline step a scan submission failed in. The scan
// pipeline is a strict linear state machine; a stage failure aborts the whole
// submission and names the failing stage, so callers can tell a rejected
// photo from an unreachable classifier.
type Stage string

const (
	// StageValidate is the local image-validity check.
	StageValidate Stage = "validate"
	// StageGeocode is the address-to-coordinates resolution.
	StageGeocode Stage = "geocode"
	// StageStore is the durable image upload.
	StageStore Stage = "store"
	// StageClassify is the vision-model risk classification.
	StageClassify Stage = "classify"
	// StagePersist is the final repository write.
	StagePersist Stage = "persist"
)

// stageHTTPCodes maps each stage to the status reported to the caller.
// Validation and geocoding failures are caller-correctable input problems;
// store and classify failures are upstream faults; persist is ours.
var stageHTTPCodes = map[Stage]int{
	StageValidate: http.StatusUnprocessableEntity,
	StageGeocode:  http.StatusUnprocessableEntity,
	StageStore:    http.StatusBadGateway,
	StageClassify: http.StatusBadGateway,
	StagePersist:  http.StatusInternalServerError,
}

// stageErrorCodes maps each stage to its business error code.
var stageErrorCodes = map[Stage]string{
	StageValidate: "VALIDATION_FAILED",
	StageGeocode:  "GEOCODE_FAILED",
	StageStore:    "STORE_FAILED",
	StageClassify: "CLASSIFY_FAILED",
	StagePersist:  "PERSIST_FAILED",
}

// StageError is a pipeline failure attributable to one specific stage,
// implementing the AppError interface. It is non-retriable within one
// submission attempt; the caller may resubmit from scratch.
type StageError struct {
	stage  Stage
	cause  error
	reason string
}

// NewStageError creates a stage-attributed pipeline error. cause may be nil
// when the stage itself rejected the input rather than failing upstream.
func NewStageError(stage Stage, cause error, reason string) *StageError {
	return &StageError{
		stage:  stage,
		cause:  cause,
		reason: reason,
	}
}

// Stage returns the pipeline stage the submission failed in.
func (e *StageError) Stage() Stage {
	return e.stage
}

// Error implements the error interface
func (e *StageError) Error() string {
	return "scan pipeline stage " + string(e.stage) + " failed: " + e.reason
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *StageError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code
func (e *StageError) HTTPCode() int {
	if code, ok := stageHTTPCodes[e.stage]; ok {
		return code
	}

	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StageError) ErrorCode() string {
	if code, ok := stageErrorCodes[e.stage]; ok {
		return code
	}

	return "PIPELINE_FAILED"
}

// Message returns the user-friendly error message
func (e *StageError) Message() string {
	return e.reason
}

// Details returns detailed error information
func (e *StageError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}
