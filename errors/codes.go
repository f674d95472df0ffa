package errors

import "strconv"

// ErrorCode is the machine-readable code carried in every error response
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1004

	// Pipeline
	ErrorCode_NO_CONTEXT           ErrorCode = 2000
	ErrorCode_BUSY                 ErrorCode = 2001
	ErrorCode_UNKNOWN_TEMPLATE     ErrorCode = 2002
	ErrorCode_SESSION_NOT_FOUND    ErrorCode = 2003
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 2004
	ErrorCode_ANALYSIS_FAILED      ErrorCode = 2005

	// Integrations
	ErrorCode_STORAGE_FAILED      ErrorCode = 3000
	ErrorCode_SERVICE_UNAVAILABLE ErrorCode = 3001

	ErrorCode_HTTP_OK ErrorCode = 200
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:          "UNSPECIFIED",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_PAYLOAD_TOO_LARGE:    "PAYLOAD_TOO_LARGE",
	ErrorCode_NO_CONTEXT:           "NO_CONTEXT",
	ErrorCode_BUSY:                 "BUSY",
	ErrorCode_UNKNOWN_TEMPLATE:     "UNKNOWN_TEMPLATE",
	ErrorCode_SESSION_NOT_FOUND:    "SESSION_NOT_FOUND",
	ErrorCode_TRANSCRIPTION_FAILED: "TRANSCRIPTION_FAILED",
	ErrorCode_ANALYSIS_FAILED:      "ANALYSIS_FAILED",
	ErrorCode_STORAGE_FAILED:       "STORAGE_FAILED",
	ErrorCode_SERVICE_UNAVAILABLE:  "SERVICE_UNAVAILABLE",
	ErrorCode_HTTP_OK:              "HTTP_OK",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText renders the code by name in JSON bodies.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
