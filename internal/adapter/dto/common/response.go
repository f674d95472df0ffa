package common

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Code    string            `json:"code" example:"NO_CONTEXT"`
	Message string            `json:"message" example:"No transcript available yet"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// SuccessResponse wraps every successful payload
type SuccessResponse struct {
	Code    int         `json:"code" example:"200"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthResponse reports process status
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Environment string `json:"environment" example:"development"`
	Processing  bool   `json:"processing"`
}
