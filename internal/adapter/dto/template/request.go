package template

// ConvertRequest converts the current transcript. Blank keywords fall back to
// the keywords of the run.
type ConvertRequest struct {
	Keywords string `json:"keywords" validate:"max=2000" example:"incident, database outage"`
}
