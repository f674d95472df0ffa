package chat

// AskRequest is a question about the current transcript
type AskRequest struct {
	Question string `json:"question" validate:"required,max=4000" example:"What did we decide about the budget?"`
}
