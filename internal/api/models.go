package api

const (
	msgImageMissing     = "Image is null"
	msgImageTooLarge    = "Image is too large"
	msgQuestionMissing  = "Missing 'question' property in the request body."
	msgQuestionBlank    = "The 'question' property cannot be null or empty."
	msgQuestionType     = "The 'question' property must be a string."
	msgQuestionTooLarge = "Question body is too large"
)

// HealthResponse represents the liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}
