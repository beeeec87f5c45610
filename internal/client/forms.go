package client

import (
	"strings"
	"unicode/utf8"

	"recharge-portal/internal/contract"
)

// MinFeedbackMessageLen is enforced by the form only; the API accepts any non-empty message.
const MinFeedbackMessageLen = 5

// ValidateFeedbackMessage applies the feedback form rule before submitting.
func ValidateFeedbackMessage(message string) error {
	if utf8.RuneCountInString(strings.TrimSpace(message)) < MinFeedbackMessageLen {
		return &contract.FieldError{Field: "message", Message: "Please provide at least 5 characters."}
	}
	return nil
}
