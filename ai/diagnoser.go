// Package ai wraps the diagnosis collaborator: free-text problem
// description in, short natural-language diagnosis out. Calls never
// fail from the caller's point of view; every error path degrades to a
// static fallback message.
package ai

import "context"

type Diagnoser interface {
	Diagnose(ctx context.Context, description string) string
}

const (
	// MsgUnavailable is returned when no API credential is configured.
	MsgUnavailable = "AI diagnosis is currently unavailable. Please select 'General Diagnosis' or contact us."
	// MsgEmpty is returned when the model produced no text.
	MsgEmpty = "Could not generate a diagnosis. Please try again."
	// MsgError is returned on any request failure.
	MsgError = "I'm having trouble connecting to the diagnostic server. Please select a service manually."
)

// Unavailable is the Diagnoser used when no Gemini credential exists.
type Unavailable struct{}

func (Unavailable) Diagnose(context.Context, string) string {
	return MsgUnavailable
}
