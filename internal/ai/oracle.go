package ai

import "context"

// Completer is the abstract text-completion capability shared by the contact
// extractor and the email drafter. Implementations return free-form text that
// is expected, but not guaranteed, to contain the requested structure.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
