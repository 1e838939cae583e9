package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// failureAnalysis is returned when the model call fails. It contains
// neither "authentic" nor "manipulated", so downstream classification
// lands on inconclusive.
const failureAnalysis = "Verification failed due to an upstream model error."

// Verifier asks the generative model whether an image looks authentic
// for a disaster scenario.
type Verifier struct {
	llm    Completer
	logger *slog.Logger
}

func NewVerifier(llm Completer, logger *slog.Logger) *Verifier {
	return &Verifier{llm: llm, logger: logger}
}

// Analyze always returns a non-empty analysis string; a failed service
// call yields a fixed failure description instead of an error.
func (v *Verifier) Analyze(ctx context.Context, imageURL string) string {
	prompt := fmt.Sprintf(
		`Analyze this description of an image and determine if it seems authentic for a disaster scenario. Image source: %s. Provide a brief analysis and a conclusion of "likely authentic", "likely manipulated", or "inconclusive".`,
		imageURL,
	)

	resp, err := v.llm.Complete(ctx, prompt)
	if err != nil {
		v.logger.Warn("image verification call failed",
			slog.String("image_url", imageURL),
			slog.Any("error", err),
		)
		return failureAnalysis
	}
	return strings.TrimSpace(resp)
}
