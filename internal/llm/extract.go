package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// noLocationSentinel is the literal response the model is instructed to
// return when the text contains no physical location.
const noLocationSentinel = "N/A"

// Extractor resolves free text to a candidate place name via the
// generative model.
type Extractor struct {
	llm    Completer
	logger *slog.Logger
}

func NewExtractor(llm Completer, logger *slog.Logger) *Extractor {
	return &Extractor{llm: llm, logger: logger}
}

// Extract returns the most specific physical location name found in
// text, or "" when none is found. Transport and model failures degrade
// to "": extraction failure is a rejection path for the caller, not a
// crash.
func (ex *Extractor) Extract(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(
		`From the following text, extract only the most specific physical location name (like "Manhattan, NYC" or "Downtown Los Angeles"). If no location is found, respond with %q. Text: %q`,
		noLocationSentinel, text,
	)

	resp, err := ex.llm.Complete(ctx, prompt)
	if err != nil {
		ex.logger.Warn("location extraction failed", slog.Any("error", err))
		return ""
	}

	location := strings.TrimSpace(resp)
	if location == noLocationSentinel {
		return ""
	}
	return location
}
