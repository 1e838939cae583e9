package llm_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/internal/llm"
)

func TestVerifier_ReturnsModelAnalysis(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{resp: " The image appears likely authentic. \n"}
	v := llm.NewVerifier(stub, testLogger())

	got := v.Analyze(context.Background(), "https://example.com/img.jpg")
	if got != "The image appears likely authentic." {
		t.Fatalf("expected trimmed analysis, got %q", got)
	}
	if !strings.Contains(stub.prompt, "https://example.com/img.jpg") {
		t.Fatalf("prompt does not carry the image url: %q", stub.prompt)
	}
}

func TestVerifier_FailureYieldsInconclusiveAnalysis(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{err: errors.New("timeout")}
	v := llm.NewVerifier(stub, testLogger())

	got := v.Analyze(context.Background(), "https://example.com/img.jpg")
	if got == "" {
		t.Fatalf("expected non-empty analysis on failure")
	}
	// The fallback text must classify as inconclusive downstream.
	if status := domain.ClassifyAnalysis(got); status != domain.VerificationInconclusive {
		t.Fatalf("expected fallback analysis to classify inconclusive, got %q", status)
	}
}
