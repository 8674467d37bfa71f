package draft

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dantalabs/leadscout/internal/dto"
)

type stubOracle struct {
	response string
	err      error
	prompt   string
}

func (s *stubOracle) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func sampleRequest() dto.DraftRequest {
	return dto.DraftRequest{
		ContactName: "Nguyen Van A",
		Position:    "CEO",
		CompanyName: "Cafe X",
		Website:     "http://cafex.example",
		Industry:    "coffee shop",
	}
}

func TestGenerate_HappyPath(t *testing.T) {
	oracle := &stubOracle{response: `{"subject":"Automating Cafe X operations","body":"Hi Nguyen Van A,\n\n..."}`}
	svc := NewService(oracle)

	draft, err := svc.Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Subject != "Automating Cafe X operations" {
		t.Fatalf("unexpected subject %q", draft.Subject)
	}
	if !strings.Contains(draft.Body, "Nguyen Van A") {
		t.Fatalf("unexpected body %q", draft.Body)
	}

	for _, fragment := range []string{"Nguyen Van A", "CEO", "Cafe X", "coffee shop", "Danta Labs"} {
		if !strings.Contains(oracle.prompt, fragment) {
			t.Fatalf("prompt missing %q", fragment)
		}
	}
}

func TestGenerate_FencedJSONRecovered(t *testing.T) {
	oracle := &stubOracle{response: "```json\n{\"subject\":\"Quick idea\",\"body\":\"Hello.\"}\n```"}
	svc := NewService(oracle)

	draft, err := svc.Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Subject != "Quick idea" || draft.Body != "Hello." {
		t.Fatalf("unexpected draft %+v", draft)
	}
}

func TestGenerate_MalformedOutput(t *testing.T) {
	svc := NewService(&stubOracle{response: "Sorry, I cannot help with that."})

	if _, err := svc.Generate(context.Background(), sampleRequest()); !errors.Is(err, ErrMalformedDraft) {
		t.Fatalf("expected ErrMalformedDraft, got %v", err)
	}
}

func TestGenerate_EmptyFields(t *testing.T) {
	svc := NewService(&stubOracle{response: `{"subject":"","body":"something"}`})

	if _, err := svc.Generate(context.Background(), sampleRequest()); !errors.Is(err, ErrMalformedDraft) {
		t.Fatalf("expected ErrMalformedDraft on blank subject, got %v", err)
	}
}

func TestGenerate_OracleError(t *testing.T) {
	boom := errors.New("model unavailable")
	svc := NewService(&stubOracle{err: boom})

	if _, err := svc.Generate(context.Background(), sampleRequest()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped oracle error, got %v", err)
	}
}

func TestBuildDraftPrompt_BlankIndustry(t *testing.T) {
	req := sampleRequest()
	req.Industry = "  "

	if prompt := buildDraftPrompt(req); !strings.Contains(prompt, "Industry: Unknown") {
		t.Fatalf("expected blank industry rendered as Unknown")
	}
}
