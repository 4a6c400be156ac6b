package orchestratornode

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

type stubRouter struct{ role contractx.Role }

func (s stubRouter) Classify(context.Context, string) contractx.Role { return s.role }

type stubSpecialist struct {
	resp contractx.SpecialistResponse
	err  error
	got  string
}

func (s *stubSpecialist) Run(ctx context.Context, req contractx.SpecialistRequest) (contractx.SpecialistResponse, error) {
	s.got = req.UserMessage
	return s.resp, s.err
}

type stubRegistry struct {
	specialist contractx.Specialist
}

func (r stubRegistry) Router() contractx.Router                      { return stubRouter{} }
func (r stubRegistry) Specialist(contractx.Role) contractx.Specialist { return r.specialist }

func TestExtractLatestTurn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		history []contractx.Turn
		text    string
		hasTurn bool
	}{
		{"empty", nil, "", false},
		{"assistant only", []contractx.Turn{{Role: "assistant", Content: "Hi"}}, "", false},
		{"latest user wins", []contractx.Turn{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "ok"},
			{Role: "user", Content: " second "},
			{Role: "assistant", Content: "trailing"},
		}, "second", true},
		{"blank user turn", []contractx.Turn{{Role: "user", Content: "hello"}, {Role: "user", Content: "  "}}, "", false},
	}
	for _, tt := range tests {
		st, err := ExtractLatestTurn(GraphInput{History: tt.history})
		if err != nil {
			t.Fatalf("%s: ExtractLatestTurn() error = %v", tt.name, err)
		}
		if st.Text != tt.text || st.HasUserTurn != tt.hasTurn {
			t.Fatalf("%s: got text=%q has=%v", tt.name, st.Text, st.HasUserTurn)
		}
	}
}

func TestNextAfterExtract(t *testing.T) {
	t.Parallel()

	if next, _ := NextAfterExtract(&GraphState{}); next != NodeCannedReply {
		t.Fatalf("expected canned reply, got %s", next)
	}
	if next, _ := NextAfterExtract(&GraphState{HasUserTurn: true, Text: "hi"}); next != NodeClassifyIntent {
		t.Fatalf("expected classify, got %s", next)
	}
	if _, err := NextAfterExtract(nil); !errors.Is(err, ErrNilState) {
		t.Fatalf("expected ErrNilState, got %v", err)
	}
}

func TestClassifyIntentFallsBack(t *testing.T) {
	t.Parallel()

	st, err := ClassifyIntent(context.Background(), &GraphState{Text: "x"}, stubRouter{role: "Bogus"})
	if err != nil {
		t.Fatalf("ClassifyIntent() error = %v", err)
	}
	if st.Role != contractx.RoleReceptionist {
		t.Fatalf("expected receptionist, got %s", st.Role)
	}
}

func TestDispatchSpecialist(t *testing.T) {
	t.Parallel()

	sp := &stubSpecialist{resp: contractx.SpecialistResponse{Message: " done ", Degraded: true}}
	st, err := DispatchSpecialist(context.Background(), &GraphState{Text: "towels", Role: contractx.RoleRoomService}, stubRegistry{specialist: sp})
	if err != nil {
		t.Fatalf("DispatchSpecialist() error = %v", err)
	}
	if sp.got != "towels" || st.Message != "done" || !st.Degraded {
		t.Fatalf("unexpected state: %+v", st)
	}

	boom := errors.New("boom")
	_, err = DispatchSpecialist(context.Background(), &GraphState{Text: "x"}, stubRegistry{specialist: &stubSpecialist{err: boom}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	_, err = DispatchSpecialist(context.Background(), &GraphState{Text: "x"}, stubRegistry{})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestFinalizeReply(t *testing.T) {
	t.Parallel()

	calls := []contractx.ToolInvocation{{Tool: "get_menu_items", Result: "menu"}}
	out, err := FinalizeReply(&GraphState{Message: " hi ", Role: contractx.RoleRestaurant, ToolCalls: calls, Degraded: true})
	if err != nil || out.Reply != "hi" || out.Role != contractx.RoleRestaurant || len(out.ToolCalls) != 1 || !out.Degraded {
		t.Fatalf("unexpected output: %+v, %v", out, err)
	}
	if _, err := FinalizeReply(&GraphState{}); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	canned, err := CannedReply(&GraphState{})
	if err != nil || canned.Reply != CannedPrompt {
		t.Fatalf("unexpected canned reply: %+v, %v", canned, err)
	}
}
