package bridge

import (
	"context"
	"strings"
	"testing"

	"github.com/peyvand/peyvand/internal/config"
	"github.com/peyvand/peyvand/internal/router"
)

type fakeAdapter struct {
	platform string
	selfID   int64
	texts    []string
	chatIDs  []int64
}

func (f *fakeAdapter) Platform() string { return f.platform }
func (f *fakeAdapter) SelfID() int64    { return f.selfID }

func (f *fakeAdapter) Run(ctx context.Context, _ EventHandler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeAdapter) SendText(_ context.Context, chatID int64, text string) error {
	f.texts = append(f.texts, text)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func (f *fakeAdapter) SendPhoto(_ context.Context, chatID int64, _ []byte, _, caption string) error {
	f.texts = append(f.texts, caption)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func (f *fakeAdapter) SendDocument(_ context.Context, chatID int64, _ []byte, _, caption string) error {
	f.texts = append(f.texts, caption)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func (f *fakeAdapter) SendVideo(_ context.Context, chatID int64, _ []byte, _, caption string) error {
	f.texts = append(f.texts, caption)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func newTestOrchestrator(t *testing.T, adapters ...*fakeAdapter) *Orchestrator {
	t.Helper()
	engine := router.NewEngine(nil, nil, nil, nil)
	o := NewOrchestrator(nil, config.BridgeConfig{}, nil, nil, nil, nil, nil, engine)
	for _, a := range adapters {
		o.RegisterAdapter(a)
	}
	return o
}

func TestHandleEventHelpCommand(t *testing.T) {
	adapter := &fakeAdapter{platform: "telegram"}
	o := newTestOrchestrator(t, adapter)

	ev := Event{Platform: "telegram", ChatID: 10, ChatKind: "private", AuthorID: 7, Text: "/help"}
	if err := o.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("handle /help failed: %v", err)
	}
	if len(adapter.texts) != 1 || adapter.texts[0] != textHelp {
		t.Fatalf("expected help text reply, got %v", adapter.texts)
	}
	if adapter.chatIDs[0] != 10 {
		t.Fatalf("reply went to chat %d, want 10", adapter.chatIDs[0])
	}
}

func TestHandleEventCommandWithBotSuffix(t *testing.T) {
	adapter := &fakeAdapter{platform: "telegram"}
	o := newTestOrchestrator(t, adapter)

	ev := Event{Platform: "telegram", ChatID: 10, ChatKind: "private", AuthorID: 7, Text: "/myid@peyvand_bot"}
	if err := o.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("handle /myid failed: %v", err)
	}
	if len(adapter.texts) != 1 || !strings.Contains(adapter.texts[0], "7") {
		t.Fatalf("expected id reply, got %v", adapter.texts)
	}
}

func TestCodePatterns(t *testing.T) {
	cases := []struct {
		text string
		chat bool
		dm   bool
	}{
		{"G-ABCD1234", true, false},
		{"C-ZZZZ9999", true, false},
		{"DM-ABCD1234", false, true},
		{"G-abcd1234", false, false},
		{"G-ABCD123", false, false},
		{"X-ABCD1234", false, false},
		{"hello", false, false},
	}
	for _, tc := range cases {
		if got := chatCodePattern.MatchString(tc.text); got != tc.chat {
			t.Errorf("chatCodePattern(%q) = %v, want %v", tc.text, got, tc.chat)
		}
		if got := dmCodePattern.MatchString(tc.text); got != tc.dm {
			t.Errorf("dmCodePattern(%q) = %v, want %v", tc.text, got, tc.dm)
		}
	}
}

func TestWizardSessions(t *testing.T) {
	w := newWizard()
	if w.take("telegram", 1) != awaitNothing {
		t.Fatal("fresh wizard should have no session")
	}

	w.set("telegram", 1, awaitMergeID)
	if w.take("telegram", 1) != awaitMergeID {
		t.Fatal("session not returned")
	}
	if w.take("telegram", 1) != awaitNothing {
		t.Fatal("take must consume the session")
	}

	// Sessions are scoped per platform user.
	w.set("telegram", 1, awaitDmTargetID)
	if w.take("bale", 1) != awaitNothing {
		t.Fatal("session leaked across platforms")
	}
	w.set("telegram", 1, awaitNothing)
	if w.take("telegram", 1) != awaitNothing {
		t.Fatal("set awaitNothing must clear the session")
	}
}

func TestAttributionPrefix(t *testing.T) {
	withName := attributionPrefix(Event{AuthorName: "Sara", AuthorID: 5})
	if withName != "Sara: " {
		t.Fatalf("prefix = %q, want %q", withName, "Sara: ")
	}
	nameless := attributionPrefix(Event{AuthorID: 5})
	if nameless != "5: " {
		t.Fatalf("prefix = %q, want %q", nameless, "5: ")
	}
}

func TestMediaFilenameDefaults(t *testing.T) {
	cases := []struct {
		media Media
		want  string
	}{
		{Media{Type: MediaPhoto}, "photo.jpg"},
		{Media{Type: MediaDocument}, "document.bin"},
		{Media{Type: MediaVideo}, "video.mp4"},
		{Media{Type: MediaPhoto, Filename: "vacation.png"}, "vacation.png"},
	}
	for _, tc := range cases {
		if got := mediaFilename(&tc.media); got != tc.want {
			t.Errorf("mediaFilename(%v) = %q, want %q", tc.media.Type, got, tc.want)
		}
	}
}

func TestOppositePlatform(t *testing.T) {
	if oppositePlatform("telegram") != "bale" || oppositePlatform("bale") != "telegram" {
		t.Fatal("oppositePlatform mapping broken")
	}
}

func TestDeliverMediaCaptionPrefix(t *testing.T) {
	adapter := &fakeAdapter{platform: "bale"}
	o := newTestOrchestrator(t, adapter)

	ev := Event{
		Platform: "telegram",
		AuthorID: 9,
		Media:    &Media{Type: MediaPhoto, Caption: "sunset"},
	}
	if err := o.deliver(context.Background(), adapter, 55, ev, "9: "); err != nil {
		t.Fatalf("deliver failed: %v", err)
	}
	if len(adapter.texts) != 1 || adapter.texts[0] != "9: sunset" {
		t.Fatalf("caption = %v, want prefixed", adapter.texts)
	}
	if adapter.chatIDs[0] != 55 {
		t.Fatalf("sent to chat %d, want 55", adapter.chatIDs[0])
	}
}
