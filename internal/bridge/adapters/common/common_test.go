package common

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestClassifyChatKind(t *testing.T) {
	cases := []struct {
		chatType string
		want     string
	}{
		{"private", "private"},
		{"group", "group"},
		{"supergroup", "group"},
		{"channel", "channel"},
		{"Channel", "channel"},
		{"sender", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ClassifyChatKind(tc.chatType); got != tc.want {
			t.Errorf("ClassifyChatKind(%q) = %q, want %q", tc.chatType, got, tc.want)
		}
	}
}

func TestSenderDisplayName(t *testing.T) {
	if got := SenderDisplayName(nil); got != "" {
		t.Fatalf("nil user name = %q, want empty", got)
	}
	if got := SenderDisplayName(&tgbotapi.User{UserName: "sara"}); got != "sara" {
		t.Fatalf("username preferred, got %q", got)
	}
	if got := SenderDisplayName(&tgbotapi.User{FirstName: "Sara", LastName: "K"}); got != "Sara K" {
		t.Fatalf("full name fallback, got %q", got)
	}
	if got := SenderDisplayName(&tgbotapi.User{FirstName: "Sara"}); got != "Sara" {
		t.Fatalf("first name only, got %q", got)
	}
}
