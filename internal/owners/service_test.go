package owners

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/peyvand/peyvand/internal/db"
	"github.com/peyvand/peyvand/internal/db/sqlc"
)

func TestOwnerIdentity(t *testing.T) {
	tg := int64(111)
	bale := int64(222)
	o := Owner{TgUserID: &tg, BaleUserID: &bale}

	if got := o.Identity(PlatformTelegram); got == nil || *got != tg {
		t.Errorf("Identity(telegram) = %v", got)
	}
	if got := o.Identity(PlatformBale); got == nil || *got != bale {
		t.Errorf("Identity(bale) = %v", got)
	}
	if got := o.Identity("discord"); got != nil {
		t.Errorf("Identity(unknown) = %v, want nil", got)
	}
}

func TestOwnerDmTarget(t *testing.T) {
	baleTarget := int64(900)
	tgTarget := int64(901)
	o := Owner{DmTargetBaleChatID: &baleTarget, DmTargetTgChatID: &tgTarget}

	// A DM arriving on Telegram forwards to the Bale target.
	if got := o.DmTarget(PlatformTelegram); got == nil || *got != baleTarget {
		t.Errorf("DmTarget(telegram) = %v, want %d", got, baleTarget)
	}
	if got := o.DmTarget(PlatformBale); got == nil || *got != tgTarget {
		t.Errorf("DmTarget(bale) = %v, want %d", got, tgTarget)
	}

	var unset Owner
	if got := unset.DmTarget(PlatformTelegram); got != nil {
		t.Errorf("DmTarget on unset owner = %v, want nil", got)
	}
}

func TestToOwner(t *testing.T) {
	pgID, err := db.ParseUUID("550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		t.Fatal(err)
	}
	row := sqlc.Owner{
		ID:         pgID,
		TgUserID:   db.Int8(42),
		BaleUserID: pgtype.Int8{},
	}
	o := toOwner(row)
	if o.ID != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("ID = %q", o.ID)
	}
	if o.TgUserID == nil || *o.TgUserID != 42 {
		t.Errorf("TgUserID = %v", o.TgUserID)
	}
	if o.BaleUserID != nil {
		t.Errorf("BaleUserID = %v, want nil", o.BaleUserID)
	}
}

func TestNormalizePlatform(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"  Telegram  ", "telegram"},
		{"BALE", "bale"},
	}
	for _, tt := range tests {
		if got := normalizePlatform(tt.raw); got != tt.want {
			t.Errorf("normalizePlatform(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
