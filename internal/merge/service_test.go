package merge

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/peyvand/peyvand/internal/db"
	"github.com/peyvand/peyvand/internal/db/sqlc"
)

func ownerRow(lastByte byte, tgID, baleID *int64) sqlc.Owner {
	var id pgtype.UUID
	id.Valid = true
	id.Bytes[15] = lastByte
	return sqlc.Owner{
		ID:         id,
		TgUserID:   db.Int8FromPtr(tgID),
		BaleUserID: db.Int8FromPtr(baleID),
	}
}

func int64p(v int64) *int64 { return &v }

func TestClassify(t *testing.T) {
	a := ownerRow(1, int64p(100), nil)
	b := ownerRow(2, nil, int64p(200))

	cases := []struct {
		name      string
		tgSide    sqlc.Owner
		tgFound   bool
		baleSide  sqlc.Owner
		baleFound bool
		want      mergeCase
	}{
		{"fresh", sqlc.Owner{}, false, sqlc.Owner{}, false, caseFresh},
		{"tg only", a, true, sqlc.Owner{}, false, caseTgOnly},
		{"bale only", sqlc.Owner{}, false, b, true, caseBaleOnly},
		{"same owner", a, true, a, true, caseSameOwner},
		{"distinct owners", a, true, b, true, caseDistinctOwners},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.tgSide, tc.tgFound, tc.baleSide, tc.baleFound)
			if got != tc.want {
				t.Fatalf("classify = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSurvivorPolicies(t *testing.T) {
	tgSide := ownerRow(1, int64p(100), nil)
	baleSide := ownerRow(2, nil, int64p(200))

	survivor, loser := BaleSideSurvives(tgSide, baleSide)
	if survivor.ID != baleSide.ID || loser.ID != tgSide.ID {
		t.Fatal("BaleSideSurvives picked the wrong survivor")
	}

	survivor, loser = TelegramSideSurvives(tgSide, baleSide)
	if survivor.ID != tgSide.ID || loser.ID != baleSide.ID {
		t.Fatal("TelegramSideSurvives picked the wrong survivor")
	}
}

func TestWithSurvivorPolicy(t *testing.T) {
	svc := NewService(nil, nil, nil)
	tgSide := ownerRow(1, int64p(100), nil)
	baleSide := ownerRow(2, nil, int64p(200))

	svc.WithSurvivorPolicy(TelegramSideSurvives)
	survivor, _ := svc.survivor(tgSide, baleSide)
	if survivor.ID != tgSide.ID {
		t.Fatal("policy override not applied")
	}

	svc.WithSurvivorPolicy(nil)
	survivor, _ = svc.survivor(tgSide, baleSide)
	if survivor.ID != tgSide.ID {
		t.Fatal("nil policy should keep the previous one")
	}
}

func TestToOwnerMapping(t *testing.T) {
	row := ownerRow(9, int64p(123), int64p(456))
	row.DmTargetBaleChatID = db.Int8(789)

	owner := toOwner(row)
	if owner.TgUserID == nil || *owner.TgUserID != 123 {
		t.Fatalf("tg user id not mapped: %+v", owner)
	}
	if owner.BaleUserID == nil || *owner.BaleUserID != 456 {
		t.Fatalf("bale user id not mapped: %+v", owner)
	}
	if owner.DmTargetBaleChatID == nil || *owner.DmTargetBaleChatID != 789 {
		t.Fatalf("dm target not mapped: %+v", owner)
	}
	if owner.DmTargetTgChatID != nil {
		t.Fatalf("unset dm target should map to nil: %+v", owner)
	}
}
