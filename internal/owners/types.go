package owners

import (
	"errors"
	"time"
)

// Platform names accepted by owner operations.
const (
	PlatformTelegram = "telegram"
	PlatformBale     = "bale"
)

// Errors returned by owner operations.
var (
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Owner is one tenant: a human controlling linked chats on either platform.
// At least one of TgUserID/BaleUserID is always set.
type Owner struct {
	ID                 string    `json:"id"`
	TgUserID           *int64    `json:"tg_user_id,omitempty"`
	BaleUserID         *int64    `json:"bale_user_id,omitempty"`
	DmTargetBaleChatID *int64    `json:"dm_target_bale_chat_id,omitempty"`
	DmTargetTgChatID   *int64    `json:"dm_target_tg_chat_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Identity returns the owner's user id on the given platform, if set.
func (o Owner) Identity(platform string) *int64 {
	switch platform {
	case PlatformTelegram:
		return o.TgUserID
	case PlatformBale:
		return o.BaleUserID
	}
	return nil
}

// DmTarget returns the forward target chat id for DMs arriving on the
// given origin platform. Telegram DMs forward to the Bale target and
// vice versa.
func (o Owner) DmTarget(originPlatform string) *int64 {
	switch originPlatform {
	case PlatformTelegram:
		return o.DmTargetBaleChatID
	case PlatformBale:
		return o.DmTargetTgChatID
	}
	return nil
}
