package bridge

// User-facing replies. Kept in one place so wording stays consistent
// across both platforms.
const (
	textHelp = `Commands:
/verify group — get a code to link the group you post it in
/verify channel — get a code to link the channel you post it in
/verify_dm <chat_id> — get a code to prove control of a DM forward target
/pair <tg_chat_id> <bale_chat_id> <group|channel> — bridge two linked chats
/link <user_id> — link your account on the other platform
/myid — show your numeric id on this platform
/help — this message`

	textStart = "This bot relays messages between your linked Telegram and Bale chats.\n" +
		"Send /help for the command list."

	textVerifyIssued = "Your code: %s\nPost it in the %s you want to link within 10 minutes."

	textVerifyDmIssued = "Your code: %s\nPost it in chat %d on the other platform within 10 minutes."

	textVerifyDmUsage = "Usage: /verify_dm <chat_id>\nOr just send the numeric chat id now."

	textLinkUsage = "Usage: /link <user_id>\nOr just send your numeric id on the other platform now."

	textPairUsage = "Usage: /pair <tg_chat_id> <bale_chat_id> <group|channel>"

	textAwaitNumericID = "That doesn't look like a numeric id. Send digits only, or /help to start over."

	textChatLinked = "Linked. This %s now belongs to your account."

	textChatClaimed = "This chat is already linked to a different account."

	textDmTargetSet = "Done. Your DMs will be forwarded to this chat."

	textLinked = "Accounts linked. Your chats on both platforms now share one owner."

	textLinkConflict = "That id is already claimed by another linked account."

	textPairCreated = "Paired. Messages will now be relayed both ways."

	textPairRejected = "Pairing rejected: both chats must be linked to your account and match the kind."

	textPairDuplicate = "These chats are already paired."

	textCodeRejected = "Code rejected: it is unknown, expired, or already used."

	textCodeKindMismatch = "Code rejected: it was issued for a different chat kind. Ask for a new code with the right kind."

	textDmSetupPrompt = "No forward target is set for your DMs. Use /verify_dm <chat_id> to set one."
)
