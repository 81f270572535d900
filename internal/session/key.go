package session

import (
	"crypto/sha1"
	"encoding/base64"
)

// inlineSentinel stands in for the chat id when deriving a key for an
// inline-launched session, keeping the two keyspaces apart.
const inlineSentinel = "inline"

// DeriveKey maps a (chat, message) trigger to a stable session key:
// url-safe base64 of the SHA-1 over chat-id bytes then message-id bytes.
// Replays of the same trigger always land on the same session.
func DeriveKey(chatID, messageID string) string {
	h := sha1.New()
	h.Write([]byte(chatID))
	h.Write([]byte(messageID))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// DeriveInlineKey maps an inline invocation id to a session key.
func DeriveInlineKey(inlineID string) string {
	return DeriveKey(inlineSentinel, inlineID)
}
