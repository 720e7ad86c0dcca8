package redis

// Fixed storage keys. These are the legacy SuperApp localStorage keys
// and are kept verbatim so existing data imports cleanly.
const (
	usersKey   = "superapp_users"
	sessionKey = "superapp_session"
)
