package httpx

const (
	// sessionCookieName carries the server-side session ID.
	sessionCookieName = "session_id"
	// clientCookieName is the stable per-browser ID keying the durable
	// identity record and its change stream.
	clientCookieName = "client_id"

	oauthStateCookieName = "oauth_state"
	oauthNonceCookieName = "oauth_nonce"
)
