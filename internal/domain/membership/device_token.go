package membership

// DeviceToken is a push registration for one of a user's active sessions.
// Token is nil when the session never registered for notifications.
type DeviceToken struct {
	Token *string
}

// HasToken reports whether the session registered a token. An empty token
// still counts; the push backend rejects it like any other bad token.
func (d DeviceToken) HasToken() bool {
	return d.Token != nil
}

// Value returns the token or an empty string when it is missing.
func (d DeviceToken) Value() string {
	if d.Token == nil {
		return ""
	}
	return *d.Token
}

// NewDeviceToken is a helper for building a record with a known token.
func NewDeviceToken(token string) DeviceToken {
	return DeviceToken{Token: &token}
}
