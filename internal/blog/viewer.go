package blog

// Viewer identifies the reader behind a request: either anonymous or
// authenticated with a concrete account id. The two states are explicit
// so that no code path ever performs a lookup with an empty account id.
type Viewer struct {
	accountID     string
	authenticated bool
}

// Anonymous returns the viewer for an unauthenticated request.
func Anonymous() Viewer {
	return Viewer{}
}

// Authenticated returns the viewer for a request carrying a verified
// account id.
func Authenticated(accountID string) Viewer {
	return Viewer{accountID: accountID, authenticated: true}
}

// AccountID returns the viewer's account id and whether one is present.
func (v Viewer) AccountID() (string, bool) {
	return v.accountID, v.authenticated
}

// IsAuthenticated reports whether the viewer carries an account id.
func (v Viewer) IsAuthenticated() bool {
	return v.authenticated
}
