package blog

import (
	"testing"
)

func TestViewerStates(t *testing.T) {
	anon := Anonymous()
	if anon.IsAuthenticated() {
		t.Error("anonymous viewer must not be authenticated")
	}
	if id, ok := anon.AccountID(); ok || id != "" {
		t.Errorf("anonymous viewer must carry no account id, got %q", id)
	}

	auth := Authenticated("acct-1")
	if !auth.IsAuthenticated() {
		t.Error("authenticated viewer must report authenticated")
	}
	if id, ok := auth.AccountID(); !ok || id != "acct-1" {
		t.Errorf("expected account id acct-1, got %q (ok=%v)", id, ok)
	}
}
