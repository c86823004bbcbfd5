package adminauth

import (
	"path/filepath"
	"testing"
)

func TestTokenStoreSetGetDelete(t *testing.T) {
	store := NewTokenStore("flit-admin-test", filepath.Join(t.TempDir(), "fallback_secrets.json"))

	if err := store.SetToken("tok-123"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	tok, err := store.GetToken()
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("unexpected token: %q", tok)
	}

	if err := store.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestTokenStoreRejectsEmpty(t *testing.T) {
	store := NewTokenStore("", filepath.Join(t.TempDir(), "fallback_secrets.json"))
	if err := store.SetToken("   "); err == nil {
		t.Error("expected error for blank token")
	}
}
