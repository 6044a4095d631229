package version

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	if Short() == "" {
		t.Error("expected non-empty version string")
	}
	if !strings.HasPrefix(Short(), Version) {
		t.Errorf("expected prefix %q, got %q", Version, Short())
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent("petstore-client")
	if !strings.HasPrefix(ua, "petstore-client/") {
		t.Errorf("unexpected user agent %q", ua)
	}
	if UserAgent("") != "apikit/"+Short() {
		t.Errorf("unexpected default user agent %q", UserAgent(""))
	}
}
