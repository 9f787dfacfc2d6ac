package buildinfo

import (
	"strings"
	"testing"
)

func TestCacheScope(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "v1.2.0", "abc123"
	if got := CacheScope(); got != "v1.2.0:" {
		t.Errorf("CacheScope() = %q", got)
	}
	Version = "dev"
	if got := CacheScope(); got != "dev-abc123:" {
		t.Errorf("CacheScope() = %q", got)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} ") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: ") {
		t.Errorf("String() = %q", String())
	}
}
