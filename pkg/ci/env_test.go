package ci

import (
	"os"
	"testing"
)

// clearEnv unsets the given variables for the duration of the test.
// t.Setenv registers the restore cleanup; the Unsetenv that follows makes
// the variable truly absent rather than set-but-empty.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}
