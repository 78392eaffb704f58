package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserVersion(t *testing.T) {
	require.Equal(t, BuildVersion, UserVersion())

	CurrentCommit = "+git.abc123"
	defer func() {
		CurrentCommit = ""
	}()
	require.Equal(t, BuildVersion+"+git.abc123", UserVersion())
}
