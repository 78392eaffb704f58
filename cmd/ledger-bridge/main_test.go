package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/ledger-bridge/lib/cryptde"
)

const consumingKey = "cc46befe8d169b89db447bd725fc2368b12542113555302598430cb5d5c74ea9"

func runApp(t *testing.T, args ...string) string {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run(append([]string{"ledger-bridge"}, args...)))
	return out.String()
}

func TestFingerprintCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[BlockchainBridge]\n  ConsumingPrivateKey = \""+consumingKey+"\"\n"), 0644))

	out := runApp(t, "--config", path, "fingerprint")
	require.Equal(t, cryptde.FingerprintOf(cryptde.Blake2b256, consumingKey).String(), strings.TrimSpace(out))

	out = runApp(t, "--config", path, "fingerprint", "other")
	require.Equal(t, cryptde.FingerprintOf(cryptde.Blake2b256, "other").String(), strings.TrimSpace(out))
}

func TestFingerprintCmdNoKey(t *testing.T) {
	out := runApp(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "fingerprint")
	require.Equal(t, "no consuming private key specified", strings.TrimSpace(out))
}

func TestConfigDefaultCmd(t *testing.T) {
	out := runApp(t, "config", "default")
	require.Contains(t, out, "[BlockchainBridge]")
	require.Contains(t, out, `FingerprintHash = "blake2b-256"`)
	require.NotContains(t, out, "ConsumingPrivateKey")
}
