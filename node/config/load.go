package config

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/ledger-bridge/blockchain"
)

// EnvPrefix prefixes the environment variables overriding the bridge section,
// e.g. BRIDGE_CONSUMING_PRIVATE_KEY.
const EnvPrefix = "BRIDGE"

// FromFile loads config from a specified file overriding defaults specified in
// the def parameter. If file does not exist or is empty defaults are assumed.
func FromFile(path string, def *Node) (*Node, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, xerrors.Errorf("expanding config path: %w", err)
	}

	file, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
		if def == nil {
			return nil, xerrors.Errorf("couldn't load config: %w", err)
		}
		return def, nil
	case err != nil:
		return nil, err
	}

	defer file.Close() //nolint:errcheck // The file is RO
	return FromReader(file, def)
}

// FromReader loads config from a reader instance.
func FromReader(reader io.Reader, def *Node) (*Node, error) {
	cfg := def
	if cfg == nil {
		cfg = DefaultNode()
	} else {
		cp := *def
		cfg = &cp
	}

	if _, err := toml.NewDecoder(reader).Decode(cfg); err != nil {
		return nil, xerrors.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides the bridge section with BRIDGE_* environment variables.
func ApplyEnv(cfg *Node) error {
	if err := envconfig.Process(EnvPrefix, &cfg.BlockchainBridge); err != nil {
		return xerrors.Errorf("reading environment: %w", err)
	}
	return nil
}

// ConfigComment renders cfg as TOML.
func ConfigComment(cfg *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, xerrors.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// BridgeConfig turns the file settings into the bridge configuration. An
// empty key means none was specified.
func (c BlockchainBridge) BridgeConfig() blockchain.Config {
	var cfg blockchain.Config
	if c.ConsumingPrivateKey != "" {
		key := c.ConsumingPrivateKey
		cfg.ConsumingPrivateKey = &key
	}
	return cfg
}
