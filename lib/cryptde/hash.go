// Package cryptde holds the hashing used to derive diagnostic fingerprints.
// Fingerprints are for correlating log output only; nothing here is meant to
// protect a secret.
package cryptde

import (
	"encoding/hex"

	"github.com/minio/blake2b-simd"
	"github.com/multiformats/go-multihash"
	"golang.org/x/xerrors"
)

// HashFunc is a deterministic hash over arbitrary bytes.
type HashFunc func(data []byte) []byte

// DefaultHashName is the multihash name of Blake2b256.
const DefaultHashName = "blake2b-256"

// Blake2b256 is the default fingerprint hash.
func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// ByName resolves a multihash function name, e.g. "sha2-256" or
// "blake2b-256". An empty name selects Blake2b256.
func ByName(name string) (HashFunc, error) {
	if name == "" || name == DefaultHashName {
		return Blake2b256, nil
	}

	code, ok := multihash.Names[name]
	if !ok {
		return nil, xerrors.Errorf("unknown hash function %q", name)
	}
	if code == multihash.IDENTITY {
		return nil, xerrors.Errorf("hash function %q would leak the input", name)
	}

	// fail now rather than on first use if the code has no registered hasher
	if _, err := multihash.Sum(nil, code, -1); err != nil {
		return nil, xerrors.Errorf("hash function %q: %w", name, err)
	}

	return func(data []byte) []byte {
		mh, err := multihash.Sum(data, code, -1)
		if err != nil {
			// checked in ByName
			panic(err)
		}
		dmh, err := multihash.Decode(mh)
		if err != nil {
			panic(err)
		}
		return dmh.Digest
	}, nil
}

// Fingerprint is a digest used to refer to a secret in logs.
type Fingerprint []byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f)
}

// FingerprintOf hashes the UTF-8 bytes of secret exactly as written. Secrets
// that look like hex are NOT decoded first.
func FingerprintOf(h HashFunc, secret string) Fingerprint {
	if h == nil {
		h = Blake2b256
	}
	return Fingerprint(h([]byte(secret)))
}
