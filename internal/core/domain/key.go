package domain

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// KeyLength is the number of hex characters in a cache key hash.
const KeyLength = 16

// CacheKey identifies a persisted entry by content hash and payload encoding.
type CacheKey struct {
	Hash     string
	Encoding Encoding
}

// Filename returns the entry file name, e.g. "0123456789abcdef.js".
func (k CacheKey) Filename() string {
	return k.Hash + k.Encoding.Ext()
}

// String returns the filename form of the key.
func (k CacheKey) String() string {
	return k.Filename()
}

// keyInput is the serialized configuration part of the hash input. Field order is
// fixed by the struct and map keys inside Options are sorted by encoding/json, so
// equal inputs always produce equal bytes.
type keyInput struct {
	Options Options `json:"options"`
	Version string  `json:"version"`
}

// DeriveKey computes the cache key for the given source, options and tool version.
// The source bytes are hashed verbatim behind a length prefix; options that cannot be
// serialized are reported as an error rather than skipped.
func DeriveKey(source string, opts Options, version string, enc Encoding) (CacheKey, error) {
	if len(opts) == 0 {
		// nil and empty options are the same configuration.
		opts = Options{}
	}

	digest := xxhash.New()

	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(source)))
	_, _ = digest.Write(size[:])
	_, _ = digest.WriteString(source)

	encoder := json.NewEncoder(digest)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(keyInput{Options: opts, Version: version}); err != nil {
		return CacheKey{}, zerr.Wrap(err, ErrKeyDerivationFailed.Error())
	}

	return CacheKey{
		Hash:     fmt.Sprintf("%016x", digest.Sum64()),
		Encoding: enc,
	}, nil
}

// ParseFilename parses an entry file name back into a key.
// It reports false for names that are not cache entries (temp files, foreign files).
func ParseFilename(name string) (CacheKey, bool) {
	for _, enc := range []Encoding{EncodingRaw, EncodingRecord} {
		hash, ok := strings.CutSuffix(name, enc.Ext())
		if !ok || len(hash) != KeyLength || !isHex(hash) {
			continue
		}
		return CacheKey{Hash: hash, Encoding: enc}, true
	}
	return CacheKey{}, false
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
