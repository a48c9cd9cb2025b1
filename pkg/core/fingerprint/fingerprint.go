// Package fingerprint derives opaque identifiers for uploaded files, used
// only for client-side session deduplication. The hash is content-derived
// but carries no cryptographic guarantee about the upload.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Compute hashes the file bytes together with its name, size, and
// modification time. Two uploads of the same file at the same mtime get the
// same key; renaming or touching the file produces a new one, which is the
// behavior session dedup wants.
func Compute(data []byte, filename string, modTime time.Time) string {
	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "|%s|%d|%d", filename, len(data), modTime.UnixMilli())
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeSet hashes a multi-file upload into one key. Browser uploads carry
// no trustworthy mtime, so the key depends only on names, sizes, and bytes;
// re-uploading the same files yields the same key and hits the cache.
func ComputeSet(names []string, payloads [][]byte) string {
	h := sha256.New()
	for i, data := range payloads {
		h.Write(data)
		fmt.Fprintf(h, "|%s|%d", names[i], len(data))
	}
	return hex.EncodeToString(h.Sum(nil))
}
