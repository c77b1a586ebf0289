package watch

import (
	"github.com/minio/highwayhash"
)

// digestKey seeds content fingerprints; highwayhash requires exactly
// 32 bytes.
var digestKey = []byte("camelint-watch-digest-key-000001")

// Digest fingerprints file content for change detection across
// debounce windows.
func Digest(data []byte) uint64 {
	return highwayhash.Sum64(data, digestKey)
}
