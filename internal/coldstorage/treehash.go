package coldstorage

import (
	"crypto/sha256"
	"encoding/hex"
)

// The service checksums payloads with a SHA-256 tree hash: the payload is
// split into 1 MiB leaves, each leaf is hashed, and adjacent hashes are
// paired and re-hashed until one root remains. Part boundaries are multiples
// of 1 MiB, so the whole-archive hash can be folded from the leaves of every
// part in order.

const treeHashLeafSize = 1 << 20

// leafHashes returns the SHA-256 of each 1 MiB leaf of p, in order.
func leafHashes(p []byte) [][]byte {
	if len(p) == 0 {
		sum := sha256.Sum256(nil)
		return [][]byte{sum[:]}
	}
	var leaves [][]byte
	for off := 0; off < len(p); off += treeHashLeafSize {
		end := off + treeHashLeafSize
		if end > len(p) {
			end = len(p)
		}
		sum := sha256.Sum256(p[off:end])
		leaves = append(leaves, sum[:])
	}
	return leaves
}

// foldTreeHash reduces leaf hashes to the root by pairwise hashing. An odd
// hash at the end of a level is promoted unchanged.
func foldTreeHash(hashes [][]byte) []byte {
	if len(hashes) == 0 {
		sum := sha256.Sum256(nil)
		return sum[:]
	}
	level := hashes
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			pair := make([]byte, 0, sha256.Size*2)
			pair = append(pair, level[i]...)
			pair = append(pair, level[i+1]...)
			sum := sha256.Sum256(pair)
			next = append(next, sum[:])
		}
		level = next
	}
	return level[0]
}

// hexTree is the hex-encoded root of a set of leaf hashes.
func hexTree(leaves [][]byte) string {
	return hex.EncodeToString(foldTreeHash(leaves))
}

// treeHashHex is the hex-encoded root hash of a single byte slice.
func treeHashHex(p []byte) string {
	return hexTree(leafHashes(p))
}
