package coldstorage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeHash_SingleLeafIsPlainSHA256(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 1024)
	want := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(want[:]), treeHashHex(data))
}

func TestTreeHash_FullLeafIsPlainSHA256(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, treeHashLeafSize)
	want := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(want[:]), treeHashHex(data))
}

func TestTreeHash_TwoLeaves(t *testing.T) {
	data := bytes.Repeat([]byte{0x02}, treeHashLeafSize+512)
	h1 := sha256.Sum256(data[:treeHashLeafSize])
	h2 := sha256.Sum256(data[treeHashLeafSize:])
	want := sha256.Sum256(append(h1[:], h2[:]...))
	assert.Equal(t, hex.EncodeToString(want[:]), treeHashHex(data))
}

func TestTreeHash_OddLeafPromotes(t *testing.T) {
	data := bytes.Repeat([]byte{0x03}, 3*treeHashLeafSize)
	h1 := sha256.Sum256(data[:treeHashLeafSize])
	h2 := sha256.Sum256(data[treeHashLeafSize : 2*treeHashLeafSize])
	h3 := sha256.Sum256(data[2*treeHashLeafSize:])
	h12 := sha256.Sum256(append(h1[:], h2[:]...))
	want := sha256.Sum256(append(h12[:], h3[:]...))
	assert.Equal(t, hex.EncodeToString(want[:]), treeHashHex(data))
}

func TestTreeHash_PartLeavesFoldToWholeHash(t *testing.T) {
	// The whole-archive hash folded from per-part leaves must equal the
	// hash computed over the archive in one piece, since part boundaries
	// align with leaf boundaries.
	part1 := bytes.Repeat([]byte{0x04}, 2*treeHashLeafSize)
	part2 := bytes.Repeat([]byte{0x05}, treeHashLeafSize/2)

	var all [][]byte
	all = append(all, leafHashes(part1)...)
	all = append(all, leafHashes(part2)...)

	whole := append(append([]byte{}, part1...), part2...)
	require.Equal(t, treeHashHex(whole), hexTree(all))
}

func TestTreeHash_Empty(t *testing.T) {
	want := sha256.Sum256(nil)
	assert.Equal(t, hex.EncodeToString(want[:]), treeHashHex(nil))
}
