// SPDX-License-Identifier: MIT

package catalog

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/molpath/fingerprint"
)

var (
	metaSizeKey = []byte("meta/size")
	fpPrefix    = []byte("fp/")
)

func fpKey(name string) []byte {
	return append(append([]byte{}, fpPrefix...), name...)
}

// encode writes uvarint(size) followed by the words, 8 bytes each,
// little-endian.
func encode(fp *fingerprint.Fingerprint) []byte {
	words := fp.Words()
	buf := make([]byte, 0, binary.MaxVarintLen64+8*len(words))
	buf = binary.AppendUvarint(buf, uint64(fp.Size()))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}

	return buf
}

func decode(val []byte) (*fingerprint.Fingerprint, error) {
	size, n := binary.Uvarint(val)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad size prefix", ErrCorrupt)
	}
	val = val[n:]
	if len(val)%8 != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(val)%8)
	}

	words := make([]uint64, len(val)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(val[8*i:])
	}
	fp, err := fingerprint.FromWords(int(size), words)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return fp, nil
}
