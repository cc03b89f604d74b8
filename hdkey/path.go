// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"strconv"
	"strings"

	"github.com/ontio/ontcore/coreerr"
)

// DefaultPath is the derivation path of the first Ontology account:
//
//	m/44'/<coin type>'/<account>'/<branch>/<address index>
//
// with coin type 1024.
const DefaultPath = "m/44'/1024'/0'/0/0"

// ParsePath parses a derivation path such as "m/44'/1024'/0'/0/0" into
// child indices.  A trailing ', h or H marks a hardened index.  "m" alone
// is the empty path.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] != "m" {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"derivation path %q must start with m", path)
	}

	indices := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		offset := uint32(0)
		if n := len(part); n > 0 && strings.ContainsAny(part[n-1:], "'hH") {
			offset = HardenedKeyStart
			part = part[:n-1]
		}
		i, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, coreerr.New(coreerr.ErrParam,
				"invalid derivation path "+strconv.Quote(path), err)
		}
		indices = append(indices, uint32(i)+offset)
	}
	return indices, nil
}

// FormatPath is the inverse of ParsePath.  Hardened indices are written
// with a trailing '.
func FormatPath(indices []uint32) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, i := range indices {
		sb.WriteByte('/')
		if i >= HardenedKeyStart {
			sb.WriteString(strconv.FormatUint(uint64(i-HardenedKeyStart), 10))
			sb.WriteByte('\'')
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return sb.String()
}

// DerivePath walks key down the given child indices.
func DerivePath(key *ExtendedKey, indices []uint32) (*ExtendedKey, error) {
	for _, i := range indices {
		child, err := key.Child(i)
		if err != nil {
			return nil, err
		}
		key = child
	}
	return key, nil
}

// DeriveString parses path and derives it from key.
func DeriveString(key *ExtendedKey, path string) (*ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return DerivePath(key, indices)
}
