// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/script"
)

// Sig is one entry of a transaction's signature list: the signatures
// collected so far and the program that verifies them.  A single public
// key selects the single-key program; more select an M-of-N program over
// the keys in the order given.
type Sig struct {
	M       int
	PubKeys [][]byte
	SigData [][]byte
}

// Program returns the verification program of the entry.
func (s *Sig) Program() ([]byte, error) {
	switch len(s.PubKeys) {
	case 0:
		return nil, coreerr.Newf(coreerr.ErrParam,
			"signature entry has no public keys")
	case 1:
		if s.M != 1 {
			return nil, coreerr.Newf(coreerr.ErrParam,
				"single-key entry with m=%d", s.M)
		}
		return script.ProgramFromPubKey(s.PubKeys[0]), nil
	}
	return script.ProgramFromMultiPubKeys(s.M, s.PubKeys)
}

// sameKeys reports whether s verifies against exactly pubKeys, in order.
func (s *Sig) sameKeys(pubKeys [][]byte) bool {
	if len(s.PubKeys) != len(pubKeys) {
		return false
	}
	for i := range pubKeys {
		if !bytes.Equal(s.PubKeys[i], pubKeys[i]) {
			return false
		}
	}
	return true
}

func (s *Sig) serialize(w *codec.Writer) error {
	program, err := s.Program()
	if err != nil {
		return err
	}
	w.WriteVarBytes(script.ProgramFromParams(s.SigData))
	w.WriteVarBytes(program)
	return nil
}

func readSig(r *codec.Reader) (*Sig, error) {
	invocation, err := r.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	verification, err := r.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	sigData, err := script.ParseParams(invocation)
	if err != nil {
		return nil, err
	}
	info, err := script.ParseProgram(verification)
	if err != nil {
		return nil, err
	}
	return &Sig{M: info.M, PubKeys: info.PubKeys, SigData: sigData}, nil
}
