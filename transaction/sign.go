// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"

	"github.com/ontio/ontcore/account"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/keypair"
)

// signHash signs the transaction hash with acct.
func (tx *Transaction) signHash(acct *account.Account) ([]byte, error) {
	hash, err := tx.Hash()
	if err != nil {
		return nil, err
	}
	return acct.SignBytes(hash.Bytes())
}

// SignerGroup is a set of accounts that sign for one verification
// program.  A group of one account uses the single-key program; larger
// groups use an M-of-N program over the account keys in group order.  A
// zero M requires every account.
type SignerGroup struct {
	M        int
	Accounts []*account.Account
}

// SignGroups replaces the signature list with one entry per group.  The
// list is left untouched if any signature fails.
func (tx *Transaction) SignGroups(groups ...SignerGroup) error {
	if len(groups) > MaxSigs {
		return coreerr.Newf(coreerr.ErrParam,
			"%d signer groups exceed %d", len(groups), MaxSigs)
	}

	sigs := make([]*Sig, 0, len(groups))
	for _, g := range groups {
		n := len(g.Accounts)
		m := g.M
		if m == 0 {
			m = n
		}
		if n == 0 || m < 0 || m > n {
			return coreerr.Newf(coreerr.ErrParam,
				"signer group of %d accounts with m=%d", n, g.M)
		}

		s := &Sig{M: m}
		for _, acct := range g.Accounts {
			data, err := tx.signHash(acct)
			if err != nil {
				return err
			}
			s.PubKeys = append(s.PubKeys, acct.PublicKeyBytes())
			s.SigData = append(s.SigData, data)
		}
		sigs = append(sigs, s)
	}
	tx.Sigs = sigs
	return nil
}

// Sign replaces the signature list with a single-key entry for each
// account.
func (tx *Transaction) Sign(accts ...*account.Account) error {
	groups := make([]SignerGroup, len(accts))
	for i, acct := range accts {
		groups[i] = SignerGroup{M: 1, Accounts: []*account.Account{acct}}
	}
	return tx.SignGroups(groups...)
}

// AddSign appends a single-key entry signed by acct.
func (tx *Transaction) AddSign(acct *account.Account) error {
	if len(tx.Sigs) >= MaxSigs {
		return coreerr.Newf(coreerr.ErrParam,
			"transaction already holds %d signature entries", MaxSigs)
	}
	data, err := tx.signHash(acct)
	if err != nil {
		return err
	}
	tx.Sigs = append(tx.Sigs, &Sig{
		M:       1,
		PubKeys: [][]byte{acct.PublicKeyBytes()},
		SigData: [][]byte{data},
	})
	return nil
}

// AddMultiSign adds the signature of acct to the M-of-N entry over
// pubKeys, creating the entry when the transaction has none.  The keys
// are used in the order given; callers that want a canonical order sort
// them first with keypair.Backend.SortPublicKeys.
func (tx *Transaction) AddMultiSign(m int, pubKeys [][]byte,
	acct *account.Account) error {

	own := acct.PublicKeyBytes()
	found := false
	for _, k := range pubKeys {
		if bytes.Equal(k, own) {
			found = true
			break
		}
	}
	if !found {
		return coreerr.Newf(coreerr.ErrParam,
			"account %v is not a key of the multi-signature program",
			acct.Address().ToBase58())
	}

	data, err := tx.signHash(acct)
	if err != nil {
		return err
	}
	return tx.AddMultiSignData(m, pubKeys, data)
}

// AddMultiSignData adds an already computed signature to the M-of-N
// entry over pubKeys.
func (tx *Transaction) AddMultiSignData(m int, pubKeys [][]byte,
	sigData []byte) error {

	if m <= 0 || m > len(pubKeys) {
		return coreerr.Newf(coreerr.ErrParam,
			"invalid multi-signature parameters m=%d n=%d", m, len(pubKeys))
	}

	for _, s := range tx.Sigs {
		if !s.sameKeys(pubKeys) {
			continue
		}
		if s.M != m {
			return coreerr.Newf(coreerr.ErrParam,
				"entry requires m=%d, got %d", s.M, m)
		}
		if len(s.SigData) >= len(pubKeys) {
			return coreerr.Newf(coreerr.ErrParam,
				"entry already holds %d signatures", len(s.SigData))
		}
		s.SigData = append(s.SigData, sigData)
		return nil
	}

	if len(tx.Sigs) >= MaxSigs {
		return coreerr.Newf(coreerr.ErrParam,
			"transaction already holds %d signature entries", MaxSigs)
	}
	keys := make([][]byte, len(pubKeys))
	copy(keys, pubKeys)
	tx.Sigs = append(tx.Sigs, &Sig{
		M:       m,
		PubKeys: keys,
		SigData: [][]byte{sigData},
	})
	return nil
}

// VerifySigs checks every signature entry against the transaction hash.
// Each entry needs at least M signatures, and every signature must verify
// under a distinct key of the entry.
func (tx *Transaction) VerifySigs(b *keypair.Backend) error {
	if len(tx.Sigs) == 0 {
		return coreerr.Newf(coreerr.ErrInvalidSignature,
			"transaction is not signed")
	}
	hash, err := tx.Hash()
	if err != nil {
		return err
	}
	msg := hash.Bytes()

	for i, s := range tx.Sigs {
		if len(s.SigData) < s.M {
			return coreerr.Newf(coreerr.ErrInvalidSignature,
				"entry %d holds %d of %d signatures", i, len(s.SigData),
				s.M)
		}

		keys := make([]*keypair.PublicKey, len(s.PubKeys))
		for j, raw := range s.PubKeys {
			if keys[j], err = b.ParsePublicKey(raw); err != nil {
				return err
			}
		}

		used := make([]bool, len(keys))
	sigLoop:
		for _, data := range s.SigData {
			sig, err := keypair.DeserializeSignature(data)
			if err != nil {
				return err
			}
			for j, k := range keys {
				if used[j] || keypair.Verify(k, msg, sig) != nil {
					continue
				}
				used[j] = true
				continue sigLoop
			}
			return coreerr.Newf(coreerr.ErrInvalidSignature,
				"entry %d holds a signature no key verifies", i)
		}
	}
	return nil
}
