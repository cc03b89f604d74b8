// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// Params is used to group parameters for various Ontology networks such as
// the main network and the Polaris test network.
type Params struct {
	Name string

	// HDPrivateKeyID and HDPublicKeyID are the version bytes of
	// serialized extended private and public keys.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// MainNetParams contains parameters specific to the Ontology main network.
var MainNetParams = Params{
	Name:           "mainnet",
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
}

// TestNetParams contains parameters specific to the Polaris test network.
var TestNetParams = Params{
	Name:           "polaris",
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
}

var registered = []*Params{&MainNetParams, &TestNetParams}

// ForHDKeyID returns the network whose private or public extended key
// version equals id, and whether the version is private.
func ForHDKeyID(id [4]byte) (net *Params, private bool, ok bool) {
	for _, p := range registered {
		switch id {
		case p.HDPrivateKeyID:
			return p, true, true
		case p.HDPublicKeyID:
			return p, false, true
		}
	}
	return nil, false, false
}
