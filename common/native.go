// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package common

// nativeAddress returns the address of the built-in contract whose last
// byte is id.
func nativeAddress(id byte) Address {
	var a Address
	a[AddressSize-1] = id
	return a
}

// Addresses of the native contracts.
var (
	OntContractAddress        = nativeAddress(0x01)
	OngContractAddress        = nativeAddress(0x02)
	OntIDContractAddress      = nativeAddress(0x03)
	ParamContractAddress      = nativeAddress(0x04)
	AuthContractAddress       = nativeAddress(0x06)
	GovernanceContractAddress = nativeAddress(0x07)
)
