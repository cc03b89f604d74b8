// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import "fmt"

// TxType identifies the payload a transaction carries.
type TxType byte

// Transaction types known to the network.
const (
	Bookkeeping TxType = 0x00
	Bookkeeper  TxType = 0x02
	Claim       TxType = 0x03
	Enrollment  TxType = 0x04
	Vote        TxType = 0x05
	Deploy      TxType = 0xd0
	Invoke      TxType = 0xd1
)

// Map of TxType values back to their names for pretty printing.
var txTypeStrings = map[TxType]string{
	Bookkeeping: "Bookkeeping",
	Bookkeeper:  "Bookkeeper",
	Claim:       "Claim",
	Enrollment:  "Enrollment",
	Vote:        "Vote",
	Deploy:      "DeployCode",
	Invoke:      "InvokeCode",
}

// String returns the TxType as a human-readable name.
func (t TxType) String() string {
	if s, ok := txTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("TxType(%#02x)", byte(t))
}

// AttributeUsage identifies the meaning of an attribute's data.
type AttributeUsage byte

// Attribute usages.
const (
	NonceUsage          AttributeUsage = 0x00
	ScriptUsage         AttributeUsage = 0x20
	DescriptionURLUsage AttributeUsage = 0x81
	DescriptionUsage    AttributeUsage = 0x90
)

var usageStrings = map[AttributeUsage]string{
	NonceUsage:          "Nonce",
	ScriptUsage:         "Script",
	DescriptionURLUsage: "DescriptionUrl",
	DescriptionUsage:    "Description",
}

// String returns the AttributeUsage as a human-readable name.
func (u AttributeUsage) String() string {
	if s, ok := usageStrings[u]; ok {
		return s
	}
	return fmt.Sprintf("AttributeUsage(%#02x)", byte(u))
}

// Valid reports whether u is a known usage.
func (u AttributeUsage) Valid() bool {
	_, ok := usageStrings[u]
	return ok
}
