// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cfgutil

import (
	"fmt"

	"github.com/ontio/ontcore/keypair"
)

// ExplicitString is a string flag that records whether the user set it.
// A flag left at its default and one explicitly set to the same value are
// otherwise indistinguishable after parsing.
type ExplicitString struct {
	Value         string
	explicitlySet bool
}

// NewExplicitString creates a string flag with the provided default value.
func NewExplicitString(defaultValue string) *ExplicitString {
	return &ExplicitString{Value: defaultValue}
}

// ExplicitlySet returns whether the flag was set through UnmarshalFlag.
func (e *ExplicitString) ExplicitlySet() bool { return e.explicitlySet }

// MarshalFlag implements the flags.Marshaler interface.
func (e *ExplicitString) MarshalFlag() (string, error) { return e.Value, nil }

// UnmarshalFlag implements the flags.Unmarshaler interface.
func (e *ExplicitString) UnmarshalFlag(value string) error {
	e.Value = value
	e.explicitlySet = true
	return nil
}

// SchemeFlag embeds a keypair.Scheme and implements the flags.Marshaler and
// Unmarshaler interfaces so it can be used as a config struct field.  Only
// schemes an account can sign with are accepted.
type SchemeFlag struct {
	keypair.Scheme
}

// NewSchemeFlag creates a SchemeFlag with a default scheme.
func NewSchemeFlag(defaultValue keypair.Scheme) *SchemeFlag {
	return &SchemeFlag{defaultValue}
}

// MarshalFlag satisfies the flags.Marshaler interface.
func (s *SchemeFlag) MarshalFlag() (string, error) {
	return s.Scheme.String(), nil
}

// UnmarshalFlag satisfies the flags.Unmarshaler interface.
func (s *SchemeFlag) UnmarshalFlag(value string) error {
	scheme, err := keypair.SchemeFromName(value)
	if err != nil {
		return err
	}
	switch scheme {
	case keypair.SHA256withECDSA, keypair.SM3withSM2:
	default:
		return fmt.Errorf("signature scheme %v cannot be used for "+
			"accounts", scheme)
	}
	s.Scheme = scheme
	return nil
}
