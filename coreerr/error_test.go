// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coreerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ontio/ontcore/coreerr"
	"github.com/stretchr/testify/require"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   coreerr.ErrorCode
		want string
	}{
		{coreerr.ErrParam, "ErrParam"},
		{coreerr.ErrUnsupportedScheme, "ErrUnsupportedScheme"},
		{coreerr.ErrInvalidSignature, "ErrInvalidSignature"},
		{coreerr.ErrUnsupportedCurve, "ErrUnsupportedCurve"},
		{coreerr.ErrMalformedSignature, "ErrMalformedSignature"},
		{coreerr.ErrChecksumMismatch, "ErrChecksumMismatch"},
		{coreerr.ErrFormat, "ErrFormat"},
		{coreerr.ErrWrongPasswordOrAddress, "ErrWrongPasswordOrAddress"},
		{coreerr.ErrProofVerification, "ErrProofVerification"},
		{coreerr.ErrNoPrivateKey, "ErrNoPrivateKey"},
		{coreerr.ErrInvalidSeed, "ErrInvalidSeed"},
		{coreerr.ErrDerivation, "ErrDerivation"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	for i, test := range tests {
		require.Equal(t, test.want, test.in.String(), "String #%d", i)
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   coreerr.Error
		want string
	}{
		{
			coreerr.Error{Description: "human-readable error"},
			"human-readable error",
		},
		{
			coreerr.Error{
				ErrorCode:   coreerr.ErrWrongPasswordOrAddress,
				Description: "failed to decrypt private key",
				Err:         fmt.Errorf("cipher: message authentication failed"),
			},
			"failed to decrypt private key: cipher: message " +
				"authentication failed",
		},
	}

	for i, test := range tests {
		require.Equal(t, test.want, test.in.Error(), "Error #%d", i)
	}
}

func TestErrorMatching(t *testing.T) {
	inner := errors.New("boom")
	err := fmt.Errorf("import: %w",
		coreerr.New(coreerr.ErrChecksumMismatch, "bad checksum", inner))

	require.ErrorIs(t, err, coreerr.ErrChecksumMismatch)
	require.NotErrorIs(t, err, coreerr.ErrFormat)
	require.ErrorIs(t, err, inner)

	code, ok := coreerr.Code(err)
	require.True(t, ok)
	require.Equal(t, coreerr.ErrChecksumMismatch, code)

	_, ok = coreerr.Code(inner)
	require.False(t, ok)
}
