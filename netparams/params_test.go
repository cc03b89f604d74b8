// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForHDKeyID(t *testing.T) {
	net, private, ok := ForHDKeyID([4]byte{0x04, 0x88, 0xad, 0xe4})
	require.True(t, ok)
	require.True(t, private)
	require.Equal(t, &MainNetParams, net)

	net, private, ok = ForHDKeyID(TestNetParams.HDPublicKeyID)
	require.True(t, ok)
	require.False(t, private)
	require.Equal(t, "polaris", net.Name)

	_, _, ok = ForHDKeyID([4]byte{1, 2, 3, 4})
	require.False(t, ok)
}
