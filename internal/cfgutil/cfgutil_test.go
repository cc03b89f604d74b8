// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cfgutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ontio/ontcore/keypair"
	"github.com/stretchr/testify/require"
)

func TestExplicitString(t *testing.T) {
	s := NewExplicitString("m/44'/1024'/0'/0/0")
	require.False(t, s.ExplicitlySet())

	v, err := s.MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, "m/44'/1024'/0'/0/0", v)

	// Setting the default value explicitly is still recorded.
	require.NoError(t, s.UnmarshalFlag("m/44'/1024'/0'/0/0"))
	require.True(t, s.ExplicitlySet())
}

func TestSchemeFlag(t *testing.T) {
	f := NewSchemeFlag(keypair.SHA256withECDSA)

	v, err := f.MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, "SHA256withECDSA", v)

	require.NoError(t, f.UnmarshalFlag("SM3withSM2"))
	require.Equal(t, keypair.SM3withSM2, f.Scheme)

	require.Error(t, f.UnmarshalFlag("SHA512withEdDSA"))
	require.Error(t, f.UnmarshalFlag("RSA"))
	require.Equal(t, keypair.SM3withSM2, f.Scheme)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.json")

	ok, err := FileExists(path)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))
	ok, err = FileExists(path)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCleanAndExpandPath(t *testing.T) {
	t.Setenv("ONTKEY_TEST_DIR", "/var/lib")

	require.Equal(t, "/home/u/logs", CleanAndExpandPath("~/logs/", "/home/u"))
	require.Equal(t, "/var/lib/ontkey",
		CleanAndExpandPath("$ONTKEY_TEST_DIR/ontkey", "/home/u"))
	require.Equal(t, "", CleanAndExpandPath("", "/home/u"))
}
