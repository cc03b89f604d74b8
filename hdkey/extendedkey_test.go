// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey_test

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/davecgh/go-spew/spew"
	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/hdkey"
	"github.com/ontio/ontcore/netparams"
	"github.com/stretchr/testify/require"
)

const hkStart = hdkey.HardenedKeyStart

var testSeed = hexToBytes("000102030405060708090a0b0c0d0e0f")

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

type vector struct {
	name      string
	path      []uint32
	privKey   string
	pubKey    string
	chainCode string
	parentFP  uint32
	wantPriv  string
	wantPub   string
}

// nist256p1Vectors is test vector 1 of SLIP-0010 extended with a
// non-hardened step.
var nist256p1Vectors = []vector{
	{
		name:      "m",
		path:      []uint32{},
		privKey:   "612091aaa12e22dd2abef664f8a01a82cae99ad7441b7ef8110424915c268bc2",
		pubKey:    "0266874dc6ade47b3ecd096745ca09bcd29638dd52c2c12117b11ed3e458cfa9e8",
		chainCode: "beeb672fe4621673f722f38529c07392fecaa61015c80c34f29ce8b41b3cb6ea",
		parentFP:  0,
		wantPriv:  "xprv9s21ZrQH143K3xbxu53vDH2NWbLKw5edQ3BCSX12Pknr1EA7QjAZPnd2jYvGvZ9RSwbcfeCZ5v2qZTTESRMTiAizzfQ1GUDeMWPyaXGcMfF",
		wantPub:   "xpub661MyMwAqRbcGSgS16avaQy74dApLYNUmG6oEuQdx6Kpt2VFxGUowawWaozRLQSe46f7nbyC5ZY8Tvvnc32WSiL3LSxFNvPgG84QVAyvBAw",
	},
	{
		name:      "m/0H",
		path:      []uint32{hkStart},
		privKey:   "6939694369114c67917a182c59ddb8cafc3004e63ca5d3b84403ba8613debc0c",
		pubKey:    "0384610f5ecffe8fda089363a41f56a5c7ffc1d81b59a612d0d649b2d22355590c",
		chainCode: "3460cea53e6a6bb5fb391eeef3237ffd8724bf0a40e94943c98b83825342ee11",
		parentFP:  0xbe6105b5,
		wantPriv:  "xprv9vJJjmzMMcPT7vuRQ3RUihF5SFms7a4j1CPuxok5NYqMd5dWjwXnmLTh8CzdBZJwHUybU3gSkKEAm86C27yde9ziL2PmahvMQSPhWSVAyVb",
		wantPub:   "xpub69Hf9HXFBywkLQytW4xV5qBozHcMX2naNRKWmC9gvtNLVsxfHUr3K8nAyWB6SFgSTJXtSoNqVPBjy5qeMcEb1EZhuPwUd7Sy2tSprcR3bN5",
	},
	{
		name:      "m/0H/1",
		path:      []uint32{hkStart, 1},
		privKey:   "284e9d38d07d21e4e281b645089a94f4cf5a5a81369acf151a1c3a57f18b2129",
		pubKey:    "03526c63f8d0b4bbbf9c80df553fe66742df4676b241dabefdef67733e070f6844",
		chainCode: "4187afff1aafa8445010097fb99d23aee9f599450c7bd140b6826ac22ba21d0c",
		parentFP:  0x9b02312f,
		wantPriv:  "xprv9wvN2XR2jhXFtoRvikiU4HhtMgFanjvmmMhRHj5KMKtHi2PN9aZPjAVWDLrjUbi5qejuMeQ3jH4ysGCVjVMMgERS3zCpv9DgbSEeHBnmR5k",
		wantPub:   "xpub6AuiS2wva55Z7HWPpnFURRecui65CCed8ad267UvufRGapiWh7seGxoz4e9nu9G1aBYqGsEV5RjhqLAjNWm294RZTgU8UgQ821iaPY5tazr",
	},
	{
		name:      "m/0H/1/2H",
		path:      []uint32{hkStart, 1, hkStart + 2},
		privKey:   "694596e8a54f252c960eb771a3c41e7e32496d03b954aeb90f61635b8e092aa7",
		pubKey:    "0359cf160040778a4b14c5f4d7b76e327ccc8c4a6086dd9451b7482b5a4972dda0",
		chainCode: "98c7514f562e64e74170cc3cf304ee1ce54d6b6da4f880f313e8204c2a185318",
		parentFP:  0xb98005c1,
		wantPriv:  "xprv9z2VpTyrSEs4AL8C9v1YLnB1eH8nJZHD3Je2xDsr6ZCkKPbuuJTQHNevwSHHzswEQqojkg9RnGZPFTwUA4e9q83KCKiCu7cFr7T2gWLtdcu",
		wantPub:   "xpub6D1rDyWkGcRMNpCfFwYYhv7kCJyGi214QXZdkcHTetjjCBw4SqmeqAyQnj8zdxbg7xNC4JjE25XwWqxxEMKdx3vafV7J2FKJ6XEEi4hp3WE",
	},
}

// secp256k1Vectors is BIP0032 test vector 1.
var secp256k1Vectors = []vector{
	{
		name:      "m",
		path:      []uint32{},
		privKey:   "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35",
		pubKey:    "0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2",
		chainCode: "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508",
		wantPriv:  "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
		wantPub:   "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
	},
	{
		name:      "m/0H",
		path:      []uint32{hkStart},
		privKey:   "edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea",
		pubKey:    "035a784662a4a20a65bf6aab9ae98a6c068a81c52e4b032c0fb5400c706cfccc56",
		chainCode: "47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141",
		parentFP:  0x3442193e,
		wantPriv:  "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7",
		wantPub:   "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw",
	},
	{
		name:      "m/0H/1",
		path:      []uint32{hkStart, 1},
		privKey:   "3c6cb8d0f6a264c91ea8b5030fadaa8e538b020f0a387421a12de9319dc93368",
		pubKey:    "03501e454bf00751f24b1b489aa925215d66af2234e3891c3b21a52bedb3cd711c",
		chainCode: "2a7857631386ba23dacac34180dd1983734e444fdbf774041578e9b6adb37c19",
		parentFP:  0x5c1bd648,
		wantPriv:  "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs",
		wantPub:   "xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ",
	},
	{
		name:      "m/0H/1/2H",
		path:      []uint32{hkStart, 1, hkStart + 2},
		privKey:   "cbce0d719ecf7431d88e6a89fa1483e02e35092af60c042b1df2ff59fa424dca",
		pubKey:    "0357bfe1e341d01c69fe5654309956cbea516822fba8a601743a012a7896ee8dc2",
		chainCode: "04466b9cc8e161e966409ca52986c584f07e9dc81f735db683c3ff6ec7b1503f",
		parentFP:  0xbef5a2f9,
		wantPriv:  "xprv9z4pot5VBttmtdRTWfWQmoH1taj2axGVzFqSb8C9xaxKymcFzXBDptWmT7FwuEzG3ryjH4ktypQSAewRiNMjANTtpgP4mLTj34bhnZX7UiM",
		wantPub:   "xpub6D4BDPcP2GT577Vvch3R8wDkScZWzQzMMUm3PWbmWvVJrZwQY4VUNgqFJPMM3No2dFDFGTsxxpG5uJh7n7epu4trkrX7x7DogT5Uv6fcLW5",
	},
}

func checkVectors(t *testing.T, curve *hdkey.Curve, vectors []vector) {
	t.Helper()

	master, err := hdkey.NewMaster(testSeed, nil, curve,
		&netparams.MainNetParams)
	require.NoError(t, err)

	for _, test := range vectors {
		t.Run(curve.Name()+" "+test.name, func(t *testing.T) {
			key, err := hdkey.DerivePath(master, test.path)
			require.NoError(t, err)

			priv, err := key.ECPrivKey()
			require.NoError(t, err)
			require.Equal(t, test.privKey, hex.EncodeToString(priv))
			require.Equal(t, test.pubKey, hex.EncodeToString(key.ECPubKey()))
			require.Equal(t, test.chainCode,
				hex.EncodeToString(key.ChainCode()))
			require.Equal(t, test.parentFP, key.ParentFingerprint())
			require.Equal(t, uint8(len(test.path)), key.Depth())
			require.Equal(t, test.wantPriv, key.String())

			pub := key.Neuter()
			require.False(t, pub.IsPrivate())
			require.Equal(t, test.wantPub, pub.String())

			// Both encodings parse back to the same key.
			parsed, err := hdkey.NewKeyFromString(test.wantPriv, curve)
			require.NoError(t, err)
			require.True(t, parsed.IsPrivate())
			require.Equal(t, test.wantPriv, parsed.String())

			parsed, err = hdkey.NewKeyFromString(test.wantPub, curve)
			require.NoError(t, err)
			require.False(t, parsed.IsPrivate())
			require.Equal(t, test.pubKey,
				hex.EncodeToString(parsed.ECPubKey()))
			require.Equal(t, test.wantPub, parsed.String())
		})
	}
}

func TestNist256p1Vectors(t *testing.T) {
	checkVectors(t, hdkey.NIST256P1, nist256p1Vectors)
}

func TestSecp256k1Vectors(t *testing.T) {
	checkVectors(t, hdkey.Secp256k1, secp256k1Vectors)
}

// TestSecp256k1MatchesHDKeychain derives the same paths with btcutil's
// hdkeychain and requires identical serializations.
func TestSecp256k1MatchesHDKeychain(t *testing.T) {
	master, err := hdkey.NewMaster(testSeed, nil, hdkey.Secp256k1,
		&netparams.MainNetParams)
	require.NoError(t, err)
	ref, err := hdkeychain.NewMaster(testSeed, &chaincfg.MainNetParams)
	require.NoError(t, err)

	path := []uint32{hkStart + 44, hkStart, hkStart, 0, 7, 1}
	key, refKey := master, ref
	for _, i := range path {
		key, err = key.Child(i)
		require.NoError(t, err)
		refKey, err = refKey.Derive(i)
		require.NoError(t, err)

		require.Equal(t, refKey.String(), key.String())

		refPub, err := refKey.Neuter()
		require.NoError(t, err)
		require.Equal(t, refPub.String(), key.Neuter().String())
	}
}

// TestPublicDerivation requires that deriving normal children from a
// neutered key matches neutering the private child.
func TestPublicDerivation(t *testing.T) {
	for _, curve := range []*hdkey.Curve{hdkey.NIST256P1, hdkey.Secp256k1} {
		master, err := hdkey.NewMaster(testSeed, nil, curve,
			&netparams.TestNetParams)
		require.NoError(t, err)
		acct, err := hdkey.DeriveString(master, "m/44'/1024'/0'")
		require.NoError(t, err)

		pub := acct.Neuter()
		for _, i := range []uint32{0, 1, 1000, hkStart - 1} {
			fromPriv, err := acct.Child(i)
			require.NoError(t, err)
			fromPub, err := pub.Child(i)
			require.NoError(t, err, spew.Sdump(pub))

			require.Equal(t, fromPriv.Neuter().String(), fromPub.String())
			require.Equal(t, fromPriv.ECPubKey(), fromPub.ECPubKey())
			require.Equal(t, i, fromPub.ChildIndex())
		}

		_, err = pub.Child(hkStart)
		require.ErrorIs(t, err, coreerr.ErrDerivation)

		_, err = pub.ECPrivKey()
		require.ErrorIs(t, err, coreerr.ErrNoPrivateKey)
	}
}

func TestNewMasterErrors(t *testing.T) {
	for _, n := range []int{0, hdkey.MinSeedBytes - 1, hdkey.MaxSeedBytes + 1} {
		_, err := hdkey.NewMaster(make([]byte, n), nil, hdkey.NIST256P1,
			&netparams.MainNetParams)
		require.ErrorIs(t, err, coreerr.ErrInvalidSeed, "len %d", n)
	}

	// A custom tag gives a different master key for the same seed.
	custom, err := hdkey.NewMaster(testSeed, []byte("Bitcoin seed"),
		hdkey.NIST256P1, &netparams.MainNetParams)
	require.NoError(t, err)
	require.NotEqual(t, nist256p1Vectors[0].wantPriv, custom.String())
	require.Equal(t, []byte("Nist256p1 seed"), hdkey.NIST256P1.SeedKey())
}

func TestNewKeyFromStringErrors(t *testing.T) {
	good := nist256p1Vectors[1].wantPriv
	data, err := codec.Base58CheckDecode(good)
	require.NoError(t, err)

	mutate := func(f func([]byte)) string {
		b := append([]byte(nil), data...)
		f(b)
		return codec.Base58CheckEncode(b)
	}

	tests := []struct {
		name string
		key  string
		code coreerr.ErrorCode
	}{{
		name: "bad checksum",
		key: func() string {
			raw, _ := codec.Base58Decode(good)
			raw[len(raw)-1] ^= 0xff
			return codec.Base58Encode(raw)
		}(),
		code: coreerr.ErrChecksumMismatch,
	}, {
		name: "short",
		key:  codec.Base58CheckEncode(data[:77]),
		code: coreerr.ErrFormat,
	}, {
		name: "unknown version",
		key:  mutate(func(b []byte) { b[0] = 0x05 }),
		code: coreerr.ErrFormat,
	}, {
		name: "unpadded private key",
		key:  mutate(func(b []byte) { b[45] = 0x01 }),
		code: coreerr.ErrFormat,
	}, {
		name: "zero private key",
		key: mutate(func(b []byte) {
			for i := 46; i < 78; i++ {
				b[i] = 0
			}
		}),
		code: coreerr.ErrFormat,
	}, {
		name: "master with parent fingerprint",
		key:  mutate(func(b []byte) { b[4] = 0 }),
		code: coreerr.ErrFormat,
	}, {
		name: "public key off curve",
		key: mutate(func(b []byte) {
			copy(b[:4], netparams.MainNetParams.HDPublicKeyID[:])
			b[45] = 0x04
		}),
		code: coreerr.ErrFormat,
	}, {
		name: "not base58",
		key:  "xprv0OIl",
		code: coreerr.ErrFormat,
	}}

	for _, test := range tests {
		_, err := hdkey.NewKeyFromString(test.key, hdkey.NIST256P1)
		require.ErrorIs(t, err, test.code, test.name)
	}
}

func TestNetworkVersions(t *testing.T) {
	master, err := hdkey.NewMaster(testSeed, nil, nil,
		&netparams.TestNetParams)
	require.ErrorIs(t, err, coreerr.ErrParam)
	require.Nil(t, master)

	master, err = hdkey.NewMaster(testSeed, nil, hdkey.NIST256P1,
		&netparams.TestNetParams)
	require.NoError(t, err)
	require.Equal(t, "tprv", master.String()[:4])
	require.Equal(t, "tpub", master.Neuter().String()[:4])

	parsed, err := hdkey.NewKeyFromString(master.String(), nil)
	require.NoError(t, err)
	require.Equal(t, &netparams.TestNetParams, parsed.Net())
	require.Equal(t, hdkey.NIST256P1, parsed.Curve())
}

func TestZero(t *testing.T) {
	master, err := hdkey.NewMaster(testSeed, nil, hdkey.NIST256P1,
		&netparams.MainNetParams)
	require.NoError(t, err)
	pub := master.Neuter()

	master.Zero()
	require.False(t, master.IsPrivate())
	require.Equal(t, "zeroed extended key", master.String())

	// The neutered copy is unaffected.
	require.Equal(t, nist256p1Vectors[0].wantPub, pub.String())
}
