// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ontio/ontcore/account"
	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/hdkey"
	"github.com/ontio/ontcore/internal/cfgutil"
	"github.com/ontio/ontcore/internal/prompt"
	"github.com/ontio/ontcore/internal/zero"
	"github.com/ontio/ontcore/keypair"
	"github.com/ontio/ontcore/node"
)

// runCommand dispatches to the command named by the parser.
func runCommand(cfg *config, name string) error {
	b := keypair.NewBackend(nil)

	switch name {
	case "new":
		return cfg.New.run(cfg, b)
	case "import":
		return cfg.Import.run(cfg, b)
	case "derive":
		return cfg.Derive.run(cfg, b)
	case "address":
		return cfg.Address.run(b)
	case "wif":
		return cfg.WIF.run(cfg, b)
	case "verifyproof":
		return cfg.VerifyProof.run()
	}
	return fmt.Errorf("unknown command %q", name)
}

// readPassphrase returns the passphrase from the configured file, or
// prompts for it.  A passphrase for a new key is asked for twice.
func readPassphrase(cfg *config, newKey bool) ([]byte, error) {
	if cfg.PassFile == "" {
		if newKey {
			return prompt.NewPassphrase(stdin)
		}
		return prompt.Passphrase(stdin)
	}

	data, err := os.ReadFile(cfg.PassFile)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(data)

	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, fmt.Errorf("passphrase file %s is empty", cfg.PassFile)
	}
	return append([]byte(nil), line...), nil
}

// readRecord loads a key record file.
func readRecord(path string) (*account.EncryptedKeyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec account.EncryptedKeyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%s is not a key record: %v", path, err)
	}
	return &rec, nil
}

// writeRecord prints rec, or writes it to path.  Existing files are never
// overwritten.
func writeRecord(path string, rec *account.EncryptedKeyRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	exists, err := cfgutil.FileExists(path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("refusing to overwrite %s", path)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	log.Infof("Wrote key record of %s to %s", rec.Address.ToBase58(), path)
	return nil
}

// exportAccount encrypts acct under a new passphrase and writes the record.
func exportAccount(cfg *config, acct *account.Account, out string) error {
	pass, err := readPassphrase(cfg, true)
	if err != nil {
		return err
	}
	defer zero.Bytes(pass)

	rec, err := acct.Export(pass, cfg.EncAlg, cfg.scryptParams())
	if err != nil {
		return err
	}
	return writeRecord(out, rec)
}

func (c *newCmd) run(cfg *config, b *keypair.Backend) error {
	acct, err := account.Generate(b, cfg.Scheme.Scheme)
	if err != nil {
		return err
	}
	defer acct.Wipe()

	log.Infof("Generated %v account %s", acct.Scheme(),
		acct.Address().ToBase58())
	return exportAccount(cfg, acct, c.Out)
}

func (c *importCmd) run(cfg *config, b *keypair.Backend) error {
	var wif []byte
	if c.Args.WIFFile != "" {
		data, err := os.ReadFile(c.Args.WIFFile)
		if err != nil {
			return err
		}
		defer zero.Bytes(data)
		wif = bytes.TrimSpace(data)
	} else {
		var err error
		wif, err = prompt.PassPrompt(stdin, "Enter the WIF private key",
			false)
		if err != nil {
			return err
		}
		defer zero.Bytes(wif)
	}

	acct, err := account.FromWIF(b, string(wif), cfg.Scheme.Scheme)
	if err != nil {
		return err
	}
	defer acct.Wipe()

	log.Infof("Imported %v account %s", acct.Scheme(),
		acct.Address().ToBase58())
	return exportAccount(cfg, acct, c.Out)
}

func (c *deriveCmd) run(cfg *config, b *keypair.Backend) error {
	var seed []byte
	if c.Seed {
		var err error
		seed, err = prompt.Seed(stdin)
		if err != nil {
			return err
		}
	} else {
		mnemonic, err := prompt.Mnemonic(stdin)
		if err != nil {
			return err
		}
		var passphrase []byte
		if c.WithPassphrase {
			passphrase, err = prompt.PassPrompt(stdin,
				"Enter the mnemonic passphrase", false)
			if err != nil {
				return err
			}
			defer zero.Bytes(passphrase)
		}
		seed = hdkey.SeedFromMnemonic(mnemonic, string(passphrase))
	}
	defer zero.Bytes(seed)

	if !c.Path.ExplicitlySet() {
		log.Debugf("Deriving the default path %s", c.Path.Value)
	}

	master, err := hdkey.NewMaster(seed, nil, hdkey.NIST256P1, cfg.net)
	if err != nil {
		return err
	}
	defer master.Zero()

	key, err := hdkey.DeriveString(master, c.Path.Value)
	if err != nil {
		return err
	}
	if key != master {
		defer key.Zero()
	}

	acct, err := account.FromExtendedKey(b, key)
	if err != nil {
		return err
	}
	defer acct.Wipe()

	fmt.Fprintf(stdout, "Path:       %s\n", c.Path.Value)
	fmt.Fprintf(stdout, "Address:    %s\n", acct.Address().ToBase58())
	fmt.Fprintf(stdout, "Public key: %x\n", acct.PublicKeyBytes())
	if c.XPub {
		fmt.Fprintf(stdout, "Extended public key: %s\n",
			key.Neuter().String())
	}

	if c.Out == "" {
		return nil
	}
	return exportAccount(cfg, acct, c.Out)
}

func (c *addressCmd) run(b *keypair.Backend) error {
	switch {
	case c.PubKey != "":
		data, err := hex.DecodeString(c.PubKey)
		if err != nil {
			return fmt.Errorf("public key is not hex: %v", err)
		}
		acct, err := account.FromPublicKey(b, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, acct.Address().ToBase58())

	case c.Args.RecordFile != "":
		rec, err := readRecord(c.Args.RecordFile)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, rec.Address.ToBase58())

	default:
		return fmt.Errorf("a public key or key record file is required")
	}
	return nil
}

func (c *wifCmd) run(cfg *config, b *keypair.Backend) error {
	rec, err := readRecord(c.Args.RecordFile)
	if err != nil {
		return err
	}
	pass, err := readPassphrase(cfg, false)
	if err != nil {
		return err
	}
	defer zero.Bytes(pass)

	acct, err := account.Import(b, rec, pass)
	if err != nil {
		return err
	}
	defer acct.Wipe()

	wif, err := acct.ExportWIF()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, wif)
	return nil
}

func (c *verifyProofCmd) run() error {
	var (
		data []byte
		err  error
	)
	if c.Args.ProofFile != "" {
		data, err = os.ReadFile(c.Args.ProofFile)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return err
	}

	proof, err := node.DecodeMerkleProof(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	if err := proof.Verify(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Transactions root %v of block %d is committed "+
		"to by block root %v at height %d\n", proof.TransactionsRoot,
		proof.BlockHeight, proof.CurBlockRoot, proof.CurBlockHeight)

	if c.TxHash == "" {
		return nil
	}
	txHash, err := common.ParseUInt256(c.TxHash)
	if err != nil {
		return err
	}
	doc, err := proof.Document(txHash)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\n", out)
	return nil
}
