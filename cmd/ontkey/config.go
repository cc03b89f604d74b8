// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"
	"github.com/ontio/ontcore/account"
	"github.com/ontio/ontcore/hdkey"
	"github.com/ontio/ontcore/internal/cfgutil"
	"github.com/ontio/ontcore/keypair"
	"github.com/ontio/ontcore/netparams"
)

const (
	defaultConfigFilename = "ontkey.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "ontkey.log"
)

var (
	ontkeyHomeDir     = btcutil.AppDataDir("ontkey", false)
	defaultConfigFile = filepath.Join(ontkeyHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(ontkeyHomeDir, defaultLogDirname)
)

type config struct {
	ConfigFile *cfgutil.ExplicitString `short:"C" long:"configfile" description:"Path to configuration file"`
	TestNet    bool                    `long:"testnet" description:"Use the Polaris test network (default mainnet)"`
	DebugLevel string                  `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir     string                  `long:"logdir" description:"Directory to log output"`
	NoLogFile  bool                    `long:"nologfile" description:"Only log to the console"`

	// Key protection options
	Scheme   *cfgutil.SchemeFlag `long:"scheme" description:"Signature scheme of new accounts {SHA256withECDSA, SM3withSM2}"`
	EncAlg   string              `long:"encalg" description:"Private key encryption {aes-256-gcm, aes-256-ctr, aes-256-ecb}"`
	ScryptN  int                 `long:"scryptn" description:"Scrypt CPU/memory cost of key encryption"`
	PassFile string              `long:"passfile" description:"Read the passphrase from the first line of this file instead of prompting"`

	New         newCmd         `command:"new" description:"Generate a new account and print its encrypted key record"`
	Import      importCmd      `command:"import" description:"Encrypt a WIF private key into a key record"`
	Derive      deriveCmd      `command:"derive" description:"Derive an account from a mnemonic sentence or seed"`
	Address     addressCmd     `command:"address" description:"Show the address of a public key or key record"`
	WIF         wifCmd         `command:"wif" description:"Decrypt a key record and print its WIF private key"`
	VerifyProof verifyProofCmd `command:"verifyproof" description:"Verify a block Merkle proof returned by a node"`

	net *netparams.Params
}

type newCmd struct {
	Out string `short:"o" long:"out" description:"Write the key record to this file instead of stdout"`
}

type importCmd struct {
	Out  string `short:"o" long:"out" description:"Write the key record to this file instead of stdout"`
	Args struct {
		WIFFile string `positional-arg-name:"wiffile" description:"File holding the WIF key (prompted for when omitted)"`
	} `positional-args:"yes"`
}

type deriveCmd struct {
	Path           *cfgutil.ExplicitString `short:"p" long:"path" description:"Derivation path"`
	Seed           bool                    `long:"seed" description:"Read a hexadecimal seed instead of a mnemonic"`
	WithPassphrase bool                    `long:"withpassphrase" description:"Prompt for the mnemonic passphrase"`
	XPub           bool                    `long:"xpub" description:"Also print the extended public key of the derived node"`
	Out            string                  `short:"o" long:"out" description:"Also write an encrypted key record to this file"`
}

type addressCmd struct {
	PubKey string `long:"pubkey" description:"Hex encoded public key"`
	Args   struct {
		RecordFile string `positional-arg-name:"recordfile" description:"Key record file"`
	} `positional-args:"yes"`
}

type wifCmd struct {
	Args struct {
		RecordFile string `positional-arg-name:"recordfile" required:"yes" description:"Key record file"`
	} `positional-args:"yes"`
}

type verifyProofCmd struct {
	TxHash string `long:"txhash" description:"Transaction hash the proof was requested for"`
	Args   struct {
		ProofFile string `positional-arg-name:"prooffile" description:"File holding the getmerkleproof result (stdin when omitted)"`
	} `positional-args:"yes"`
}

// scryptParams returns the key encryption parameters selected by the
// configuration.
func (c *config) scryptParams() account.ScryptParams {
	params := account.DefaultScryptParams
	params.N = c.ScryptN
	return params
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	// Convert the subsystemLoggers map keys to a slice.
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// defaultConfig returns the configuration before any file or command line
// options are applied.
func defaultConfig() config {
	return config{
		ConfigFile: cfgutil.NewExplicitString(defaultConfigFile),
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
		Scheme:     cfgutil.NewSchemeFlag(keypair.SHA256withECDSA),
		EncAlg:     account.EncAlgGCM,
		ScryptN:    account.DefaultScryptParams.N,
		Derive: deriveCmd{
			Path: cfgutil.NewExplicitString(hdkey.DefaultPath),
		},
	}
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// Command line options always take precedence.  The returned parser has
// the selected command active.
func loadConfig(args []string) (*config, *flags.Parser, []string, error) {
	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error
	// can be ignored here since they will be caught by the final parse
	// below.
	preCfg := defaultConfig()
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.IgnoreUnknown)
	preParser.SubcommandsOptional = true
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, nil, err
		}
	}

	cfg := defaultConfig()
	parser := flags.NewParser(&cfg, flags.Default)

	// Load the config file when it exists.  A file named explicitly must
	// exist.
	configFile := cfgutil.CleanAndExpandPath(preCfg.ConfigFile.Value,
		filepath.Dir(ontkeyHomeDir))
	exists, err := cfgutil.FileExists(configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	switch {
	case exists:
		err := flags.NewIniParser(parser).ParseFile(configFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error parsing config "+
				"file: %v", err)
		}
	case preCfg.ConfigFile.ExplicitlySet():
		return nil, nil, nil, fmt.Errorf("config file %v does not "+
			"exist", configFile)
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	cfg.net = &netparams.MainNetParams
	if cfg.TestNet {
		cfg.net = &netparams.TestNetParams
	}

	switch cfg.EncAlg {
	case account.EncAlgGCM, account.EncAlgCTR, account.EncAlgECB:
	default:
		return nil, nil, nil, fmt.Errorf("unknown key encryption %q",
			cfg.EncAlg)
	}
	if cfg.ScryptN < 2 || cfg.ScryptN&(cfg.ScryptN-1) != 0 {
		return nil, nil, nil, fmt.Errorf("scrypt cost %d is not a "+
			"power of two", cfg.ScryptN)
	}

	homeDir := filepath.Dir(ontkeyHomeDir)
	cfg.LogDir = cfgutil.CleanAndExpandPath(cfg.LogDir, homeDir)
	cfg.PassFile = cfgutil.CleanAndExpandPath(cfg.PassFile, homeDir)

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoLogFile {
		initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", "loadConfig", err.Error())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, nil, err
	}

	return &cfg, parser, remainingArgs, nil
}
