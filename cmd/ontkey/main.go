// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command ontkey creates, converts and inspects Ontology account keys
// offline, and checks block Merkle proofs returned by a node.  It keeps no
// state of its own; key records are written where the user asks.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

var (
	// stdin feeds every prompt.
	stdin = bufio.NewReader(os.Stdin)

	// stdout receives command results.  Logs go to stderr.
	stdout io.Writer = os.Stdout
)

func main() {
	if err := ontkeyMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// ontkeyMain parses the configuration and runs the selected command.
// Errors are reported before returning.
func ontkeyMain(args []string) error {
	cfg, parser, remaining, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	if len(remaining) != 0 {
		err := fmt.Errorf("unexpected arguments %v", remaining)
		fmt.Fprintf(os.Stderr, "ontkey: %v\n", err)
		return err
	}

	if err := runCommand(cfg, parser.Active.Name); err != nil {
		fmt.Fprintf(os.Stderr, "ontkey %s: %v\n", parser.Active.Name, err)
		return err
	}
	return nil
}
