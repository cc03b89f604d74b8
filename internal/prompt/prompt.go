// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !js

package prompt

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"golang.org/x/term"
)

// mnemonicWordCounts are the sentence lengths BIP0039 defines.
var mnemonicWordCounts = map[int]struct{}{
	12: {}, 15: {}, 18: {}, 21: {}, 24: {},
}

// stdinIsTerminal reports whether passphrases can be read without echo.
// When it returns false they are read as plain lines from the reader.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readPass reads one passphrase, without echo when stdin is a terminal.
func readPass(reader *bufio.Reader) ([]byte, error) {
	if !stdinIsTerminal() {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, err
		}
		return bytes.TrimSpace([]byte(line)), nil
	}

	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	fmt.Print("\n")
	return bytes.TrimSpace(pass), nil
}

// promptList prompts the user with the given prefix, list of valid responses,
// and default list entry to use.  The function will repeat the prompt to the
// user until they enter a valid response.
func promptList(reader *bufio.Reader, prefix string, validResponses []string,
	defaultEntry string) (string, error) {

	// Setup the prompt according to the parameters.
	validStrings := strings.Join(validResponses, "/")
	var prompt string
	if defaultEntry != "" {
		prompt = fmt.Sprintf("%s (%s) [%s]: ", prefix, validStrings,
			defaultEntry)
	} else {
		prompt = fmt.Sprintf("%s (%s): ", prefix, validStrings)
	}

	// Prompt the user until one of the valid responses is given.
	for {
		fmt.Print(prompt)
		reply, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		reply = strings.TrimSpace(strings.ToLower(reply))
		if reply == "" {
			reply = defaultEntry
		}

		for _, validResponse := range validResponses {
			if reply == validResponse {
				return reply, nil
			}
		}
	}
}

// Confirm prompts the user for a boolean (yes/no) with the given prefix.
// The function will repeat the prompt to the user until they enter a valid
// response.
func Confirm(reader *bufio.Reader, prefix string, defaultEntry string) (bool,
	error) {

	// Setup the valid responses.
	valid := []string{"n", "no", "y", "yes"}
	response, err := promptList(reader, prefix, valid, defaultEntry)
	if err != nil {
		return false, err
	}
	return response == "yes" || response == "y", nil
}

// PassPrompt prompts the user for a passphrase with the given prefix.  The
// function will ask the user to confirm the passphrase and will repeat the
// prompts until they enter a matching response.
func PassPrompt(reader *bufio.Reader, prefix string, confirm bool) ([]byte,
	error) {

	// Prompt the user until they enter a passphrase.
	prompt := fmt.Sprintf("%s: ", prefix)
	for {
		fmt.Print(prompt)
		pass, err := readPass(reader)
		if err != nil {
			return nil, err
		}
		if len(pass) == 0 {
			continue
		}

		if !confirm {
			return pass, nil
		}

		fmt.Print("Confirm passphrase: ")
		confirm, err := readPass(reader)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(pass, confirm) {
			fmt.Println("The entered passphrases do not match")
			continue
		}

		return pass, nil
	}
}

// NewPassphrase prompts for the passphrase that will encrypt a new account
// key.  All prompts are repeated until the user enters a valid response.
func NewPassphrase(reader *bufio.Reader) ([]byte, error) {
	return PassPrompt(reader, "Enter the passphrase for the new account key",
		true)
}

// Passphrase prompts once for the passphrase of an existing account key.
func Passphrase(reader *bufio.Reader) ([]byte, error) {
	return PassPrompt(reader, "Enter the account key passphrase", false)
}

// readParagraph reads lines until a blank line or the end of input and
// joins them with single spaces.
func readParagraph(reader *bufio.Reader) (string, error) {
	var text string
	for {
		line, err := reader.ReadString('\n')
		if strings.TrimSpace(line) == "" {
			if err != nil && text == "" {
				return "", err
			}
			break
		}
		text += " " + line
		if err != nil {
			break
		}
	}
	return collapseSpace(strings.TrimSpace(text)), nil
}

// Mnemonic prompts for a BIP0039 mnemonic sentence spread over one or more
// lines and followed by a blank line.  The prompt is repeated until the
// sentence has a valid word count.  Words are not checked against a word
// list.
func Mnemonic(reader *bufio.Reader) (string, error) {
	for {
		fmt.Print("Enter the mnemonic sentence " +
			"(followed by a blank line): ")

		sentence, err := readParagraph(reader)
		if err != nil {
			return "", err
		}
		words := strings.Fields(sentence)
		if _, ok := mnemonicWordCounts[len(words)]; !ok {
			fmt.Printf("Invalid mnemonic specified.  Must be 12, 15, "+
				"18, 21 or 24 words, got %d\n", len(words))
			continue
		}

		return strings.Join(words, " "), nil
	}
}

// Seed prompts for a hexadecimal HD seed.  The prompt is repeated until
// the user enters a seed of valid length.
func Seed(reader *bufio.Reader) ([]byte, error) {
	for {
		fmt.Print("Enter the hexadecimal seed: ")
		seedStr, err := reader.ReadString('\n')
		if err != nil && seedStr == "" {
			return nil, err
		}
		seedStr = strings.TrimSpace(strings.ToLower(seedStr))
		if len(seedStr)%2 != 0 {
			seedStr = "0" + seedStr
		}

		seed, decErr := hex.DecodeString(seedStr)
		if decErr != nil || len(seed) < hdkeychain.MinSeedBytes ||
			len(seed) > hdkeychain.MaxSeedBytes {

			fmt.Printf("Invalid seed specified.  Must be a "+
				"hexadecimal value that is at least %d bits and "+
				"at most %d bits\n", hdkeychain.MinSeedBytes*8,
				hdkeychain.MaxSeedBytes*8)
			if err != nil {
				return nil, err
			}
			continue
		}

		return seed, nil
	}
}

// collapseSpace takes a string and replaces any repeated areas of whitespace
// with a single space character.
func collapseSpace(in string) string {
	whiteSpace := false
	out := ""
	for _, c := range in {
		if unicode.IsSpace(c) {
			if !whiteSpace {
				out = out + " "
			}
			whiteSpace = true
		} else {
			out = out + string(c)
			whiteSpace = false
		}
	}
	return out
}
