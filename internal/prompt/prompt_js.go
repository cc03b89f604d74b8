// Copyright (c) 2015-2021 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prompt

import (
	"bufio"
	"fmt"
)

func Confirm(_ *bufio.Reader, _ string, _ string) (bool, error) {
	return false, fmt.Errorf("prompt not supported in WebAssembly")
}

func PassPrompt(_ *bufio.Reader, _ string, _ bool) ([]byte, error) {
	return nil, fmt.Errorf("prompt not supported in WebAssembly")
}

func NewPassphrase(_ *bufio.Reader) ([]byte, error) {
	return nil, fmt.Errorf("prompt not supported in WebAssembly")
}

func Passphrase(_ *bufio.Reader) ([]byte, error) {
	return nil, fmt.Errorf("prompt not supported in WebAssembly")
}

func Mnemonic(_ *bufio.Reader) (string, error) {
	return "", fmt.Errorf("prompt not supported in WebAssembly")
}

func Seed(_ *bufio.Reader) ([]byte, error) {
	return nil, fmt.Errorf("prompt not supported in WebAssembly")
}
