/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package params

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/allauncher/sysprops/errors"
)

// Script commands that end parameter input.
const (
	CommandLaunch = "launch"
	CommandAbort  = "abort"
)

// ParseScript reads a launch script: one "key value" pair per line, the
// value being the rest of the line after the first run of spaces. Reading
// stops at a "launch" line or EOF. An "abort" line yields errors.ErrAborted.
// Repeated keys accumulate values.
func ParseScript(r io.Reader) (*Params, error) {
	p := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		switch strings.TrimSpace(text) {
		case CommandLaunch:
			return p, nil
		case CommandAbort:
			return nil, errors.ErrAborted
		}

		key, value, ok := strings.Cut(strings.TrimLeft(text, " \t"), " ")
		if !ok {
			return nil, errors.NewValidationError(key, fmt.Sprintf("line %d: missing value", line))
		}
		p.Add(key, strings.TrimLeft(value, " "))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read launch script: %w", err)
	}
	return p, nil
}
