// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package viewstate

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrClipboardUnavailable reports that no copy mechanism is available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// TerminalClipboard copies text with the OSC 52 escape sequence, which most
// terminal emulators forward to the system clipboard.
type TerminalClipboard struct {
	out *os.File
}

// NewTerminalClipboard writes escape sequences to out.
func NewTerminalClipboard(out *os.File) *TerminalClipboard {
	return &TerminalClipboard{out: out}
}

// Copy fails with [ErrClipboardUnavailable] when out is not a terminal.
func (c *TerminalClipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.out == nil || !term.IsTerminal(int(c.out.Fd())) {
		return ErrClipboardUnavailable
	}
	return writeOSC52(c.out, text)
}

func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(w, "\x1b]52;c;%s\a", encoded); err != nil {
		return fmt.Errorf("viewstate: write clipboard sequence: %w", err)
	}
	return nil
}
