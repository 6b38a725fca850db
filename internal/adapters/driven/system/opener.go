// Package system hands document links to the host operating system.
package system

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
)

// Ensure Opener implements the interface.
var _ driven.LinkOpener = (*Opener)(nil)

const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Opener opens URLs with the platform's default handler and copies text
// with the platform's clipboard utility.
type Opener struct {
	goos     string
	lookPath func(file string) (string, error)
	start    func(cmd *exec.Cmd) error
	run      func(cmd *exec.Cmd) error
}

// NewOpener creates an opener for the current platform.
func NewOpener() *Opener {
	return &Opener{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    (*exec.Cmd).Start,
		run:      (*exec.Cmd).Run,
	}
}

// Open opens url in the default browser or viewer without waiting for it.
func (o *Opener) Open(url string) error {
	var cmd *exec.Cmd

	switch o.goos {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", o.goos)
	}

	return o.start(cmd)
}

// Copy places text on the clipboard.
func (o *Opener) Copy(text string) error {
	var cmd *exec.Cmd

	switch o.goos {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try wl-copy on Wayland, then xclip, then xsel
		switch {
		case o.has("wl-copy"):
			cmd = exec.Command("wl-copy")
		case o.has("xclip"):
			cmd = exec.Command("xclip", "-selection", "clipboard")
		case o.has("xsel"):
			cmd = exec.Command("xsel", "--clipboard", "--input")
		default:
			return fmt.Errorf("no clipboard utility found (install wl-clipboard, xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", o.goos)
	}

	cmd.Stdin = strings.NewReader(text)
	return o.run(cmd)
}

func (o *Opener) has(tool string) bool {
	_, err := o.lookPath(tool)
	return err == nil
}
