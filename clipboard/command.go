package clipboard

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// commandLine is one external tool invocation.
type commandLine struct {
	prog string
	args []string
}

// run executes the command, feeding input to stdin when non-nil, and returns
// captured stdout.
func (c commandLine) run(input *string) (string, error) {
	cmd := exec.Command(c.prog, c.args...)

	if input != nil {
		cmd.Stdin = strings.NewReader(*input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %s: %w", c.prog, msg, err)
		}
		return "", fmt.Errorf("%s: %w", c.prog, err)
	}

	return stdout.String(), nil
}

// CommandProvider accesses the clipboard through external tools, one
// copy/paste command pair per clipboard kind. Kinds without a configured
// command pair return ErrKindUnsupported.
type CommandProvider struct {
	name  string
	copy  map[Kind]commandLine
	paste map[Kind]commandLine
}

// NewCommandProvider creates a provider serving only the system clipboard
// with the given copy and paste command lines.
func NewCommandProvider(name string, copyCmd, pasteCmd []string) (*CommandProvider, error) {
	p := &CommandProvider{
		name:  name,
		copy:  make(map[Kind]commandLine),
		paste: make(map[Kind]commandLine),
	}
	if err := p.AddKind(KindClipboard, copyCmd, pasteCmd); err != nil {
		return nil, err
	}
	return p, nil
}

// AddKind configures the copy and paste command lines for a clipboard kind.
// Either command may be nil to leave that direction unsupported.
func (p *CommandProvider) AddKind(kind Kind, copyCmd, pasteCmd []string) error {
	if len(copyCmd) == 0 && len(pasteCmd) == 0 {
		return fmt.Errorf("no commands given for %s", kind)
	}
	if len(copyCmd) > 0 {
		p.copy[kind] = commandLine{prog: copyCmd[0], args: copyCmd[1:]}
	}
	if len(pasteCmd) > 0 {
		p.paste[kind] = commandLine{prog: pasteCmd[0], args: pasteCmd[1:]}
	}
	return nil
}

// Name returns the provider identifier.
func (p *CommandProvider) Name() string {
	return p.name
}

// Get runs the paste command for the kind and returns its output.
func (p *CommandProvider) Get(kind Kind) (string, error) {
	cmd, ok := p.paste[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKindUnsupported, kind)
	}
	return cmd.run(nil)
}

// Set feeds contents to the copy command for the kind.
func (p *CommandProvider) Set(kind Kind, contents string) error {
	cmd, ok := p.copy[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrKindUnsupported, kind)
	}
	_, err := cmd.run(&contents)
	return err
}

// DetectProvider returns the best clipboard provider for the host
// environment. The fallback is an in-process MemoryProvider, so the result
// is always usable.
func DetectProvider() Provider {
	if p := detectCommandProvider(); p != nil {
		return p
	}
	if p := NewNativeProvider(); p.Available() {
		return p
	}
	return NewMemoryProvider()
}

// detectCommandProvider probes for platform clipboard tools. Returns nil when
// none are found.
func detectCommandProvider() *CommandProvider {
	switch runtime.GOOS {
	case "windows":
		if hasBinary("win32yank.exe") {
			p, _ := NewCommandProvider("win32yank",
				[]string{"win32yank.exe", "-i", "--crlf"},
				[]string{"win32yank.exe", "-o", "--lf"})
			return p
		}
	case "darwin":
		if hasBinary("pbcopy") && hasBinary("pbpaste") {
			p, _ := NewCommandProvider("pasteboard",
				[]string{"pbcopy"},
				[]string{"pbpaste"})
			return p
		}
	default:
		if os.Getenv("WAYLAND_DISPLAY") != "" && hasBinary("wl-copy") && hasBinary("wl-paste") {
			p, _ := NewCommandProvider("wl-clipboard",
				[]string{"wl-copy", "--type", "text/plain"},
				[]string{"wl-paste", "--no-newline"})
			_ = p.AddKind(KindSelection,
				[]string{"wl-copy", "--primary", "--type", "text/plain"},
				[]string{"wl-paste", "--primary", "--no-newline"})
			return p
		}
		if os.Getenv("DISPLAY") != "" && hasBinary("xclip") {
			p, _ := NewCommandProvider("xclip",
				[]string{"xclip", "-in", "-selection", "clipboard"},
				[]string{"xclip", "-out", "-selection", "clipboard"})
			_ = p.AddKind(KindSelection,
				[]string{"xclip", "-in", "-selection", "primary"},
				[]string{"xclip", "-out", "-selection", "primary"})
			return p
		}
		if os.Getenv("DISPLAY") != "" && hasBinary("xsel") {
			p, _ := NewCommandProvider("xsel",
				[]string{"xsel", "--input", "--clipboard"},
				[]string{"xsel", "--output", "--clipboard"})
			_ = p.AddKind(KindSelection,
				[]string{"xsel", "--input", "--primary"},
				[]string{"xsel", "--output", "--primary"})
			return p
		}
		if hasBinary("termux-clipboard-set") && hasBinary("termux-clipboard-get") {
			p, _ := NewCommandProvider("termux",
				[]string{"termux-clipboard-set"},
				[]string{"termux-clipboard-get"})
			return p
		}
	}

	// tmux buffers work anywhere a tmux session exists.
	if os.Getenv("TMUX") != "" && hasBinary("tmux") {
		p, _ := NewCommandProvider("tmux",
			[]string{"tmux", "load-buffer", "-w", "-"},
			[]string{"tmux", "save-buffer", "-"})
		return p
	}

	return nil
}

// hasBinary reports whether prog is on PATH.
func hasBinary(prog string) bool {
	_, err := exec.LookPath(prog)
	return err == nil
}
