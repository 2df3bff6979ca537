package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Opener opens URLs (product images) in an external program
type Opener struct {
	command string   // configured viewer command, empty for system default
	args    []string // additional arguments placed before the URL
	logger  *slog.Logger
	start   func(name string, args ...string) error
}

// NewOpener creates an Opener for the configured viewer
func NewOpener(cfg ViewerConfig, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: cfg.Command,
		args:    cfg.Args,
		logger:  logger,
		start:   startDetached,
	}
}

// Open launches the URL without waiting for the viewer to exit
func (o *Opener) Open(url string) error {
	if url == "" {
		return fmt.Errorf("nothing to open")
	}

	name, args := o.commandFor(url, runtime.GOOS)
	o.logger.Info("opening url", "command", name, "args", args)

	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// commandFor resolves the program and arguments used to open url on goos
func (o *Opener) commandFor(url, goos string) (string, []string) {
	if o.command != "" {
		args := append(append([]string{}, o.args...), url)
		return o.command, args
	}

	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}

// startDetached starts the command without waiting for it
func startDetached(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}
