// Package shell provides the transformer adapter that runs an external rewrite command.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// FilenamePlaceholder is replaced by the module path in command arguments.
const FilenamePlaceholder = "{filename}"

var _ ports.Transformer = (*Transformer)(nil)

// Transformer implements ports.Transformer by piping the source through a command.
// The source is written to stdin and stdout is the transformed output.
type Transformer struct {
	command []string
	logger  ports.Logger
}

// NewTransformer creates a Transformer running command.
func NewTransformer(command []string, logger ports.Logger) *Transformer {
	return &Transformer{
		command: command,
		logger:  logger,
	}
}

// Transform runs the command once for source.
//
// The options are exported as canonical JSON in JSXCACHE_OPTIONS and the filename
// in JSXCACHE_FILENAME. When the command fails, the returned error message is the
// command's stderr so diagnostics keep the location the tool reported.
func (t *Transformer) Transform(ctx context.Context, source string, opts domain.Options, filename string) (string, error) {
	if len(t.command) == 0 {
		return "", domain.ErrTransformerNotConfigured
	}

	optsJSON, err := encodeOptions(opts)
	if err != nil {
		return "", err
	}

	name := t.command[0]
	args := make([]string, len(t.command)-1)
	for i, arg := range t.command[1:] {
		args[i] = strings.ReplaceAll(arg, FilenamePlaceholder, filename)
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user provided command
	cmd.Env = append(os.Environ(),
		domain.EnvOptions+"="+optsJSON,
		domain.EnvFilename+"="+filename,
	)
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", commandError(err, stderr.String(), filename)
	}

	// Warnings printed by a successful run are still worth surfacing.
	for _, line := range strings.Split(strings.TrimSpace(stderr.String()), "\n") {
		if line != "" {
			t.logger.Warn(line)
		}
	}

	return stdout.String(), nil
}

func encodeOptions(opts domain.Options) (string, error) {
	if opts == nil {
		opts = domain.Options{}
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrKeyDerivationFailed.Error())
	}
	return string(data), nil
}

func commandError(err error, stderr, filename string) error {
	exitCode := -1 // Unknown or signal
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = err.Error()
	}

	return zerr.With(zerr.With(zerr.New(msg), "exit_code", exitCode), "filename", filename)
}
