package modding

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/xishang0128/mvgl-mods/common/i18n"
)

const (
	// ToolDirName is the folder next to the application holding the tool.
	ToolDirName  = "THL-Tools"
	toolBaseName = "DSCSToolsCLI"
)

// ErrToolNotFound means the external archive tool is not where it should be.
var ErrToolNotFound = errors.New("archive tool not found")

// ExitError reports a tool run that finished with a nonzero status.
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", strings.Join(e.Args, " "), e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", strings.Join(e.Args, " "), e.Code)
}

// DefaultToolPath returns where the tool is expected relative to appDir.
func DefaultToolPath(appDir string) string {
	name := toolBaseName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(appDir, ToolDirName, name)
}

// Tool runs the external MVGL command-line tool.
type Tool struct {
	Path string
	log  Logger
}

// NewTool checks that path is an existing file and wraps it.
func NewTool(path string, log Logger) (*Tool, error) {
	if log == nil {
		log = NopLogger
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, path)
	}
	return &Tool{Path: path, log: log}, nil
}

// Extract unpacks archive into outDir.
func (t *Tool) Extract(ctx context.Context, archive, outDir string) error {
	return t.run(ctx, "--extract", archive, outDir)
}

// Pack builds outArchive from the unpacked tree in inDir.
func (t *Tool) Pack(ctx context.Context, inDir, outArchive string) error {
	return t.run(ctx, "--pack", inDir, outArchive)
}

// run executes the tool, forwarding each stdout line to the log as it
// arrives. stderr is collected and reported once the process exits.
func (t *Tool) run(ctx context.Context, args ...string) error {
	argv := append([]string{t.Path}, args...)
	t.log.Infof(i18n.I18nMsg.Modding.Executing, strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, t.Path, args...)
	hideConsole(cmd)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			t.log.Errorf(i18n.I18nMsg.Modding.ToolNotFound, t.Path)
			return fmt.Errorf("%w: %s", ErrToolNotFound, t.Path)
		}
		t.log.Errorf(i18n.I18nMsg.Modding.ErrorUnexpected, err)
		return err
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			t.log.Infof("%s", line)
		}
	}
	if scanner.Err() != nil {
		// Drain so Wait does not block on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()

	errText := strings.TrimSpace(stderr.String())
	if errText != "" {
		t.log.Errorf(i18n.I18nMsg.Modding.ToolStderr, errText)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			t.log.Errorf(i18n.I18nMsg.Modding.CommandFailed, exitErr.ExitCode())
			return &ExitError{Args: argv, Code: exitErr.ExitCode(), Stderr: errText}
		}
		t.log.Errorf(i18n.I18nMsg.Modding.ErrorUnexpected, waitErr)
		return waitErr
	}

	t.log.Successf("%s", i18n.I18nMsg.Modding.CommandSucceeded)
	return nil
}
