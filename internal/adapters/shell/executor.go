// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run starts the command and waits for it to finish.
//
// The environment is the process environment with c.Env applied on top. Output is captured;
// when ctx carries a ports.Vertex it is also streamed to the vertex.
func (e *Executor) Run(ctx context.Context, c domain.Command) (domain.CommandResult, error) {
	cmdEnv := resolveEnvironment(os.Environ(), c.Env)

	// Resolve bare names against the resolved PATH rather than the parent's.
	executable := c.Name
	if !strings.ContainsRune(c.Name, filepath.Separator) {
		if lp, err := lookPath(c.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, c.Args...) //nolint:gosec // argv comes from our own callers
	// exec.CommandContext sets Args[0] to the resolved path; keep the name as invoked.
	cmd.Args[0] = c.Name
	cmd.Dir = c.Dir
	cmd.Env = cmdEnv

	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	}

	var stdout, stderr bytes.Buffer
	var outW io.Writer = &stdout
	var errW io.Writer = &stderr
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		outW = io.MultiWriter(&stdout, vertex.Stdout())
		errW = io.MultiWriter(&stderr, vertex.Stderr())
	}
	if c.MergeStderr {
		// The same writer for both streams makes os/exec serialize the writes.
		errW = outW
	}
	cmd.Stdout = outW
	cmd.Stderr = errW

	err := cmd.Run()

	result := domain.CommandResult{
		Output: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	result.ExitCode = -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	}

	return result, &domain.CommandError{
		Command: c.String(),
		Result:  result,
		Err:     zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "exit_code", result.ExitCode),
	}
}

// resolveEnvironment applies overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
