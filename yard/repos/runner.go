package repos

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

//counterfeiter:generate . Runner

// Runner invokes git and waits for it. dir, when non-empty, is the
// repository to operate in (passed as git -C dir).
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

type gitRunner struct {
	binary string
}

// NewRunner returns a Runner that shells out to the given git binary.
func NewRunner(binary string) Runner {
	if binary == "" {
		binary = "git"
	}

	return &gitRunner{binary: binary}
}

func (r *gitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	full := args
	if dir != "" {
		full = append([]string{"-C", dir}, args...)
	}

	cmd := exec.CommandContext(ctx, r.binary, full...)

	// Never block on a credential prompt; a remote that needs
	// credentials the URL does not carry should fail immediately.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
