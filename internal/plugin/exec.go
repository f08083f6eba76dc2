// ABOUTME: Out-of-process plugin: spawns the descriptor's command per invocation
// ABOUTME: Writes one JSON request line to stdin and reads one JSON response line from stdout

package plugin

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mailru/easyjson"
)

const maxResponseLine = 10 * 1024 * 1024 // 10MB

var errNoResponse = errors.New("plugin wrote no response")

type execPlugin struct {
	argv []string
	dir  string
	opts map[string]string
}

// newExec binds a command to its descriptor directory. A command path
// with a separator is relative to that directory; a bare name is looked
// up on PATH when invoked.
func newExec(argv []string, dir string, opts map[string]string) *execPlugin {
	args := append([]string(nil), argv...)
	if name := args[0]; strings.ContainsRune(name, filepath.Separator) && !filepath.IsAbs(name) {
		args[0] = filepath.Join(dir, name)
	}
	return &execPlugin{argv: args, dir: dir, opts: opts}
}

func (p *execPlugin) invoke(ctx context.Context, prompt string) (string, error) {
	req, err := easyjson.Marshal(Request{Prompt: prompt, Options: p.opts})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.argv[0], p.argv[1:]...)
	cmd.Dir = p.dir
	cmd.Stdin = bytes.NewReader(append(req, '\n'))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", fmt.Errorf("run %s: %w", filepath.Base(p.argv[0]), err)
	}

	line, err := firstLine(stdout.Bytes())
	if err != nil {
		return "", err
	}
	var resp Response
	if err := easyjson.Unmarshal(line, &resp); err != nil {
		return "", fmt.Errorf("malformed response: %w", err)
	}
	if resp.Error != "" {
		return "", errors.New(resp.Error)
	}
	return resp.Output, nil
}

// firstLine returns the first non-blank line of out.
func firstLine(out []byte) ([]byte, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), maxResponseLine)
	for sc.Scan() {
		if line := bytes.TrimSpace(sc.Bytes()); len(line) > 0 {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return nil, errNoResponse
}
