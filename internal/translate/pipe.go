package translate

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os/exec"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/pkg/log"
)

// PipeBackend drives a long-lived line-oriented translator coprocess. Each
// exchange is one JSON-encoded string written to its stdin and one
// JSON-encoded string read back from its stdout, in strict FIFO order.
// Overlapping requests would desynchronize the pairing, so TranslateBatch
// walks its fragments one at a time. Any transport failure is fatal for the
// run: a partially consumed stream cannot be resumed.
type PipeBackend struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

// NewPipeBackend starts the coprocess. The source and target languages are
// appended to the configured argv.
func NewPipeBackend(cfg BackendConfig) (*PipeBackend, error) {
	if len(cfg.PipeCommand) == 0 {
		return nil, fault.New(fault.KindConfig, "pipe backend requires a translator command")
	}

	args := append(append([]string(nil), cfg.PipeCommand[1:]...), cfg.SourceLang, cfg.TargetLang)
	cmd := exec.Command(cfg.PipeCommand[0], args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "open translator stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "open translator stdout")
	}
	if err := cmd.Start(); err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "start translator process")
	}

	return &PipeBackend{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}, nil
}

func (b *PipeBackend) Name() string { return "argos" }

// ByteBudget is unbounded: the pipe frames one fragment per exchange, so
// batch size never reaches the wire.
func (b *PipeBackend) ByteBudget() int { return 0 }

func (b *PipeBackend) TranslateBatch(ctx context.Context, fragments []Fragment) (map[int]string, error) {
	ret := make(map[int]string, len(fragments))
	for _, f := range fragments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		translated, err := b.exchange(f.Text)
		if err != nil {
			return nil, err
		}
		log.Debug("pipe: %q ---> %q", f.Text, translated)
		ret[f.Tag] = translated
	}
	return ret, nil
}

func (b *PipeBackend) exchange(text string) (string, error) {
	encoded, err := json.Marshal(text)
	if err != nil {
		return "", fault.Wrap(err, fault.KindTransport, "encode request")
	}
	if _, err := b.stdin.Write(append(encoded, '\n')); err != nil {
		return "", fault.Wrap(err, fault.KindTransport, "write to translator process")
	}

	line, err := b.stdout.ReadString('\n')
	if err != nil {
		return "", fault.Wrap(err, fault.KindTransport, "read from translator process")
	}
	var translated string
	if err := json.Unmarshal([]byte(line), &translated); err != nil {
		return "", fault.Wrap(err, fault.KindTransport, "malformed translator response")
	}
	return translated, nil
}

// Close ends the coprocess by closing its stdin and waiting for exit.
func (b *PipeBackend) Close() error {
	if b.stdin != nil {
		_ = b.stdin.Close()
	}
	if b.cmd != nil {
		return b.cmd.Wait()
	}
	return nil
}
