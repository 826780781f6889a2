package typist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"quill/log"
)

// streamProc is the persistent typing child process with its control pipe.
// At most one is alive per Simulator.
type streamProc struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	w      *bufio.Writer
	signal func() error
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// typeExternal runs the one-shot typing tool synchronously. The tool being
// missing or failing means the environment is broken, so it is fatal to the
// whole process rather than recovered in-process.
func (s *Simulator) typeExternal(text string, delay time.Duration) error {
	args := []string{"type", "--key-delay", strconv.FormatInt(delay.Milliseconds(), 10), "--", text}
	if err := s.runCmd(s.typeCmd, args...); err != nil {
		s.fatalf("error running %s: %v", s.typeCmd, err)
		return err
	}
	return nil
}

func (s *Simulator) startStream() error {
	cmd := exec.Command(s.streamCmd)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening %s stdin: %w", s.streamCmd, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", s.streamCmd, err)
	}
	s.proc = &streamProc{
		cmd:    cmd,
		stdin:  stdin,
		w:      bufio.NewWriter(stdin),
		signal: func() error { return cmd.Process.Signal(os.Interrupt) },
	}
	return nil
}

// typeStream writes a delay directive and a type directive to the child's
// pipe and flushes. No acknowledgment is read back; a write error (broken
// pipe after the child exits) fails the call and must not be retried.
func (s *Simulator) typeStream(text string, delay time.Duration) error {
	if s.proc == nil {
		return errors.New("typing process is not running")
	}
	if _, err := fmt.Fprintf(s.proc.w, "typedelay %d\n", delay.Milliseconds()); err != nil {
		return fmt.Errorf("writing to typing process: %w", err)
	}
	if _, err := fmt.Fprintf(s.proc.w, "type %s\n", text); err != nil {
		return fmt.Errorf("writing to typing process: %w", err)
	}
	if err := s.proc.w.Flush(); err != nil {
		return fmt.Errorf("writing to typing process: %w", err)
	}
	return nil
}

// Cleanup terminates the persistent typing process with a single interrupt
// signal. It is idempotent; with no process alive it is a no-op.
func (s *Simulator) Cleanup() {
	p := s.proc
	if p == nil {
		return
	}
	s.proc = nil
	if p.stdin != nil {
		p.stdin.Close()
	}
	if err := p.signal(); err != nil {
		log.Warnf("interrupting typing process: %v", err)
		return
	}
	if p.cmd != nil {
		// Reap without blocking the caller.
		go func() { _ = p.cmd.Wait() }()
	}
}
