// Package doctor runs environment diagnostics for quill's typing backends.
package doctor

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"quill/clipboard"
	"quill/config"
	"quill/typist"
)

const clipboardTimeout = 3 * time.Second

// CheckClipboard copies a probe string, reads it back, and restores the
// previous clipboard contents. A hung clipboard tool is reported after a
// timeout instead of blocking the caller.
func CheckClipboard() error {
	probe := fmt.Sprintf("quill-doctor-%d", time.Now().UnixNano())

	type cbResult struct {
		err   error
		phase string
	}
	ch := make(chan cbResult, 1)
	go func() {
		previous, prevErr := clipboard.Read()
		if err := clipboard.Copy(probe); err != nil {
			ch <- cbResult{err: err, phase: "write"}
			return
		}
		got, err := clipboard.Read()
		if err != nil {
			ch <- cbResult{err: err, phase: "read"}
			return
		}
		if prevErr == nil {
			// Best effort, the probe already proved read/write works.
			_ = clipboard.Copy(previous)
		}
		if got != probe {
			ch <- cbResult{err: fmt.Errorf("wrote %q, got %q", probe, got), phase: "readback"}
			return
		}
		ch <- cbResult{}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return fmt.Errorf("clipboard %s failed: %w", res.phase, res.err)
		}
		return nil
	case <-time.After(clipboardTimeout):
		return fmt.Errorf("clipboard timed out after %s (clipboard tool hung?)", clipboardTimeout)
	}
}

// CheckTool verifies an external typing tool is on PATH.
func CheckTool(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	return nil
}

// Run executes the checks relevant to the configured input method, printing
// pass/fail lines to w. It returns 0 when all checks pass, 1 otherwise.
func Run(w io.Writer, cfg *config.Config) int {
	method, err := typist.ParseMethod(cfg.PostProcessing.InputMethod)
	if err != nil {
		fmt.Fprintf(w, "FAIL: %v\n", err)
		return 1
	}

	type check struct {
		name string
		fn   func() error
	}
	var checks []check
	switch method {
	case typist.MethodClipboard:
		checks = append(checks, check{"clipboard round-trip", CheckClipboard})
	case typist.MethodExternalType:
		cmd := cfg.PostProcessing.TypeCommand
		checks = append(checks, check{cmd + " on PATH", func() error { return CheckTool(cmd) }})
	case typist.MethodExternalStream:
		cmd := cfg.PostProcessing.StreamCommand
		checks = append(checks, check{cmd + " on PATH", func() error { return CheckTool(cmd) }})
	}

	allPass := true
	for i, c := range checks {
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(checks), c.name)
		if err := c.fn(); err != nil {
			fmt.Fprintf(w, "  FAIL: %v\n", err)
			allPass = false
			continue
		}
		fmt.Fprintln(w, "  PASS")
	}

	if !allPass {
		return 1
	}
	return 0
}
