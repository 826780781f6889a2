// Package typist injects text into the focused window. A Simulator is bound
// to one typing backend at construction: direct key synthesis, clipboard
// paste, or one of two external command-line injectors.
package typist

import (
	"fmt"
	"os"
	"time"

	"quill/clipboard"
	"quill/config"
	"quill/keys"
	"quill/log"
)

// Method is the typing backend, fixed for the Simulator's lifetime.
type Method int

const (
	MethodDirectKey Method = iota
	MethodClipboard
	MethodExternalType
	MethodExternalStream
)

func ParseMethod(s string) (Method, error) {
	switch s {
	case "direct-key":
		return MethodDirectKey, nil
	case "clipboard":
		return MethodClipboard, nil
	case "external-type":
		return MethodExternalType, nil
	case "external-stream":
		return MethodExternalStream, nil
	}
	return 0, fmt.Errorf("unknown input method %q", s)
}

func (m Method) String() string {
	switch m {
	case MethodDirectKey:
		return "direct-key"
	case MethodClipboard:
		return "clipboard"
	case MethodExternalType:
		return "external-type"
	case MethodExternalStream:
		return "external-stream"
	}
	return "unknown"
}

// Simulator types text through the backend selected at construction.
// Typewrite is blocking and must not be called concurrently on the same
// instance.
type Simulator struct {
	method    Method
	delay     time.Duration
	typeCmd   string
	streamCmd string

	emitter keys.Emitter // created lazily, eagerly for direct-key/clipboard
	proc    *streamProc  // alive iff method is external-stream

	// seams for tests
	newEmitter func() (keys.Emitter, error)
	readClip   func() (string, error)
	copyClip   func(string) error
	sleep      func(time.Duration)
	runCmd     func(name string, args ...string) error
	fatalf     func(format string, args ...any)
}

// New builds a Simulator for the configured input method. For direct-key and
// clipboard the key emitter is created up front; for external-stream the
// persistent child process is started and a spawn failure fails construction.
func New(cfg *config.Config) (*Simulator, error) {
	method, err := ParseMethod(cfg.PostProcessing.InputMethod)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		method:    method,
		delay:     cfg.PostProcessing.Delay(),
		typeCmd:   cfg.PostProcessing.TypeCommand,
		streamCmd: cfg.PostProcessing.StreamCommand,

		newEmitter: func() (keys.Emitter, error) { return keys.NewEmitter() },
		readClip:   clipboard.Read,
		copyClip:   clipboard.Copy,
		sleep:      time.Sleep,
		runCmd:     runCommand,
		fatalf:     fatalExit,
	}

	switch method {
	case MethodDirectKey, MethodClipboard:
		if _, err := s.ensureEmitter(); err != nil {
			return nil, fmt.Errorf("creating key emitter: %w", err)
		}
	case MethodExternalStream:
		if err := s.startStream(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Method reports the backend selected at construction.
func (s *Simulator) Method() Method {
	return s.method
}

// Typewrite delivers text to the focused window through the selected
// backend. It blocks until the text has been handed off.
func (s *Simulator) Typewrite(text string) error {
	switch s.method {
	case MethodDirectKey:
		return s.typeDirect(text, s.delay)
	case MethodClipboard:
		return s.typeClipboard(text, s.delay)
	case MethodExternalType:
		return s.typeExternal(text, s.delay)
	case MethodExternalStream:
		return s.typeStream(text, s.delay)
	}
	return fmt.Errorf("no backend for method %v", s.method)
}

func (s *Simulator) ensureEmitter() (keys.Emitter, error) {
	if s.emitter == nil {
		em, err := s.newEmitter()
		if err != nil {
			return nil, err
		}
		s.emitter = em
	}
	return s.emitter, nil
}

// typeDirect emits one press+release per character in order, sleeping the
// delay after each. Characters the emitter rejects fail the call.
func (s *Simulator) typeDirect(text string, delay time.Duration) error {
	em, err := s.ensureEmitter()
	if err != nil {
		return err
	}
	for _, r := range text {
		if err := em.Press(r); err != nil {
			return err
		}
		if err := em.Release(r); err != nil {
			return err
		}
		s.sleep(delay)
	}
	return nil
}

func fatalExit(format string, args ...any) {
	log.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
