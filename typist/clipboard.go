package typist

import (
	"fmt"
	"time"

	"quill/keys"
	"quill/log"
)

// minSettle is the floor on the wait around clipboard writes. OS clipboard
// propagation is asynchronous; shorter waits race the paste against the
// write.
const minSettle = 20 * time.Millisecond

// typeClipboard pastes text through the system clipboard and restores the
// previous contents afterwards. A clipboard write failure redirects the
// whole text to the direct-key backend.
func (s *Simulator) typeClipboard(text string, delay time.Duration) error {
	log.Console(fmt.Sprintf("clipboard input: start len=%d delay=%s", len(text), delay))

	em, err := s.ensureEmitter()
	if err != nil {
		return err
	}

	settle := delay
	if settle < minSettle {
		settle = minSettle
	}
	modifier := keys.PasteModifier()
	log.Console(fmt.Sprintf("clipboard input: using settle delay %s with modifier %s", settle, modifier))

	previous, restorable := "", false
	switch v, err := s.readClip(); {
	case err != nil:
		log.Console(fmt.Sprintf("clipboard input: failed to read clipboard (%v); proceeding without restore", err))
	case v == text:
		restorable = true
		previous = v
		log.Console("clipboard input: previous clipboard already matches new text")
	default:
		restorable = true
		previous = v
		log.Console(fmt.Sprintf("clipboard input: captured previous clipboard len=%d", len(v)))
	}

	if err := s.copyClip(text); err != nil {
		log.Console(fmt.Sprintf("clipboard input: failed to copy text (%v); falling back to typing", err))
		return s.typeDirect(text, delay)
	}
	log.Console(fmt.Sprintf("clipboard input: copied new text len=%d", len(text)))

	s.sleep(settle)
	log.Console("clipboard input: invoking paste hotkey")

	err = em.Pressed(modifier, func() error {
		if err := em.Press('v'); err != nil {
			return err
		}
		return em.Release('v')
	})
	if err != nil {
		return err
	}

	s.sleep(settle)
	log.Console("clipboard input: post-paste delay complete")

	if restorable && previous != text {
		if err := s.copyClip(previous); err != nil {
			log.Console(fmt.Sprintf("clipboard input: failed to restore clipboard (%v)", err))
		} else {
			log.Console("clipboard input: previous clipboard restored")
		}
	} else {
		log.Console("clipboard input: no clipboard restore necessary")
	}
	return nil
}
