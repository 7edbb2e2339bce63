package telegram

import (
	"sync"
	"time"
)

// A clarify answer only makes sense shortly after the question.
const pendingTTL = 10 * time.Minute

type pendingClarify struct {
	Prompt string
	At     time.Time
}

var pendingPrompts sync.Map // chatID -> *pendingClarify

func setPending(chatID int64, prompt string) {
	pendingPrompts.Store(chatID, &pendingClarify{Prompt: prompt, At: time.Now()})
}

func pendingPrompt(chatID int64) (string, bool) {
	v, ok := pendingPrompts.Load(chatID)
	if !ok {
		return "", false
	}
	p := v.(*pendingClarify)
	if time.Since(p.At) > pendingTTL {
		pendingPrompts.Delete(chatID)
		return "", false
	}
	return p.Prompt, true
}

func clearPending(chatID int64) {
	pendingPrompts.Delete(chatID)
}
