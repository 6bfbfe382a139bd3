package composer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"todochat/internal/chat"
	"todochat/internal/conversation"
	"todochat/internal/model"
	"todochat/pkg/completion"
	pkgLog "todochat/pkg/log"
)

// Composer renders every user-facing reply. General queries go through the
// remote completion service; everything else, and every failure, resolves
// to a deterministic canned reply so the user never sees an empty or raw
// error response.
type Composer struct {
	l pkgLog.Logger

	// client is nil when no credential is configured; General then
	// short-circuits to the canned-reply path without attempting a call.
	client completion.IClient
}

func New(l pkgLog.Logger, client completion.IClient) *Composer {
	return &Composer{l: l, client: client}
}

// General answers an unclassified utterance with the completion service,
// passing the recent conversation turns as context. Any failure degrades to
// Canned; a safety block asks the user to rephrase instead.
func (c *Composer) General(ctx context.Context, history []conversation.Turn, text string) string {
	if c.client == nil {
		return c.Canned(text)
	}

	msgs := make([]completion.Message, 0, len(history)+1)
	for _, turn := range history {
		role := completion.RoleUser
		if turn.Role == conversation.RoleAssistant {
			role = completion.RoleAssistant
		}
		msgs = append(msgs, completion.Message{Role: role, Content: turn.Content})
	}
	msgs = append(msgs, completion.Message{Role: completion.RoleUser, Content: text})

	reply, err := c.client.Complete(ctx, msgs)
	if err != nil {
		if completion.IsSafetyBlocked(err) {
			return replySafetyBlock
		}
		c.l.Warnf(ctx, "chat.composer.General: completion failed, degrading: %v", err)
		return c.Canned(text)
	}
	return reply
}

// Canned picks a deterministic reply from a coarse keyword sniff over the
// raw text. It is the terminal fallback when the completion service is
// unavailable or unconfigured.
func (c *Composer) Canned(text string) string {
	lower := strings.ToLower(text)
	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("add", "create", "new"):
		return replyCannedAdd
	case containsAny("list", "show", "see", "display"):
		return replyCannedList
	case containsAny("complete", "done", "finish", "mark"):
		return replyCannedComplete
	case containsAny("delete", "remove"):
		return replyCannedDelete
	case containsAny("update", "change", "modify"):
		return replyCannedUpdate
	}
	return replyNotUnderstood
}

// Recovery is the dispatcher-boundary reply for an unexpected collaborator
// failure. It names the detected intent when there is one and keeps the
// diagnostic to a short suffix.
func (c *Composer) Recovery(in chat.Intent, err error) string {
	diag := "internal error"
	if err != nil {
		diag = err.Error()
		if len(diag) > maxDiagLen {
			cut := maxDiagLen
			for cut > 0 && !utf8.RuneStart(diag[cut]) {
				cut--
			}
			diag = diag[:cut]
		}
	}
	if in == chat.IntentOther {
		return fmt.Sprintf(replyRecoveryOther, diag)
	}
	return fmt.Sprintf(replyRecovery, in, diag)
}

func (c *Composer) TaskAdded(title string) string {
	return fmt.Sprintf(replyTaskAdded, title)
}

func (c *Composer) ClarifyAdd() string { return replyClarifyAdd }

// TaskList formats the list reply. completed narrows the wording: false is
// the pending view, true the completed view, nil everything.
func (c *Composer) TaskList(tasks []model.Task, completed *bool) string {
	if len(tasks) == 0 {
		switch {
		case completed == nil:
			return replyListEmptyAll
		case *completed:
			return replyListEmptyCompleted
		default:
			return replyListEmptyPending
		}
	}

	lines := formatTaskLines(tasks)
	if completed == nil {
		pending := 0
		for _, t := range tasks {
			if !t.Completed {
				pending++
			}
		}
		return fmt.Sprintf(replyListAll, len(tasks), pending, len(tasks)-pending, lines)
	}
	if *completed {
		return fmt.Sprintf(replyListCompleted, len(tasks), lines)
	}
	return fmt.Sprintf(replyListPending, len(tasks), lines)
}

func (c *Composer) TaskCompleted(title string) string {
	return fmt.Sprintf(replyTaskCompleted, title)
}

func (c *Composer) TaskReopened(title string) string {
	return fmt.Sprintf(replyTaskReopened, title)
}

func (c *Composer) CompleteNotFound() string { return replyCompleteNotFound }

func (c *Composer) TaskDeleted(title string) string {
	return fmt.Sprintf(replyTaskDeleted, title)
}

func (c *Composer) DeleteNotFound() string { return replyDeleteNotFound }

func (c *Composer) NothingToUpdate() string { return replyNothingToUpdate }

func (c *Composer) ClarifyUpdate() string { return replyClarifyUpdate }

func (c *Composer) TaskUpdated(title string) string {
	return fmt.Sprintf(replyTaskUpdated, title)
}

func (c *Composer) UpdateNotFound() string { return replyUpdateNotFound }

func (c *Composer) SearchResults(query string, matches []model.Task) string {
	switch len(matches) {
	case 0:
		return fmt.Sprintf(replySearchNone, query)
	case 1:
		return fmt.Sprintf(replySearchOne, query, formatTaskLines(matches))
	default:
		return fmt.Sprintf(replySearchMany, len(matches), query, formatTaskLines(matches))
	}
}

func (c *Composer) Help() string { return replyHelp }

func formatTaskLines(tasks []model.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, "- "+t.Title)
	}
	return strings.Join(lines, "\n")
}
