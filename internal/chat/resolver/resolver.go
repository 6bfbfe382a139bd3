package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"todochat/internal/chat"
	"todochat/internal/model"
)

var (
	ordinalRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)task\s+#?(\d+)`),
		regexp.MustCompile(`(?i)number\s+(\d+)`),
		regexp.MustCompile(`#(\d+)`),
	}

	verbNameRe = regexp.MustCompile(`(?i)(?:complete|finish|done|mark as complete|delete|remove|erase|update|change|modify|rename)\s+(?:the\s+)?(?:task\s+)?(.+)`)

	stopWordRe = regexp.MustCompile(`(?i)\b(?:delete|remove|complete|finish|done|mark|as|the|task)\b`)
)

// Resolver maps an utterance to the stored task it refers to. The caller
// supplies the task list in display order, newest first; ordinal references
// index into that exact list.
type Resolver struct{}

func New() *Resolver {
	return &Resolver{}
}

// Resolve returns the identifier of the referenced task. Strategies are
// tried in order and the first success wins: explicit ordinal, verb-qualified
// name substring, stop-word-stripped substring, then a most-recent fallback
// for complete and delete. An out-of-range ordinal is a definitive miss and
// skips the remaining strategies. The second return is false when nothing
// matched.
func (r *Resolver) Resolve(text string, in chat.Intent, tasks []model.Task) (string, bool) {
	for _, re := range ordinalRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > len(tasks) {
			return "", false
		}
		return tasks[n-1].ID, true
	}

	if m := verbNameRe.FindStringSubmatch(text); m != nil {
		if id, ok := matchTitle(m[1], tasks); ok {
			return id, true
		}
	}

	cleaned := strings.Join(strings.Fields(stopWordRe.ReplaceAllString(text, "")), " ")
	if cleaned != "" {
		if id, ok := matchTitle(cleaned, tasks); ok {
			return id, true
		}
	}

	if (in == chat.IntentComplete || in == chat.IntentDelete) && len(tasks) > 0 {
		return tasks[0].ID, true
	}
	return "", false
}

func matchTitle(name string, tasks []model.Task) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), name) {
			return t.ID, true
		}
	}
	return "", false
}
