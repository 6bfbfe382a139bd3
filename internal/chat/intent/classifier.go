package intent

import (
	"regexp"
	"strings"

	"todochat/internal/chat"
)

// rule is one entry of the ordered pattern table. The first rule whose
// pattern matches wins, so noun-qualified patterns must come before the
// generic verb-only ones.
type rule struct {
	re *regexp.Regexp
	in chat.Intent
}

// family is one keyword category used by the counting fallback. Families
// are scored in slice order, which doubles as the tie-break order.
type family struct {
	in       chat.Intent
	keywords []string
}

// Classifier assigns exactly one intent to a chat utterance. It is
// stateless and safe for concurrent use.
type Classifier struct {
	rules    []rule
	families []family
}

func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{regexp.MustCompile(`(add|create|make|new|start|begin)\s+(a\s+|the\s+|an\s+)?(task|todo|item|note)`), chat.IntentAdd},
			{regexp.MustCompile(`(add|create|make)\s+(.+)`), chat.IntentAdd},

			{regexp.MustCompile(`(delete|remove|erase|get rid of|eliminate)\s+(a\s+|the\s+|an\s+)?(task|todo|item|note)`), chat.IntentDelete},
			{regexp.MustCompile(`(delete|remove)\s+(.+)`), chat.IntentDelete},

			{regexp.MustCompile(`(complete|finish|done|mark as complete|check off)\s+(a\s+|the\s+|an\s+)?(task|todo|item|number\s+\d+)`), chat.IntentComplete},
			{regexp.MustCompile(`(complete|finish|done|mark)\s+(.+)`), chat.IntentComplete},

			{regexp.MustCompile(`(update|change|modify|edit|rename|fix)\s+(a\s+|the\s+|an\s+)?(task|todo|item)`), chat.IntentUpdate},
			{regexp.MustCompile(`(update|change|modify|edit|rename|fix)\s+(.+)`), chat.IntentUpdate},

			{regexp.MustCompile(`(find|search|look for)\s+(.+)`), chat.IntentSearch},

			{regexp.MustCompile(`(show|list|display|view|see|what|give me|tell me)\s+(my\s+)?(tasks|todos|items|pending|completed|all)`), chat.IntentList},
			{regexp.MustCompile(`(show|list|display|view|see)\s+(.+)`), chat.IntentList},
		},
		families: []family{
			{chat.IntentAdd, []string{
				"add", "create", "new", "make", "remember", "remind",
				"put down", "set up", "establish", "generate", "start",
			}},
			{chat.IntentList, []string{
				"list", "show", "see", "view", "display", "all", "my",
				"what", "got", "have", "give me", "tell me", "list out",
			}},
			{chat.IntentComplete, []string{
				"complete", "done", "finish", "mark", "as done", "check",
				"accomplish", "achieve", "carry out", "execute", "tick off",
			}},
			{chat.IntentDelete, []string{
				"delete", "remove", "cancel", "erase", "get rid of",
				"eliminate", "clear", "scratch", "strike out", "dispose",
			}},
			{chat.IntentUpdate, []string{
				"update", "change", "modify", "edit", "rename", "fix",
				"alter", "adjust", "revise", "correct", "improve", "switch",
			}},
		},
	}
}

// Classify returns the intent of text. The ordered pattern table is tried
// first; if nothing matches, keyword counting picks the family with the
// strictly highest score. Ties go to the family evaluated first (add, list,
// complete, delete, update). All counts zero, or an empty input, yields
// IntentOther.
func (c *Classifier) Classify(text string) chat.Intent {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return chat.IntentOther
	}

	for _, r := range c.rules {
		if r.re.MatchString(text) {
			return r.in
		}
	}

	best := chat.IntentOther
	bestScore := 0
	for _, f := range c.families {
		score := 0
		for _, kw := range f.keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = f.in
			bestScore = score
		}
	}
	return best
}
