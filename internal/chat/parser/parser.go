package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"todochat/internal/chat"
	"todochat/internal/model"
	"todochat/pkg/datemath"
)

var (
	priorityHighRe   = regexp.MustCompile(`\b(high|top|critical|urgent|important)\b`)
	priorityMediumRe = regexp.MustCompile(`\b(medium|normal|regular)\b`)
	priorityLowRe    = regexp.MustCompile(`\b(low|bottom|least|minor)\b`)

	// priorityStripRe removes the whole priority clause from titles,
	// including the optional "with ... priority" framing around the keyword.
	priorityStripRe = regexp.MustCompile(`\b(?:with\s+)?(?:high|top|critical|urgent|important|medium|normal|regular|low|bottom|least|minor)\b(?:\s+priority\b)?`)

	tagRe = regexp.MustCompile(`#([a-zA-Z0-9_]+)`)

	dateYMDRe   = regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`)
	dateMDYRe   = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	todayRe     = regexp.MustCompile(`\btoday\b`)
	tomorrowRe  = regexp.MustCompile(`\btomorrow\b`)
	relDateRe   = regexp.MustCompile(`next\s+(?:week|month|year)|in\s+\d+\s+(?:minutes?|hours?|days?|weeks?|months?)`)

	recurDailyRe   = regexp.MustCompile(`\b(?:daily|every\s+day)\b`)
	recurWeeklyRe  = regexp.MustCompile(`\b(?:weekly|every\s+week|every\s+monday|every\s+tuesday|every\s+wednesday|every\s+thursday|every\s+friday|every\s+saturday|every\s+sunday)\b`)
	recurMonthlyRe = regexp.MustCompile(`\b(?:monthly|every\s+month)\b`)
	recurCustomRe  = regexp.MustCompile(`every\s+(\d+)\s+(days?|weeks?|months?)`)

	reminderPhraseRe = regexp.MustCompile(`remind\s+me\s+(?:in|at|before)`)
	reminderOffsetRe = regexp.MustCompile(`(\d+)\s+(minutes?|hours?|days?)`)

	searchQueryRe = regexp.MustCompile(`(?:find|search|look for|show me)\s+(.+?)(?:\s+with|\s+by|\s+due|$)`)
	filterHintRe  = regexp.MustCompile(`\b(?:with|by)\b`)
	filterPrioRe  = regexp.MustCompile(`\b(?:high|medium|low)\b`)
	sortHintRe    = regexp.MustCompile(`\b(?:sort|order)\b`)

	// commandPhrases are removed from titles after the directive strips.
	// Longer phrases first so "add a task to" goes before the bare "add".
	commandPhrases = []string{
		"add a task to", "add task to", "add to my list", "add to my tasks",
		"create a task to", "create task to", "create to", "create",
		"add", "new", "please", "can you", "could you", "would you",
		"i want to", "i need to", "i should", "i have to", "remember to",
		"don't forget to", "remind me to", "to do", "todo", "to-do",
	}

	verbPrefixRe = regexp.MustCompile(`(?i)^(?:(?:add|create|new|please|can you|could you|remember|remind me)\b\s*)+`)

	commandPhraseRes []*regexp.Regexp
)

func init() {
	for _, phrase := range commandPhrases {
		commandPhraseRes = append(commandPhraseRes, regexp.MustCompile(`\b`+regexp.QuoteMeta(phrase)+`\b`))
	}
}

// Parser pulls structured task attributes out of free-form chat text. All
// sub-extractions run independently; a single command may carry tags, a due
// date, a recurrence and a reminder at once. Safe for concurrent use.
type Parser struct {
	dates *datemath.Parser
	now   func() time.Time
}

func New(dates *datemath.Parser) *Parser {
	return &Parser{dates: dates, now: time.Now}
}

func (p *Parser) Extract(text string) chat.ParsedCommand {
	lower := strings.ToLower(text)

	cmd := chat.ParsedCommand{
		Priority:   extractPriority(lower),
		Tags:       extractTags(text),
		DueDate:    p.extractDueDate(lower),
		Recurrence: extractRecurrence(lower),
		Reminder:   extractReminder(lower),
	}
	extractSearch(lower, text, &cmd)
	cmd.Title = extractTitle(text, lower)
	return cmd
}

func extractPriority(lower string) model.TaskPriority {
	switch {
	case priorityHighRe.MatchString(lower):
		return model.PriorityHigh
	case priorityMediumRe.MatchString(lower):
		return model.PriorityMedium
	case priorityLowRe.MatchString(lower):
		return model.PriorityLow
	}
	return model.PriorityMedium
}

// extractTags keeps first-appearance order, drops duplicates and caps the
// list at 5 entries.
func extractTags(text string) []string {
	matches := tagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var tags []string
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		tags = append(tags, m[1])
		if len(tags) == 5 {
			break
		}
	}
	return tags
}

// extractDueDate resolves "today"/"tomorrow" to end of day and explicit
// numeric dates to midnight. Relative phrases like "next week" are left
// unresolved; malformed numeric dates are skipped silently.
func (p *Parser) extractDueDate(lower string) *time.Time {
	now := p.now().In(p.dates.Location())
	if todayRe.MatchString(lower) {
		t := p.dates.EndOfDay(now)
		return &t
	}
	if tomorrowRe.MatchString(lower) {
		t := p.dates.EndOfDay(now.AddDate(0, 0, 1))
		return &t
	}

	if m := dateYMDRe.FindStringSubmatch(lower); m != nil {
		return p.makeDate(m[1], m[2], m[3])
	}
	if m := dateMDYRe.FindStringSubmatch(lower); m != nil {
		// First component > 31 would have matched the year-first form
		// above, so this is month-first.
		return p.makeDate(m[3], m[1], m[2])
	}
	return nil
}

func (p *Parser) makeDate(year, month, day string) *time.Time {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y < 100 {
		y += 2000
	}
	dt := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, p.dates.Location())
	// time.Date normalizes out-of-range components; reject anything that
	// did not round-trip, e.g. 2026-02-31.
	if dt.Year() != y || int(dt.Month()) != mo || dt.Day() != d {
		return nil
	}
	return &dt
}

func extractRecurrence(lower string) chat.Recurrence {
	if recurDailyRe.MatchString(lower) {
		return chat.Recurrence{Pattern: model.RecurrenceDaily}
	}
	if recurWeeklyRe.MatchString(lower) {
		return chat.Recurrence{Pattern: model.RecurrenceWeekly}
	}
	if recurMonthlyRe.MatchString(lower) {
		return chat.Recurrence{Pattern: model.RecurrenceMonthly}
	}
	if m := recurCustomRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "week"):
			n *= 7
		case strings.HasPrefix(m[2], "month"):
			n *= 30
		}
		return chat.Recurrence{Pattern: model.RecurrenceCustom, IntervalDays: n}
	}
	return chat.Recurrence{}
}

func extractReminder(lower string) *chat.ReminderOffset {
	m := reminderOffsetRe.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	n, _ := strconv.Atoi(m[1])
	unit := chat.ReminderMinute
	switch {
	case strings.HasPrefix(m[2], "hour"):
		unit = chat.ReminderHour
	case strings.HasPrefix(m[2], "day"):
		unit = chat.ReminderDay
	}
	return &chat.ReminderOffset{Amount: n, Unit: unit}
}

// extractSearch fills the search/filter/sort directive fields. A search verb
// claims the command outright; otherwise filter and sort hints may combine.
func extractSearch(lower, text string, cmd *chat.ParsedCommand) {
	if m := searchQueryRe.FindStringSubmatch(lower); m != nil {
		cmd.SearchQuery = strings.TrimSpace(m[1])
		return
	}

	if filterHintRe.MatchString(lower) {
		if filterPrioRe.MatchString(lower) {
			cmd.Filter.Priority = extractPriority(lower)
		}
		cmd.Filter.Tags = extractTags(text)
	}

	if sortHintRe.MatchString(lower) {
		var field chat.SortField
		switch {
		case strings.Contains(lower, "due date"):
			field = chat.SortByDueDate
		case strings.Contains(lower, "priority"):
			field = chat.SortByPriority
		case strings.Contains(lower, "created"):
			field = chat.SortByCreatedAt
		case strings.Contains(lower, "title"):
			field = chat.SortByTitle
		}
		if field != "" {
			direction := "asc"
			if strings.Contains(lower, "desc") {
				direction = "desc"
			}
			cmd.Sort = &chat.SortDirective{Field: field, Direction: direction}
		}
	}
}

// extractTitle strips every recognized directive plus common command
// phrases from a lower-cased copy. When that leaves fewer than 2
// characters, it falls back to removing only a leading command-verb prefix
// from the original-case input, since aggressive stripping can over-delete
// short titles.
func extractTitle(text, lower string) string {
	cleaned := priorityStripRe.ReplaceAllString(lower, "")
	cleaned = tagRe.ReplaceAllString(cleaned, "")
	for _, re := range []*regexp.Regexp{recurDailyRe, recurWeeklyRe, recurMonthlyRe, recurCustomRe} {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = reminderPhraseRe.ReplaceAllString(cleaned, "")
	for _, re := range []*regexp.Regexp{dateYMDRe, dateMDYRe, todayRe, tomorrowRe, relDateRe} {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	for _, re := range commandPhraseRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	title := strings.Join(strings.Fields(cleaned), " ")
	if len(title) >= 2 {
		return title
	}
	return strings.TrimSpace(verbPrefixRe.ReplaceAllString(strings.TrimSpace(text), ""))
}
