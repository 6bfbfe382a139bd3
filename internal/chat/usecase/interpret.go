package usecase

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"todochat/internal/chat"
	"todochat/internal/chat/composer"
	"todochat/internal/conversation"
	"todochat/internal/model"
	"todochat/internal/task"
)

const (
	// listWindow caps how many tasks a list reply shows.
	listWindow = 20

	// resolveWindow caps how many tasks ordinal and name references can
	// address.
	resolveWindow = 100
)

var (
	helpRe   = regexp.MustCompile(`(?i)^/?help$`)
	// The reference keeps any "task N" prefix so the resolver can index
	// ordinals; "the" alone is framing and stripped.
	renameRe = regexp.MustCompile(`(?i)(?:update|change|modify|rename|set)\s+(?:the\s+)?(.+?)\s+to\s+(.+)$`)

	newTitleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:change|update|modify|rename).*?\bto\b\s+['"]?(.*?)['"]?\s*$`),
		regexp.MustCompile(`(?i)(?:change|update|modify|rename)\s+['"]?(.*?)['"]?\s*$`),
		regexp.MustCompile(`(?i)^.*?(?:to|as)\s+['"]?(.*?)['"]?\s*$`),
	}
	newTitleFallbackRe = regexp.MustCompile(`(?i)^(?:change|update|modify|rename|to|set)\s+`)

	// genericRefRe matches task references that name no particular task,
	// e.g. "the task" or "it", which fall through to the most recent one.
	genericRefRe = regexp.MustCompile(`(?i)^(?:the\s+|my\s+)?(?:task|todo|item|it|this|that)?$`)
)

func (uc implUseCase) Interpret(ctx context.Context, sc model.Scope, text string) (chat.CommandResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.CommandResult{}, chat.ErrEmptyMessage
	}

	in := uc.classifier.Classify(text)

	conv, convErr := uc.convRepo.GetOrCreate(ctx, sc.UserID)
	if convErr != nil {
		uc.l.Errorf(ctx, "chat.usecase.Interpret: conversation log unavailable: %v", convErr)
	} else if err := uc.convRepo.AppendTurn(ctx, conv.ID, conversation.RoleUser, text); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Interpret: append user turn: %v", err)
	}

	res, err := uc.dispatch(ctx, sc, conv, in, text)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Interpret: %s branch failed: %v", in, err)
		res = chat.CommandResult{Reply: uc.composer.Recovery(in, err), Intent: in}
	}

	if convErr == nil {
		if err := uc.convRepo.AppendTurn(ctx, conv.ID, conversation.RoleAssistant, res.Reply); err != nil {
			uc.l.Warnf(ctx, "chat.usecase.Interpret: append assistant turn: %v", err)
		}
	}
	return res, nil
}

func (uc implUseCase) dispatch(ctx context.Context, sc model.Scope, conv conversation.Conversation, in chat.Intent, text string) (chat.CommandResult, error) {
	if helpRe.MatchString(text) {
		return chat.CommandResult{Reply: uc.composer.Help(), Intent: chat.IntentOther}, nil
	}

	switch in {
	case chat.IntentAdd:
		return uc.handleAdd(ctx, sc, text)
	case chat.IntentList:
		return uc.handleList(ctx, sc, text)
	case chat.IntentComplete:
		return uc.handleComplete(ctx, sc, text)
	case chat.IntentDelete:
		return uc.handleDelete(ctx, sc, text)
	case chat.IntentUpdate:
		return uc.handleUpdate(ctx, sc, text)
	case chat.IntentSearch:
		return uc.handleSearch(ctx, sc, text)
	default:
		return uc.handleGeneral(ctx, conv, text)
	}
}

func (uc implUseCase) handleAdd(ctx context.Context, sc model.Scope, text string) (chat.CommandResult, error) {
	cmd := uc.parser.Extract(text)
	if strings.TrimSpace(cmd.Title) == "" {
		return chat.CommandResult{Reply: uc.composer.ClarifyAdd(), Intent: chat.IntentAdd}, nil
	}

	input := task.CreateInput{
		Title:              cmd.Title,
		Priority:           cmd.Priority,
		Tags:               cmd.Tags,
		DueDate:            cmd.DueDate,
		RecurrencePattern:  cmd.Recurrence.Pattern,
		RecurrenceInterval: cmd.Recurrence.IntervalDays,
	}
	if cmd.Reminder != nil {
		input.ReminderOffset = cmd.Reminder.Code()
	}

	created, err := uc.taskUC.Create(ctx, sc, input)
	if err != nil {
		return chat.CommandResult{}, err
	}
	return chat.CommandResult{
		Reply:   uc.composer.TaskAdded(created.Title),
		Intent:  chat.IntentAdd,
		TaskID:  created.ID,
		Task:    snapshot(created),
		Mutated: true,
	}, nil
}

func (uc implUseCase) handleList(ctx context.Context, sc model.Scope, text string) (chat.CommandResult, error) {
	completed := completionFilter(text)
	out, err := uc.taskUC.List(ctx, sc, task.ListInput{Completed: completed, Limit: listWindow})
	if err != nil {
		return chat.CommandResult{}, err
	}
	return chat.CommandResult{
		Reply:  uc.composer.TaskList(out.Tasks, completed),
		Intent: chat.IntentList,
	}, nil
}

func (uc implUseCase) handleComplete(ctx context.Context, sc model.Scope, text string) (chat.CommandResult, error) {
	tasks, err := uc.recentTasks(ctx, sc)
	if err != nil {
		return chat.CommandResult{}, err
	}

	id, ok := uc.resolver.Resolve(text, chat.IntentComplete, tasks)
	if !ok {
		return chat.CommandResult{Reply: uc.composer.CompleteNotFound(), Intent: chat.IntentComplete}, nil
	}

	updated, err := uc.taskUC.ToggleCompletion(ctx, sc, id)
	if errors.Is(err, task.ErrTaskNotFound) {
		return chat.CommandResult{Reply: uc.composer.CompleteNotFound(), Intent: chat.IntentComplete}, nil
	}
	if err != nil {
		return chat.CommandResult{}, err
	}

	reply := uc.composer.TaskReopened(updated.Title)
	if updated.Completed {
		reply = uc.composer.TaskCompleted(updated.Title)
	}
	return chat.CommandResult{
		Reply:   reply,
		Intent:  chat.IntentComplete,
		TaskID:  updated.ID,
		Task:    snapshot(updated),
		Mutated: true,
	}, nil
}

func (uc implUseCase) handleDelete(ctx context.Context, sc model.Scope, text string) (chat.CommandResult, error) {
	tasks, err := uc.recentTasks(ctx, sc)
	if err != nil {
		return chat.CommandResult{}, err
	}

	id, ok := uc.resolver.Resolve(text, chat.IntentDelete, tasks)
	if !ok {
		return chat.CommandResult{Reply: uc.composer.DeleteNotFound(), Intent: chat.IntentDelete}, nil
	}

	target, ok := taskByID(tasks, id)
	if !ok {
		return chat.CommandResult{Reply: uc.composer.DeleteNotFound(), Intent: chat.IntentDelete}, nil
	}

	if err := uc.taskUC.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return chat.CommandResult{Reply: uc.composer.DeleteNotFound(), Intent: chat.IntentDelete}, nil
		}
		return chat.CommandResult{}, err
	}
	return chat.CommandResult{
		Reply:   uc.composer.TaskDeleted(target.Title),
		Intent:  chat.IntentDelete,
		TaskID:  id,
		Task:    snapshot(target),
		Mutated: true,
	}, nil
}

func (uc implUseCase) handleUpdate(ctx context.Context, sc model.Scope, text string) (chat.CommandResult, error) {
	tasks, err := uc.recentTasks(ctx, sc)
	if err != nil {
		return chat.CommandResult{}, err
	}
	if len(tasks) == 0 {
		return chat.CommandResult{Reply: uc.composer.NothingToUpdate(), Intent: chat.IntentUpdate}, nil
	}

	var (
		id       string
		ok       bool
		newTitle string
	)
	if m := renameRe.FindStringSubmatch(text); m != nil {
		id, ok = uc.resolver.Resolve(m[1], chat.IntentUpdate, tasks)
		newTitle = strings.TrimSpace(m[2])
		if !ok && genericRefRe.MatchString(strings.TrimSpace(m[1])) {
			id, ok = tasks[0].ID, true
		}
	} else {
		id, ok = uc.resolver.Resolve(text, chat.IntentUpdate, tasks)
		newTitle = extractNewTitle(text)
		if !ok {
			// "update my task" without a name targets the most recent
			// one, as the structured-form fallback above does.
			id, ok = tasks[0].ID, true
		}
	}
	if !ok {
		return chat.CommandResult{Reply: uc.composer.UpdateNotFound(), Intent: chat.IntentUpdate}, nil
	}
	if len(newTitle) < 2 {
		return chat.CommandResult{Reply: uc.composer.ClarifyUpdate(), Intent: chat.IntentUpdate}, nil
	}

	updated, err := uc.taskUC.Update(ctx, sc, task.UpdateInput{ID: id, Title: &newTitle})
	if errors.Is(err, task.ErrTaskNotFound) {
		return chat.CommandResult{Reply: uc.composer.UpdateNotFound(), Intent: chat.IntentUpdate}, nil
	}
	if err != nil {
		return chat.CommandResult{}, err
	}
	return chat.CommandResult{
		Reply:   uc.composer.TaskUpdated(updated.Title),
		Intent:  chat.IntentUpdate,
		TaskID:  updated.ID,
		Task:    snapshot(updated),
		Mutated: true,
	}, nil
}

func (uc implUseCase) handleSearch(ctx context.Context, sc model.Scope, text string) (chat.CommandResult, error) {
	cmd := uc.parser.Extract(text)
	out, err := uc.taskUC.List(ctx, sc, task.ListInput{Limit: resolveWindow})
	if err != nil {
		return chat.CommandResult{}, err
	}

	matches := filterTasks(out.Tasks, cmd)
	if cmd.Sort != nil {
		sortTasks(matches, *cmd.Sort)
	}
	return chat.CommandResult{
		Reply:  uc.composer.SearchResults(cmd.SearchQuery, matches),
		Intent: chat.IntentSearch,
	}, nil
}

func (uc implUseCase) handleGeneral(ctx context.Context, conv conversation.Conversation, text string) (chat.CommandResult, error) {
	var history []conversation.Turn
	if conv.ID != "" {
		turns, err := uc.convRepo.RecentTurns(ctx, conv.ID, composer.HistoryLimit)
		if err != nil {
			uc.l.Warnf(ctx, "chat.usecase.handleGeneral: recent turns: %v", err)
		} else {
			history = turns
		}
	}
	// The inbound turn was already appended to the log; drop it from the
	// context window so it is not sent twice.
	if n := len(history); n > 0 && history[n-1].Role == conversation.RoleUser && history[n-1].Content == text {
		history = history[:n-1]
	}

	return chat.CommandResult{
		Reply:  uc.composer.General(ctx, history, text),
		Intent: chat.IntentOther,
	}, nil
}

func (uc implUseCase) recentTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	out, err := uc.taskUC.List(ctx, sc, task.ListInput{Limit: resolveWindow})
	if err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// completionFilter derives the list view from status keywords. The pending
// check runs first so "not done" lands on the pending side.
func completionFilter(text string) *bool {
	lower := strings.ToLower(text)
	b := func(v bool) *bool { return &v }
	switch {
	case strings.Contains(lower, "pending"), strings.Contains(lower, "incomplete"), strings.Contains(lower, "not done"):
		return b(false)
	case strings.Contains(lower, "completed"), strings.Contains(lower, "done"), strings.Contains(lower, "finished"):
		return b(true)
	}
	return nil
}

func extractNewTitle(text string) string {
	for _, re := range newTitleRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" {
				return title
			}
		}
	}
	return strings.TrimSpace(newTitleFallbackRe.ReplaceAllString(text, ""))
}

// queryStopWords are filler words dropped from search queries so that
// "tasks about meeting" matches a task titled "Prep meeting agenda".
var queryStopWords = map[string]struct{}{
	"task": {}, "tasks": {}, "todo": {}, "todos": {}, "item": {}, "items": {},
	"about": {}, "the": {}, "a": {}, "an": {}, "my": {}, "all": {},
}

func queryTokens(query string) []string {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(query)) {
		f = strings.TrimPrefix(f, "#")
		if _, skip := queryStopWords[f]; skip || f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func filterTasks(tasks []model.Task, cmd chat.ParsedCommand) []model.Task {
	tokens := queryTokens(cmd.SearchQuery)
	matches := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		title := strings.ToLower(t.Title)
		miss := false
		for _, tok := range tokens {
			if !strings.Contains(title, tok) {
				miss = true
				break
			}
		}
		if miss {
			continue
		}
		if cmd.Filter.Priority != "" && t.Priority != cmd.Filter.Priority {
			continue
		}
		if !hasAllTags(t.Tags, cmd.Filter.Tags) {
			continue
		}
		matches = append(matches, t)
	}
	return matches
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var priorityRank = map[model.TaskPriority]int{
	model.PriorityLow:    0,
	model.PriorityMedium: 1,
	model.PriorityHigh:   2,
}

func sortTasks(tasks []model.Task, directive chat.SortDirective) {
	less := func(a, b model.Task) bool {
		switch directive.Field {
		case chat.SortByDueDate:
			switch {
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			default:
				return a.DueDate.Before(*b.DueDate)
			}
		case chat.SortByPriority:
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		case chat.SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if directive.Direction == "desc" {
			return less(tasks[j], tasks[i])
		}
		return less(tasks[i], tasks[j])
	})
}

func taskByID(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func snapshot(t model.Task) *chat.TaskSnapshot {
	return &chat.TaskSnapshot{
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}
