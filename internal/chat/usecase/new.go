package usecase

import (
	"todochat/internal/chat/composer"
	"todochat/internal/chat/intent"
	"todochat/internal/chat/parser"
	"todochat/internal/chat/resolver"
	"todochat/internal/conversation"
	"todochat/internal/task"
	pkgLog "todochat/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	taskUC   task.UseCase
	convRepo conversation.Repository

	classifier *intent.Classifier
	parser     *parser.Parser
	resolver   *resolver.Resolver
	composer   *composer.Composer
}

// New creates a new chat UseCase instance. The classifier and resolver are
// stateless and constructed here; the parser and composer carry
// configuration and are injected.
func New(
	l pkgLog.Logger,
	taskUC task.UseCase,
	convRepo conversation.Repository,
	p *parser.Parser,
	c *composer.Composer,
) *implUseCase {
	return &implUseCase{
		l:          l,
		taskUC:     taskUC,
		convRepo:   convRepo,
		classifier: intent.NewClassifier(),
		parser:     p,
		resolver:   resolver.New(),
		composer:   c,
	}
}
