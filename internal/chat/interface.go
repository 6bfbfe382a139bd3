package chat

import (
	"context"

	"todochat/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Interpret runs one user utterance through the interpreter pipeline
	// and returns the composed result. The reply is always non-empty;
	// interpretation failures degrade to canned replies rather than
	// surfacing an error to the caller.
	Interpret(ctx context.Context, sc model.Scope, text string) (CommandResult, error)
}
