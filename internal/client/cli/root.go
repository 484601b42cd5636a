package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.identity == nil {
		return "(not signed in)"
	}
	return fmt.Sprintf("(%s %s)", a.identity.Email, a.identity.Role)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to HeartTrack CLI (type 'help' for commands)")

	if err := a.api.Ping(ctx); err != nil {
		printlnFn("Warning:", err.Error())
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
