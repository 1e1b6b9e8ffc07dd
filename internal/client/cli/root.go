package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := a.session.Snapshot()
	if !s.Authenticated() {
		return ""
	}
	return fmt.Sprintf("(%s)", s.User.Username)
}

// Root runs the interactive loop until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")
	if _, ok, _ := a.authService.Token(ctx); ok {
		fmt.Fprintln(a.out, msgTokenOnFile)
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
