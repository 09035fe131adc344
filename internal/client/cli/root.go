package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Root prints the welcome banner and runs the REPL over stdin.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Crack CLI (type 'help' for commands)")
	if a.identity != nil {
		fmt.Fprintf(a.out, "Logged in as %s %s\n", a.identity.Avatar, a.identity.Username)
	} else {
		fmt.Fprintln(a.out, "No account on this device yet. Use 'register' or 'login'")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
