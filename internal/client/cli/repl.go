package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Settings(ctx context.Context) error
	Avatar(ctx context.Context) error
	Balance(ctx context.Context) error
	TopUp(ctx context.Context) error
	Gifts(ctx context.Context) error
	Send(ctx context.Context) error
	Contacts(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Crack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — log in with a username
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - profile        — show profile and balance
//	  - settings       — edit profile fields
//	  - avatar         — pick an avatar glyph
//	  - balance        — show the credit balance
//	  - topup          — buy a coin package
//	  - gifts          — browse the gift catalog
//	  - send           — send a gift to a contact
//	  - contacts       — list the peer directory
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("crack %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, settings, avatar, balance, topup, gifts, send, contacts, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "avatar":
			_ = a.Avatar(ctx)

		case "b", "balance":
			_ = a.Balance(ctx)

		case "topup":
			_ = a.TopUp(ctx)

		case "g", "gifts":
			_ = a.Gifts(ctx)

		case "send":
			_ = a.Send(ctx)

		case "contacts":
			_ = a.Contacts(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
