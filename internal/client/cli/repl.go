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
	Log(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Admin(ctx context.Context) error
	Thresholds(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Archive(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a. The reader
// is shared with the input prompts. It returns on EOF or when the user types
// "exit" or "quit". Command errors are printed and the loop carries on.
//
//	Not logged in:  register, login, thresholds, help, exit
//	Logged in:      log, dashboard, admin, thresholds, export [all],
//	                archive, logout, help, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ht> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: log, (d)ashboard, admin, thresholds, export [all], archive, logout, exit")
			} else {
				printlnFn("Available commands: register, login, thresholds, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "log":
			err = a.Log(ctx)

		case "d", "dashboard":
			err = a.Dashboard(ctx)

		case "admin":
			err = a.Admin(ctx)

		case "thresholds":
			err = a.Thresholds(ctx)

		case "export":
			err = a.Export(ctx, args)

		case "archive":
			err = a.Archive(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
