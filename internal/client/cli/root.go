package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ondoapp/ondo-cli/internal/client/services"
)

func (a *App) getStatus() string {
	if a.session.State() != services.StateAuthenticated {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.User().Email)
}

// Root restores the session and runs the command loop until exit/EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to ondo (type 'help' for commands)")

	state := a.session.Restore(ctx)
	if state == services.StateAuthenticated {
		fmt.Fprintf(a.out, "Restored session for %s\n", a.session.User().Email)
		if err := a.data.Refresh(ctx); err != nil {
			fmt.Fprintf(a.out, "Could not refresh data: %s\n", err.Error())
		}
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "ondo %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: radar, categories, personas, addcat <name>, refresh, aitest, chat, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, register, health, exit")
			}
		case "login":
			a.Login(ctx)
		case "register":
			a.Register(ctx)
		case "logout":
			a.Logout(ctx)
		case "radar":
			a.radar(ctx)
		case "categories":
			a.categories(ctx)
		case "personas":
			a.personas(ctx)
		case "addcat":
			a.addCategory(ctx, strings.Join(args, " "))
		case "refresh":
			a.refresh(ctx)
		case "health":
			a.health(ctx)
		case "aitest":
			a.aiTest(ctx)
		case "chat":
			a.aiChat(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
