package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Reset(ctx context.Context) error
	Logout(ctx context.Context) error
	Onboard(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SwitchTab(ctx context.Context, arg string) error
	ListProducts(ctx context.Context) error
	AddProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context, arg string) error
	Toggle(ctx context.Context, arg string) error
	Today(ctx context.Context) error
	Score(ctx context.Context) error
	ListPhotos(ctx context.Context) error
	AddPhoto(ctx context.Context) error
	DeletePhoto(ctx context.Context, arg string) error
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.user.Name, a.tab)
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to SkinSync (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back. The loop
// exits on scanner EOF or "exit"/"quit". Command errors are already shown
// to the user by the handlers and are ignored here to keep the loop alive.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("skinsync %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: onboard, profile, edit, tab <morning|night>, products, add, del <n>, toggle <n>, today, score, photos, addphoto, delphoto <n>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "onboard":
			_ = a.Onboard(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "tab":
			_ = a.SwitchTab(ctx, arg)

		case "p", "products":
			_ = a.ListProducts(ctx)

		case "add":
			_ = a.AddProduct(ctx)

		case "del":
			_ = a.DeleteProduct(ctx, arg)

		case "t", "toggle":
			_ = a.Toggle(ctx, arg)

		case "today":
			_ = a.Today(ctx)

		case "score":
			_ = a.Score(ctx)

		case "photos":
			_ = a.ListPhotos(ctx)

		case "addphoto":
			_ = a.AddPhoto(ctx)

		case "delphoto":
			_ = a.DeletePhoto(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
