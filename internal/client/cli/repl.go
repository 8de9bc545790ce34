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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Reload(ctx context.Context) error
	Projects(ctx context.Context) error
	SelectProject(ctx context.Context) error
	SelectActivity(ctx context.Context) error
	SelectSubActivity(ctx context.Context) error
	Form(ctx context.Context) error
	SetProgress(ctx context.Context) error
	SetNotes(ctx context.Context) error
	SetLocation(ctx context.Context) error
	AddPhoto(ctx context.Context) error
	AddPhotos(ctx context.Context) error
	Photos(ctx context.Context) error
	RemovePhoto(ctx context.Context) error
	Submit(ctx context.Context) error
	History(ctx context.Context) error
	Journal(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the field-reporting CLI.
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
//	  - login          — start a local session
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - projects       — list the project catalog
//	  - project        — select a project (clears activity and sub-activity)
//	  - activity       — select an activity (clears sub-activity)
//	  - sub            — select a sub-activity and load today's report
//	  - form           — show the current form state
//	  - progress | notes | location — edit form fields
//	  - photo          — attach a photo (camera)
//	  - gallery        — attach photos (gallery, multi-select)
//	  - photos         — list attachments with upload status
//	  - rmphoto        — remove an attachment (with confirmation)
//	  - submit         — send today's report
//	  - history        — browse submitted reports (remote)
//	  - journal        — show the local submission journal
//	  - reload         — refresh the project catalog
//	  - logout         — end the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("siger %s > ", statusFn()))
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
				printlnFn("Available commands: projects, project, activity, sub, form, progress, notes, location, photo, gallery, photos, rmphoto, submit, history, journal, reload, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "projects":
			_ = a.Projects(ctx)

		case "project":
			_ = a.SelectProject(ctx)

		case "activity":
			_ = a.SelectActivity(ctx)

		case "sub":
			_ = a.SelectSubActivity(ctx)

		case "form":
			_ = a.Form(ctx)

		case "progress":
			_ = a.SetProgress(ctx)

		case "notes":
			_ = a.SetNotes(ctx)

		case "location":
			_ = a.SetLocation(ctx)

		case "photo":
			_ = a.AddPhoto(ctx)

		case "gallery":
			_ = a.AddPhotos(ctx)

		case "photos":
			_ = a.Photos(ctx)

		case "rmphoto":
			_ = a.RemovePhoto(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "history":
			_ = a.History(ctx)

		case "journal":
			_ = a.Journal(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
