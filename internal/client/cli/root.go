package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if id := a.api.Session().UserID; id != "" {
		s = id + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

func (a *App) help() {
	if a.api.LoggedIn() {
		fmt.Fprintln(a.out, "Available commands: like <id>, matches, likes, avatar, whoami, refresh, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}

// Root runs the REPL until exit or end of input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to gophmatch CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "gmatch %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if !a.dispatch(ctx, parts[0], parts[1:]) {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
	}
}

// dispatch runs one command and reports whether the REPL should continue.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	var err error

	switch cmd {
	case "help":
		a.help()
	case "register":
		err = a.Register(ctx)
	case "login":
		err = a.Login(ctx)
	case "refresh":
		err = a.Refresh(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "like":
		err = a.like(ctx, args)
	case "matches":
		err = a.matches(ctx)
	case "likes":
		err = a.likes(ctx)
	case "avatar":
		err = a.avatar(ctx)
	case "whoami":
		sess := a.api.Session()
		if sess.UserID == "" {
			fmt.Fprintln(a.out, "Not logged in")
		} else {
			fmt.Fprintf(a.out, "user %s, session %s\n", sess.UserID, sess.SessionID)
		}
	case "exit", "quit":
		return false
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}

	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
	return true
}
