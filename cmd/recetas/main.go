// Command recetas is a small CLI client for the recetas API. It keeps the
// session in the user's config directory, so a login survives across
// invocations until it expires or the user logs out.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mikens/recetas-api/internal/client/api"
	"github.com/mikens/recetas-api/internal/client/session"
)

const defaultServer = "http://localhost:8080"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("recetas", flag.ExitOnError)
	server := flags.String("server", defaultServer, "API base URL")
	flags.Usage = usage
	_ = flags.Parse(args)

	if flags.NArg() == 0 {
		usage()
		return nil
	}

	dir, err := session.DefaultDir()
	if err != nil {
		return err
	}
	store, err := session.NewFileStore(dir)
	if err != nil {
		return err
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@mikens.com"
	}

	mgr := session.NewManager(api.New(*server), store, adminEmail)
	mgr.Rehydrate()

	ctx := context.Background()
	cmd, rest := flags.Arg(0), flags.Args()[1:]

	switch cmd {
	case "register":
		return register(ctx, mgr, rest)
	case "login":
		return login(ctx, mgr, rest)
	case "logout":
		if err := mgr.Logout(); err != nil {
			return err
		}
		fmt.Println("Sesión cerrada")
		return nil
	case "forget":
		return mgr.ForgetEmail()
	case "whoami":
		return whoami(mgr)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func register(ctx context.Context, mgr *session.Manager, args []string) error {
	flags := flag.NewFlagSet("register", flag.ExitOnError)
	nombre := flags.String("nombre", "", "display name")
	email := flags.String("email", "", "email address")
	_ = flags.Parse(args)

	password, err := readPassword()
	if err != nil {
		return err
	}

	msg, err := mgr.Register(ctx, *nombre, *email, password)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	fmt.Println("Ahora inicia sesión con: recetas login")
	return nil
}

func login(ctx context.Context, mgr *session.Manager, args []string) error {
	flags := flag.NewFlagSet("login", flag.ExitOnError)
	email := flags.String("email", "", "email address")
	remember := flags.Bool("remember", false, "remember this email for next time")
	_ = flags.Parse(args)

	addr := *email
	if addr == "" {
		if addr = mgr.RememberedEmail(); addr != "" {
			fmt.Println("usando email recordado:", addr)
		}
	}
	if addr == "" {
		return fmt.Errorf("email required (use -email)")
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	if err := mgr.Login(ctx, addr, password, *remember); err != nil {
		return err
	}

	user, _ := mgr.CurrentUser()
	fmt.Printf("Login exitoso: %s (%s)\n", user.Nombre, mgr.Role())
	return nil
}

func whoami(mgr *session.Manager) error {
	user, ok := mgr.CurrentUser()
	if !ok {
		fmt.Println("invitado (sin sesión)")
		return nil
	}
	fmt.Printf("%s <%s> rol: %s\n", user.Nombre, user.Email, mgr.Role())
	return nil
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Contraseña: ")
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	// Piped input, e.g. in scripts.
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `uso: recetas [-server URL] <command>

commands:
  register -nombre NAME -email EMAIL   create an account (prompts for password)
  login    [-email EMAIL] [-remember]  start a session (prompts for password)
  logout                               end the session
  forget                               drop the remembered email
  whoami                               show the active identity and role
`)
}
