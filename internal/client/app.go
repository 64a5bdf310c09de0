// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package client

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/service"
)

// App dispatches vault maintenance commands against the service layer.
type App struct {
	services *service.Services
	out      io.Writer
	in       io.Reader
	logger   *logger.Logger
}

// NewApp wires the CLI over the given services. Output goes to stdout and
// confirmations are read from stdin; tests substitute both.
func NewApp(services *service.Services, log *logger.Logger) *App {
	return &App{
		services: services,
		out:      os.Stdout,
		in:       os.Stdin,
		logger:   log,
	}
}

// Run executes the subcommand named by args[0]. An empty args prints usage.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = a.logger.WithContext(ctx)

	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	command, rest := args[0], args[1:]
	switch command {
	case "init":
		return a.runInit(ctx)
	case "users":
		return a.runUsers(ctx)
	case "backup":
		return a.runBackup(ctx, rest)
	case "restore":
		return a.runRestore(ctx, rest)
	case "reset":
		return a.runReset(ctx, rest)
	default:
		a.printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "Usage: tourvault <command> [options]")
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  init                    seed empty stores with first-run defaults")
	fmt.Fprintln(a.out, "  users                   list all accounts")
	fmt.Fprintln(a.out, "  backup [-o file] [-clipboard]")
	fmt.Fprintln(a.out, "                          export a backup document")
	fmt.Fprintln(a.out, "  restore <file>          import a backup document")
	fmt.Fprintln(a.out, "  reset [-y]              wipe all stores and reseed defaults")
}

func (a *App) runInit(ctx context.Context) error {
	if err := a.services.Backup.Init(ctx); err != nil {
		return fmt.Errorf("initialisation failed: %w", err)
	}

	fmt.Fprintln(a.out, "vault initialised")
	return nil
}

func (a *App) runUsers(ctx context.Context) error {
	users, err := a.services.Accounts.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "no accounts stored")
		return nil
	}

	for _, user := range users {
		status := "pending"
		if user.IsVerified {
			status = "verified"
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", user.ID, user.Username, user.Role, status)
	}
	return nil
}

func (a *App) runBackup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	fs.SetOutput(a.out)
	outPath := fs.String("o", "", "write the backup document to this file instead of stdout")
	toClipboard := fs.Bool("clipboard", false, "copy the backup document to the system clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	document, err := a.services.Backup.Backup(ctx)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	if *toClipboard {
		if err := clipboard.WriteAll(document); err != nil {
			return fmt.Errorf("failed to copy backup to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "backup copied to clipboard")
		return nil
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(document), 0600); err != nil {
			return fmt.Errorf("failed to write backup file: %w", err)
		}
		fmt.Fprintf(a.out, "backup written to %s\n", *outPath)
		return nil
	}

	fmt.Fprintln(a.out, document)
	return nil
}

func (a *App) runRestore(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("restore expects exactly one argument: the backup file")
	}

	document, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if err := a.services.Backup.Restore(ctx, document); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Fprintln(a.out, "backup restored")
	return nil
}

func (a *App) runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.SetOutput(a.out)
	assumeYes := fs.Bool("y", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*assumeYes && !a.confirm("This wipes all stored data and reseeds defaults. Continue? [y/N] ") {
		fmt.Fprintln(a.out, "aborted")
		return nil
	}

	if err := a.services.Backup.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Fprintln(a.out, "vault reset to first-run state")
	return nil
}

func (a *App) confirm(prompt string) bool {
	fmt.Fprint(a.out, prompt)

	answer, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
