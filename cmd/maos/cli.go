// Package main defines the CLI structure using kong (§6 command
// surface): one subcommand per hook event, each with a kong-bound Run
// method so kong's own dispatch (not a hand-rolled argv switch) drives
// the nine-subcommand table. The teacher's own cmd/agent/cli.go declares
// its CLI struct the same way but cmd/agent/main.go never calls
// kong.Parse().Run() — it falls back to a manual os.Args switch. This
// repo completes the pattern the teacher's own struct tags already imply,
// binding the lazily constructed App via kong.Bind.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/maos-project/maos/internal/event"
	"github.com/maos-project/maos/internal/handlers"
	"github.com/maos-project/maos/internal/stdin"
)

// CLI is the top-level kong command tree (§6).
type CLI struct {
	Config string `help:"Path to a TOML config file overriding compiled-in defaults."`

	PreToolUse       PreToolUseCmd       `cmd:"" name:"pre-tool-use" help:"Process pre-tool-use hook."`
	PostToolUse      PostToolUseCmd      `cmd:"" name:"post-tool-use" help:"Process post-tool-use hook."`
	Notify           NotifyCmd           `cmd:"" name:"notify" help:"Handle notification messages."`
	Stop             StopCmd             `cmd:"" name:"stop" help:"Process session stop events."`
	SubagentStop     SubagentStopCmd     `cmd:"" name:"subagent-stop" help:"Handle subagent stop events."`
	UserPromptSubmit UserPromptSubmitCmd `cmd:"" name:"user-prompt-submit" help:"Process user prompt submissions."`
	PreCompact       PreCompactCmd       `cmd:"" name:"pre-compact" help:"Handle pre-compact events."`
	SessionStart     SessionStartCmd     `cmd:"" name:"session-start" help:"Handle session start events."`
	Version          VersionCmd          `cmd:"" help:"Show version information."`
}

// PreToolUseCmd processes pre_tool_use hook events.
type PreToolUseCmd struct{}

func (PreToolUseCmd) Run(app *App) error { return runHook(app, handlers.Options{}) }

// PostToolUseCmd processes post_tool_use hook events.
type PostToolUseCmd struct{}

func (PostToolUseCmd) Run(app *App) error { return runHook(app, handlers.Options{}) }

// NotifyCmd handles notification hook events.
type NotifyCmd struct{}

func (NotifyCmd) Run(app *App) error { return runHook(app, handlers.Options{}) }

// StopCmd processes stop hook events.
type StopCmd struct {
	Chat bool `help:"Export the transcript named by transcript_path as command output."`
}

func (c StopCmd) Run(app *App) error {
	return runHook(app, handlers.Options{Chat: c.Chat})
}

// SubagentStopCmd handles subagent_stop hook events.
type SubagentStopCmd struct{}

func (SubagentStopCmd) Run(app *App) error { return runHook(app, handlers.Options{}) }

// UserPromptSubmitCmd processes user_prompt_submit hook events.
type UserPromptSubmitCmd struct {
	Validate bool `help:"Run validation only; always exit 0 with a JSON verdict."`
}

func (c UserPromptSubmitCmd) Run(app *App) error {
	return runHook(app, handlers.Options{Validate: c.Validate})
}

// PreCompactCmd handles pre_compact hook events.
type PreCompactCmd struct{}

func (PreCompactCmd) Run(app *App) error { return runHook(app, handlers.Options{}) }

// SessionStartCmd handles session_start hook events.
type SessionStartCmd struct{}

func (SessionStartCmd) Run(app *App) error { return runHook(app, handlers.Options{}) }

// VersionCmd prints build version information and exits 0 without
// touching config, metrics, or the dispatcher (§5: "--help/--version
// paths never touch them").
type VersionCmd struct{}

func (VersionCmd) Run() error {
	fmt.Printf("maos version %s (commit: %s)\n", version, commit)
	return nil
}

// runHook is the shared body every hook subcommand's Run delegates to:
// read one JSON event from stdin, dispatch it, and print any output.
func runHook(app *App, opts handlers.Options) error {
	dispatcher, err := app.Dispatcher()
	if err != nil {
		return err
	}

	cfg, cfgErr := app.Config()
	if cfgErr != nil {
		return cfgErr
	}

	var ev event.Event
	reader := stdin.New(os.Stdin, stdin.Options{
		MaxInputSize: cfg.System.MaxInputSizeBytes,
		MaxJSONDepth: cfg.System.MaxJSONDepth,
	})
	if readErr := reader.ReadJSON(context.Background(), &ev); readErr != nil {
		return readErr
	}

	result, dispatchErr := dispatcher.Dispatch(context.Background(), &ev, opts)
	if dispatchErr != nil {
		return dispatchErr
	}

	if result.Output != "" {
		fmt.Fprintln(os.Stdout, result.Output)
	}
	return nil
}

// kongOptions builds the kong.Parse options binding app into every
// command's Run method.
func kongOptions(app *App) []kong.Option {
	return []kong.Option{
		kong.Bind(app),
		kong.Name("maos"),
		kong.Description("Adjudicates Claude Code hook events: validate, dispatch, exit."),
		kong.Vars{"version": version},
	}
}
