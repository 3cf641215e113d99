package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/logging"
)

// Build-time variables (set via ldflags), following the teacher's own
// cmd/agent/main.go convention.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var cli CLI
	app := NewApp("")
	kctx := kong.Parse(&cli, kongOptions(app)...)
	app.configPath = cli.Config

	err := kctx.Run()
	if err == nil {
		os.Exit(int(errs.ExitSuccess))
	}

	code := errs.ExitCodeOf(err)
	entry := logging.L().Error().Str("command", kctx.Command()).Int("exit_code", int(code))
	var typed *errs.Error
	if errors.As(err, &typed) {
		entry = entry.Int("error_kind", int(typed.Kind))
	}
	entry.Msg(err.Error())
	os.Exit(int(code))
}
