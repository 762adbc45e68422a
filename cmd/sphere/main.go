package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"sphereoftech/internal/cli"
	"sphereoftech/internal/config"
	"sphereoftech/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	configDir := flagValue(args, "config")
	if configDir == "" {
		configDir = config.DefaultConfigDir()
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.File = cfg.Logging.File
	logCfg.FilePath = filepath.Join(configDir, "logs", "sphere.log")
	// Console logs would tear the full-screen dashboard.
	logCfg.Console = !isUICommand(args)
	logger := logging.NewLoggerWithConfig(logCfg)

	app, err := cli.NewApp(cfg, configDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.Close()

	if err := cli.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// flagValue finds --name value or --name=value before cobra parses args.
func flagValue(args []string, name string) string {
	long := "--" + name
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, long+"="); ok {
			return v
		}
		if arg == long && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// isUICommand reports whether the first command word starts the dashboard.
func isUICommand(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config" || arg == "--theme":
			i++
		case strings.HasPrefix(arg, "-"):
		default:
			return arg == "ui" || arg == "tui"
		}
	}
	return false
}
