package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
	flag "github.com/spf13/pflag"

	"github.com/rowantrollope/pathkit/internal/bookmark"
	"github.com/rowantrollope/pathkit/internal/cli"
	"github.com/rowantrollope/pathkit/internal/cmd"
	"github.com/rowantrollope/pathkit/internal/config"
	"github.com/rowantrollope/pathkit/internal/logger"
	"github.com/rowantrollope/pathkit/internal/output"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.DefaultConfig()
	if err := cfg.LoadEnv(nil); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 2
	}

	// Custom flag set to avoid os.Exit on parse error
	flags := flag.NewFlagSet("pathkit", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.SetInterspersed(false) // Stop parsing at first non-flag arg (the command)
	cfg.RegisterFlags(flags)
	showVersion := flags.Bool("version", false, "Show version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 2
	}
	cfg.Args = flags.Args()

	if *showVersion {
		fmt.Fprintf(stdout, "pathkit %s\n", version)
		return 0
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 2
	}

	useColor := cfg.ShouldColor()
	if !useColor {
		color.NoColor = true
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Writer = stderr
	log := logger.New(logCfg)

	formatter := output.NewFormatter(cfg.JSON, useColor)
	formatter.Writer = stdout
	formatter.ErrWriter = stderr

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	defer closeStore()

	router := cmd.NewRouter(store, cfg, formatter, log)

	// Single-command mode: re-quote args so empty segments survive the tokenizer
	if len(cfg.Args) > 0 {
		if err := router.Execute(ctx, quoteArgs(cfg.Args)); err != nil {
			formatter.Errorf("%s\n", err)
			return 1
		}
		return 0
	}

	repl := cli.NewREPL(router)
	if err := repl.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// openStore selects the bookmark backend named by cfg.Store.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (bookmark.Namespaced, func(), error) {
	if cfg.Store != config.StoreRedis {
		log.Debug("using memory bookmark store", "namespace", cfg.Namespace)
		return bookmark.NewMemoryStore(cfg.Namespace), func() {}, nil
	}

	opts, err := cfg.RedisOptions()
	if err != nil {
		return nil, nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("cannot connect to Redis at %s: %w", cfg.Addr(), err)
	}
	log.Info("connected to redis", "addr", cfg.Addr(), "namespace", cfg.Namespace)

	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Warn("closing redis client", "error", err)
		}
	}
	return bookmark.NewRedisStore(rdb, cfg.Namespace), closeFn, nil
}

// quoteArgs turns shell-split args back into a single tokenizable line.
func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}
