package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal"
	pkgconfig "github.com/starford/ansuz/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadIfPresent(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}
	if data := cmd.String("data"); data != "" {
		opts = append(opts, internal.WithDataPath(data))
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "ansuz",
		Usage:  "Keyboard-driven note taking that lives in your terminal",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the notes database (overrides config)",
				Sources: cli.EnvVars("APP_DATA_FILE"),
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		// The session may have installed a file-only logger; the fatal
		// report must still reach the error stream.
		fmt.Fprintf(os.Stderr, "ansuz: %v\n", err)
		os.Exit(1)
	}
}
