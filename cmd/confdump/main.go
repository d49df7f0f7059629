package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/twonms/config"
	"github.com/twonms/config/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "confdump: %v\n", err)
		os.Exit(1)
	}
}

// run parses the CLI surface, resolves the layered configuration, and
// writes the merged result as YAML to stdout.
func run(args []string, stdout io.Writer) error {
	app := kingpin.New("confdump", "Resolves layered application configuration and prints the merged result as YAML")
	pathFlag := app.Flag("path", "Directory containing YAML config files").Default("./conf").String()
	fileFlag := app.Flag("file", "Explicit config filename inside the config directory").String()
	envFlag := app.Flag("env", "Environment name used to derive the config filename (PROD, DEV, TEST, DEBUG)").Default("PROD").String()
	allowFlag := app.Flag("allow", "Environment variable admitted into the merge (repeatable)").Strings()
	requiredFlag := app.Flag("required", "YAML mapping of keys that must be present after the merge").String()
	debugFlag := app.Flag("debug", "Enable debug logging of source resolution").Bool()
	overrides := app.Arg("overrides", "key=value overrides applied with highest precedence").Strings()

	if _, err := app.Parse(args); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	logger, err := logging.New(*debugFlag)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := []config.Option{
		config.WithPath(*pathFlag),
		config.WithEnvironment(*envFlag),
		config.WithArgs(*overrides),
		config.WithLogger(logger),
	}
	if *fileFlag != "" {
		opts = append(opts, config.WithConfigFile(*fileFlag))
	}
	if len(*allowFlag) > 0 {
		opts = append(opts, config.WithAllowedEnvVars(*allowFlag...))
	}
	if *requiredFlag != "" {
		opts = append(opts, config.WithRequired(*requiredFlag))
	}

	cfg, err := config.Create(opts...)
	if err != nil {
		logger.Error("failed to resolve configuration", zap.Error(err))
		return err
	}

	out, err := cfg.Dump()
	if err != nil {
		logger.Error("failed to render configuration", zap.Error(err))
		return err
	}

	fmt.Fprint(stdout, out)
	return nil
}
