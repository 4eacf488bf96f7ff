// naronbenh answers whether coordinates lie inside the Naron Benh building or
// its perimeter, and renders both as images and binary dumps.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wurstmineberg/naronbenh/internal/config"
	"github.com/wurstmineberg/naronbenh/internal/logger"
)

// Exit statuses.
const (
	exitOK      = 0
	exitOutside = 1 // also used for runtime errors
	exitUsage   = 2
)

func main() {
	config.ParseFlags()
	os.Exit(run(config.Args(), os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return exitUsage
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "Logger error: %v\n", err)
		return exitOutside
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	a := newApp(cfg, stdout, logger.Named("naronbenh"))

	command, rest := args[0], args[1:]
	code, err := a.dispatch(command, rest)
	if err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr, ue.Error())
			return exitUsage
		}
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitOutside
	}
	return code
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `naronbenh - Naron Benh building and perimeter tool

Usage:
  naronbenh [flags] <command> [arguments]

Commands:
  check-building <x> <y> <z>   Check whether a block is inside the building
  check-perimeter <x> <z>      Check whether a column is inside the perimeter
  draw-building                Render one image per y level to building/y<y>
  draw-perimeter               Render the perimeter to perimeter
  dump-building                Write all building layers to naron-benh-building.bin
  dump-perimeter               Write all perimeter rows to naron-benh-perimeter.bin
  plot-building                Chart the building area per y level
  write-config <path>          Write the effective config as YAML
  help                         Show this message

Flags:
  -config <path>    Config file (default ./naronbenh.yaml)
  -verbose, -v      Print progress at phase boundaries
  -debug            Enable debug logging
  -workers <n>      Render workers (0 = one per CPU)
  -out <dir>        Output directory (default assets)
  -format <fmt>     Image format: png, bmp, tiff
  -log-file <path>  Also log to a rotated file

check-* commands exit with status 0 when inside and 1 when outside.

Examples:
  naronbenh check-building 4363 50 -4165
  naronbenh -v -workers 8 draw-perimeter
  naronbenh -format tiff -out renders draw-building`)
}
