// CLI-only version (no GUI dependencies)
package main

import (
	"fmt"
	"os"

	"ackersim/internal/cli"
	"ackersim/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "render":
		run(os.Args[2:], func(o cli.Options, logger *log.Logger) error {
			if err := cli.Render(o, logger); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", o.Output)
			return nil
		})

	case "trace":
		run(os.Args[2:], func(o cli.Options, logger *log.Logger) error {
			return cli.Trace(os.Stdout, o, logger)
		})

	case "maps":
		cli.Maps(os.Stdout)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(args []string, cmd func(cli.Options, *log.Logger) error) {
	o, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Println(err)
		printUsage()
		os.Exit(1)
	}

	logger := log.New(log.ParseLevel(o.LogLevel))
	defer logger.Sync()

	if err := cmd(o, logger); err != nil {
		logger.Error("command failed", log.Err(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`
  ackersim: Ackermann steering simulator (CLI version)

Usage:
  ackersim-cli <command> [arguments]

Commands:
  render [map] [options]       Drive a script and render the last frame to PNG
  trace [map] [options]        Print the car state after every command as JSON lines
  maps                         List the available maps
  help                         Show this text

Options:
  -o <output.png>              Output file (default: output.png)
  -c <script>                  Commands, e.g. "L2 F3 R B0.5" (default: none)
  -config <car.yaml>           Car geometry overrides
  -logo <file.svg>             Decal artwork (default: built-in)
  -scale <px/m>                Pixels per metre (default: 30)
  -center                      Mark the turning centre
  -outline                     Outline every car part
  -log <level>                 debug, info, warn or error (default: info)

Script:
  L[n] R[n]                    Steer n steps left or right (default 1)
  F[d] B[d]                    Drive d metres forward or back (default 1)

Examples:
  ackersim-cli render parallel -c "L4 F3 R4 F2" -o park.png -center
  ackersim-cli trace turn -c "F5 R4 F6" > turn.jsonl`)
}
