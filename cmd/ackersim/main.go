package main

import (
	"fmt"
	"os"

	"ackersim/internal/cli"
	"ackersim/internal/gui"
	"ackersim/internal/log"
	"ackersim/internal/sim"
)

func main() {
	command := "gui"
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}

	switch command {
	case "gui":
		var args []string
		if len(os.Args) > 2 {
			args = os.Args[2:]
		}
		cmdGUI(args)

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

func printUsage() {
	fmt.Println(`
  ackersim: Ackermann steering simulator

Usage:
  ackersim [command] [arguments]

Commands:
  gui [map] [options]          Open the driving window (default)
  render [map] [options]       Drive a script and render the last frame to PNG
  trace [map] [options]        Print the car state after every command as JSON lines
  maps                         List the available maps
  help                         Show this text

Options:
  -o <output.png>              Output file (default: output.png)
  -c <script>                  Commands, e.g. "L2 F3 R B0.5"
  -config <car.yaml>           Car geometry overrides
  -logo <file.svg>             Decal artwork (default: built-in)
  -scale <px/m>                Pixels per metre (default: 30)
  -step <m>                    Distance per key press in the GUI (default: 0.1)
  -center                      Mark the turning centre
  -outline                     Outline every car part
  -log <level>                 debug, info, warn or error (default: info)

Keys:
  Up/Down                      Drive forward/back
  Left/Right                   Steer one step
  R                            Reset the car
  +/-                          Zoom

Built with:
  - golang.org/x/image/vector for rasterization
  - github.com/srwiley/oksvg for the decal
  - fyne.io for native GUI`)
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

func cmdGUI(args []string) {
	run(args, func(o cli.Options, logger *log.Logger) error {
		cfg, err := cli.LoadConfig(o.ConfigPath)
		if err != nil {
			return err
		}
		logo, err := cli.LoadLogo(o.LogoPath, cfg, o.Scale)
		if err != nil {
			return err
		}

		session, err := sim.NewSession(cfg, logo, o.Map, o.Renderer(), logger)
		if err != nil {
			return err
		}

		app := gui.NewApp(session, logger)
		app.SetDriveStep(o.DriveStep)
		app.Run()
		return nil
	})
}
