// Command cardpreview converts a YAML card description into a component
// tree and prints it, so card payloads can be inspected without a device.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (render, version).
package main

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Usage string
	Run   func(args []string) error
}

var commands = []*Command{
	renderCmd,
	versionCmd,
}

var versionCmd = &Command{
	Name:  "version",
	Short: "Print the cardpreview version",
	Usage: "cardpreview version",
	Run: func(args []string) error {
		fmt.Printf("cardpreview version %s (built %s)\n", Version, BuildTime)
		return nil
	},
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version":
		return versionCmd.Run(nil)
	}

	for _, cmd := range commands {
		if cmd.Name == args[0] {
			return cmd.Run(args[1:])
		}
	}

	return fmt.Errorf("unknown command %q, run \"cardpreview help\"", args[0])
}

func printHelp() {
	fmt.Println("cardpreview - inspect content-card component trees")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cardpreview <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-10s %s\n", cmd.Name, cmd.Short)
	}
}
