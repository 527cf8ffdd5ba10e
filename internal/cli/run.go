// Package cli implements the commands of the jsontable program.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// EnvConfig names the environment variable
// with the default config file of render and check.
const EnvConfig = "JSONTABLE_CONFIG"

const minArgs = 2

// Run is the main entry point. Returns exit code.
//
// args includes the program name like os.Args.
// A signal received on sigCh cancels the running command,
// sigCh may be nil.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	commands := newCommands(in, env)

	if len(args) < minArgs {
		printUsage(out, commands)

		return 0
	}

	name := args[1]
	if name == "-h" || name == "--help" || name == "help" {
		if len(args) > minArgs {
			if cmd := findCommand(commands, args[2]); cmd != nil {
				cmd.PrintHelp(NewIO(out, errOut))

				return 0
			}
		}
		printUsage(out, commands)

		return 0
	}

	cmd := findCommand(commands, name)
	if cmd == nil {
		fprintln(errOut, "error: unknown command:", name)
		printUsage(errOut, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	return cmd.Run(ctx, NewIO(out, errOut), args[2:])
}

func newCommands(in io.Reader, env map[string]string) []*Command {
	return []*Command{
		renderCmd(in, env),
		checkCmd(env),
		presetsCmd(),
	}
}

func findCommand(commands []*Command, name string) *Command {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func printUsage(w io.Writer, commands []*Command) {
	var b strings.Builder

	b.WriteString("jsontable renders tables from JSON documents\n\n")
	b.WriteString("Usage: jsontable <command> [flags]\n\n")
	b.WriteString("Commands:\n")

	for _, cmd := range commands {
		b.WriteString(cmd.HelpLine())
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  %-22s %s\n", "help [command]", "Show help")
	b.WriteString("\nThe config file defaults to $" + EnvConfig + ".\n")

	_, _ = io.WriteString(w, b.String())
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
