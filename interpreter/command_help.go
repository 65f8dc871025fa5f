package interpreter

import (
	"fmt"
	"io"
	"strings"
)

// helpCommand 列出所有命令，或者输出某个命令的使用说明
type helpCommand struct {
	baseCommand
}

func newHelpCommand() *helpCommand {
	return &helpCommand{baseCommand: baseCommand{name: "help", aliases: []string{"h"}}}
}

func (c *helpCommand) Usage() string {
	return "Usage:\n\thelp\n\thelp [COMMAND]\n"
}

func (c *helpCommand) Execute(ctx *Context, argv []string, out io.Writer) {
	if len(argv) == 0 {
		fmt.Fprint(out, "Commands:\n")
		for _, command := range ctx.Registry.Commands() {
			line := command.Name()
			if aliases := command.Aliases(); len(aliases) != 0 {
				line += " (" + strings.Join(aliases, ", ") + ")"
			}
			fmt.Fprintf(out, "\t%s\n", line)
		}
		return
	}
	command, ok := ctx.Registry.Lookup(argv[0])
	if !ok {
		fmt.Fprintf(out, "Undefined command: %s.\n", argv[0])
		return
	}
	if usage, ok := command.(UsagePrinter); ok {
		fmt.Fprint(out, usage.Usage())
		return
	}
	fmt.Fprintf(out, "Usage:\n\t%s\n", command.Name())
}

func (c *helpCommand) Completions(ctx *Context, argv []string) []string {
	if len(argv) > 1 {
		return nil
	}
	return ctx.Registry.Names()
}
