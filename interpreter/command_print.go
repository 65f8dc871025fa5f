package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fansqz/gdbmi-console/debugger"
)

// printCommand 打印表达式的值，没有参数时打印上一次的表达式
type printCommand struct {
	baseCommand
	expression string
}

func newPrintCommand() *printCommand {
	return &printCommand{baseCommand: baseCommand{name: "print"}}
}

func (c *printCommand) Usage() string {
	return "Usage:\n\tprint EXPRESSION\n"
}

func (c *printCommand) ExecuteAsync(ctx *Context, argv []string, out io.Writer, done func()) {
	if len(argv) != 0 {
		c.expression = strings.Join(argv, "")
	}
	if c.expression == "" {
		fmt.Fprint(out, "No history.\n")
		done()
		return
	}
	err := ctx.Engine.CreateVariable(c.expression, ctx.Cookie, func(variable *debugger.Variable) {
		defer done()
		if ctx.Expired() {
			// 超时以后才返回的结果只删除变量
			if variable != nil {
				_ = ctx.Engine.DeleteVariable(variable, ctx.Cookie)
			}
			return
		}
		if variable == nil {
			fmt.Fprintf(out, "Cannot evaluate '%s'.\n", c.expression)
			return
		}
		fmt.Fprintf(out, "%s = %s\n", variable.Name, variable.Value)
		if err := ctx.Engine.DeleteVariable(variable, ctx.Cookie); err != nil {
			reportError(out, c.name, err)
		}
	})
	if reportError(out, c.name, err) {
		done()
	}
}

// callCommand 在被调试程序中调用函数，没有参数时重复上一次调用
type callCommand struct {
	baseCommand
	expression string
}

func newCallCommand() *callCommand {
	return &callCommand{baseCommand: baseCommand{name: "call"}}
}

func (c *callCommand) Usage() string {
	return "Usage:\n\tcall EXPRESSION\n"
}

func (c *callCommand) Execute(ctx *Context, argv []string, out io.Writer) {
	if len(argv) != 0 {
		c.expression = strings.Join(argv, " ")
	}
	if c.expression == "" {
		fmt.Fprint(out, "The history is empty.\n")
		return
	}
	reportError(out, c.name, ctx.Engine.CallFunction(c.expression, ctx.Cookie))
}
