package interpreter

import (
	"fmt"
	"io"

	"github.com/fansqz/gdbmi-console/debugger"
	"github.com/sirupsen/logrus"
)

// builtinCommands 命令解释器内置的命令
func builtinCommands() []Command {
	return []Command{
		newExecCommand("next", []string{"n"}, debugger.Engine.StepOver),
		newExecCommand("step", []string{"s"}, debugger.Engine.StepIn),
		newBreakCommand(),
		newPrintCommand(),
		newCallCommand(),
		newExecCommand("finish", nil, debugger.Engine.StepOut),
		newThreadCommand(),
		newStopCommand(),
		newExecCommand("nexti", []string{"ni"}, debugger.Engine.StepOverAsm),
		newExecCommand("stepi", []string{"si"}, debugger.Engine.StepInAsm),
		newExecCommand("run", nil, debugger.Engine.Run),
		newLoadExecCommand(),
		newExecCommand("continue", []string{"c"}, debugger.Engine.Continue),
		newOpenCommand(),
		newHelpCommand(),
	}
}

// execCommand 执行类命令，忽略所有参数
type execCommand struct {
	baseCommand
	execute func(engine debugger.Engine, cookie string) error
}

func newExecCommand(name string, aliases []string, execute func(debugger.Engine, string) error) *execCommand {
	return &execCommand{
		baseCommand: baseCommand{name: name, aliases: aliases},
		execute:     execute,
	}
}

func (c *execCommand) Execute(ctx *Context, _ []string, out io.Writer) {
	reportError(out, c.name, c.execute(ctx.Engine, ctx.Cookie))
}

// stopCommand 中断正在运行的程序
type stopCommand struct {
	baseCommand
}

func newStopCommand() *stopCommand {
	return &stopCommand{baseCommand: baseCommand{name: "stop"}}
}

func (c *stopCommand) Interrupts() bool {
	return true
}

func (c *stopCommand) Execute(ctx *Context, _ []string, out io.Writer) {
	reportError(out, c.name, ctx.Engine.Stop())
}

// reportError 调试器请求失败时输出错误信息
func reportError(out io.Writer, command string, err error) bool {
	if err == nil {
		return false
	}
	logrus.Warnf("[CmdInterpreter] %s fail, err = %v", command, err)
	fmt.Fprintf(out, "Cannot execute '%s': %v.\n", command, err)
	return true
}
