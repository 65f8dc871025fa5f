package interpreter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fansqz/gdbmi-console/debugger/utils"
	"github.com/sirupsen/logrus"
)

const cannotSetBreakpoint = "Cannot set a breakpoint at this position.\n"

// breakCommand 添加断点
//
//	break          当前栈帧所在行
//	break LINE     当前文件的某一行
//	break FUNCTION 函数入口
//	break *ADDRESS 指令地址
//	break +OFFSET  相对当前行的偏移
type breakCommand struct {
	baseCommand
}

func newBreakCommand() *breakCommand {
	return &breakCommand{baseCommand: baseCommand{name: "break", aliases: []string{"b"}}}
}

func (c *breakCommand) Usage() string {
	return "Usage:\n" +
		"\tbreak\n" +
		"\tbreak [LINE]\n" +
		"\tbreak [FUNCTION]\n" +
		"\tbreak *[ADDRESS]\n" +
		"\tbreak +[OFFSET]\n" +
		"\tbreak -[OFFSET]\n"
}

func (c *breakCommand) Execute(ctx *Context, argv []string, out io.Writer) {
	if len(argv) > 1 {
		fmt.Fprint(out, "Too many parameters.\n")
		return
	}
	if len(argv) == 0 {
		c.breakAtCurrentLine(ctx, out)
		return
	}
	arg := argv[0]
	first := arg[0]
	switch {
	case isDecimal(arg):
		c.breakAtLine(ctx, arg, out)
	case isIdentifierStart(first):
		reportError(out, c.name, ctx.Engine.SetBreakpointAtFunction(arg, ctx.Cookie))
	case first == '*':
		c.breakAtAddress(ctx, arg[1:], out)
	case first == '+' || first == '-':
		c.breakAtOffset(ctx, arg, out)
	default:
		fmt.Fprintf(out, "Invalid argument: %s.\n", arg)
	}
}

func (c *breakCommand) breakAtCurrentLine(ctx *Context, out io.Writer) {
	frame, ok := ctx.Session.CurrentFrame()
	if !ok || !frame.HasSource() {
		fmt.Fprint(out, cannotSetBreakpoint)
		return
	}
	reportError(out, c.name, ctx.Engine.SetBreakpoint(frame.FilePath(), frame.Line, ctx.Cookie))
}

func (c *breakCommand) breakAtLine(ctx *Context, arg string, out io.Writer) {
	file := ctx.Session.CurrentFilePath()
	if file == "" {
		fmt.Fprint(out, cannotSetBreakpoint)
		return
	}
	line, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(out, "Invalid line number: %s.\n", arg)
		return
	}
	reportError(out, c.name, ctx.Engine.SetBreakpoint(file, line, ctx.Cookie))
}

func (c *breakCommand) breakAtOffset(ctx *Context, arg string, out io.Writer) {
	frame, ok := ctx.Session.CurrentFrame()
	if !ok || !frame.HasSource() {
		fmt.Fprint(out, cannotSetBreakpoint)
		return
	}
	offset := arg[1:]
	if !isDecimal(offset) {
		fmt.Fprintf(out, "Invalid offset: %s.\n", offset)
		return
	}
	n, err := strconv.Atoi(offset)
	if err != nil {
		fmt.Fprintf(out, "Invalid offset: %s.\n", offset)
		return
	}
	line := frame.Line
	if arg[0] == '+' {
		line += n
	} else {
		line -= n
	}
	reportError(out, c.name, ctx.Engine.SetBreakpoint(frame.FilePath(), line, ctx.Cookie))
}

func (c *breakCommand) breakAtAddress(ctx *Context, address string, out io.Writer) {
	if !isHexadecimal(address) {
		fmt.Fprintf(out, "Invalid address: %s.\n", address)
		return
	}
	reportError(out, c.name, ctx.Engine.SetBreakpointAtAddress(address, ctx.Cookie))
}

// Completions 补全当前文件中定义的函数名称
func (c *breakCommand) Completions(ctx *Context, argv []string) []string {
	if len(argv) > 1 {
		return nil
	}
	file := ctx.Session.CurrentFilePath()
	if file == "" {
		return nil
	}
	functions, err := utils.ParseFunctionsFromFile(file, ctx.Language)
	if err != nil {
		logrus.Debugf("[CmdInterpreter] parse functions of %s fail, err = %v", file, err)
		return nil
	}
	answer := make([]string, 0, len(functions))
	for _, function := range functions {
		answer = append(answer, function.Name)
	}
	return answer
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isHexadecimal 十六进制数，可以带0x前缀
func isHexadecimal(s string) bool {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

func isIdentifierStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
