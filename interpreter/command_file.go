package interpreter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// loadExecCommand 加载被调试程序，第一个参数是程序路径，其余的是程序参数
type loadExecCommand struct {
	baseCommand
}

func newLoadExecCommand() *loadExecCommand {
	return &loadExecCommand{baseCommand: baseCommand{name: "load-exec"}}
}

func (c *loadExecCommand) Usage() string {
	return "Usage:\n\tload-exec PROGRAM_NAME [ARG1 ARG2 ...]\n"
}

func (c *loadExecCommand) Execute(ctx *Context, argv []string, out io.Writer) {
	if len(argv) == 0 {
		fmt.Fprint(out, c.Usage())
		return
	}
	args := make([]string, 0, len(argv))
	for _, arg := range argv {
		args = append(args, expandHome(arg))
	}
	program := args[0]
	if err := ctx.Engine.LoadProgram(program, args[1:]); err != nil {
		logrus.Warnf("[CmdInterpreter] load program %s fail, err = %v", program, err)
		fmt.Fprintf(out, "Could not load program '%s'.\n", program)
	}
}

// openCommand 打开源文件，通知外部编辑器
type openCommand struct {
	baseCommand
}

func newOpenCommand() *openCommand {
	return &openCommand{baseCommand: baseCommand{name: "open"}}
}

func (c *openCommand) Usage() string {
	return "Usage:\n\topen FILE\n"
}

func (c *openCommand) Execute(ctx *Context, argv []string, out io.Writer) {
	if len(argv) == 0 {
		fmt.Fprint(out, c.Usage())
		return
	}
	for _, arg := range argv {
		ctx.Session.OpenFile(expandHome(arg))
	}
}

// Completions 已知的源文件
func (c *openCommand) Completions(ctx *Context, _ []string) []string {
	return ctx.Session.SourceFiles()
}

// expandHome 把开头的~替换成用户目录
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logrus.Warnf("[CmdInterpreter] get home dir fail, err = %v", err)
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return home + path[1:]
}
