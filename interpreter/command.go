package interpreter

import (
	"io"
	"strings"

	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger"
)

// Context 命令执行时可以访问的上下文
type Context struct {
	Engine   debugger.Engine
	Session  *Session
	Registry *Registry
	// Cookie 命令解释器发给调试器的请求都携带这个cookie
	Cookie string
	// Language 无法根据文件后缀判断语言时使用的语言
	Language constants.LanguageType

	// expired 异步命令已经完成或者超时
	expired func() bool
}

// Expired 异步命令已经完成或者超时，之后到达的回调不应该再输出
func (c *Context) Expired() bool {
	return c.expired != nil && c.expired()
}

// Command 可以注册到命令解释器中的命令
type Command interface {
	// Name 命令名称
	Name() string
	// Aliases 命令别名
	Aliases() []string
}

// SyncCommand 同步命令，Execute返回时命令就执行完成了
type SyncCommand interface {
	Command
	Execute(ctx *Context, argv []string, out io.Writer)
}

// AsyncCommand 异步命令，需要等待调试器的回调，执行完成时必须调用done
// 没有调用done的命令会一直占用执行槽，直到超时
type AsyncCommand interface {
	Command
	ExecuteAsync(ctx *Context, argv []string, out io.Writer, done func())
}

// Interrupter 程序运行中时也可以立即执行的命令，不会在队列中等待
type Interrupter interface {
	Interrupts() bool
}

// Completer 可以根据已经输入的参数给出补全候选项的命令
type Completer interface {
	Completions(ctx *Context, argv []string) []string
}

// UsagePrinter 可以输出使用说明的命令
type UsagePrinter interface {
	Usage() string
}

// baseCommand 命令名称以及别名
type baseCommand struct {
	name    string
	aliases []string
}

func (b *baseCommand) Name() string {
	return b.name
}

func (b *baseCommand) Aliases() []string {
	return b.aliases
}

// Tokenize 按照空白切分命令行，第一个是命令名称，剩下的是参数，不支持引号
func Tokenize(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
