package interpreter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fansqz/gdbmi-console/debugger"
)

// threadCommand 查看或者切换线程
type threadCommand struct {
	baseCommand
	// listed 正在等待线程列表的连接
	listed *debugger.Connection
}

func newThreadCommand() *threadCommand {
	return &threadCommand{baseCommand: baseCommand{name: "thread"}}
}

func (c *threadCommand) Usage() string {
	return "Usage:\n" +
		"\tthread\n" +
		"\tthread [THREAD ID]\n" +
		"\tthread list\n"
}

func (c *threadCommand) Completions(_ *Context, argv []string) []string {
	if len(argv) > 1 {
		return nil
	}
	return []string{"list"}
}

func (c *threadCommand) ExecuteAsync(ctx *Context, argv []string, out io.Writer, done func()) {
	// 超时的thread list不再输出
	c.listed.Disconnect()
	c.listed = nil
	switch {
	case len(argv) > 1:
		fmt.Fprint(out, "Too many parameters.\n")
	case len(argv) == 0:
		fmt.Fprintf(out, "Current thread ID: %d.\n", ctx.Engine.CurrentThread())
	case isDecimal(argv[0]):
		id, err := strconv.Atoi(argv[0])
		if err != nil {
			fmt.Fprintf(out, "Invalid argument: %s.\n", argv[0])
			break
		}
		reportError(out, c.name, ctx.Engine.SelectThread(id, ctx.Cookie))
	case argv[0] == "list":
		c.listThreads(ctx, out, done)
		return
	default:
		fmt.Fprintf(out, "Invalid argument: %s.\n", argv[0])
	}
	done()
}

func (c *threadCommand) listThreads(ctx *Context, out io.Writer, done func()) {
	var connection *debugger.Connection
	connection = ctx.Engine.Events().ThreadsListed.Connect(func(threads debugger.ThreadsListed) {
		if threads.Cookie != ctx.Cookie {
			return
		}
		connection.Disconnect()
		if ctx.Expired() {
			return
		}
		fmt.Fprint(out, "Threads:\n")
		for _, id := range threads.ThreadIDs {
			fmt.Fprintf(out, "%d\n", id)
		}
		done()
	})
	c.listed = connection
	if reportError(out, c.name, ctx.Engine.ListThreads(ctx.Cookie)) {
		connection.Disconnect()
		done()
	}
}
