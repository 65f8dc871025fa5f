package gdb_debugger

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger"
	"github.com/fansqz/gdbmi-console/debugger/gdbmi"
	e "github.com/fansqz/gdbmi-console/error"
	"github.com/fansqz/gdbmi-console/utils"
	"github.com/sirupsen/logrus"
)

// maxLineSize gdb单行输出的最大长度，打印大结构体时一行可能很长
const maxLineSize = 16 * 1024 * 1024

// resultHandler 命令结果的回调
type resultHandler func(record *gdbmi.Record)

// request 已经发送但还没有收到结果的命令
type request struct {
	command string
	cookie  string
	handler resultHandler
}

// GDBDebugger 通过gdb/mi协议驱动gdb的调试器后端
// 不负责启动gdb，只从reader读取gdb的输出，向writer写入命令
type GDBDebugger struct {
	// post 把任务投递到事件循环中执行
	post func(func()) bool

	writeLock sync.Mutex
	writer    io.Writer
	// console gdb的控制台输出以及被调试程序的输出
	console io.Writer

	// 调试的状态管理
	StatusManager *StatusManager
	// gdb输出工具，用于处理gdb输出
	GdbOutputUtil *GDBOutputUtil

	events *debugger.Events

	// 下面的字段只在事件循环中访问
	token    int
	requests map[int]*request
	// execCookie 最近一次执行类命令的cookie，在下一次stopped中带回
	execCookie    string
	currentThread int
	// overloadsBuffer 正在接收的重载函数选择提示
	overloadsBuffer strings.Builder
	overloadsCookie string
	closed          bool
}

var _ debugger.Engine = (*GDBDebugger)(nil)

// StatusManager 后端状态管理，状态变化时触发StateChanged信号
type StatusManager struct {
	*utils.StatusManager
	events *debugger.Events
}

// Set 设置状态，状态发生变化时通知
func (s *StatusManager) Set(status constants.EngineState) {
	if s.StatusManager.Set(status) {
		s.events.StateChanged.Emit(status)
	}
}

func NewGDBDebugger(post func(func()) bool, writer io.Writer, console io.Writer) *GDBDebugger {
	events := debugger.NewEvents()
	return &GDBDebugger{
		post:          post,
		writer:        writer,
		console:       console,
		events:        events,
		StatusManager: &StatusManager{StatusManager: utils.NewStatusManager(), events: events},
		GdbOutputUtil: NewGDBOutputUtil(),
		requests:      map[int]*request{},
	}
}

// Serve 循环读取gdb的输出并投递到事件循环中处理，直到reader结束
func (g *GDBDebugger) Serve(ctx context.Context, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		g.post(func() {
			g.HandleLine(line)
		})
	}
	err := scanner.Err()
	g.post(g.close)
	if err != nil {
		logrus.Errorf("[GDBDebugger] read gdb output fail, err = %v", err)
		return err
	}
	return nil
}

// HandleLine 处理gdb输出的一行，只能在事件循环中调用
func (g *GDBDebugger) HandleLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	record, ok := gdbmi.ParseRecord(line)
	if !ok {
		logrus.Warnf("[GDBDebugger] unparsable gdb output: %q", line)
		return
	}
	switch record.Type {
	case gdbmi.ResultRecord:
		g.flushOverloadsPrompt()
		g.processResult(record)
	case gdbmi.ExecAsyncRecord:
		switch record.Class {
		case "running":
			g.StatusManager.Set(constants.Running)
		case "stopped":
			g.processStopped(record)
		}
	case gdbmi.NotifyAsyncRecord:
		if record.Class == "thread-selected" {
			if id, ok := record.Payload().IntOfOK("id"); ok {
				g.currentThread = id
			}
		}
	case gdbmi.ConsoleStreamRecord:
		if g.collectOverloadsPrompt(record.Stream) {
			return
		}
		g.writeConsole(record.Stream)
	case gdbmi.TargetStreamRecord:
		g.writeConsole(record.Stream)
	case gdbmi.LogStreamRecord:
		logrus.Debugf("[GDBDebugger] gdb log: %s", strings.TrimSpace(record.Stream))
	case gdbmi.PromptRecord:
		g.flushOverloadsPrompt()
	}
}

func (g *GDBDebugger) processResult(record *gdbmi.Record) {
	var req *request
	if record.HasToken {
		req = g.requests[record.Token]
		delete(g.requests, record.Token)
	}
	switch record.Class {
	case "error":
		command := ""
		if req != nil {
			command = req.command
		}
		logrus.Infof("[GDBDebugger] %s fail, msg = %s", command, record.Message())
		g.writeConsole(record.Message() + "\n")
	case "running":
		g.StatusManager.Set(constants.Running)
	case "exit":
		g.close()
	}
	if req != nil && req.handler != nil {
		req.handler(record)
	}
}

// processStopped 处理gdb返回的stopped数据，程序停止到程序的某个位置就会返回stopped data
func (g *GDBDebugger) processStopped(record *gdbmi.Record) {
	stop := gdbmi.StopRecordFromRecord(record)
	stop.Cookie = g.execCookie
	g.execCookie = ""
	if stop.ThreadID != 0 {
		g.currentThread = stop.ThreadID
	}
	g.events.Stopped.Emit(stop)
	if stop.Reason.IsExited() {
		g.StatusManager.Set(constants.ProgramExited)
		g.events.ProgramExited.Emit(stop)
		return
	}
	g.StatusManager.Set(constants.Ready)
}

// collectOverloadsPrompt 收集gdb控制台输出中的重载函数选择提示，返回是否被收集
func (g *GDBDebugger) collectOverloadsPrompt(stream string) bool {
	if g.overloadsBuffer.Len() == 0 && !strings.HasPrefix(stream, "[0] cancel") {
		return false
	}
	if g.overloadsBuffer.Len() != 0 && !strings.HasPrefix(stream, "[") {
		g.flushOverloadsPrompt()
		return false
	}
	g.overloadsBuffer.WriteString(stream)
	return true
}

func (g *GDBDebugger) flushOverloadsPrompt() {
	if g.overloadsBuffer.Len() == 0 {
		return
	}
	text := g.overloadsBuffer.String()
	g.overloadsBuffer.Reset()
	entries, _, ok := gdbmi.ParseOverloadsChoicePrompt(text, 0)
	if !ok {
		g.writeConsole(text)
		return
	}
	g.events.OverloadsPrompt.Emit(debugger.OverloadsPrompt{Entries: entries, Cookie: g.overloadsCookie})
}

func (g *GDBDebugger) close() {
	if g.closed {
		return
	}
	g.closed = true
	g.requests = map[int]*request{}
	g.StatusManager.Set(constants.ProgramExited)
}

func (g *GDBDebugger) writeConsole(text string) {
	if g.console == nil || text == "" {
		return
	}
	if _, err := io.WriteString(g.console, text); err != nil {
		logrus.Errorf("[GDBDebugger] write console fail, err = %v", err)
	}
}

// send 发送一条mi命令，命令结果通过handler返回
func (g *GDBDebugger) send(cookie string, handler resultHandler, command string, args ...string) error {
	if g.closed {
		return e.ErrEngineClosed
	}
	g.token++
	token := g.token
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(token))
	sb.WriteString("-")
	sb.WriteString(command)
	for _, arg := range args {
		sb.WriteString(" ")
		sb.WriteString(quoteArgument(arg))
	}
	sb.WriteString("\n")
	g.requests[token] = &request{command: command, cookie: cookie, handler: handler}

	g.writeLock.Lock()
	defer g.writeLock.Unlock()
	if _, err := io.WriteString(g.writer, sb.String()); err != nil {
		delete(g.requests, token)
		logrus.Errorf("[GDBDebugger] send %s fail, err = %v", command, err)
		return fmt.Errorf("send %s: %w", command, err)
	}
	return nil
}

// sendExec 发送执行类命令，gdb会在程序停止时返回stopped
// 命令发出以后立即进入Running状态，命令解释器在程序停止之前不会再发送新的命令
func (g *GDBDebugger) sendExec(cookie string, command string, args ...string) error {
	previous := g.StatusManager.Get()
	err := g.send(cookie, func(record *gdbmi.Record) {
		// 命令执行失败，恢复到之前的状态
		if record.Class == "error" && g.StatusManager.Is(constants.Running) {
			g.StatusManager.Set(previous)
		}
	}, command, args...)
	if err != nil {
		return err
	}
	g.execCookie = cookie
	g.StatusManager.Set(constants.Running)
	return nil
}

// quoteArgument 参数中有空白或者引号时使用c字符串
func quoteArgument(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n\"\\") {
		return arg
	}
	return gdbmi.EscapeCString(arg)
}

func (g *GDBDebugger) LoadProgram(program string, args []string) error {
	err := g.send("", func(record *gdbmi.Record) {
		if record.Class == "done" {
			g.StatusManager.Set(constants.InferiorLoaded)
		}
	}, "file-exec-and-symbols", program)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return g.send("", nil, "exec-arguments", args...)
	}
	return nil
}

func (g *GDBDebugger) Run(cookie string) error {
	return g.sendExec(cookie, "exec-run")
}

func (g *GDBDebugger) Continue(cookie string) error {
	return g.sendExec(cookie, "exec-continue")
}

func (g *GDBDebugger) StepOver(cookie string) error {
	return g.sendExec(cookie, "exec-next")
}

func (g *GDBDebugger) StepIn(cookie string) error {
	return g.sendExec(cookie, "exec-step")
}

func (g *GDBDebugger) StepOut(cookie string) error {
	return g.sendExec(cookie, "exec-finish")
}

func (g *GDBDebugger) StepOverAsm(cookie string) error {
	return g.sendExec(cookie, "exec-next-instruction")
}

func (g *GDBDebugger) StepInAsm(cookie string) error {
	return g.sendExec(cookie, "exec-step-instruction")
}

func (g *GDBDebugger) Stop() error {
	if !g.StatusManager.Is(constants.Running) {
		return nil
	}
	return g.send("", nil, "exec-interrupt")
}

func (g *GDBDebugger) SetBreakpoint(file string, line int, cookie string) error {
	location := strconv.Itoa(line)
	if file != "" {
		location = file + ":" + location
	}
	return g.insertBreakpoint(location, cookie)
}

func (g *GDBDebugger) SetBreakpointAtFunction(function string, cookie string) error {
	return g.insertBreakpoint(function, cookie)
}

func (g *GDBDebugger) SetBreakpointAtAddress(address string, cookie string) error {
	if !strings.HasPrefix(address, "*") {
		address = "*" + address
	}
	return g.insertBreakpoint(address, cookie)
}

func (g *GDBDebugger) insertBreakpoint(location string, cookie string) error {
	g.overloadsCookie = cookie
	return g.send(cookie, func(record *gdbmi.Record) {
		if success, number := g.GdbOutputUtil.ParseAddBreakpointOutput(record); success {
			bkpt := record.Payload().Lookup("bkpt")
			logrus.Infof("[GDBDebugger] breakpoint %s inserted at %s", number, location)
			g.writeConsole(fmt.Sprintf("Breakpoint %s at %s: file %s, line %d.\n",
				number, bkpt.StringOf("addr"), bkpt.StringOf("file"), bkpt.IntOf("line")))
		}
	}, "break-insert", location)
}

func (g *GDBDebugger) CallFunction(expression string, cookie string) error {
	return g.send(cookie, func(record *gdbmi.Record) {
		if record.Class == "done" {
			g.writeConsole(record.Payload().StringOf("value") + "\n")
		}
	}, "data-evaluate-expression", expression)
}

func (g *GDBDebugger) CurrentThread() int {
	return g.currentThread
}

func (g *GDBDebugger) SelectThread(threadID int, cookie string) error {
	return g.send(cookie, func(record *gdbmi.Record) {
		if id, ok := record.Payload().IntOfOK("new-thread-id"); ok {
			g.currentThread = id
		}
	}, "thread-select", strconv.Itoa(threadID))
}

func (g *GDBDebugger) ListThreads(cookie string) error {
	return g.send(cookie, func(record *gdbmi.Record) {
		ids, current := g.GdbOutputUtil.ParseThreadListIdsOutput(record)
		if current != 0 {
			g.currentThread = current
		}
		g.events.ThreadsListed.Emit(debugger.ThreadsListed{ThreadIDs: ids, Cookie: cookie})
	}, "thread-list-ids")
}

func (g *GDBDebugger) ListFiles(cookie string) error {
	return g.send(cookie, func(record *gdbmi.Record) {
		files := g.GdbOutputUtil.ParseFileListOutput(record)
		g.events.FilesListed.Emit(debugger.FilesListed{Files: files, Cookie: cookie})
	}, "file-list-exec-source-files")
}

// CreateVariable 创建变量，结构体类型会再读取一次完整的值，解析出成员
// 创建失败时callback的参数为nil
func (g *GDBDebugger) CreateVariable(expression string, cookie string, callback debugger.VariableCallback) error {
	return g.send(cookie, func(record *gdbmi.Record) {
		variable, ok := g.GdbOutputUtil.ParseVarCreate(record, expression)
		if !ok {
			callback(nil)
			return
		}
		if !g.GdbOutputUtil.CheckHasChildren(record) || g.GdbOutputUtil.CheckIsAddress(variable.Value) {
			callback(variable)
			return
		}
		err := g.send(cookie, func(record *gdbmi.Record) {
			g.GdbOutputUtil.ParseDataEvaluateOutput(record, variable)
			callback(variable)
		}, "data-evaluate-expression", expression)
		if err != nil {
			callback(variable)
		}
	}, "var-create", "-", "*", expression)
}

func (g *GDBDebugger) DeleteVariable(variable *debugger.Variable, cookie string) error {
	if variable == nil || variable.BackendName == "" {
		return nil
	}
	return g.send(cookie, nil, "var-delete", variable.BackendName)
}

func (g *GDBDebugger) State() constants.EngineState {
	return g.StatusManager.Get()
}

func (g *GDBDebugger) Events() *debugger.Events {
	return g.events
}
