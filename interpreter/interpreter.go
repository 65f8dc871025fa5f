package interpreter

import (
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger"
	"github.com/fansqz/gdbmi-console/utils"
	"github.com/sirupsen/logrus"
)

// Timer 一次性计时器，utils.TimeoutManager实现了这个接口
type Timer interface {
	Start(timeout time.Duration, fun func())
	Cancel()
}

// CmdInterpreter 命令解释器
// 命令按照提交的顺序执行，同一时刻最多只有一个命令在执行，
// 其余的命令在队列中等待。所有方法都只能在事件循环中调用
type CmdInterpreter struct {
	engine   debugger.Engine
	out      io.Writer
	registry *Registry
	session  *Session
	ctx      *Context

	// queue 等待执行的命令行
	queue *linkedlistqueue.Queue
	timer Timer
	// timeout 异步命令的超时时间
	timeout time.Duration

	// running 正在执行的命令，为nil表示执行槽空闲
	running     Command
	runningLine string
	// generation 每次分发命令都会加一，过期的done回调会被忽略
	generation uint64
	draining   bool

	ready       debugger.Signal[struct{}]
	connections []*debugger.Connection
}

// NewCmdInterpreter 创建命令解释器并注册内置命令
func NewCmdInterpreter(engine debugger.Engine, out io.Writer, timer Timer) *CmdInterpreter {
	c := &CmdInterpreter{
		engine:   engine,
		out:      out,
		registry: NewRegistry(),
		session:  NewSession(),
		queue:    linkedlistqueue.New(),
		timer:    timer,
		timeout:  constants.CommandExecutionTimeout,
	}
	c.ctx = &Context{
		Engine:   engine,
		Session:  c.session,
		Registry: c.registry,
		Cookie:   constants.CmdInterpreterCookiePrefix + utils.GetUUID(),
	}
	for _, command := range builtinCommands() {
		if err := c.registry.Register(command); err != nil {
			logrus.Errorf("[CmdInterpreter] register command %s fail, err = %v", command.Name(), err)
		}
	}
	events := engine.Events()
	c.connections = append(c.connections, c.session.Attach(events)...)
	c.connections = append(c.connections,
		events.StateChanged.Connect(c.onStateChanged),
		events.OverloadsPrompt.Connect(c.onOverloadsPrompt),
	)
	return c
}

// SetCommandTimeout 设置异步命令的超时时间
func (c *CmdInterpreter) SetCommandTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.timeout = timeout
	}
}

// SetLanguage 设置源文件的默认语言
func (c *CmdInterpreter) SetLanguage(language constants.LanguageType) {
	c.ctx.Language = language
}

// RegisterCommand 注册命令
func (c *CmdInterpreter) RegisterCommand(command Command) error {
	return c.registry.Register(command)
}

// Commands 按照注册顺序返回所有命令
func (c *CmdInterpreter) Commands() []Command {
	return c.registry.Commands()
}

func (c *CmdInterpreter) Registry() *Registry {
	return c.registry
}

func (c *CmdInterpreter) Session() *Session {
	return c.session
}

// Context 命令执行的上下文，用于补全
func (c *CmdInterpreter) Context() *Context {
	return c.ctx
}

// Cookie 命令解释器发出的请求所携带的cookie
func (c *CmdInterpreter) Cookie() string {
	return c.ctx.Cookie
}

func (c *CmdInterpreter) CurrentFilePath() string {
	return c.session.CurrentFilePath()
}

func (c *CmdInterpreter) SetCurrentFilePath(path string) {
	c.session.SetCurrentFilePath(path)
}

// Ready 执行槽空闲并且队列为空
func (c *CmdInterpreter) Ready() bool {
	return c.running == nil && c.queue.Empty()
}

// OnReady 命令解释器空闲时回调
func (c *CmdInterpreter) OnReady(slot func()) *debugger.Connection {
	return c.ready.Connect(func(struct{}) { slot() })
}

// Executing 正在执行的命令行，没有命令在执行时返回空字符串
func (c *CmdInterpreter) Executing() string {
	return c.runningLine
}

// Pending 按顺序返回等待执行的命令行
func (c *CmdInterpreter) Pending() []string {
	values := c.queue.Values()
	answer := make([]string, 0, len(values))
	for _, value := range values {
		answer = append(answer, value.(string))
	}
	return answer
}

// ExecuteCommand 提交一行命令
// 空行以及未定义的命令不会进入队列
func (c *CmdInterpreter) ExecuteCommand(line string) {
	name, _ := Tokenize(line)
	if name == "" {
		c.emitReadyIfIdle()
		return
	}
	command, ok := c.registry.Lookup(name)
	if !ok {
		c.printf("Undefined command: %s.\n", name)
		c.emitReadyIfIdle()
		return
	}
	// 程序运行中时队列暂停，中断类命令直接执行
	if interrupter, ok := command.(Interrupter); ok && interrupter.Interrupts() &&
		c.running == nil && c.engine.State() == constants.Running {
		c.dispatch(line)
		return
	}
	c.queue.Enqueue(line)
	c.drain()
}

// Close 断开调试器信号并取消计时
func (c *CmdInterpreter) Close() {
	for _, connection := range c.connections {
		connection.Disconnect()
	}
	c.connections = nil
	c.timer.Cancel()
}

func (c *CmdInterpreter) emitReadyIfIdle() {
	if c.Ready() {
		c.ready.Emit(struct{}{})
	}
}

// drain 执行槽空闲时依次取出队列中的命令执行，程序运行中时暂停
func (c *CmdInterpreter) drain() {
	if c.draining {
		return
	}
	c.draining = true
	for c.running == nil && !c.queue.Empty() && c.engine.State() != constants.Running {
		value, _ := c.queue.Dequeue()
		c.dispatch(value.(string))
	}
	c.draining = false
	c.emitReadyIfIdle()
}

// dispatch 执行一行命令，同步命令在返回前完成，异步命令等待done或者超时
func (c *CmdInterpreter) dispatch(line string) {
	name, argv := Tokenize(line)
	command, ok := c.registry.Lookup(name)
	if !ok {
		c.printf("Undefined command: %s.\n", name)
		return
	}
	c.generation++
	generation := c.generation
	c.running = command
	c.runningLine = line
	logrus.Debugf("[CmdInterpreter] execute command: %s", line)

	switch cmd := command.(type) {
	case AsyncCommand:
		c.timer.Start(c.timeout, func() {
			if c.generation == generation && c.running != nil {
				logrus.Warnf("[CmdInterpreter] command '%s' timeout after %v", c.runningLine, c.timeout)
			}
			c.complete(generation)
		})
		ctx := *c.ctx
		ctx.expired = func() bool {
			return c.generation != generation || c.running == nil
		}
		c.safeExecute(line, func() {
			cmd.ExecuteAsync(&ctx, argv, c.out, func() { c.complete(generation) })
		})
	case SyncCommand:
		c.safeExecute(line, func() {
			cmd.Execute(c.ctx, argv, c.out)
		})
		c.complete(generation)
	default:
		c.complete(generation)
	}
}

// complete 命令执行完成，同一次分发只生效一次
func (c *CmdInterpreter) complete(generation uint64) {
	if generation != c.generation || c.running == nil {
		return
	}
	c.running = nil
	c.runningLine = ""
	c.timer.Cancel()
	c.drain()
}

func (c *CmdInterpreter) safeExecute(line string, execute func()) {
	defer func() {
		if err := recover(); err != nil {
			logrus.Errorf("[CmdInterpreter] command '%s' panic, err = %v\n%s", line, err, debug.Stack())
		}
	}()
	execute()
}

func (c *CmdInterpreter) onStateChanged(state constants.EngineState) {
	if state == constants.Running || c.running != nil || c.queue.Empty() {
		return
	}
	c.drain()
}

func (c *CmdInterpreter) onOverloadsPrompt(prompt debugger.OverloadsPrompt) {
	for _, entry := range prompt.Entries {
		c.printf("%s\n", entry.String())
	}
}

func (c *CmdInterpreter) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		logrus.Errorf("[CmdInterpreter] write output fail, err = %v", err)
	}
}
