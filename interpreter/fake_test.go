package interpreter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger"
)

// fakeEngine 记录所有请求的调试器后端
type fakeEngine struct {
	events        *debugger.Events
	state         constants.EngineState
	calls         []string
	cookies       []string
	currentThread int
	err           error
	// variables 等待回调的变量创建请求
	variables []debugger.VariableCallback
	deleted   []*debugger.Variable
}

var _ debugger.Engine = (*fakeEngine)(nil)

func newFakeEngine() *fakeEngine {
	return &fakeEngine{events: debugger.NewEvents(), state: constants.Ready}
}

func (f *fakeEngine) record(cookie string, format string, args ...interface{}) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	f.cookies = append(f.cookies, cookie)
	return f.err
}

func (f *fakeEngine) LoadProgram(program string, args []string) error {
	return f.record("", "LoadProgram %s [%s]", program, strings.Join(args, ","))
}

func (f *fakeEngine) Run(cookie string) error { return f.record(cookie, "Run") }
func (f *fakeEngine) Continue(cookie string) error { return f.record(cookie, "Continue") }
func (f *fakeEngine) StepOver(cookie string) error { return f.record(cookie, "StepOver") }
func (f *fakeEngine) StepIn(cookie string) error { return f.record(cookie, "StepIn") }
func (f *fakeEngine) StepOut(cookie string) error { return f.record(cookie, "StepOut") }
func (f *fakeEngine) StepOverAsm(cookie string) error { return f.record(cookie, "StepOverAsm") }
func (f *fakeEngine) StepInAsm(cookie string) error { return f.record(cookie, "StepInAsm") }
func (f *fakeEngine) Stop() error { return f.record("", "Stop") }

func (f *fakeEngine) SetBreakpoint(file string, line int, cookie string) error {
	return f.record(cookie, "SetBreakpoint %s:%d", file, line)
}

func (f *fakeEngine) SetBreakpointAtFunction(function string, cookie string) error {
	return f.record(cookie, "SetBreakpointAtFunction %s", function)
}

func (f *fakeEngine) SetBreakpointAtAddress(address string, cookie string) error {
	return f.record(cookie, "SetBreakpointAtAddress %s", address)
}

func (f *fakeEngine) CallFunction(expression string, cookie string) error {
	return f.record(cookie, "CallFunction %s", expression)
}

func (f *fakeEngine) CurrentThread() int {
	return f.currentThread
}

func (f *fakeEngine) SelectThread(threadID int, cookie string) error {
	return f.record(cookie, "SelectThread %d", threadID)
}

func (f *fakeEngine) ListThreads(cookie string) error {
	return f.record(cookie, "ListThreads")
}

func (f *fakeEngine) ListFiles(cookie string) error {
	return f.record(cookie, "ListFiles")
}

func (f *fakeEngine) CreateVariable(expression string, cookie string, callback debugger.VariableCallback) error {
	if err := f.record(cookie, "CreateVariable %s", expression); err != nil {
		return err
	}
	f.variables = append(f.variables, callback)
	return nil
}

func (f *fakeEngine) DeleteVariable(variable *debugger.Variable, cookie string) error {
	f.deleted = append(f.deleted, variable)
	return f.record(cookie, "DeleteVariable %s", variable.BackendName)
}

func (f *fakeEngine) State() constants.EngineState {
	return f.state
}

func (f *fakeEngine) Events() *debugger.Events {
	return f.events
}

// setState 修改状态并触发StateChanged
func (f *fakeEngine) setState(state constants.EngineState) {
	f.state = state
	f.events.StateChanged.Emit(state)
}

// fakeTimer 手动触发的计时器
type fakeTimer struct {
	fun     func()
	timeout time.Duration
	starts  int
}

func (f *fakeTimer) Start(timeout time.Duration, fun func()) {
	f.fun = fun
	f.timeout = timeout
	f.starts++
}

func (f *fakeTimer) Cancel() {
	f.fun = nil
}

// fire 模拟超时
func (f *fakeTimer) fire() {
	if fun := f.fun; fun != nil {
		f.fun = nil
		fun()
	}
}

// hangCommand 一直不会完成的异步命令，done由测试调用
type hangCommand struct {
	baseCommand
	argv  [][]string
	dones []func()
}

func newHangCommand(name string) *hangCommand {
	return &hangCommand{baseCommand: baseCommand{name: name}}
}

func (h *hangCommand) ExecuteAsync(_ *Context, argv []string, _ io.Writer, done func()) {
	h.argv = append(h.argv, argv)
	h.dones = append(h.dones, done)
}

// syncCommand 测试用的同步命令
type syncCommand struct {
	baseCommand
	execute func(argv []string, out io.Writer)
}

func (s *syncCommand) Execute(_ *Context, argv []string, out io.Writer) {
	s.execute(argv, out)
}

type testHelper struct {
	t      *testing.T
	engine *fakeEngine
	timer  *fakeTimer
	out    *bytes.Buffer
	interp *CmdInterpreter
	ready  int
}

func newTestHelper(t *testing.T) *testHelper {
	h := &testHelper{
		t:      t,
		engine: newFakeEngine(),
		timer:  &fakeTimer{},
		out:    &bytes.Buffer{},
	}
	h.interp = NewCmdInterpreter(h.engine, h.out, h.timer)
	h.interp.OnReady(func() { h.ready++ })
	t.Cleanup(h.interp.Close)
	return h
}

// output 读取输出并清空
func (h *testHelper) output() string {
	answer := h.out.String()
	h.out.Reset()
	return answer
}

// stopAt 模拟程序停止在某个位置
func (h *testHelper) stopAt(file string, line int) {
	h.engine.events.Stopped.Emit(&debugger.StopRecord{
		Reason:   constants.BreakpointHit,
		HasFrame: true,
		Frame:    debugger.Frame{FunctionName: "main", File: file, FullName: file, Line: line},
	})
}
