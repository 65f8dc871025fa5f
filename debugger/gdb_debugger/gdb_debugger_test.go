package gdb_debugger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger"
	e "github.com/fansqz/gdbmi-console/error"
)

// testHelper 测试辅助结构体，任务直接在当前协程执行
type testHelper struct {
	t       *testing.T
	input   *bytes.Buffer
	console *bytes.Buffer
	debug   *GDBDebugger
	states  []constants.EngineState
}

func newTestHelper(t *testing.T) *testHelper {
	h := &testHelper{
		t:       t,
		input:   &bytes.Buffer{},
		console: &bytes.Buffer{},
	}
	post := func(task func()) bool {
		task()
		return true
	}
	h.debug = NewGDBDebugger(post, h.input, h.console)
	h.debug.Events().StateChanged.Connect(func(state constants.EngineState) {
		h.states = append(h.states, state)
	})
	return h
}

// sent 读取发送给gdb的命令并清空
func (h *testHelper) sent() string {
	answer := h.input.String()
	h.input.Reset()
	return answer
}

func (h *testHelper) feed(lines ...string) {
	for _, line := range lines {
		h.debug.HandleLine(line)
	}
}

func TestStepCommands(t *testing.T) {
	h := newTestHelper(t)
	assert.Nil(t, h.debug.Run("c1"))
	assert.Nil(t, h.debug.StepOver("c2"))
	assert.Nil(t, h.debug.StepIn("c3"))
	assert.Nil(t, h.debug.StepOut("c4"))
	assert.Nil(t, h.debug.StepOverAsm("c5"))
	assert.Nil(t, h.debug.StepInAsm("c6"))
	assert.Nil(t, h.debug.Continue("c7"))
	assert.Equal(t, "1-exec-run\n2-exec-next\n3-exec-step\n4-exec-finish\n"+
		"5-exec-next-instruction\n6-exec-step-instruction\n7-exec-continue\n", h.sent())
}

func TestStoppedCarriesCookie(t *testing.T) {
	h := newTestHelper(t)
	var stops []*debugger.StopRecord
	h.debug.Events().Stopped.Connect(func(stop *debugger.StopRecord) {
		stops = append(stops, stop)
	})
	require.Nil(t, h.debug.StepOver("cookie-1"))
	h.feed(`1^running`, `*running,thread-id="all"`, "(gdb) ")
	assert.Equal(t, constants.Running, h.debug.State())
	h.feed(`*stopped,reason="end-stepping-range",frame={addr="0x1151",func="main",args=[],file="main.c",fullname="/tmp/main.c",line="5"},thread-id="1",stopped-threads="all"`)

	require.Len(t, stops, 1)
	assert.Equal(t, "cookie-1", stops[0].Cookie)
	assert.Equal(t, constants.EndSteppingRange, stops[0].Reason)
	assert.Equal(t, "/tmp/main.c", stops[0].Frame.FilePath())
	assert.Equal(t, 1, h.debug.CurrentThread())
	assert.Equal(t, constants.Ready, h.debug.State())
	assert.Equal(t, []constants.EngineState{constants.Running, constants.Ready}, h.states)
}

func TestExecErrorRestoresState(t *testing.T) {
	h := newTestHelper(t)
	require.Nil(t, h.debug.Continue("c"))
	assert.Equal(t, constants.Running, h.debug.State())
	h.feed(`1^error,msg="The program is not being run."`)
	assert.Equal(t, constants.NotStarted, h.debug.State())
	assert.Equal(t, []constants.EngineState{constants.Running, constants.NotStarted}, h.states)
	assert.Equal(t, "The program is not being run.\n", h.console.String())
}

func TestProgramExited(t *testing.T) {
	h := newTestHelper(t)
	exited := 0
	h.debug.Events().ProgramExited.Connect(func(stop *debugger.StopRecord) {
		exited++
		assert.Equal(t, 3, stop.ExitCode)
	})
	h.feed(`*stopped,reason="exited",exit-code="03"`)
	assert.Equal(t, 1, exited)
	assert.Equal(t, constants.ProgramExited, h.debug.State())
}

func TestLoadProgram(t *testing.T) {
	h := newTestHelper(t)
	require.Nil(t, h.debug.LoadProgram("/tmp/my prog", []string{"-v", "a b"}))
	assert.Equal(t, "1-file-exec-and-symbols \"/tmp/my prog\"\n2-exec-arguments -v \"a b\"\n", h.sent())
	h.feed(`1^done`, `2^done`)
	assert.Equal(t, constants.InferiorLoaded, h.debug.State())
}

func TestErrorWrittenToConsole(t *testing.T) {
	h := newTestHelper(t)
	require.Nil(t, h.debug.SetBreakpointAtFunction("nosuch", "c"))
	assert.Equal(t, "1-break-insert nosuch\n", h.sent())
	h.feed(`1^error,msg="Function \"nosuch\" not defined."`)
	assert.Equal(t, "Function \"nosuch\" not defined.\n", h.console.String())
}

func TestSetBreakpoint(t *testing.T) {
	h := newTestHelper(t)
	require.Nil(t, h.debug.SetBreakpoint("main.c", 12, ""))
	require.Nil(t, h.debug.SetBreakpoint("", 7, ""))
	require.Nil(t, h.debug.SetBreakpointAtAddress("0x400", ""))
	assert.Equal(t, "1-break-insert main.c:12\n2-break-insert 7\n3-break-insert *0x400\n", h.sent())
	h.feed(`1^done,bkpt={number="1",type="breakpoint",addr="0x0000000000001139",func="main",file="main.c",fullname="/tmp/main.c",line="12",times="0"}`)
	assert.Equal(t, "Breakpoint 1 at 0x0000000000001139: file main.c, line 12.\n", h.console.String())
}

func TestListThreads(t *testing.T) {
	h := newTestHelper(t)
	var listed []debugger.ThreadsListed
	h.debug.Events().ThreadsListed.Connect(func(threads debugger.ThreadsListed) {
		listed = append(listed, threads)
	})
	require.Nil(t, h.debug.ListThreads("threads"))
	assert.Equal(t, "1-thread-list-ids\n", h.sent())
	h.feed(`1^done,thread-ids={thread-id="3",thread-id="1"},current-thread-id="3",number-of-threads="2"`)
	require.Len(t, listed, 1)
	assert.Equal(t, []int{3, 1}, listed[0].ThreadIDs)
	assert.Equal(t, "threads", listed[0].Cookie)
	assert.Equal(t, 3, h.debug.CurrentThread())

	require.Nil(t, h.debug.SelectThread(1, ""))
	assert.Equal(t, "2-thread-select 1\n", h.sent())
	h.feed(`2^done,new-thread-id="1",frame={level="0",func="main"}`)
	assert.Equal(t, 1, h.debug.CurrentThread())
}

func TestListFiles(t *testing.T) {
	h := newTestHelper(t)
	var files debugger.FilesListed
	h.debug.Events().FilesListed.Connect(func(listed debugger.FilesListed) {
		files = listed
	})
	require.Nil(t, h.debug.ListFiles("f"))
	h.feed(`1^done,files=[{file="main.c",fullname="/tmp/main.c"},{file="main.c",fullname="/tmp/main.c"},{file="/usr/include/stdio.h"}]`)
	assert.Equal(t, []string{"/tmp/main.c", "/usr/include/stdio.h"}, files.Files)
	assert.Equal(t, "f", files.Cookie)
}

func TestCreateVariable(t *testing.T) {
	h := newTestHelper(t)
	var got *debugger.Variable
	require.Nil(t, h.debug.CreateVariable("count", "", func(v *debugger.Variable) {
		got = v
	}))
	assert.Equal(t, "1-var-create - * count\n", h.sent())
	h.feed(`1^done,name="var1",numchild="0",value="42",type="int",has_more="0"`)
	require.NotNil(t, got)
	assert.Equal(t, "count", got.Name)
	assert.Equal(t, "42", got.Value)
	assert.Equal(t, "var1", got.BackendName)

	require.Nil(t, h.debug.DeleteVariable(got, ""))
	assert.Equal(t, "2-var-delete var1\n", h.sent())
}

func TestCreateStructVariable(t *testing.T) {
	h := newTestHelper(t)
	var got *debugger.Variable
	require.Nil(t, h.debug.CreateVariable("person", "", func(v *debugger.Variable) {
		got = v
	}))
	h.sent()
	h.feed(`1^done,name="var1",numchild="2",value="{...}",type="Person",has_more="0"`)
	assert.Nil(t, got)
	assert.Equal(t, "2-data-evaluate-expression person\n", h.sent())
	h.feed(`2^done,value="{name = 0x4006f4 \"Ali\", age = 15}"`)
	require.NotNil(t, got)
	assert.Equal(t, "person", got.Name)
	require.Len(t, got.Members, 2)
	assert.Equal(t, "age", got.Members[1].Name)
	assert.Equal(t, "15", got.Members[1].Value)
}

func TestCreateVariableFail(t *testing.T) {
	h := newTestHelper(t)
	called := false
	var got *debugger.Variable
	require.Nil(t, h.debug.CreateVariable("nosuch", "", func(v *debugger.Variable) {
		called = true
		got = v
	}))
	h.feed(`1^error,msg="-var-create: unable to create variable object"`)
	assert.True(t, called)
	assert.Nil(t, got)
}

func TestOverloadsPrompt(t *testing.T) {
	h := newTestHelper(t)
	var prompts []debugger.OverloadsPrompt
	h.debug.Events().OverloadsPrompt.Connect(func(prompt debugger.OverloadsPrompt) {
		prompts = append(prompts, prompt)
	})
	require.Nil(t, h.debug.SetBreakpointAtFunction("Person::overload", "bp"))
	h.feed(
		`~"[0] cancel\n[1] all\n"`,
		`~"[2] Person::overload(int) at fooprog.cc:65\n"`,
		`~"[3] Person::overload() at fooprog.cc:59\n"`,
		`~"> "`,
	)
	require.Len(t, prompts, 1)
	assert.Len(t, prompts[0].Entries, 4)
	assert.Equal(t, "bp", prompts[0].Cookie)
	assert.Equal(t, "> ", h.console.String())
}

func TestUnparsableLineIgnored(t *testing.T) {
	h := newTestHelper(t)
	h.feed("this is not mi", "", `~"hello\n"`)
	assert.Equal(t, "hello\n", h.console.String())
}

func TestServe(t *testing.T) {
	h := newTestHelper(t)
	reader := strings.NewReader("=thread-group-added,id=\"i1\"\n~\"GNU gdb\\n\"\n(gdb) \n")
	assert.Nil(t, h.debug.Serve(context.Background(), reader))
	assert.Equal(t, "GNU gdb\n", h.console.String())
	// gdb的输出结束以后不再接受命令
	assert.Equal(t, constants.ProgramExited, h.debug.State())
	assert.ErrorIs(t, h.debug.Run(""), e.ErrEngineClosed)
}

func TestStopOnlyWhenRunning(t *testing.T) {
	h := newTestHelper(t)
	assert.Nil(t, h.debug.Stop())
	assert.Equal(t, "", h.sent())
	h.feed(`*running,thread-id="all"`)
	assert.Nil(t, h.debug.Stop())
	assert.Equal(t, "1-exec-interrupt\n", h.sent())
}
