package debugger

import (
	"github.com/fansqz/gdbmi-console/constants"
)

// VariableCallback 变量创建完成后的回调
type VariableCallback func(variable *Variable)

// Engine
// 调试器后端，已经持有了gdb进程，对外提供类型化的请求以及信号
// 每个请求都可以携带一个cookie，后端会在对应的通知中原样带回
// 同一时刻后端只能处理一个请求，由命令解释器保证串行调用
// 除State以外的方法和所有信号回调都只能在事件循环协程中调用
type Engine interface {
	// LoadProgram 加载被调试程序及其参数
	LoadProgram(program string, args []string) error
	// Run 开始运行
	Run(cookie string) error
	// Continue 忽略继续执行
	Continue(cookie string) error
	// StepOver 下一步，不会进入函数内部
	StepOver(cookie string) error
	// StepIn 下一步，会进入函数内部
	StepIn(cookie string) error
	// StepOut 执行到当前函数返回
	StepOut(cookie string) error
	// StepOverAsm 单条指令执行，不会进入函数内部
	StepOverAsm(cookie string) error
	// StepInAsm 单条指令执行，会进入函数内部
	StepInAsm(cookie string) error
	// Stop 中断被调试程序
	Stop() error
	// SetBreakpoint 在文件的某一行添加断点
	SetBreakpoint(file string, line int, cookie string) error
	// SetBreakpointAtFunction 在函数入口添加断点
	SetBreakpointAtFunction(function string, cookie string) error
	// SetBreakpointAtAddress 在指令地址上添加断点
	SetBreakpointAtAddress(address string, cookie string) error
	// CallFunction 在被调试程序中调用函数
	CallFunction(expression string, cookie string) error
	// CurrentThread 获取当前线程id
	CurrentThread() int
	// SelectThread 切换当前线程
	SelectThread(threadID int, cookie string) error
	// ListThreads 列出线程，结果通过ThreadsListed信号返回
	ListThreads(cookie string) error
	// ListFiles 列出源文件，结果通过FilesListed信号返回
	ListFiles(cookie string) error
	// CreateVariable 创建变量对象，创建完成后调用callback
	CreateVariable(expression string, cookie string, callback VariableCallback) error
	// DeleteVariable 删除CreateVariable创建的变量对象
	DeleteVariable(variable *Variable, cookie string) error
	// State 获取后端状态，可以在任意协程中调用
	State() constants.EngineState
	// Events 后端信号
	Events() *Events
}

// Events 后端对外提供的信号
type Events struct {
	Stopped         Signal[*StopRecord]
	FilesListed     Signal[FilesListed]
	StateChanged    Signal[constants.EngineState]
	ThreadsListed   Signal[ThreadsListed]
	OverloadsPrompt Signal[OverloadsPrompt]
	ProgramExited   Signal[*StopRecord]
}

func NewEvents() *Events {
	return &Events{}
}
