package constants

import "time"

const (
	// CommandExecutionTimeout 命令执行的超时时间，超时以后强制认为命令执行完成
	CommandExecutionTimeout = 10 * time.Second
	// CmdInterpreterCookiePrefix 命令解释器发送给调试器请求时携带的cookie前缀
	CmdInterpreterCookiePrefix = "cmd-interpreter-"
	// DefaultPrompt 控制台默认提示符
	DefaultPrompt = "(gdb) "
)

// StopReason 程序停止的原因，取值与gdb/mi输出中的reason一致
type StopReason string

const (
	UndefinedReason         StopReason = ""
	BreakpointHit           StopReason = "breakpoint-hit"
	WatchpointTrigger       StopReason = "watchpoint-trigger"
	ReadWatchpointTrigger   StopReason = "read-watchpoint-trigger"
	AccessWatchpointTrigger StopReason = "access-watchpoint-trigger"
	FunctionFinished        StopReason = "function-finished"
	LocationReached         StopReason = "location-reached"
	WatchpointScope         StopReason = "watchpoint-scope"
	EndSteppingRange        StopReason = "end-stepping-range"
	ExitedSignalled         StopReason = "exited-signalled"
	Exited                  StopReason = "exited"
	ExitedNormally          StopReason = "exited-normally"
	SignalReceived          StopReason = "signal-received"
	SolibEvent              StopReason = "solib-event"
	Fork                    StopReason = "fork"
	VFork                   StopReason = "vfork"
	SyscallEntry            StopReason = "syscall-entry"
	SyscallReturn           StopReason = "syscall-return"
	Exec                    StopReason = "exec"
)

var knownStopReasons = map[StopReason]struct{}{
	BreakpointHit: {}, WatchpointTrigger: {}, ReadWatchpointTrigger: {},
	AccessWatchpointTrigger: {}, FunctionFinished: {}, LocationReached: {},
	WatchpointScope: {}, EndSteppingRange: {}, ExitedSignalled: {}, Exited: {},
	ExitedNormally: {}, SignalReceived: {}, SolibEvent: {}, Fork: {}, VFork: {},
	SyscallEntry: {}, SyscallReturn: {}, Exec: {},
}

// ParseStopReason 把gdb输出的reason转换成StopReason，未知的reason返回UndefinedReason
func ParseStopReason(reason string) StopReason {
	r := StopReason(reason)
	if _, ok := knownStopReasons[r]; ok {
		return r
	}
	return UndefinedReason
}

// IsExited 判断停止原因是否表示被调试程序已经退出
func (r StopReason) IsExited() bool {
	return r == Exited || r == ExitedNormally || r == ExitedSignalled
}

// DAPReason 转换成dap协议中stopped事件的reason
func (r StopReason) DAPReason() string {
	switch r {
	case BreakpointHit:
		return "breakpoint"
	case WatchpointTrigger, ReadWatchpointTrigger, AccessWatchpointTrigger:
		return "data breakpoint"
	case EndSteppingRange, FunctionFinished, LocationReached:
		return "step"
	case SignalReceived:
		return "exception"
	default:
		return "pause"
	}
}

// EngineState 调试器后端的状态
type EngineState string

const (
	// NotStarted 调试器还未加载程序
	NotStarted EngineState = "not-started"
	// InferiorLoaded 已加载被调试程序
	InferiorLoaded EngineState = "inferior-loaded"
	// Ready 调试器可以接收新的命令
	Ready EngineState = "ready"
	// Running 被调试程序运行中
	Running EngineState = "running"
	// ProgramExited 被调试程序已退出
	ProgramExited EngineState = "program-exited"
)

// ScopeName 作用域名称
type ScopeName string

const (
	// ScopeArguments 当前栈帧的函数参数
	ScopeArguments ScopeName = "Arguments"
)
