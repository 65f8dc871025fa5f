package debugger

import (
	"fmt"

	"github.com/fansqz/gdbmi-console/constants"
)

// Frame 栈帧，字段可能只填充了一部分，没有文件信息时说明没有源码
type Frame struct {
	Level        int
	FunctionName string
	Args         []*Variable
	File         string // 文件名称
	FullName     string // 文件完整路径
	Line         int
	Address      string
	Library      string
}

// FilePath 优先返回文件完整路径
func (f Frame) FilePath() string {
	if f.FullName != "" {
		return f.FullName
	}
	return f.File
}

// HasSource 是否有源码信息
func (f Frame) HasSource() bool {
	return f.FilePath() != ""
}

// Variable 变量
// Members由父节点独占，树的深度不受限制，只在一次查询中有效
type Variable struct {
	Name  string
	Type  string
	Value string
	// Members 结构体、类的成员或者基类
	Members []*Variable
	// Truncated gdb省略了部分元素，输出中带有...
	Truncated bool
	// BackendName 后端的变量对象名称，比如var-create返回的var1
	BackendName string
}

// NewVariable 创建一个变量
func NewVariable(name string, value string, typ string) *Variable {
	return &Variable{Name: name, Value: value, Type: typ}
}

// AppendMember 添加成员变量
func (v *Variable) AppendMember(member *Variable) {
	v.Members = append(v.Members, member)
}

// String 以 name = value 的形式输出
func (v *Variable) String() string {
	return fmt.Sprintf("%s = %s", v.Name, v.Value)
}

// StopRecord 程序停止的通知
type StopRecord struct {
	Reason           constants.StopReason
	HasFrame         bool
	Frame            Frame
	ThreadID         int
	BreakpointNumber string
	// ExitCode 程序退出时的退出码
	ExitCode int
	// Cookie 触发这次停止的请求所携带的cookie
	Cookie string
	// Attributes stopped输出中所有字符串类型的属性
	Attributes map[string]string
}

// FilesListed 源文件列表通知
type FilesListed struct {
	Files  []string
	Cookie string
}

// ThreadsListed 线程列表通知
type ThreadsListed struct {
	ThreadIDs []int
	Cookie    string
}

// OverloadsChoiceKind 重载函数选择项的类型
type OverloadsChoiceKind int

const (
	OverloadsChoiceCancel OverloadsChoiceKind = iota
	OverloadsChoiceAll
	OverloadsChoiceLocation
)

// OverloadsChoiceEntry 函数名有歧义时gdb给出的一个选择项
type OverloadsChoiceEntry struct {
	Index        int
	Kind         OverloadsChoiceKind
	FunctionName string
	FileName     string
	Line         int
}

// String 以gdb提示的格式输出
func (o OverloadsChoiceEntry) String() string {
	switch o.Kind {
	case OverloadsChoiceCancel:
		return fmt.Sprintf("[%d] cancel", o.Index)
	case OverloadsChoiceAll:
		return fmt.Sprintf("[%d] all", o.Index)
	default:
		if o.FileName == "" {
			return fmt.Sprintf("[%d] %s", o.Index, o.FunctionName)
		}
		return fmt.Sprintf("[%d] %s at %s:%d", o.Index, o.FunctionName, o.FileName, o.Line)
	}
}

// OverloadsPrompt 重载函数选择提示
type OverloadsPrompt struct {
	Entries []OverloadsChoiceEntry
	Cookie  string
}
