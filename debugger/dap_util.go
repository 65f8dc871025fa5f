package debugger

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/fansqz/gdbmi-console/constants"
	"github.com/google/go-dap"
)

// NewEvent 创建dap事件
func NewEvent(seq int, event string) *dap.Event {
	return &dap.Event{
		ProtocolMessage: dap.ProtocolMessage{
			Seq:  seq,
			Type: "event",
		},
		Event: event,
	}
}

// NewStackFrame 栈帧转换成dap的栈帧
func NewStackFrame(frame Frame) dap.StackFrame {
	stack := dap.StackFrame{
		Id:                          frame.Level,
		Name:                        frame.FunctionName,
		Line:                        frame.Line,
		InstructionPointerReference: frame.Address,
	}
	if stack.Name == "" {
		stack.Name = frame.Address
	}
	if frame.HasSource() {
		stack.Source = &dap.Source{
			Name: filepath.Base(frame.FilePath()),
			Path: frame.FilePath(),
		}
	}
	return stack
}

// NewScopes 栈帧的作用域，目前只有函数参数
func NewScopes(frameId int, refs *ReferenceUtil) []dap.Scope {
	return []dap.Scope{
		{Name: string(constants.ScopeArguments), VariablesReference: refs.GetScopesReference(frameId)},
	}
}

// NewDapVariables 变量列表转换成dap变量，有成员的变量会创建引用
// parent为nil时variables是栈帧frameId中的变量
func NewDapVariables(frameId int, variables []*Variable, parent *ReferenceStruct, refs *ReferenceUtil) ([]dap.Variable, error) {
	answer := make([]dap.Variable, 0, len(variables))
	for _, variable := range variables {
		v := dap.Variable{
			Name:  variable.Name,
			Value: variable.Value,
			Type:  variable.Type,
		}
		if v.Value == "" && len(variable.Members) != 0 {
			v.Value = "{...}"
		}
		if len(variable.Members) != 0 {
			var refStruct *ReferenceStruct
			if parent == nil {
				refStruct = NewStructReferenceStruct(frameId, variable.Name)
			} else {
				refStruct = GetFieldReferenceStruct(parent, variable.Name)
			}
			ref, err := refs.CreateVariableReference(refStruct, variable)
			if err != nil {
				return nil, err
			}
			v.VariablesReference = ref
			v.NamedVariables = len(variable.Members)
		}
		answer = append(answer, v)
	}
	return answer, nil
}

// NewStoppedEvent 程序停止的通知转换成dap的stopped事件
func NewStoppedEvent(stop *StopRecord) *dap.StoppedEvent {
	event := &dap.StoppedEvent{
		Event: *NewEvent(0, "stopped"),
		Body: dap.StoppedEventBody{
			Reason:            stop.Reason.DAPReason(),
			ThreadId:          stop.ThreadID,
			AllThreadsStopped: true,
		},
	}
	if stop.HasFrame && stop.Frame.HasSource() {
		event.Body.Description = fmt.Sprintf("%s at %s:%d", stop.Frame.FunctionName, stop.Frame.FilePath(), stop.Frame.Line)
	}
	if number, err := strconv.Atoi(stop.BreakpointNumber); err == nil {
		event.Body.HitBreakpointIds = []int{number}
	}
	return event
}

// NewExitedEvent 程序退出事件
func NewExitedEvent(stop *StopRecord) *dap.ExitedEvent {
	return &dap.ExitedEvent{
		Event: *NewEvent(0, "exited"),
		Body:  dap.ExitedEventBody{ExitCode: stop.ExitCode},
	}
}

// NewOutputEvent 控制台输出事件
func NewOutputEvent(category string, output string) *dap.OutputEvent {
	return &dap.OutputEvent{
		Event: *NewEvent(0, "output"),
		Body:  dap.OutputEventBody{Category: category, Output: output},
	}
}

// NewLoadedSourceEvent open命令打开文件时通知编辑器
func NewLoadedSourceEvent(path string) *dap.LoadedSourceEvent {
	return &dap.LoadedSourceEvent{
		Event: *NewEvent(0, "loadedSource"),
		Body: dap.LoadedSourceEventBody{
			Reason: "new",
			Source: dap.Source{Name: filepath.Base(path), Path: path},
		},
	}
}
