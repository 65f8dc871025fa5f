package gdbmi

import (
	"strconv"
	"strings"

	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger"
)

const stoppedRecordPrefix = "*stopped"

// ParseStoppedAsyncOutput 解析 *stopped,reason="...",frame={...} 形式的异步输出
func ParseStoppedAsyncOutput(input string, from int) (*debugger.StopRecord, int, bool) {
	if from < 0 {
		return nil, from, false
	}
	cur := from
	for cur < len(input) && input[cur] >= '0' && input[cur] <= '9' {
		cur++
	}
	if !strings.HasPrefix(input[min(cur, len(input)):], stoppedRecordPrefix) {
		return nil, from, false
	}
	cur += len(stoppedRecordPrefix)
	// 前缀后面只能是逗号或者行尾，*stoppedXYZ 不是stopped记录
	if cur < len(input) && input[cur] != ',' && !isLineEnd(input[cur]) {
		return nil, from, false
	}
	var results []*Attribute
	if cur < len(input) && input[cur] == ',' {
		var ok bool
		results, cur, ok = ParseResults(input, cur+1)
		if !ok {
			return nil, from, false
		}
	}
	// 吃掉行尾
	for cur < len(input) && isLineEnd(input[cur]) {
		cur++
	}
	return stopRecordFromResults(results), cur, true
}

// StopRecordFromRecord 从已经解析好的*stopped记录中构建StopRecord
func StopRecordFromRecord(record *Record) *debugger.StopRecord {
	return stopRecordFromResults(record.Results)
}

func stopRecordFromResults(results []*Attribute) *debugger.StopRecord {
	payload := &Value{Kind: TupleValue, Attributes: results}
	record := &debugger.StopRecord{
		Reason:           constants.ParseStopReason(payload.StringOf("reason")),
		ThreadID:         payload.IntOf("thread-id"),
		BreakpointNumber: payload.StringOf("bkptno"),
		Attributes:       map[string]string{},
	}
	for _, attr := range results {
		if attr.Value.Kind == StringValue {
			record.Attributes[attr.Name] = attr.Value.Str
		}
	}
	if exitCode := payload.StringOf("exit-code"); exitCode != "" {
		// gdb以八进制输出退出码，比如 01
		if code, err := strconv.ParseInt(exitCode, 0, 32); err == nil {
			record.ExitCode = int(code)
		}
	}
	if frame := payload.Lookup("frame"); frame != nil && frame.Kind == TupleValue {
		record.HasFrame = true
		record.Frame = ParseFrame(frame)
	}
	return record
}

// ParseFrame 读取frame={...}中的栈帧信息
func ParseFrame(frame *Value) debugger.Frame {
	answer := debugger.Frame{
		Level:        frame.IntOf("level"),
		FunctionName: frame.StringOf("func"),
		File:         frame.StringOf("file"),
		FullName:     frame.StringOf("fullname"),
		Line:         frame.IntOf("line"),
		Address:      frame.StringOf("addr"),
		Library:      frame.StringOf("from"),
	}
	for _, arg := range frame.ListOf("args") {
		answer.Args = append(answer.Args, variableFromValue(arg))
	}
	return answer
}

// variableFromValue 把 {name="..",value="..",type=".."} 或者只有名字的值转换成变量，
// 如果值是结构体，还会解析出成员
func variableFromValue(value *Value) *debugger.Variable {
	if value.Kind == StringValue {
		return debugger.NewVariable(value.Str, "", "")
	}
	variable := debugger.NewVariable(value.StringOf("name"), value.StringOf("value"), value.StringOf("type"))
	if pos, ok := aggregateStart(variable.Value); ok {
		ParseMemberVariable(variable.Value, pos, variable)
	}
	return variable
}
