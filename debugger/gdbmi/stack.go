package gdbmi

import (
	"github.com/fansqz/gdbmi-console/debugger"
)

// ParseStackArguments 解析 -stack-list-arguments 的结果 stack-args=[frame={level="0",args=[...]},...]
// 返回栈帧层级到参数列表的映射，没有参数的栈帧映射到空列表
func ParseStackArguments(input string, from int) (map[int][]*debugger.Variable, int, bool) {
	attr, to, ok := ParseAttribute(input, from)
	if !ok || attr.Name != "stack-args" || attr.Value.Kind != ListValue {
		return nil, from, false
	}
	answer := map[int][]*debugger.Variable{}
	for _, frame := range attr.Value.Items() {
		if frame.Kind != TupleValue {
			return nil, from, false
		}
		level, ok := frame.IntOfOK("level")
		if !ok {
			return nil, from, false
		}
		args := make([]*debugger.Variable, 0)
		for _, arg := range frame.ListOf("args") {
			args = append(args, variableFromValue(arg))
		}
		answer[level] = args
	}
	return answer, to, true
}

// ParseLocalVarList 解析 -stack-list-locals 的结果 locals=[{name="person",type="Person"}]
func ParseLocalVarList(input string, from int) ([]*debugger.Variable, int, bool) {
	attr, to, ok := ParseAttribute(input, from)
	if !ok || attr.Name != "locals" || attr.Value.Kind != ListValue {
		return nil, from, false
	}
	answer := make([]*debugger.Variable, 0, len(attr.Value.Items()))
	for _, local := range attr.Value.Items() {
		answer = append(answer, variableFromValue(local))
	}
	return answer, to, true
}
