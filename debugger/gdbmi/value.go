// Package gdbmi 对gdb/mi的输出进行解码，
// 包括结果记录、*stopped 异步输出、栈参数、局部变量、变量的成员以及重载函数的选择提示
package gdbmi

import (
	"strconv"
)

// ValueKind value的类型
type ValueKind int

const (
	StringValue ValueKind = iota
	ListValue
	TupleValue
)

// Value gdb/mi中的值，可能是c字符串、列表或者元组
// 列表中的元素要么全是值（Values），要么全是name=value（Attributes）
type Value struct {
	Kind       ValueKind
	Str        string
	Values     []*Value
	Attributes []*Attribute
}

// Attribute name=value
type Attribute struct {
	Name  string
	Value *Value
}

// Lookup 查找第一个名字为name的属性值，不存在时返回nil
func (v *Value) Lookup(name string) *Value {
	if v == nil {
		return nil
	}
	for _, attr := range v.Attributes {
		if attr.Name == name {
			return attr.Value
		}
	}
	return nil
}

// String 返回字符串值，非字符串时返回空串
func (v *Value) String() string {
	if v == nil || v.Kind != StringValue {
		return ""
	}
	return v.Str
}

// StringOf 获取属性name的字符串值
func (v *Value) StringOf(name string) string {
	return v.Lookup(name).String()
}

// IntOf 获取属性name的整数值，不存在或者无法解析时返回0
func (v *Value) IntOf(name string) int {
	answer, _ := v.IntOfOK(name)
	return answer
}

// IntOfOK 同IntOf，额外返回是否解析成功
func (v *Value) IntOfOK(name string) (int, bool) {
	str := v.StringOf(name)
	if str == "" {
		return 0, false
	}
	answer, err := strconv.Atoi(str)
	if err != nil {
		return 0, false
	}
	return answer, true
}

// Items 返回列表中的所有元素，对于name=value形式的列表返回每个属性的值
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}
	if len(v.Values) != 0 {
		return v.Values
	}
	answer := make([]*Value, 0, len(v.Attributes))
	for _, attr := range v.Attributes {
		answer = append(answer, attr.Value)
	}
	return answer
}

// ListOf 获取属性name的列表元素
func (v *Value) ListOf(name string) []*Value {
	return v.Lookup(name).Items()
}

// ParseAttribute 解析 name=value，value可以是c字符串、列表或者元组
func ParseAttribute(input string, from int) (*Attribute, int, bool) {
	if from < 0 {
		return nil, from, false
	}
	cur := skipBlanks(input, from)
	start := cur
	for cur < len(input) && isIdentifierChar(input[cur]) {
		cur++
	}
	if cur == start || cur >= len(input) || input[cur] != '=' {
		return nil, from, false
	}
	name := input[start:cur]
	value, to, ok := ParseValue(input, cur+1)
	if !ok {
		return nil, from, false
	}
	return &Attribute{Name: name, Value: value}, to, true
}

// ParseValue 解析一个值
func ParseValue(input string, from int) (*Value, int, bool) {
	if from < 0 {
		return nil, from, false
	}
	cur := skipBlanks(input, from)
	if cur >= len(input) {
		return nil, from, false
	}
	switch input[cur] {
	case '"':
		str, to, ok := ParseCString(input, cur)
		if !ok {
			return nil, from, false
		}
		return &Value{Kind: StringValue, Str: str}, to, true
	case '[':
		return parseContainer(input, cur, ListValue, ']')
	case '{':
		return parseContainer(input, cur, TupleValue, '}')
	}
	return nil, from, false
}

// ParseResults 解析以逗号分隔的多个 name=value，直到行尾
func ParseResults(input string, from int) ([]*Attribute, int, bool) {
	if from < 0 {
		return nil, from, false
	}
	var answer []*Attribute
	cur := from
	for {
		cur = skipBlanks(input, cur)
		if cur >= len(input) || isLineEnd(input[cur]) {
			return answer, cur, true
		}
		attr, to, ok := ParseAttribute(input, cur)
		if !ok {
			return nil, from, false
		}
		answer = append(answer, attr)
		cur = skipBlanks(input, to)
		if cur < len(input) && input[cur] == ',' {
			cur++
		}
	}
}

// parseContainer 解析列表或元组，允许最后一个元素后面多一个逗号
func parseContainer(input string, from int, kind ValueKind, closing byte) (*Value, int, bool) {
	answer := &Value{Kind: kind}
	cur := from + 1
	for {
		cur = skipBlanks(input, cur)
		if cur >= len(input) {
			return nil, from, false
		}
		c := input[cur]
		if c == closing {
			return answer, cur + 1, true
		}
		if c == '"' || c == '[' || c == '{' {
			value, to, ok := ParseValue(input, cur)
			if !ok || len(answer.Attributes) != 0 {
				return nil, from, false
			}
			answer.Values = append(answer.Values, value)
			cur = to
		} else {
			attr, to, ok := ParseAttribute(input, cur)
			if !ok || len(answer.Values) != 0 {
				return nil, from, false
			}
			answer.Attributes = append(answer.Attributes, attr)
			cur = to
		}
		cur = skipBlanks(input, cur)
		if cur >= len(input) {
			return nil, from, false
		}
		switch input[cur] {
		case ',':
			cur++
		case closing:
		default:
			return nil, from, false
		}
	}
}

func isIdentifierChar(c byte) bool {
	return c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r'
}

// skipBlanks 跳过空格和制表符
func skipBlanks(input string, cur int) int {
	for cur < len(input) && (input[cur] == ' ' || input[cur] == '\t') {
		cur++
	}
	return cur
}
