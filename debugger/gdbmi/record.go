package gdbmi

import (
	"strconv"
	"strings"
)

// RecordType gdb/mi输出记录的类型
type RecordType int

const (
	ResultRecord RecordType = iota
	ExecAsyncRecord
	StatusAsyncRecord
	NotifyAsyncRecord
	ConsoleStreamRecord
	TargetStreamRecord
	LogStreamRecord
	PromptRecord
)

// Record gdb/mi输出的一行
type Record struct {
	Type RecordType
	// Token 命令的序号，没有序号时为0
	Token    int
	HasToken bool
	// Class 结果或者异步记录的类别，比如 done、error、running、stopped
	Class   string
	Results []*Attribute
	// Stream 流记录解码后的文本
	Stream string
	Line   string
}

// Payload 把结果包装成元组，方便使用StringOf等方法读取
func (r *Record) Payload() *Value {
	return &Value{Kind: TupleValue, Attributes: r.Results}
}

// Message 返回error记录中的msg
func (r *Record) Message() string {
	return r.Payload().StringOf("msg")
}

// ParseRecord 解析gdb/mi输出的一行
func ParseRecord(line string) (*Record, bool) {
	line = strings.TrimRight(line, "\r\n")
	record := &Record{Line: line}
	if strings.TrimSpace(line) == "(gdb)" {
		record.Type = PromptRecord
		return record, true
	}
	cur := 0
	for cur < len(line) && line[cur] >= '0' && line[cur] <= '9' {
		cur++
	}
	if cur > 0 {
		token, err := strconv.Atoi(line[:cur])
		if err != nil {
			return nil, false
		}
		record.Token, record.HasToken = token, true
	}
	if cur >= len(line) {
		return nil, false
	}
	switch line[cur] {
	case '^':
		record.Type = ResultRecord
	case '*':
		record.Type = ExecAsyncRecord
	case '+':
		record.Type = StatusAsyncRecord
	case '=':
		record.Type = NotifyAsyncRecord
	case '~', '@', '&':
		if record.HasToken {
			return nil, false
		}
		stream, _, ok := ParseCString(line, cur+1)
		if !ok {
			return nil, false
		}
		record.Stream = stream
		record.Type = map[byte]RecordType{
			'~': ConsoleStreamRecord,
			'@': TargetStreamRecord,
			'&': LogStreamRecord,
		}[line[cur]]
		return record, true
	default:
		return nil, false
	}
	cur++
	start := cur
	for cur < len(line) && isIdentifierChar(line[cur]) {
		cur++
	}
	if cur == start {
		return nil, false
	}
	record.Class = line[start:cur]
	if cur < len(line) {
		if line[cur] != ',' {
			return nil, false
		}
		results, _, ok := ParseResults(line, cur+1)
		if !ok {
			return nil, false
		}
		record.Results = results
	}
	return record, true
}
