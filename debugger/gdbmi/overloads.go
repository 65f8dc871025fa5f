package gdbmi

import (
	"strconv"
	"strings"

	"github.com/fansqz/gdbmi-console/debugger"
)

// ParseOverloadsChoicePrompt 解析函数名有歧义时gdb给出的选择提示
//
//	[0] cancel
//	[1] all
//	[2] Person::overload(int) at fooprog.cc:65
//
// 选项之间可以用真实的换行分隔，也可以用字面量 \n 分隔
func ParseOverloadsChoicePrompt(input string, from int) ([]debugger.OverloadsChoiceEntry, int, bool) {
	if from < 0 {
		return nil, from, false
	}
	var answer []debugger.OverloadsChoiceEntry
	cur := from
	for {
		cur = skipEntrySeparators(input, cur)
		if cur >= len(input) || input[cur] != '[' {
			break
		}
		entry, to, ok := parseOverloadsChoiceEntry(input, cur)
		if !ok {
			break
		}
		answer = append(answer, entry)
		cur = to
	}
	if len(answer) == 0 {
		return nil, from, false
	}
	return answer, cur, true
}

func parseOverloadsChoiceEntry(input string, from int) (debugger.OverloadsChoiceEntry, int, bool) {
	var entry debugger.OverloadsChoiceEntry
	cur := from + 1
	start := cur
	for cur < len(input) && input[cur] >= '0' && input[cur] <= '9' {
		cur++
	}
	if cur == start || cur >= len(input) || input[cur] != ']' {
		return entry, from, false
	}
	entry.Index, _ = strconv.Atoi(input[start:cur])
	cur = skipBlanks(input, cur+1)
	start = cur
	for cur < len(input) && !isLineEnd(input[cur]) && !strings.HasPrefix(input[cur:], `\n`) {
		cur++
	}
	text := strings.TrimSpace(input[start:cur])
	switch text {
	case "cancel":
		entry.Kind = debugger.OverloadsChoiceCancel
	case "all":
		entry.Kind = debugger.OverloadsChoiceAll
	default:
		entry.Kind = debugger.OverloadsChoiceLocation
		entry.FunctionName = text
		if at := strings.LastIndex(text, " at "); at >= 0 {
			entry.FunctionName = text[:at]
			location := text[at+len(" at "):]
			entry.FileName = location
			if colon := strings.LastIndexByte(location, ':'); colon >= 0 {
				if line, err := strconv.Atoi(location[colon+1:]); err == nil {
					entry.FileName, entry.Line = location[:colon], line
				}
			}
		}
	}
	return entry, cur, true
}

// skipEntrySeparators 跳过空白、换行以及字面量 \n
func skipEntrySeparators(input string, cur int) int {
	for cur < len(input) {
		switch {
		case input[cur] == ' ' || input[cur] == '\t' || isLineEnd(input[cur]):
			cur++
		case strings.HasPrefix(input[cur:], `\n`):
			cur += 2
		default:
			return cur
		}
	}
	return cur
}
