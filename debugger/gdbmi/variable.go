package gdbmi

import (
	"fmt"
	"strings"

	"github.com/fansqz/gdbmi-console/debugger"
)

// maxMemberDepth 成员变量的最大嵌套层数，超过以后认为输入有误
const maxMemberDepth = 256

// ParseMemberVariable 解析gdb打印结构体、类时的输出，比如
// {a = 1, <Base> = {x = 2}, <No data fields>, _M_p = 0x804b144 "Ali", ...}
// 解析出来的成员追加到parent中，失败时parent不会被修改
func ParseMemberVariable(input string, from int, parent *debugger.Variable) (int, bool) {
	if parent == nil || from < 0 {
		return from, false
	}
	members, truncated, to, ok := parseMembers(input, from, 0)
	if !ok {
		return from, false
	}
	parent.Members = append(parent.Members, members...)
	if truncated {
		parent.Truncated = true
	}
	return to, true
}

// ParseVariableValue 解析 value="..."，值是结构体时同时解析出成员
func ParseVariableValue(input string, from int, variable *debugger.Variable) (int, bool) {
	if from < 0 {
		return from, false
	}
	cur := skipBlanks(input, from)
	if variable == nil || !strings.HasPrefix(input[min(cur, len(input)):], "value=\"") {
		return from, false
	}
	cur += len("value=")
	if cur+1 < len(input) && input[cur+1] == '{' {
		// 结构体输出中的字符串有时没有被转义，直接在原始输入上解析成员
		tmp := &debugger.Variable{}
		if to, ok := ParseMemberVariable(input, cur+1, tmp); ok && to < len(input) && input[to] == '"' {
			variable.Value = input[cur+1 : to]
			variable.Members = append(variable.Members, tmp.Members...)
			variable.Truncated = variable.Truncated || tmp.Truncated
			return to + 1, true
		}
	}
	value, to, ok := ParseCString(input, cur)
	if !ok {
		return from, false
	}
	variable.Value = value
	if pos, ok := aggregateStart(value); ok {
		ParseMemberVariable(value, pos, variable)
	}
	return to, true
}

// aggregateStart 判断值是否是结构体，返回左大括号的位置
// 支持 {...}、(Person &) @0xbf88fad4: {...} 这样的形式
func aggregateStart(value string) (int, bool) {
	cur := skipBlanks(value, 0)
	if cur < len(value) && value[cur] == '(' {
		depth := 0
		for ; cur < len(value); cur++ {
			if value[cur] == '(' {
				depth++
			} else if value[cur] == ')' {
				depth--
				if depth == 0 {
					break
				}
			}
		}
		if cur >= len(value) {
			return 0, false
		}
		cur = skipBlanks(value, cur+1)
	}
	if cur < len(value) && value[cur] == '@' {
		cur++
		for cur < len(value) && isAddressChar(value[cur]) {
			cur++
		}
		cur = skipBlanks(value, cur)
		if cur < len(value) && value[cur] == ':' {
			cur = skipBlanks(value, cur+1)
		}
	}
	if cur < len(value) && value[cur] == '{' {
		return cur, true
	}
	return 0, false
}

// parseMembers 解析from处以左大括号开头的成员列表
// 返回成员、是否有省略的元素以及右大括号之后的位置
func parseMembers(input string, from int, depth int) ([]*debugger.Variable, bool, int, bool) {
	if depth > maxMemberDepth || from >= len(input) || input[from] != '{' {
		return nil, false, from, false
	}
	var members []*debugger.Variable
	truncated := false
	index := 0
	cur := from + 1
	for {
		cur = skipBlanks(input, cur)
		if cur >= len(input) {
			return nil, false, from, false
		}
		if input[cur] == '}' {
			return members, truncated, cur + 1, true
		}
		member, to, ok := parseMember(input, cur, depth)
		if !ok {
			return nil, false, from, false
		}
		switch {
		case member == nil:
			// <No data fields>
		case member.Name == "" && member.Value == "...":
			truncated = true
		default:
			if member.Name == "" {
				member.Name = fmt.Sprintf("[%d]", index)
			}
			index++
			members = append(members, member)
		}
		cur = skipBlanks(input, to)
		if cur >= len(input) {
			return nil, false, from, false
		}
		switch input[cur] {
		case ',':
			cur++
		case '}':
			return members, truncated, cur + 1, true
		default:
			return nil, false, from, false
		}
	}
}

// parseMember 解析一个成员，成员只是 <No data fields> 的占位符时返回nil
func parseMember(input string, from int, depth int) (*debugger.Variable, int, bool) {
	member := &debugger.Variable{}
	cur := from
	name, valueStart, hasName := scanMemberName(input, from)
	if hasName {
		member.Name = name
		cur = valueStart
	}
	to, ok := parseMemberValue(input, cur, member, depth)
	if !ok {
		return nil, from, false
	}
	if !hasName && member.Value == "<No data fields>" {
		return nil, to, true
	}
	return member, to, true
}

// scanMemberName 读取 name = 中的名字，<Base> = 这种基类也当作名字
func scanMemberName(input string, from int) (string, int, bool) {
	if input[from] == '<' {
		end, ok := skipAngles(input, from)
		if !ok {
			return "", from, false
		}
		cur := skipBlanks(input, end)
		if cur < len(input) && input[cur] == '=' {
			return input[from:end], skipBlanks(input, cur+1), true
		}
		return "", from, false
	}
	for cur := from; cur < len(input); cur++ {
		switch input[cur] {
		case '=':
			if cur+1 < len(input) && input[cur+1] == '=' {
				return "", from, false
			}
			name := strings.TrimSpace(input[from:cur])
			if name == "" {
				return "", from, false
			}
			return name, skipBlanks(input, cur+1), true
		case ',', '{', '}', '"', '\'', '(', '<':
			return "", from, false
		}
	}
	return "", from, false
}

// parseMemberValue 读取成员的值，直到同一层的逗号或者右大括号
// 值中的字符串、字符以及括号都会被完整跳过
func parseMemberValue(input string, from int, member *debugger.Variable, depth int) (int, bool) {
	parens := 0
	nested := false
	cur := from
loop:
	for cur < len(input) {
		switch input[cur] {
		case '"', '\'':
			end, ok := skipQuoted(input, cur)
			if !ok {
				return from, false
			}
			cur = end
			continue
		case '(', '[':
			parens++
		case ')', ']':
			if parens > 0 {
				parens--
			}
		case '{':
			if parens == 0 && !nested {
				members, truncated, to, ok := parseMembers(input, cur, depth+1)
				if !ok {
					return from, false
				}
				member.Members = members
				member.Truncated = truncated
				nested = true
				cur = to
				continue
			}
			end, ok := skipBraces(input, cur)
			if !ok {
				return from, false
			}
			cur = end
			continue
		case '}':
			break loop
		case ',':
			if parens == 0 {
				break loop
			}
		}
		cur++
	}
	if cur >= len(input) {
		return from, false
	}
	member.Value = strings.TrimSpace(input[from:cur])
	if strings.HasSuffix(member.Value, "...") {
		member.Truncated = true
	}
	return cur, true
}

// skipQuoted 跳过from处的字符串或字符，返回结尾引号之后的位置
func skipQuoted(input string, from int) (int, bool) {
	quote := input[from]
	for cur := from + 1; cur < len(input); cur++ {
		switch input[cur] {
		case '\\':
			cur++
		case quote:
			return cur + 1, true
		}
	}
	return from, false
}

// skipAngles 跳过 <std::allocator<char>> 这样成对的尖括号
func skipAngles(input string, from int) (int, bool) {
	depth := 0
	for cur := from; cur < len(input); cur++ {
		switch input[cur] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return cur + 1, true
			}
		}
	}
	return from, false
}

// skipBraces 跳过成对的大括号，括号中的字符串也会被跳过
func skipBraces(input string, from int) (int, bool) {
	depth := 0
	for cur := from; cur < len(input); cur++ {
		switch input[cur] {
		case '"', '\'':
			end, ok := skipQuoted(input, cur)
			if !ok {
				return from, false
			}
			cur = end - 1
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return cur + 1, true
			}
		}
	}
	return from, false
}

func isAddressChar(c byte) bool {
	return c == 'x' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
