package gdbmi

import (
	"strings"
)

// ParseCString 解析gdb/mi输出中用双引号包裹的c风格字符串
// 支持 \\ \" 以及三位八进制 \NNN 的转义，八进制转义还原成原始字节，
// 这些字节不一定是合法的utf-8（比如反汇编的内容）
// 成功时返回解码后的字符串以及结尾引号之后的位置
func ParseCString(input string, from int) (string, int, bool) {
	if from < 0 || from >= len(input) || input[from] != '"' {
		return "", from, false
	}
	end, ok := findCStringEnd(input, from)
	if !ok {
		return "", from, false
	}
	return unescapeCString(input[from+1 : end]), end + 1, true
}

// ParseEmbeddedCString 解析嵌套在另一个c字符串中的c字符串，形如 \"\\311\\303\"
// 外层的转义还保留在输入中，需要先去掉一层转义，再按c字符串解码
func ParseEmbeddedCString(input string, from int) (string, int, bool) {
	if from < 0 || !strings.HasPrefix(input[min(from, len(input)):], `\"`) {
		return "", from, false
	}
	var body strings.Builder
	// escaped 表示去掉一层转义以后，上一个字符是否是未被转义的反斜杠
	escaped := false
	cur := from + 2
	for cur < len(input) {
		c := input[cur]
		if c != '\\' {
			body.WriteByte(c)
			escaped = false
			cur++
			continue
		}
		if cur+1 >= len(input) {
			return "", from, false
		}
		switch input[cur+1] {
		case '\\':
			body.WriteByte('\\')
			escaped = !escaped
			cur += 2
		case '"':
			if !escaped {
				return unescapeCString(body.String()), cur + 2, true
			}
			body.WriteByte('"')
			escaped = false
			cur += 2
		default:
			decoded, width := unescapeSequence(input, cur)
			body.WriteString(decoded)
			escaped = false
			cur += width
		}
	}
	return "", from, false
}

// EscapeCString 把字符串编码为gdb/mi的c字符串，不可打印的字节使用八进制转义
func EscapeCString(value string) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c < 0x20 || c >= 0x7f:
			sb.WriteByte('\\')
			sb.WriteByte('0' + c>>6)
			sb.WriteByte('0' + (c>>3)&7)
			sb.WriteByte('0' + c&7)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// findCStringEnd 找到与from处引号匹配的结尾引号
func findCStringEnd(input string, from int) (int, bool) {
	for cur := from + 1; cur < len(input); cur++ {
		switch input[cur] {
		case '\\':
			cur++
		case '"':
			return cur, true
		}
	}
	return 0, false
}

// unescapeCString 对去掉引号的c字符串内容做反转义
func unescapeCString(body string) string {
	if strings.IndexByte(body, '\\') < 0 {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for cur := 0; cur < len(body); {
		if body[cur] != '\\' {
			sb.WriteByte(body[cur])
			cur++
			continue
		}
		decoded, width := unescapeSequence(body, cur)
		sb.WriteString(decoded)
		cur += width
	}
	return sb.String()
}

// unescapeSequence 解码cur处以反斜杠开头的转义序列，返回解码结果和转义序列的长度
func unescapeSequence(input string, cur int) (string, int) {
	if cur+1 >= len(input) {
		return `\`, 1
	}
	if cur+3 < len(input) && isOctal(input[cur+1]) && isOctal(input[cur+2]) && isOctal(input[cur+3]) {
		value := int(input[cur+1]-'0')<<6 | int(input[cur+2]-'0')<<3 | int(input[cur+3]-'0')
		if value <= 0xff {
			return string([]byte{byte(value)}), 4
		}
	}
	switch c := input[cur+1]; c {
	case 'n':
		return "\n", 2
	case 't':
		return "\t", 2
	case 'r':
		return "\r", 2
	case 'a':
		return "\a", 2
	case 'b':
		return "\b", 2
	case 'f':
		return "\f", 2
	case 'v':
		return "\v", 2
	case 'e':
		return "\x1b", 2
	case '\\', '"', '\'':
		return string([]byte{c}), 2
	default:
		// 未知的转义原样保留
		return input[cur : cur+2], 2
	}
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
