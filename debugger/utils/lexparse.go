package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/fansqz/gdbmi-console/constants"
	e "github.com/fansqz/gdbmi-console/error"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
)

// FunctionInfo 源文件中定义的函数
type FunctionInfo struct {
	Name   string `json:"name"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// ParseFunctions 解析C/C++源码，返回其中定义的函数
func ParseFunctions(content []byte, languageType constants.LanguageType) ([]FunctionInfo, error) {
	parser := sitter.NewParser()
	switch languageType {
	case constants.LanguageC:
		parser.SetLanguage(c.GetLanguage())
	case constants.LanguageCpp:
		parser.SetLanguage(cpp.GetLanguage())
	default:
		return nil, e.ErrLanguageNotSupported
	}
	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("解析失败: %w", err)
	}
	defer tree.Close()

	var functions []FunctionInfo
	// 使用栈来手动管理节点遍历
	stack := []*sitter.Node{tree.RootNode()}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.Type() == "function_definition" {
			if name := functionName(node.ChildByFieldName("declarator")); name != nil {
				functions = append(functions, FunctionInfo{
					Name:   name.Content(content),
					Line:   int(name.StartPoint().Row + 1),
					Column: int(name.StartPoint().Column + 1),
				})
			}
		}
		// 逆序入栈，保证按源码顺序输出
		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, node.NamedChild(i))
		}
	}
	return functions, nil
}

// ParseFunctionsFromFile 读取源文件并解析其中的函数
// 语言根据文件后缀推断，无法推断时使用fallback
func ParseFunctionsFromFile(path string, fallback constants.LanguageType) ([]FunctionInfo, error) {
	languageType := constants.LanguageByFile(path)
	if languageType == "" {
		languageType = fallback
	}
	if languageType == "" {
		return nil, e.ErrLanguageNotSupported
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFunctions(content, languageType)
}

// functionName 从声明中找出函数名节点，返回int *foo()、Person::overload()这样的声明也能找到
func functionName(declarator *sitter.Node) *sitter.Node {
	for declarator != nil {
		switch declarator.Type() {
		case "function_declarator":
			return declarator.ChildByFieldName("declarator")
		case "pointer_declarator", "reference_declarator", "parenthesized_declarator":
			if child := declarator.ChildByFieldName("declarator"); child != nil {
				declarator = child
				continue
			}
			// reference_declarator 没有declarator字段
			declarator = declarator.NamedChild(0)
		default:
			return nil
		}
	}
	return nil
}
