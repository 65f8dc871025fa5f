package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fansqz/gdbmi-console/constants"
	e "github.com/fansqz/gdbmi-console/error"
	"github.com/fansqz/gdbmi-console/interpreter"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Console 控制台，把用户输入的命令行交给命令解释器
type Console struct {
	interp *interpreter.CmdInterpreter
	// post 把任务投递到事件循环中执行
	post   func(func()) bool
	out    io.Writer
	prompt string
	// interactive 是否在命令解释器空闲时输出提示符
	interactive bool
	history     []string
}

// Completion 补全结果
type Completion struct {
	// Matches 所有匹配的候选项
	Matches []string
	// Suffix 所有候选项共同的、还没有输入的部分
	Suffix string
}

func NewConsole(interp *interpreter.CmdInterpreter, post func(func()) bool, out io.Writer) *Console {
	c := &Console{
		interp: interp,
		post:   post,
		out:    out,
		prompt: constants.DefaultPrompt,
	}
	interp.OnReady(c.onReady)
	return c
}

// IsTerminal 判断文件是否是终端
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (c *Console) SetPrompt(prompt string) {
	c.prompt = prompt
}

func (c *Console) SetInteractive(interactive bool) {
	c.interactive = interactive
}

// History 执行过的命令
func (c *Console) History() []string {
	answer := make([]string, len(c.history))
	copy(answer, c.history)
	return answer
}

// ExecuteCommand 执行一行命令，只能在事件循环中调用
func (c *Console) ExecuteCommand(line string) {
	if strings.TrimSpace(line) != "" {
		c.history = append(c.history, line)
	}
	c.interp.ExecuteCommand(line)
}

// ExecuteCommandFile 按行执行命令文件中的命令，跳过空行
func (c *Console) ExecuteCommandFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, e.ErrCommandFileNotFound)
		}
		return err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c.post(func() {
			c.write(line + "\n")
			c.ExecuteCommand(line)
		})
	}
	if err = scanner.Err(); err != nil {
		logrus.Errorf("[Console] read command file %s fail, err = %v", path, err)
		return err
	}
	return nil
}

// Run 读取用户输入，每一行投递到事件循环中执行，直到输入结束
func (c *Console) Run(ctx context.Context, reader io.Reader) error {
	if c.interactive {
		c.post(func() {
			if c.interp.Ready() {
				c.write(c.prompt)
			}
		})
	}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if !c.post(func() { c.ExecuteCommand(line) }) {
			return nil
		}
	}
	return scanner.Err()
}

func (c *Console) onReady() {
	if c.interactive {
		c.write(c.prompt)
	}
}

// Complete 补全命令行，第一个单词补全命令名称，后面的单词使用命令自己的候选项
// 只能在事件循环中调用
func (c *Console) Complete(line string) Completion {
	tokens := strings.Fields(line)
	endsWithSpace := line != "" && strings.TrimRight(line, " \t") != line
	if len(tokens) == 0 {
		return c.completeCommand("")
	}
	if len(tokens) == 1 && !endsWithSpace {
		return c.completeCommand(tokens[0])
	}
	command, ok := c.interp.Registry().Lookup(tokens[0])
	if !ok {
		return Completion{}
	}
	completer, ok := command.(interpreter.Completer)
	if !ok {
		return Completion{}
	}
	argv := tokens[1:]
	token := ""
	if !endsWithSpace {
		token = argv[len(argv)-1]
		argv = argv[:len(argv)-1]
	}
	return newCompletion(token, completer.Completions(c.interp.Context(), argv))
}

func (c *Console) completeCommand(prefix string) Completion {
	var names []string
	for _, command := range c.interp.Commands() {
		names = append(names, command.Name())
	}
	sort.Strings(names)
	return newCompletion(prefix, names)
}

// newCompletion 过滤出以token开头的候选项，计算共同前缀
func newCompletion(token string, candidates []string) Completion {
	var matches []string
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, token) {
			matches = append(matches, candidate)
		}
	}
	if len(matches) == 0 {
		return Completion{}
	}
	common := matches[0]
	for _, match := range matches[1:] {
		i := 0
		for i < len(common) && i < len(match) && common[i] == match[i] {
			i++
		}
		common = common[:i]
	}
	return Completion{Matches: matches, Suffix: common[len(token):]}
}

func (c *Console) write(text string) {
	if _, err := io.WriteString(c.out, text); err != nil {
		logrus.Errorf("[Console] write output fail, err = %v", err)
	}
}
