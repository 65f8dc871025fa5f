package interpreter

import (
	"fmt"
	"sort"

	e "github.com/fansqz/gdbmi-console/error"
	"github.com/sirupsen/logrus"
)

// Registry 命令表，命令名称以及别名都会映射到命令上
type Registry struct {
	commands []Command
	table    map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{
		table: map[string]Command{},
	}
}

// Register 注册命令，名称或别名已经存在时覆盖之前的命令，只记录警告
// 同名的旧命令被替换时，旧命令的别名也会被删除
func (r *Registry) Register(command Command) error {
	if command == nil || command.Name() == "" {
		return fmt.Errorf("register command: %w", e.ErrInvalidCommand)
	}
	_, isSync := command.(SyncCommand)
	_, isAsync := command.(AsyncCommand)
	if !isSync && !isAsync {
		return fmt.Errorf("register command %s: %w", command.Name(), e.ErrInvalidCommand)
	}
	r.removeCommand(command.Name())
	r.commands = append(r.commands, command)
	r.registerAlias(command.Name(), command)
	for _, alias := range command.Aliases() {
		if alias == "" {
			continue
		}
		r.registerAlias(alias, command)
	}
	return nil
}

func (r *Registry) registerAlias(alias string, command Command) {
	if _, ok := r.table[alias]; ok {
		logrus.Warnf("[Registry] command '%s' is already registered, the previous command will be overwritten", alias)
	}
	r.table[alias] = command
}

// removeCommand 同名命令只在命令列表中保留最后一次注册的
func (r *Registry) removeCommand(name string) {
	for i, command := range r.commands {
		if command.Name() != name {
			continue
		}
		for _, alias := range command.Aliases() {
			if old, ok := r.table[alias]; ok && old.Name() == name {
				delete(r.table, alias)
			}
		}
		r.commands = append(r.commands[:i], r.commands[i+1:]...)
		return
	}
}

// Lookup 根据名称或别名查找命令
func (r *Registry) Lookup(name string) (Command, bool) {
	command, ok := r.table[name]
	return command, ok
}

// Commands 按照注册顺序返回所有命令
func (r *Registry) Commands() []Command {
	answer := make([]Command, len(r.commands))
	copy(answer, r.commands)
	return answer
}

// Names 返回所有命令名称以及别名，按字母排序
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
