package utils

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// Loop 单协程事件循环
// 所有投递进来的任务都在同一个协程中按投递顺序执行，
// 命令解释器、会话上下文以及调试器信号的处理都运行在这个协程上，因此不需要加锁
type Loop struct {
	mutex  sync.Mutex
	tasks  []func()
	wakeup chan struct{}
	closed bool
}

func NewLoop() *Loop {
	return &Loop{
		wakeup: make(chan struct{}, 1),
	}
}

// Post 投递一个任务，可以在任意协程中调用
// 循环停止以后投递的任务会被丢弃
func (l *Loop) Post(task func()) bool {
	l.mutex.Lock()
	if l.closed {
		l.mutex.Unlock()
		return false
	}
	l.tasks = append(l.tasks, task)
	l.mutex.Unlock()
	select {
	case l.wakeup <- struct{}{}:
	default:
	}
	return true
}

// Run 执行任务直到ctx结束或者调用Stop
func (l *Loop) Run(ctx context.Context) {
	for {
		for _, task := range l.take() {
			l.runTask(task)
		}
		if l.isClosed() {
			return
		}
		select {
		case <-ctx.Done():
			l.Stop()
			return
		case <-l.wakeup:
		}
	}
}

// Stop 停止事件循环，已经投递但未执行的任务不再执行
func (l *Loop) Stop() {
	l.mutex.Lock()
	l.closed = true
	l.tasks = nil
	l.mutex.Unlock()
	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

func (l *Loop) take() []func() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	tasks := l.tasks
	l.tasks = nil
	return tasks
}

func (l *Loop) isClosed() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.closed
}

func (l *Loop) runTask(task func()) {
	defer func() {
		if err := recover(); err != nil {
			logrus.Errorf("[Loop] task panic, err = %v\n%s", err, debug.Stack())
		}
	}()
	task()
}
