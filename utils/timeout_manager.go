package utils

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TimeoutManager 一个一次性的计时器
// 在timeout时间内没有执行Cancel，就会把fun投递到事件循环中执行
type TimeoutManager struct {
	lock       sync.Mutex
	timer      *time.Timer
	generation uint64
	post       func(func()) bool
}

// NewTimeoutManager 创建一个新的计时器实例，post用于把超时回调投递到事件循环
func NewTimeoutManager(post func(func()) bool) *TimeoutManager {
	return &TimeoutManager{post: post}
}

// Start 开始计时，如果已经在计时，会先取消之前的计时
func (t *TimeoutManager) Start(timeout time.Duration, fun func()) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.stopLocked()
	t.generation++
	generation := t.generation
	t.timer = time.AfterFunc(timeout, func() {
		t.post(func() {
			// Cancel以后才执行到这里的超时回调需要丢弃
			if !t.expire(generation) {
				return
			}
			logrus.Infof("[TimeoutManager] Timer expired, performing action")
			fun()
		})
	})
}

// Cancel 取消计时
func (t *TimeoutManager) Cancel() {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.stopLocked()
	t.generation++
}

func (t *TimeoutManager) expire(generation uint64) bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	if generation != t.generation {
		return false
	}
	t.timer = nil
	return true
}

func (t *TimeoutManager) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
