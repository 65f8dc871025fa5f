package utils

import (
	"sync"

	"github.com/fansqz/gdbmi-console/constants"
)

// StatusManager 记录调试器后端的状态
type StatusManager struct {
	lock   sync.RWMutex
	status constants.EngineState
}

func NewStatusManager() *StatusManager {
	return &StatusManager{
		status: constants.NotStarted,
	}
}

// Set 设置状态，返回状态是否发生了变化
func (s *StatusManager) Set(status constants.EngineState) bool {
	defer s.lock.Unlock()
	s.lock.Lock()
	changed := s.status != status
	s.status = status
	return changed
}

func (s *StatusManager) Get() constants.EngineState {
	defer s.lock.RUnlock()
	s.lock.RLock()
	return s.status
}

func (s *StatusManager) Is(statusList ...constants.EngineState) bool {
	defer s.lock.RUnlock()
	s.lock.RLock()
	for _, status := range statusList {
		if s.status == status {
			return true
		}
	}
	return false
}
