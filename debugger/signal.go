package debugger

import "sync"

// Signal 一个简单的信号，回调按照连接的顺序执行
type Signal[T any] struct {
	mutex       sync.Mutex
	connections []*Connection
	slots       map[*Connection]func(T)
}

// Connection 信号的一个连接，可以通过Disconnect断开
type Connection struct {
	disconnect func()
	once       sync.Once
}

// Disconnect 断开连接，多次调用是安全的
func (c *Connection) Disconnect() {
	if c == nil {
		return
	}
	c.once.Do(c.disconnect)
}

// Connect 连接一个回调
func (s *Signal[T]) Connect(slot func(T)) *Connection {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.slots == nil {
		s.slots = map[*Connection]func(T){}
	}
	c := &Connection{}
	c.disconnect = func() { s.remove(c) }
	s.connections = append(s.connections, c)
	s.slots[c] = slot
	return c
}

// Emit 触发信号，回调中断开连接是安全的
func (s *Signal[T]) Emit(value T) {
	s.mutex.Lock()
	connections := make([]*Connection, len(s.connections))
	copy(connections, s.connections)
	s.mutex.Unlock()
	for _, c := range connections {
		s.mutex.Lock()
		slot, ok := s.slots[c]
		s.mutex.Unlock()
		// 前面的回调可能已经断开了后面的连接
		if ok {
			slot(value)
		}
	}
}

// Size 当前的连接数量
func (s *Signal[T]) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.connections)
}

func (s *Signal[T]) remove(c *Connection) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.slots, c)
	for i, conn := range s.connections {
		if conn == c {
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return
		}
	}
}
