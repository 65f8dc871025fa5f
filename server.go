package main

import (
	"bufio"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/google/go-dap"
	"github.com/sirupsen/logrus"
)

// sendQueueSize 每个连接等待发送的消息上限
const sendQueueSize = 1024

// handleConnection 处理一个编辑器连接
// 在连接所在的协程中读取并解码请求，请求投递到事件循环中处理
func handleConnection(conn net.Conn, editor *EditorServer) {
	debugSession := newDebugSession(conn)
	editor.addSession(debugSession)
	defer editor.removeSession(debugSession)

	for {
		request, err := dap.ReadProtocolMessage(debugSession.rw.Reader)
		if err != nil {
			if errors.Is(err, io.EOF) || debugSession.isClosed() {
				logrus.Infof("[EditorServer] no more data to read from %v", conn.RemoteAddr())
				break
			}
			logrus.Errorf("[EditorServer] read request fail, err = %v", err)
			if _, ok := err.(*dap.DecodeProtocolMessageFieldError); ok {
				continue
			}
			break
		}
		if !editor.post(func() { editor.dispatchRequest(debugSession, request) }) {
			break
		}
	}

	logrus.Infof("[EditorServer] closing connection from %v", conn.RemoteAddr())
	debugSession.close()
}

// DebugSession 一个编辑器连接
type DebugSession struct {
	conn net.Conn
	// rw 读取请求，写入事件以及响应
	rw *bufio.ReadWriter

	// sendQueue 等待发送的消息，由sendFromQueue在单独的协程中写入连接
	// 事件循环只负责入队，编辑器不读取时不会阻塞事件循环
	sendQueue chan dap.Message
	lock      sync.Mutex
	closed    bool
}

func newDebugSession(conn net.Conn) *DebugSession {
	d := &DebugSession{
		conn:      conn,
		rw:        bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn)),
		sendQueue: make(chan dap.Message, sendQueueSize),
	}
	go d.sendFromQueue()
	return d
}

// send Message放入发送队列，连接关闭或者队列已满时丢弃
func (d *DebugSession) send(message dap.Message) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.closed {
		return
	}
	select {
	case d.sendQueue <- message:
	default:
		logrus.Warnf("[EditorServer] send queue of %v is full, message dropped", d.conn.RemoteAddr())
	}
}

// sendFromQueue 依次把队列中的消息写入连接，队列关闭并且发送完以后关闭连接
func (d *DebugSession) sendFromQueue() {
	for message := range d.sendQueue {
		if err := dap.WriteProtocolMessage(d.rw.Writer, message); err != nil {
			logrus.Errorf("[EditorServer] write message fail, err = %v", err)
			continue
		}
		if err := d.rw.Flush(); err != nil {
			logrus.Errorf("[EditorServer] flush message fail, err = %v", err)
		}
	}
	_ = d.conn.Close()
}

// close 不再接收新的消息，已经入队的消息发送完以后关闭连接
func (d *DebugSession) close() {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	close(d.sendQueue)
}

func (d *DebugSession) isClosed() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.closed
}

func newResponse(requestSeq int, command string) *dap.Response {
	return &dap.Response{
		ProtocolMessage: dap.ProtocolMessage{
			Seq:  0,
			Type: "response",
		},
		Command:    command,
		RequestSeq: requestSeq,
		Success:    true,
	}
}

func newErrorResponse(requestSeq int, command string, message string) *dap.ErrorResponse {
	er := &dap.ErrorResponse{}
	er.Response = *newResponse(requestSeq, command)
	er.Success = false
	er.Message = message
	er.Body.Error = &dap.ErrorMessage{}
	er.Body.Error.Format = message
	er.Body.Error.Id = 12345
	return er
}
