package interpreter

import (
	"github.com/fansqz/gdbmi-console/debugger"
	"github.com/fansqz/gdbmi-console/utils"
)

// Session 命令解释器的会话上下文，记录当前栈帧、当前文件以及已知的源文件
// 只在事件循环中根据调试器的信号更新
type Session struct {
	currentFrame    debugger.Frame
	hasFrame        bool
	currentFilePath string
	sourceFiles     []string

	// FileOpened open命令打开文件时触发，参数是文件路径
	FileOpened debugger.Signal[string]
}

func NewSession() *Session {
	return &Session{}
}

// Attach 连接调试器的信号，返回的连接在关闭时断开
func (s *Session) Attach(events *debugger.Events) []*debugger.Connection {
	return []*debugger.Connection{
		events.Stopped.Connect(s.onStopped),
		events.ProgramExited.Connect(s.onProgramExited),
		events.FilesListed.Connect(s.onFilesListed),
	}
}

func (s *Session) onStopped(stop *debugger.StopRecord) {
	if stop == nil || stop.Reason.IsExited() {
		return
	}
	s.currentFrame = stop.Frame
	s.hasFrame = stop.HasFrame
	if stop.HasFrame && stop.Frame.HasSource() {
		s.currentFilePath = stop.Frame.FilePath()
	}
}

func (s *Session) onProgramExited(*debugger.StopRecord) {
	s.currentFrame = debugger.Frame{}
	s.hasFrame = false
}

func (s *Session) onFilesListed(files debugger.FilesListed) {
	s.sourceFiles = utils.Distinct(files.Files)
}

// CurrentFrame 当前栈帧，程序没有停止在某个位置时返回false
func (s *Session) CurrentFrame() (debugger.Frame, bool) {
	return s.currentFrame, s.hasFrame
}

func (s *Session) CurrentFilePath() string {
	return s.currentFilePath
}

func (s *Session) SetCurrentFilePath(path string) {
	s.currentFilePath = path
}

// SourceFiles 调试器最近一次列出的源文件
func (s *Session) SourceFiles() []string {
	answer := make([]string, len(s.sourceFiles))
	copy(answer, s.sourceFiles)
	return answer
}

// OpenFile 把文件设置为当前文件并通知外部编辑器
func (s *Session) OpenFile(path string) {
	s.currentFilePath = path
	s.FileOpened.Emit(path)
}
