package main

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/fansqz/gdbmi-console/console"
	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger"
	"github.com/fansqz/gdbmi-console/interpreter"
	"github.com/fansqz/gdbmi-console/utils/gosync"
	"github.com/google/go-dap"
	"github.com/sirupsen/logrus"
)

// EditorServer 通过dap协议把调试状态推送给外部编辑器
// 请求都在事件循环中处理，编辑器的执行类请求也通过命令解释器排队执行
type EditorServer struct {
	post    func(func()) bool
	engine  debugger.Engine
	interp  *interpreter.CmdInterpreter
	console *console.Console
	refs    *debugger.ReferenceUtil

	lock     sync.Mutex
	sessions []*DebugSession
}

func NewEditorServer(post func(func()) bool) *EditorServer {
	return &EditorServer{
		post: post,
		refs: debugger.NewReferenceUtil(),
	}
}

// Attach 连接调试器以及命令解释器的信号，只能在事件循环启动之前调用
func (s *EditorServer) Attach(engine debugger.Engine, interp *interpreter.CmdInterpreter, con *console.Console) {
	s.engine = engine
	s.interp = interp
	s.console = con
	events := engine.Events()
	events.Stopped.Connect(s.onStopped)
	events.ProgramExited.Connect(s.onProgramExited)
	interp.Session().FileOpened.Connect(s.onFileOpened)
}

// Serve 监听端口，接受编辑器连接
func (s *EditorServer) Serve(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("listen %s: %w", port, err)
	}
	logrus.Infof("[EditorServer] started listening at: %s", listener.Addr().String())
	gosync.Go(ctx, func(ctx context.Context) {
		<-ctx.Done()
		_ = listener.Close()
	})
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logrus.Errorf("[EditorServer] connection failed, err = %v", err)
			continue
		}
		gosync.Go(ctx, func(ctx context.Context) {
			handleConnection(conn, s)
		})
	}
}

// Write 把命令解释器的输出转发给编辑器
func (s *EditorServer) Write(p []byte) (int, error) {
	s.broadcast(debugger.NewOutputEvent("console", string(p)))
	return len(p), nil
}

func (s *EditorServer) addSession(session *DebugSession) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.sessions = append(s.sessions, session)
}

func (s *EditorServer) removeSession(session *DebugSession) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for i, item := range s.sessions {
		if item == session {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return
		}
	}
}

func (s *EditorServer) broadcast(message dap.Message) {
	s.lock.Lock()
	sessions := make([]*DebugSession, len(s.sessions))
	copy(sessions, s.sessions)
	s.lock.Unlock()
	for _, session := range sessions {
		session.send(message)
	}
}

func (s *EditorServer) onStopped(stop *debugger.StopRecord) {
	s.refs.Reset()
	if stop.Reason.IsExited() {
		return
	}
	s.broadcast(debugger.NewStoppedEvent(stop))
}

func (s *EditorServer) onProgramExited(stop *debugger.StopRecord) {
	s.broadcast(debugger.NewExitedEvent(stop))
	s.broadcast(&dap.TerminatedEvent{Event: *debugger.NewEvent(0, "terminated")})
}

func (s *EditorServer) onFileOpened(path string) {
	s.broadcast(debugger.NewLoadedSourceEvent(path))
}

func (s *EditorServer) dispatchRequest(d *DebugSession, request dap.Message) {
	switch request := request.(type) {
	case *dap.InitializeRequest:
		s.onInitializeRequest(d, request)
	case *dap.ConfigurationDoneRequest:
		response := &dap.ConfigurationDoneResponse{}
		response.Response = *newResponse(request.Seq, request.Command)
		d.send(response)
	case *dap.ThreadsRequest:
		s.onThreadsRequest(d, request)
	case *dap.StackTraceRequest:
		s.onStackTraceRequest(d, request)
	case *dap.ScopesRequest:
		s.onScopesRequest(d, request)
	case *dap.VariablesRequest:
		s.onVariablesRequest(d, request)
	case *dap.EvaluateRequest:
		s.onEvaluateRequest(d, request)
	case *dap.CompletionsRequest:
		s.onCompletionsRequest(d, request)
	case *dap.LoadedSourcesRequest:
		s.onLoadedSourcesRequest(d, request)
	case *dap.ContinueRequest:
		s.interp.ExecuteCommand("continue")
		response := &dap.ContinueResponse{}
		response.Response = *newResponse(request.Seq, request.Command)
		response.Body.AllThreadsContinued = true
		d.send(response)
	case *dap.NextRequest:
		s.interp.ExecuteCommand("next")
		response := &dap.NextResponse{}
		response.Response = *newResponse(request.Seq, request.Command)
		d.send(response)
	case *dap.StepInRequest:
		s.interp.ExecuteCommand("step")
		response := &dap.StepInResponse{}
		response.Response = *newResponse(request.Seq, request.Command)
		d.send(response)
	case *dap.StepOutRequest:
		s.interp.ExecuteCommand("finish")
		response := &dap.StepOutResponse{}
		response.Response = *newResponse(request.Seq, request.Command)
		d.send(response)
	case *dap.PauseRequest:
		// 程序运行时命令队列暂停，中断请求直接发给调试器
		if err := s.engine.Stop(); err != nil {
			d.send(newErrorResponse(request.Seq, request.Command, err.Error()))
			return
		}
		response := &dap.PauseResponse{}
		response.Response = *newResponse(request.Seq, request.Command)
		d.send(response)
	case *dap.DisconnectRequest:
		response := &dap.DisconnectResponse{}
		response.Response = *newResponse(request.Seq, request.Command)
		d.send(response)
		d.close()
	default:
		if baseReq, ok := request.(dap.RequestMessage); ok {
			req := baseReq.GetRequest()
			d.send(newErrorResponse(req.Seq, req.Command, fmt.Sprintf("%s is not yet supported", req.Command)))
			return
		}
		logrus.Warnf("[EditorServer] unable to process %#v", request)
	}
}

func (s *EditorServer) onInitializeRequest(d *DebugSession, request *dap.InitializeRequest) {
	response := &dap.InitializeResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	response.Body.SupportsConfigurationDoneRequest = true
	response.Body.SupportsCompletionsRequest = true
	response.Body.CompletionTriggerCharacters = []string{" "}
	response.Body.SupportsLoadedSourcesRequest = true
	response.Body.ExceptionBreakpointFilters = []dap.ExceptionBreakpointsFilter{}
	d.send(&dap.InitializedEvent{Event: *debugger.NewEvent(0, "initialized")})
	d.send(response)
}

func (s *EditorServer) onThreadsRequest(d *DebugSession, request *dap.ThreadsRequest) {
	id := s.engine.CurrentThread()
	if id == 0 {
		id = 1
	}
	response := &dap.ThreadsResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	response.Body.Threads = []dap.Thread{{Id: id, Name: fmt.Sprintf("thread %d", id)}}
	d.send(response)
}

func (s *EditorServer) onStackTraceRequest(d *DebugSession, request *dap.StackTraceRequest) {
	response := &dap.StackTraceResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	response.Body.StackFrames = []dap.StackFrame{}
	if frame, ok := s.interp.Session().CurrentFrame(); ok {
		response.Body.StackFrames = append(response.Body.StackFrames, debugger.NewStackFrame(frame))
	}
	response.Body.TotalFrames = len(response.Body.StackFrames)
	d.send(response)
}

func (s *EditorServer) onScopesRequest(d *DebugSession, request *dap.ScopesRequest) {
	response := &dap.ScopesResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	response.Body.Scopes = debugger.NewScopes(request.Arguments.FrameId, s.refs)
	d.send(response)
}

func (s *EditorServer) onVariablesRequest(d *DebugSession, request *dap.VariablesRequest) {
	if s.engine.State() == constants.Running {
		d.send(newErrorResponse(request.Seq, request.Command, "program is running"))
		return
	}
	reference := request.Arguments.VariablesReference
	var variables []dap.Variable
	var err error
	if s.refs.CheckIsScopeReference(reference) {
		frame, _ := s.interp.Session().CurrentFrame()
		frameId := s.refs.GetFrameIDByScopeReference(reference)
		variables, err = debugger.NewDapVariables(frameId, frame.Args, nil, s.refs)
	} else {
		refStruct, variable, parseErr := s.refs.ParseVariableReference(reference)
		if parseErr != nil {
			err = parseErr
		} else {
			variables, err = debugger.NewDapVariables(refStruct.FrameId, variable.Members, refStruct, s.refs)
		}
	}
	if err != nil {
		d.send(newErrorResponse(request.Seq, request.Command, err.Error()))
		return
	}
	response := &dap.VariablesResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	response.Body.Variables = variables
	d.send(response)
}

// onEvaluateRequest repl中输入的内容作为控制台命令执行，输出通过output事件返回
func (s *EditorServer) onEvaluateRequest(d *DebugSession, request *dap.EvaluateRequest) {
	if request.Arguments.Context != "" && request.Arguments.Context != "repl" {
		d.send(newErrorResponse(request.Seq, request.Command,
			fmt.Sprintf("evaluate context %s is not yet supported", request.Arguments.Context)))
		return
	}
	s.console.ExecuteCommand(request.Arguments.Expression)
	response := &dap.EvaluateResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	d.send(response)
}

func (s *EditorServer) onCompletionsRequest(d *DebugSession, request *dap.CompletionsRequest) {
	text := request.Arguments.Text
	// column从1开始
	if column := request.Arguments.Column - 1; column >= 0 && column < len(text) {
		text = text[:column]
	}
	completion := s.console.Complete(text)
	token := ""
	if !strings.HasSuffix(text, " ") {
		if fields := strings.Fields(text); len(fields) != 0 {
			token = fields[len(fields)-1]
		}
	}
	response := &dap.CompletionsResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	response.Body.Targets = make([]dap.CompletionItem, 0, len(completion.Matches))
	for _, match := range completion.Matches {
		response.Body.Targets = append(response.Body.Targets, dap.CompletionItem{
			Label:  match,
			Text:   match,
			Start:  len(text) - len(token),
			Length: len(token),
		})
	}
	d.send(response)
}

func (s *EditorServer) onLoadedSourcesRequest(d *DebugSession, request *dap.LoadedSourcesRequest) {
	response := &dap.LoadedSourcesResponse{}
	response.Response = *newResponse(request.Seq, request.Command)
	response.Body.Sources = []dap.Source{}
	for _, file := range s.interp.Session().SourceFiles() {
		response.Body.Sources = append(response.Body.Sources, dap.Source{Path: file})
	}
	d.send(response)
}
