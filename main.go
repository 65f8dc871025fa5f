package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fansqz/gdbmi-console/config"
	"github.com/fansqz/gdbmi-console/console"
	"github.com/fansqz/gdbmi-console/constants"
	"github.com/fansqz/gdbmi-console/debugger/gdb_debugger"
	"github.com/fansqz/gdbmi-console/interpreter"
	"github.com/fansqz/gdbmi-console/utils"
	"github.com/fansqz/gdbmi-console/utils/gosync"
	"github.com/sirupsen/logrus"
)

// 定义版本号
const Version = "1.0.1"

// backend gdb的mi输入输出
type backend struct {
	reader io.Reader
	writer io.Writer
	// terminal 被调试程序的输出
	terminal io.Reader
	close    func()
	// exitOnEOF gdb的输出结束时退出控制台
	exitOnEOF bool
}

func main() {
	showVersion := flag.Bool("version", false, "Show the version number")
	configPath := flag.String("config", "", "Config file")
	connect := flag.String("connect", "", "Connect to a gdb/mi stream at host:port")
	replay := flag.String("replay", "", "Replay a recorded gdb/mi output file")
	gdbPath := flag.String("gdb", "", "Path of the gdb started locally")
	commands := flag.String("commands", "", "Command file executed before reading stdin")
	port := flag.String("port", "", "TCP port the editor connects to")
	language := flag.String("language", "", "Program language")
	flag.Parse()

	// 检查是否需要显示版本信息
	if *showVersion {
		fmt.Printf("Version: %s\n", Version)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("load config fail, err = %v\n", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.EditorPort = *port
	}
	if *language != "" {
		cfg.Language = constants.LanguageType(*language)
	}
	if *gdbPath != "" {
		cfg.GDBPath = *gdbPath
	}
	if err = cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	//启动日志
	SetupLogger(cfg.LogPath, cfg.Level())
	defer CloseLogger()

	b, err := openBackend(*connect, *replay, cfg.GDBPath)
	if err != nil {
		fmt.Printf("start gdb fail, err = %v\n", err)
		return
	}
	defer b.close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()
	run(ctx, cancel, cfg, b, *commands)
}

// openBackend 连接、回放或者在本地启动gdb
func openBackend(connect string, replay string, gdbPath string) (*backend, error) {
	switch {
	case connect != "":
		conn, err := net.Dial("tcp", connect)
		if err != nil {
			return nil, err
		}
		return &backend{reader: conn, writer: conn, close: func() { _ = conn.Close() }, exitOnEOF: true}, nil
	case replay != "":
		file, err := os.Open(replay)
		if err != nil {
			return nil, err
		}
		return &backend{reader: file, writer: io.Discard, close: func() { _ = file.Close() }}, nil
	default:
		process, err := gdb_debugger.StartGDBProcess(gdbPath)
		if err != nil {
			return nil, err
		}
		return &backend{
			reader:    process.Reader(),
			writer:    process.Writer(),
			terminal:  process.Terminal(),
			exitOnEOF: true,
			close: func() {
				if err := process.Close(); err != nil {
					logrus.Infof("gdb exited, err = %v", err)
				}
			},
		}, nil
	}
}

func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, b *backend, commandFile string) {
	loop := utils.NewLoop()
	var out io.Writer = os.Stdout
	var editor *EditorServer
	if cfg.EditorPort != "" {
		editor = NewEditorServer(loop.Post)
		out = io.MultiWriter(os.Stdout, editor)
	}

	engine := gdb_debugger.NewGDBDebugger(loop.Post, b.writer, out)
	interp := interpreter.NewCmdInterpreter(engine, out, utils.NewTimeoutManager(loop.Post))
	defer interp.Close()
	interp.SetCommandTimeout(cfg.CommandTimeout)
	interp.SetLanguage(cfg.Language)
	con := console.NewConsole(interp, loop.Post, out)
	con.SetPrompt(cfg.Prompt)
	con.SetInteractive(console.IsTerminal(os.Stdin))

	// 程序加载以后列出源文件，用于open命令的补全
	engine.Events().StateChanged.Connect(func(state constants.EngineState) {
		if state != constants.InferiorLoaded {
			return
		}
		if err := engine.ListFiles(interp.Cookie()); err != nil {
			logrus.Warnf("list files fail, err = %v", err)
		}
	})

	if editor != nil {
		editor.Attach(engine, interp, con)
		gosync.Go(ctx, func(ctx context.Context) {
			if err := editor.Serve(ctx, cfg.EditorPort); err != nil {
				logrus.Errorf("editor server fail, err = %v", err)
			}
		})
	}
	gosync.Go(ctx, func(ctx context.Context) {
		if err := engine.Serve(ctx, b.reader); err != nil {
			logrus.Errorf("serve gdb output fail, err = %v", err)
		}
		if b.exitOnEOF {
			cancel()
		}
	})
	if b.terminal != nil {
		gosync.Go(ctx, func(ctx context.Context) {
			_, _ = io.Copy(os.Stdout, b.terminal)
		})
	}
	gosync.Go(ctx, func(ctx context.Context) {
		if commandFile != "" {
			if err := con.ExecuteCommandFile(commandFile); err != nil {
				logrus.Errorf("execute command file fail, err = %v", err)
				fmt.Println(err)
			}
		}
		if err := con.Run(ctx, os.Stdin); err != nil {
			logrus.Errorf("read stdin fail, err = %v", err)
		}
		// 输入结束以后退出
		loop.Post(loop.Stop)
	})
	loop.Run(ctx)
}
