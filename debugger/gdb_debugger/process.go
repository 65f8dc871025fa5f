package gdb_debugger

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/sirupsen/logrus"
)

// GDBProcess 本地启动的gdb进程，被调试程序使用单独的伪终端
type GDBProcess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	// ptm 伪终端主设备，读取被调试程序的输出
	ptm *os.File
	pts *os.File
}

// StartGDBProcess 启动gdb，使用mi2解释器
func StartGDBProcess(gdbPath string) (*GDBProcess, error) {
	ptm, pts, err := pty.Open()
	if err != nil {
		logrus.Errorf("[GDBProcess] open pty fail, err = %v", err)
		return nil, fmt.Errorf("open pty: %w", err)
	}
	cmd := exec.Command(gdbPath, "--nx", "--quiet", "--interpreter=mi2", "--tty", pts.Name())
	stdin, err := cmd.StdinPipe()
	if err != nil {
		closeFiles(ptm, pts)
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		closeFiles(ptm, pts)
		return nil, err
	}
	if err = cmd.Start(); err != nil {
		closeFiles(ptm, pts)
		logrus.Errorf("[GDBProcess] start %s fail, err = %v", gdbPath, err)
		return nil, fmt.Errorf("start %s: %w", gdbPath, err)
	}
	return &GDBProcess{cmd: cmd, stdin: stdin, stdout: stdout, ptm: ptm, pts: pts}, nil
}

// Reader gdb的mi输出
func (p *GDBProcess) Reader() io.Reader {
	return p.stdout
}

// Writer gdb的mi输入
func (p *GDBProcess) Writer() io.Writer {
	return p.stdin
}

// Terminal 被调试程序的终端输出
func (p *GDBProcess) Terminal() io.Reader {
	return p.ptm
}

// Interrupt 给gdb发送中断信号
func (p *GDBProcess) Interrupt() error {
	return p.cmd.Process.Signal(os.Interrupt)
}

// Close 关闭gdb的输入并等待gdb退出
func (p *GDBProcess) Close() error {
	_ = p.stdin.Close()
	err := p.cmd.Wait()
	closeFiles(p.ptm, p.pts)
	return err
}

func closeFiles(files ...*os.File) {
	for _, file := range files {
		_ = file.Close()
	}
}
