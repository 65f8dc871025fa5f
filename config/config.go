// Package config 控制台的配置，可以从json文件加载，没有配置的字段使用默认值
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fansqz/gdbmi-console/constants"
	e "github.com/fansqz/gdbmi-console/error"
	"github.com/sirupsen/logrus"
)

// Config 控制台配置
type Config struct {
	// CommandTimeout 异步命令的超时时间
	CommandTimeout time.Duration `json:"commandTimeout"`
	LogPath        string        `json:"logPath"`
	LogLevel       string        `json:"logLevel"`
	Prompt         string        `json:"prompt"`
	// EditorPort 编辑器连接的dap端口，为空时不监听
	EditorPort string `json:"editorPort"`
	// Language 源文件的语言，用于解析函数名称
	Language constants.LanguageType `json:"language"`
	// GDBPath 本地启动gdb时使用的路径
	GDBPath string `json:"gdbPath"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		CommandTimeout: constants.CommandExecutionTimeout,
		LogPath:        "/var/gdbmi-console.log",
		LogLevel:       "info",
		Prompt:         constants.DefaultPrompt,
		Language:       constants.LanguageC,
		GDBPath:        "gdb",
	}
}

// LoadConfig 从json文件加载配置，文件中没有的字段保留默认值
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("%w: commandTimeout must be positive", e.ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", e.ErrInvalidConfig, err)
	}
	if c.Language != constants.LanguageC && c.Language != constants.LanguageCpp {
		return fmt.Errorf("%w: language %s not supported", e.ErrInvalidConfig, c.Language)
	}
	return nil
}

// Level 日志级别，无法解析时使用info
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
