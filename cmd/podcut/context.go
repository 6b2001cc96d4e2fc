package main

import (
	"io"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/podcut/internal/analyzer"
	"github.com/nguyentantai21042004/podcut/internal/clipboard"
	"github.com/nguyentantai21042004/podcut/internal/config"
	"github.com/nguyentantai21042004/podcut/internal/logger"
)

// analyzerFactory builds the analyzer a command talks to.
type analyzerFactory func(cfg *config.Config, log logger.Logger) (analyzer.Analyzer, error)

type commandContext struct {
	configFlag  *string
	newAnalyzer analyzerFactory
	clipboard   clipboard.Writer

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, newAnalyzer analyzerFactory, cb clipboard.Writer) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		newAnalyzer: newAnalyzer,
		clipboard:   cb,
	}
}

// ensureConfig loads the config once. Without --config a missing default file
// falls back to built-in defaults; an explicit path must exist.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			c.config, c.configErr = config.LoadOrDefault(config.DefaultPath)
			return
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil || strings.TrimSpace(*c.configFlag) == "" {
		return config.DefaultPath
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) logger(w io.Writer) logger.Logger {
	level := "info"
	if c.config != nil {
		level = c.config.Logging.Level
	}
	return logger.NewWithWriter(w, level)
}

// geminiAnalyzer is the production analyzerFactory.
func geminiAnalyzer(cfg *config.Config, log logger.Logger) (analyzer.Analyzer, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	gen, err := analyzer.NewGemini(cfg.Gemini, log)
	if err != nil {
		return nil, err
	}
	return analyzer.New(gen, log), nil
}
