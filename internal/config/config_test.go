package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		LLM: LLM{
			BaseURL: "https://api.openai.com/v1",
			APIKey:  "sk-test",
			Model:   "gpt-4o",
		},
		Engine: Engine{
			MaxRetries:    3,
			BaseDelaySec:  1,
			MaxDelaySec:   60,
			SummaryGapSec: 10,
			RetentionDays: 30,
			CleanupCron:   "0 4 * * *",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"合法配置", func(c *Config) {}, false},
		{"APIKey为空", func(c *Config) { c.LLM.APIKey = "" }, true},
		{"BaseURL为空", func(c *Config) { c.LLM.BaseURL = "" }, true},
		{"Model为空", func(c *Config) { c.LLM.Model = "" }, true},
		{"MaxOutputTokens为负", func(c *Config) { c.LLM.MaxOutputTokens = -1 }, true},
		{"MaxRetries为负", func(c *Config) { c.Engine.MaxRetries = -1 }, true},
		{"BaseDelaySec为负", func(c *Config) { c.Engine.BaseDelaySec = -1 }, true},
		{"MaxDelaySec小于BaseDelaySec", func(c *Config) {
			c.Engine.BaseDelaySec = 10
			c.Engine.MaxDelaySec = 5
		}, true},
		{"MaxDelaySec为零表示无上限", func(c *Config) {
			c.Engine.BaseDelaySec = 10
			c.Engine.MaxDelaySec = 0
		}, false},
		{"SummaryGapSec为负", func(c *Config) { c.Engine.SummaryGapSec = -1 }, true},
		{"RetentionDays为负", func(c *Config) { c.Engine.RetentionDays = -1 }, true},
		{"开启清理但缺少Cron", func(c *Config) {
			c.Engine.RetentionDays = 30
			c.Engine.CleanupCron = ""
		}, true},
		{"不清理时允许缺少Cron", func(c *Config) {
			c.Engine.RetentionDays = 0
			c.Engine.CleanupCron = ""
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
LLM:
  BaseURL: "https://api.openai.com/v1"
  APIKey: "sk-test"
  Model: "gpt-4o"
  VisionModel: "gpt-4o"
  MaxOutputTokens: 2048
Engine:
  MaxRetries: 5
  BaseDelaySec: 2
  MaxDelaySec: 30
  SummaryGapSec: 10
  FallbackTopic: "新话题：城市交通"
  RetentionDays: 7
  CleanupCron: "0 4 * * *"
  Personalities:
    critical: "请特别挑剔地发言。"
`
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	c, err := LoadFromFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", c.LLM.Model)
	assert.Equal(t, 2048, c.LLM.MaxOutputTokens)
	assert.Equal(t, 5, c.Engine.MaxRetries)
	assert.Equal(t, "新话题：城市交通", c.Engine.FallbackTopic)
	assert.Equal(t, 7, c.Engine.RetentionDays)
	assert.Equal(t, "请特别挑剔地发言。", c.Engine.Personalities["critical"])
}

func TestLoadFromFile_InvalidConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("LLM:\n  Model: gpt-4o\n"), 0644))

	_, err := LoadFromFile(filename)
	assert.Error(t, err)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
