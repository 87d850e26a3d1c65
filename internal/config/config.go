package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type LLM struct {
	BaseURL         string `yaml:"BaseURL"` // 兼容 OpenAI API 的端点
	APIKey          string `yaml:"APIKey"`
	Model           string `yaml:"Model"`           // 如 gpt-4o, deepseek-chat, qwen-plus
	VisionModel     string `yaml:"VisionModel"`     // 图片/PDF 摘要使用的模型，为空则复用 Model
	MaxOutputTokens int    `yaml:"MaxOutputTokens"` // 单次生成的输出上限
}

type Engine struct {
	MaxRetries    int               `yaml:"MaxRetries"`    // 临时性错误的最大重试次数，默认 3
	BaseDelaySec  int               `yaml:"BaseDelaySec"`  // 退避初始延迟（秒），默认 1
	MaxDelaySec   int               `yaml:"MaxDelaySec"`   // 退避延迟上限（秒），默认 60
	SummaryGapSec int               `yaml:"SummaryGapSec"` // 两次摘要调用的最小间隔（秒），默认 10
	FallbackTopic string            `yaml:"FallbackTopic"` // 话题停滞时的替换话题
	RetentionDays int               `yaml:"RetentionDays"` // 讨论记录保留天数，0 表示不清理
	CleanupCron   string            `yaml:"CleanupCron"`   // 清理任务 cron 表达式，如 "0 4 * * *"
	Personalities map[string]string `yaml:"Personalities"` // 个性到指令的覆盖表，键必须是已知个性
}

type Config struct {
	Sock5Proxy Sock5Proxy `yaml:"Sock5Proxy"`
	LLM        LLM        `yaml:"LLM"`
	Engine     Engine     `yaml:"Engine"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证 LLM
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM.APIKey 不能为空")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM.BaseURL 不能为空")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM.Model 不能为空")
	}
	if c.LLM.MaxOutputTokens < 0 {
		return fmt.Errorf("LLM.MaxOutputTokens 必须 >= 0")
	}

	// 验证 Engine
	if c.Engine.MaxRetries < 0 {
		return fmt.Errorf("Engine.MaxRetries 必须 >= 0")
	}
	if c.Engine.BaseDelaySec < 0 {
		return fmt.Errorf("Engine.BaseDelaySec 必须 >= 0")
	}
	if c.Engine.MaxDelaySec < 0 {
		return fmt.Errorf("Engine.MaxDelaySec 必须 >= 0")
	}
	if c.Engine.MaxDelaySec > 0 && c.Engine.MaxDelaySec < c.Engine.BaseDelaySec {
		return fmt.Errorf("Engine.MaxDelaySec 不能小于 Engine.BaseDelaySec")
	}
	if c.Engine.SummaryGapSec < 0 {
		return fmt.Errorf("Engine.SummaryGapSec 必须 >= 0")
	}
	if c.Engine.RetentionDays < 0 {
		return fmt.Errorf("Engine.RetentionDays 必须 >= 0")
	}
	if c.Engine.RetentionDays > 0 && c.Engine.CleanupCron == "" {
		return fmt.Errorf("Engine.CleanupCron 不能为空（当 RetentionDays > 0 时）")
	}

	return nil
}
