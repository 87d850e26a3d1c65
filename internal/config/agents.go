package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AgentConfig 讨论成员的静态配置，讨论开始后不可变更
type AgentConfig struct {
	Name        string `yaml:"Name"`        // 成员名称，讨论内唯一
	Personality string `yaml:"Personality"` // 个性标签，必须是引擎已知的个性
	Description string `yaml:"Description"` // 附加给该成员的自由文本指令
}

// LoadAgents 从 YAML 文件加载成员列表
// 个性标签是否有效由引擎在启动讨论前校验，这里只做结构性检查
func LoadAgents(filename string) ([]AgentConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var agents []AgentConfig
	if err := yaml.Unmarshal(data, &agents); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for i, a := range agents {
		if a.Name == "" {
			return nil, fmt.Errorf("第 %d 个成员的 Name 不能为空", i+1)
		}
		if a.Personality == "" {
			return nil, fmt.Errorf("成员 %s 的 Personality 不能为空", a.Name)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("成员名称重复: %s", a.Name)
		}
		seen[a.Name] = true
	}

	return agents, nil
}
