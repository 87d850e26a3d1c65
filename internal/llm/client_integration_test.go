package llm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrationTestConfig 从环境变量构建测试配置，若 LLM_API_KEY 未设置则跳过
func integrationTestConfig(t *testing.T) *config.LLM {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" || apiKey == "your-api-key-here" {
		t.Skip("跳过集成测试：请设置 LLM_API_KEY 环境变量")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &config.LLM{
		APIKey:          apiKey,
		BaseURL:         baseURL,
		Model:           model,
		MaxOutputTokens: 1024,
	}
}

func TestGenerate_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, &config.Engine{}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	prompt := "我们正在就话题《远程办公的未来》进行一场多方讨论。\n" +
		"第 1 轮：请成员 明轩 发言。\n" +
		"请以特别挑剔和批判的视角发言。\n\n请使用中文回答。"

	result, err := client.Generate(ctx, prompt, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	// 输出发言内容
	t.Log("\n--- 成员发言 ---")
	t.Log(result)
}

func TestGenerate_Integration_SummaryUpdate(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, &config.Engine{}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	prompt := "请简明扼要地总结以下内容:\n\n" +
		"此前的总结:\n讨论开始。\n\n" +
		"成员 明轩 的最新发言:\n远程办公节省通勤时间，但团队协作成本明显上升，" +
		"尤其是跨时区沟通，很多问题要拖到第二天才能解决。"

	result, err := client.Generate(ctx, prompt, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result)
	assert.Less(t, len(result), 4096, "总结应明显短于输出上限")

	t.Log("\n--- 滚动总结 ---")
	t.Log(result)
}
