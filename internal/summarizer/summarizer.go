package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/fachebot/roundtable-bot/internal/attachment"
	"github.com/fachebot/roundtable-bot/internal/llm"
	"golang.org/x/time/rate"
)

const defaultGap = 10 * time.Second

// generator 文本生成客户端（便于测试注入 mock）
type generator interface {
	Generate(ctx context.Context, prompt string, att *attachment.Attachment) (string, error)
}

// Summarizer 把讨论内容压缩为简短总结
// 所有摘要调用共用一个限速器，保证两次调用之间的最小间隔，尊重外部限流
type Summarizer struct {
	llmClient generator
	limiter   *rate.Limiter
}

// NewSummarizer 创建摘要器，gap 为两次摘要调用的最小间隔
func NewSummarizer(llmClient *llm.Client, gap time.Duration) *Summarizer {
	if gap <= 0 {
		gap = defaultGap
	}
	return &Summarizer{
		llmClient: llmClient,
		limiter:   rate.NewLimiter(rate.Every(gap), 1),
	}
}

// Update 基于当前总结与最新发言生成替换后的滚动总结
// 滚动总结始终整体替换，从不追加
func (s *Summarizer) Update(ctx context.Context, current, agentName, output string) (string, error) {
	input := fmt.Sprintf("此前的总结:\n%s\n\n成员 %s 的最新发言:\n%s", current, agentName, output)
	return s.summarize(ctx, input)
}

// Final 基于完整讨论记录文本生成最终总结
func (s *Summarizer) Final(ctx context.Context, transcript string) (string, error) {
	return s.summarize(ctx, transcript)
}

func (s *Summarizer) summarize(ctx context.Context, text string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("等待摘要调用间隔失败: %w", err)
	}
	return s.llmClient.Generate(ctx, "请简明扼要地总结以下内容:\n\n"+text, nil)
}
