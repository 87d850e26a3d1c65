package llm

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/roundtable-bot/internal/attachment"
	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/fachebot/roundtable-bot/internal/logger"
	"github.com/sashabaranov/go-openai"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 1 * time.Second
	defaultMaxDelay   = 60 * time.Second

	// 图片描述的输出上限，避免初始摘要过长
	imageSummaryMaxTokens = 500
)

// openAIClientInterface 定义 OpenAI 客户端接口，便于测试
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	config       *config.LLM
	openaiClient openAIClientInterface
	maxRetries   int
	baseDelay    time.Duration
	maxDelay     time.Duration
	rng          func() float64 // 抖动随机源，便于测试注入
}

// NewClient 创建弹性调用客户端
// transport 不为 nil 时通过该代理访问 API 端点
func NewClient(cfg *config.LLM, eng *config.Engine, transport *http.Transport) *Client {
	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL
	if transport != nil {
		openaiConfig.HTTPClient = &http.Client{Transport: transport}
	}

	maxRetries := eng.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	baseDelay := time.Duration(eng.BaseDelaySec) * time.Second
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	maxDelay := time.Duration(eng.MaxDelaySec) * time.Second
	if maxDelay <= 0 {
		maxDelay = defaultMaxDelay
	}

	return &Client{
		config:       cfg,
		openaiClient: openai.NewClientWithConfig(openaiConfig),
		maxRetries:   maxRetries,
		baseDelay:    baseDelay,
		maxDelay:     maxDelay,
		rng:          rand.Float64,
	}
}

// backoffDelay 计算第 attempt 次重试的未抖动延迟：初始延迟逐次翻倍，封顶于 maxDelay
func backoffDelay(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	if delay > maxDelay {
		return maxDelay
	}
	return delay
}

// jitterDelay 对延迟施加 [0.5, 1.5) 的乘性抖动，避免并发调用方的重试同步
func jitterDelay(delay time.Duration, rng func() float64) time.Duration {
	return time.Duration(float64(delay) * (0.5 + rng()))
}

// Generate 执行一次文本生成，临时性错误按指数退避重试
// 重试耗尽返回包装了 ErrMaxRetries 的错误；空白响应返回 ErrEmptyResponse，不重试
func (c *Client) Generate(ctx context.Context, prompt string, att *attachment.Attachment) (string, error) {
	msg := buildUserMessage(prompt, att)
	req := openai.ChatCompletionRequest{
		Model:     c.config.Model,
		Messages:  []openai.ChatCompletionMessage{msg},
		MaxTokens: c.config.MaxOutputTokens,
	}
	return c.completeWithRetry(ctx, req)
}

// SummarizeDocument 为附带文档生成初始摘要（播种阶段）
// PDF 走文本模型总结，图片走视觉模型描述；不支持的类型返回提示文本而非错误
func (c *Client) SummarizeDocument(ctx context.Context, att *attachment.Attachment) (string, error) {
	switch att.Kind {
	case attachment.KindPDF:
		msg := buildUserMessage("请总结这份PDF的内容，注意重要数据不能丢失！", att)
		req := openai.ChatCompletionRequest{
			Model:    c.config.Model,
			Messages: []openai.ChatCompletionMessage{msg},
		}
		return c.completeWithRetry(ctx, req)
	case attachment.KindImage:
		msg := buildUserMessage("请详细描述这张图片的内容。", att)
		req := openai.ChatCompletionRequest{
			Model:     c.visionModel(),
			Messages:  []openai.ChatCompletionMessage{msg},
			MaxTokens: imageSummaryMaxTokens,
		}
		return c.completeWithRetry(ctx, req)
	default:
		logger.Warnf("[LLM] 不支持的文件类型: %s", att.MediaType)
		return fmt.Sprintf("不支持的文件类型: %s", att.MediaType), nil
	}
}

func (c *Client) visionModel() string {
	if c.config.VisionModel != "" {
		return c.config.VisionModel
	}
	return c.config.Model
}

// buildUserMessage 构造用户消息，附件按类型映射为多模态消息段
// 图片带显式媒体类型；PDF 作为不透明的 data URL 段透传；不支持的类型只发送文本
func buildUserMessage(prompt string, att *attachment.Attachment) openai.ChatCompletionMessage {
	if att == nil {
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}
	}

	switch att.Kind {
	case attachment.KindImage:
		return openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    att.DataURL(),
						Detail: openai.ImageURLDetailAuto,
					},
				},
			},
		}
	case attachment.KindPDF:
		return openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: att.DataURL()},
				},
			},
		}
	default:
		logger.Warnf("[LLM] 不支持的文件类型，忽略附件: %s", att.MediaType)
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}
	}
}

// completeWithRetry 核心重试循环：临时性错误退避重试，其余错误立即返回
// 总尝试次数 = maxRetries + 1
func (c *Client) completeWithRetry(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := jitterDelay(backoffDelay(attempt, c.baseDelay, c.maxDelay), c.rng)
			logger.Warnf("[LLM] API 限流或过载，%v 后重试 (第 %d/%d 次)", wait.Round(time.Millisecond), attempt, c.maxRetries)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("重试被取消: %w", ctx.Err())
			case <-time.After(wait):
			}
		}

		resp, err := c.openaiClient.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			if isTransient(err) {
				logger.Errorf("[LLM] 调用 LLM API 失败（临时性）: %v", err)
				continue
			}
			return "", fmt.Errorf("调用 LLM API 失败: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", ErrEmptyResponse
		}
		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		if content == "" {
			return "", ErrEmptyResponse
		}
		return content, nil
	}

	return "", fmt.Errorf("%w (%d 次): %v", ErrMaxRetries, c.maxRetries, lastErr)
}
