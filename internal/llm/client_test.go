package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/roundtable-bot/internal/attachment"
	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

// fakeResult 单次调用的预设结果
type fakeResult struct {
	content string
	err     error
}

// fakeOpenAIClient 按预设结果序列应答的客户端 mock
type fakeOpenAIClient struct {
	results []fakeResult
	calls   int
	reqs    []openai.ChatCompletionRequest
}

func (f *fakeOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.reqs = append(f.reqs, req)
	idx := f.calls
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	f.calls++
	r := f.results[idx]
	if r.err != nil {
		return openai.ChatCompletionResponse{}, r.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: r.content}},
		},
	}, nil
}

// newTestClient 创建用于测试的客户端，退避间隔压缩到毫秒级，抖动固定为 1.0
func newTestClient(fake *fakeOpenAIClient, maxRetries int) *Client {
	return &Client{
		config:       &config.LLM{Model: "test-model"},
		openaiClient: fake,
		maxRetries:   maxRetries,
		baseDelay:    time.Millisecond,
		maxDelay:     4 * time.Millisecond,
		rng:          func() float64 { return 0.5 },
	}
}

func transientErr() error {
	return &openai.APIError{HTTPStatusCode: 429, Message: "rate limit exceeded"}
}

func TestGenerate_Success(t *testing.T) {
	fake := &fakeOpenAIClient{results: []fakeResult{{content: "  生成的回答  "}}}
	c := newTestClient(fake, 3)

	got, err := c.Generate(context.Background(), "你好", nil)
	assert.NoError(t, err)
	assert.Equal(t, "生成的回答", got)
	assert.Equal(t, 1, fake.calls)
}

func TestGenerate_TransientTwiceThenSuccess(t *testing.T) {
	fake := &fakeOpenAIClient{results: []fakeResult{
		{err: transientErr()},
		{err: transientErr()},
		{content: "第三次成功"},
	}}
	c := newTestClient(fake, 3)

	got, err := c.Generate(context.Background(), "你好", nil)
	assert.NoError(t, err)
	assert.Equal(t, "第三次成功", got)
	assert.Equal(t, 3, fake.calls)
}

func TestGenerate_ExhaustsRetries(t *testing.T) {
	fake := &fakeOpenAIClient{results: []fakeResult{{err: transientErr()}}}
	c := newTestClient(fake, 3)

	got, err := c.Generate(context.Background(), "你好", nil)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.Empty(t, got)
	// 总尝试次数 = 最大重试次数 + 1
	assert.Equal(t, 4, fake.calls)
}

func TestGenerate_FatalNoRetry(t *testing.T) {
	fake := &fakeOpenAIClient{results: []fakeResult{
		{err: &openai.APIError{HTTPStatusCode: 401, Message: "invalid api key"}},
	}}
	c := newTestClient(fake, 3)

	_, err := c.Generate(context.Background(), "你好", nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 1, fake.calls)
}

func TestGenerate_EmptyResponseNotRetried(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"空字符串", ""},
		{"仅空白", "   \n\t  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeOpenAIClient{results: []fakeResult{{content: tt.content}}}
			c := newTestClient(fake, 3)

			_, err := c.Generate(context.Background(), "你好", nil)
			assert.ErrorIs(t, err, ErrEmptyResponse)
			assert.Equal(t, 1, fake.calls)
		})
	}
}

func TestGenerate_CanceledDuringBackoff(t *testing.T) {
	fake := &fakeOpenAIClient{results: []fakeResult{{err: transientErr()}}}
	c := newTestClient(fake, 3)
	c.baseDelay = time.Second
	c.maxDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := c.Generate(ctx, "你好", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, fake.calls)
}

func TestBackoffDelay(t *testing.T) {
	base := time.Second
	max := 8 * time.Second

	// 序列在封顶前单调不减，封顶后保持不变
	var prev time.Duration
	for attempt := 1; attempt <= 10; attempt++ {
		d := backoffDelay(attempt, base, max)
		assert.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
		assert.LessOrEqual(t, d, max, "attempt %d", attempt)
		prev = d
	}

	assert.Equal(t, time.Second, backoffDelay(1, base, max))
	assert.Equal(t, 2*time.Second, backoffDelay(2, base, max))
	assert.Equal(t, 4*time.Second, backoffDelay(3, base, max))
	assert.Equal(t, 8*time.Second, backoffDelay(4, base, max))
	assert.Equal(t, 8*time.Second, backoffDelay(5, base, max))
}

func TestJitterDelay_Bounds(t *testing.T) {
	base := 2 * time.Second

	// 抖动系数取值范围 [0.5, 1.5)，即未抖动值的 ±50% 以内
	assert.Equal(t, time.Second, jitterDelay(base, func() float64 { return 0 }))
	assert.Equal(t, 2*time.Second, jitterDelay(base, func() float64 { return 0.5 }))
	assert.Less(t, jitterDelay(base, func() float64 { return 0.999999 }), 3*time.Second)
}

func TestBuildUserMessage(t *testing.T) {
	t.Run("无附件", func(t *testing.T) {
		msg := buildUserMessage("提示词", nil)
		assert.Equal(t, openai.ChatMessageRoleUser, msg.Role)
		assert.Equal(t, "提示词", msg.Content)
		assert.Empty(t, msg.MultiContent)
	})

	t.Run("图片附件携带媒体类型", func(t *testing.T) {
		att := attachment.New("image/png", []byte{1, 2, 3})
		msg := buildUserMessage("提示词", att)
		assert.Len(t, msg.MultiContent, 2)
		assert.Equal(t, openai.ChatMessagePartTypeText, msg.MultiContent[0].Type)
		assert.Equal(t, openai.ChatMessagePartTypeImageURL, msg.MultiContent[1].Type)
		assert.True(t, strings.HasPrefix(msg.MultiContent[1].ImageURL.URL, "data:image/png;base64,"))
		assert.Equal(t, openai.ImageURLDetailAuto, msg.MultiContent[1].ImageURL.Detail)
	})

	t.Run("PDF附件作为不透明数据段", func(t *testing.T) {
		att := attachment.New("application/pdf", []byte("%PDF-1.4"))
		msg := buildUserMessage("提示词", att)
		assert.Len(t, msg.MultiContent, 2)
		assert.True(t, strings.HasPrefix(msg.MultiContent[1].ImageURL.URL, "data:application/pdf;base64,"))
	})

	t.Run("不支持的类型仅发送文本", func(t *testing.T) {
		att := attachment.New("audio/mpeg", []byte{1})
		msg := buildUserMessage("提示词", att)
		assert.Equal(t, "提示词", msg.Content)
		assert.Empty(t, msg.MultiContent)
	})
}

func TestSummarizeDocument(t *testing.T) {
	t.Run("PDF走文本模型", func(t *testing.T) {
		fake := &fakeOpenAIClient{results: []fakeResult{{content: "PDF摘要"}}}
		c := newTestClient(fake, 3)

		got, err := c.SummarizeDocument(context.Background(), attachment.New("application/pdf", []byte("%PDF")))
		assert.NoError(t, err)
		assert.Equal(t, "PDF摘要", got)
		assert.Equal(t, "test-model", fake.reqs[0].Model)
	})

	t.Run("图片走视觉模型并限制输出", func(t *testing.T) {
		fake := &fakeOpenAIClient{results: []fakeResult{{content: "图片描述"}}}
		c := newTestClient(fake, 3)
		c.config = &config.LLM{Model: "test-model", VisionModel: "vision-model"}

		got, err := c.SummarizeDocument(context.Background(), attachment.New("image/jpeg", []byte{1}))
		assert.NoError(t, err)
		assert.Equal(t, "图片描述", got)
		assert.Equal(t, "vision-model", fake.reqs[0].Model)
		assert.Equal(t, imageSummaryMaxTokens, fake.reqs[0].MaxTokens)
	})

	t.Run("不支持的类型返回提示文本", func(t *testing.T) {
		fake := &fakeOpenAIClient{results: []fakeResult{{content: "不应被调用"}}}
		c := newTestClient(fake, 3)

		got, err := c.SummarizeDocument(context.Background(), attachment.New("audio/mpeg", []byte{1}))
		assert.NoError(t, err)
		assert.Contains(t, got, "不支持的文件类型")
		assert.Equal(t, 0, fake.calls)
	})
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil错误", nil, false},
		{"429状态码", &openai.APIError{HTTPStatusCode: 429}, true},
		{"500状态码", &openai.APIError{HTTPStatusCode: 500}, true},
		{"503状态码", &openai.APIError{HTTPStatusCode: 503}, true},
		{"401鉴权失败", &openai.APIError{HTTPStatusCode: 401}, false},
		{"400请求格式错误", &openai.APIError{HTTPStatusCode: 400}, false},
		{"quota关键字", errors.New("insufficient quota remaining"), true},
		{"rate limit关键字", errors.New("Rate Limit exceeded"), true},
		{"普通错误", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}
