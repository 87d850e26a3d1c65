package summarizer

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fachebot/roundtable-bot/internal/attachment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// fakeGenerator 记录收到的提示词，按序返回预置结果
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	times   []time.Time
	output  string
	err     error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, att *attachment.Attachment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.times = append(f.times, time.Now())
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func newTestSummarizer(gen *fakeGenerator, gap time.Duration) *Summarizer {
	return &Summarizer{
		llmClient: gen,
		limiter:   rate.NewLimiter(rate.Every(gap), 1),
	}
}

func TestUpdate_PromptComposition(t *testing.T) {
	gen := &fakeGenerator{output: "新的总结"}
	s := newTestSummarizer(gen, time.Millisecond)

	result, err := s.Update(context.Background(), "旧的总结", "明轩", "我认为应该更激进一些。")
	require.NoError(t, err)
	assert.Equal(t, "新的总结", result)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "请简明扼要地总结以下内容:")
	assert.Contains(t, prompt, "此前的总结:\n旧的总结")
	assert.Contains(t, prompt, "成员 明轩 的最新发言:\n我认为应该更激进一些。")
}

func TestUpdate_GenerateError(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("server is busy")}
	s := newTestSummarizer(gen, time.Millisecond)

	_, err := s.Update(context.Background(), "旧的总结", "明轩", "发言")
	assert.Error(t, err)
}

func TestFinal_PassesTranscript(t *testing.T) {
	gen := &fakeGenerator{output: "最终总结"}
	s := newTestSummarizer(gen, time.Millisecond)

	result, err := s.Final(context.Background(), "完整讨论记录:\nuser: 你好\nassistant: 你好")
	require.NoError(t, err)
	assert.Equal(t, "最终总结", result)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "完整讨论记录:\nuser: 你好")
}

func TestSummarize_Throttle(t *testing.T) {
	gap := 50 * time.Millisecond
	gen := &fakeGenerator{output: "总结"}
	s := newTestSummarizer(gen, gap)

	for i := 0; i < 3; i++ {
		_, err := s.Update(context.Background(), "总结", "明轩", "发言")
		require.NoError(t, err)
	}

	// 连续调用之间至少间隔 gap（首次调用消耗初始令牌，不受限）
	require.Len(t, gen.times, 3)
	for i := 1; i < len(gen.times); i++ {
		elapsed := gen.times[i].Sub(gen.times[i-1])
		assert.GreaterOrEqual(t, elapsed, gap-5*time.Millisecond,
			"第 %d 次调用间隔过短: %v", i+1, elapsed)
	}
}

func TestSummarize_ContextCanceledDuringWait(t *testing.T) {
	gen := &fakeGenerator{output: "总结"}
	s := newTestSummarizer(gen, time.Hour)

	// 第一次调用消耗初始令牌
	_, err := s.Update(context.Background(), "总结", "明轩", "发言")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Update(ctx, "总结", "明轩", "发言")
	assert.Error(t, err)
	assert.Len(t, gen.prompts, 1)
}

func TestNewSummarizer_DefaultGap(t *testing.T) {
	s := NewSummarizer(nil, 0)
	require.NotNil(t, s.limiter)
	assert.Equal(t, rate.Every(defaultGap), s.limiter.Limit())
}
