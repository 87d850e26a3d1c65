package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fachebot/roundtable-bot/internal/attachment"
	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/fachebot/roundtable-bot/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLLM 用于测试的 generator mock
// respond 为空时按调用序号返回 "回答N"
type stubLLM struct {
	mu         sync.Mutex
	prompts    []string
	atts       []*attachment.Attachment
	respond    func(call int, prompt string) (string, error)
	docSummary string
	docErr     error
	docCalls   int
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, att *attachment.Attachment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	call := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	s.atts = append(s.atts, att)
	if s.respond != nil {
		return s.respond(call, prompt)
	}
	return fmt.Sprintf("回答%d", call+1), nil
}

func (s *stubLLM) SummarizeDocument(ctx context.Context, att *attachment.Attachment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docCalls++
	if s.docErr != nil {
		return "", s.docErr
	}
	return s.docSummary, nil
}

func (s *stubLLM) promptList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// stubSummarizer 用于测试的 summaryUpdater mock
type stubSummarizer struct {
	mu      sync.Mutex
	updates int
	finals  int
}

func (s *stubSummarizer) Update(ctx context.Context, current, agentName, output string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	return fmt.Sprintf("滚动总结%d", s.updates), nil
}

func (s *stubSummarizer) Final(ctx context.Context, transcript string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finals++
	return "最终总结", nil
}

// stubStore 用于测试的 resultSaver mock
type stubStore struct {
	mu    sync.Mutex
	saved []*Result
	err   error
}

func (s *stubStore) SaveDiscussion(ctx context.Context, result *Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, result)
	return nil
}

func newTestEngine(t *testing.T, llmStub *stubLLM, sum *stubSummarizer, store *stubStore) *Engine {
	t.Helper()
	var saver resultSaver
	if store != nil {
		saver = store
	}
	e, err := New(llmStub, sum, saver, &config.Engine{})
	require.NoError(t, err)
	e.transcriptDir = t.TempDir()
	return e
}

func twoAgents() []Agent {
	return []Agent{
		{Name: "A", Personality: PersonalityCritical},
		{Name: "B", Personality: PersonalityVisionary},
	}
}

func runAndCollect(t *testing.T, e *Engine, cfg *DiscussionConfig) []Event {
	t.Helper()
	events, err := e.Run(context.Background(), cfg)
	require.NoError(t, err)
	var collected []Event
	for ev := range events {
		collected = append(collected, ev)
	}
	return collected
}

func TestRun_TwoAgentsThreeIterations(t *testing.T) {
	llmStub := &stubLLM{}
	sum := &stubSummarizer{}
	store := &stubStore{}
	e := newTestEngine(t, llmStub, sum, store)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "远程办公的未来",
		Agents:     twoAgents(),
		Iterations: 3,
		Language:   "中文",
		User:       "tester",
	})

	// 3 轮事件 + 1 个结束事件
	require.Len(t, events, 4)

	// 轮询发言顺序 [A, B, A]
	assert.Equal(t, []string{"A", "B", "A"},
		[]string{events[0].AgentName, events[1].AgentName, events[2].AgentName})
	for i := 0; i < 3; i++ {
		assert.Equal(t, i+1, events[i].Iteration)
		// 讨论记录单调增长：每轮恰好新增 2 条消息
		assert.Len(t, events[i].ChatHistory, 2*(i+1))
	}

	// 结束事件：Iteration 为 0 且 AgentName 为空，Chunk 为最终总结
	final := events[3]
	assert.Equal(t, 0, final.Iteration)
	assert.Empty(t, final.AgentName)
	assert.Equal(t, "最终总结", final.Chunk)

	// 完整记录 = 每轮 2 条 + 总结 + 最终发言
	require.Len(t, final.ChatHistory, 8)
	assert.Equal(t, RoleUser, final.ChatHistory[0].Role)
	assert.Contains(t, final.ChatHistory[0].Content, "成员 A (第 1 轮)")
	assert.Equal(t, "回答1", final.ChatHistory[1].Content)
	assert.Contains(t, final.ChatHistory[6].Content, "**总体总结**")
	// 最终发言取成员列表中最后一位的最近输出（B 在第 2 轮的发言）
	assert.Equal(t, "最终发言:\n回答2", final.ChatHistory[7].Content)

	// 有所属用户时写库；持久化发生在追加最终发言之前
	require.Len(t, store.saved, 1)
	saved := store.saved[0]
	assert.Equal(t, "远程办公的未来", saved.Topic)
	assert.Equal(t, []string{"A", "B"}, saved.AgentNames)
	assert.Equal(t, "最终总结", saved.Summary)
	assert.Equal(t, "tester", saved.User)
	assert.Len(t, saved.ChatHistory, 7)

	// 每轮一次滚动总结更新，最终总结一次
	assert.Equal(t, 3, sum.updates)
	assert.Equal(t, 1, sum.finals)
}

func TestRun_NoUserSkipsPersist(t *testing.T) {
	store := &stubStore{}
	e := newTestEngine(t, &stubLLM{}, &stubSummarizer{}, store)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "话题",
		Agents:     twoAgents(),
		Iterations: 2,
		Language:   "中文",
	})

	assert.Len(t, events, 3)
	assert.Empty(t, store.saved)
}

func TestRun_StoreErrorNotFatal(t *testing.T) {
	store := &stubStore{err: fmt.Errorf("UNIQUE constraint failed: discussions.discussion_id")}
	e := newTestEngine(t, &stubLLM{}, &stubSummarizer{}, store)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "话题",
		Agents:     twoAgents(),
		Iterations: 1,
		Language:   "中文",
		User:       "tester",
	})

	// 写库失败只记录日志，结束事件照常发出
	assert.Equal(t, 0, events[len(events)-1].Iteration)
}

func TestRun_PlaceholderOnExhaustedRetries(t *testing.T) {
	llmStub := &stubLLM{
		respond: func(call int, prompt string) (string, error) {
			if call == 1 {
				return "", fmt.Errorf("包装: %w", llm.ErrMaxRetries)
			}
			return fmt.Sprintf("回答%d", call+1), nil
		},
	}
	e := newTestEngine(t, llmStub, &stubSummarizer{}, nil)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "话题",
		Agents:     twoAgents(),
		Iterations: 3,
		Language:   "中文",
	})

	// 单轮失败不会中断整场讨论
	require.Len(t, events, 4)
	final := events[3]
	assert.Equal(t, "错误: 已达到最大重试次数（API限额）。", final.ChatHistory[3].Content)
	assert.Equal(t, "回答3", final.ChatHistory[5].Content)
}

func TestRun_PlaceholderOnEmptyResponse(t *testing.T) {
	llmStub := &stubLLM{
		respond: func(call int, prompt string) (string, error) {
			if call == 0 {
				return "", llm.ErrEmptyResponse
			}
			return "正常回答", nil
		},
	}
	e := newTestEngine(t, llmStub, &stubSummarizer{}, nil)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "话题",
		Agents:     twoAgents(),
		Iterations: 2,
		Language:   "中文",
	})

	final := events[len(events)-1]
	assert.Equal(t, "LLM 返回空响应。", final.ChatHistory[1].Content)
}

func TestRun_RepairOnPoorQuality(t *testing.T) {
	llmStub := &stubLLM{
		respond: func(call int, prompt string) (string, error) {
			if call == 0 {
				return "抱歉，我在重复自己。", nil
			}
			return "修复后的回答", nil
		},
	}
	e := newTestEngine(t, llmStub, &stubSummarizer{}, nil)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "话题",
		Agents:     []Agent{{Name: "A", Personality: PersonalityNeutral}},
		Iterations: 1,
		Language:   "中文",
	})

	prompts := llmStub.promptList()
	require.Len(t, prompts, 2)
	assert.Equal(t, repairPrompt, prompts[1])

	// 展示文本使用修复后的发言，讨论记录保留原始发言
	assert.Contains(t, events[0].Chunk, "修复后的回答")
	assert.Equal(t, "抱歉，我在重复自己。", events[0].ChatHistory[1].Content)

	final := events[len(events)-1]
	assert.Equal(t, "最终发言:\n修复后的回答", final.ChatHistory[len(final.ChatHistory)-1].Content)
}

func TestRun_RepairFailureKeepsOriginal(t *testing.T) {
	llmStub := &stubLLM{
		respond: func(call int, prompt string) (string, error) {
			if call == 0 {
				return "我在重复自己。", nil
			}
			return "", fmt.Errorf("包装: %w", llm.ErrMaxRetries)
		},
	}
	e := newTestEngine(t, llmStub, &stubSummarizer{}, nil)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "话题",
		Agents:     []Agent{{Name: "A", Personality: PersonalityNeutral}},
		Iterations: 1,
		Language:   "中文",
	})

	assert.Contains(t, events[0].Chunk, "我在重复自己。")
}

func TestRun_DriftGuardFiresAtMostOnce(t *testing.T) {
	llmStub := &stubLLM{
		respond: func(call int, prompt string) (string, error) {
			return "同样的话", nil
		},
	}
	e := newTestEngine(t, llmStub, &stubSummarizer{}, nil)

	events := runAndCollect(t, e, &DiscussionConfig{
		Topic:      "话题",
		Agents:     twoAgents(),
		Iterations: 10,
		Language:   "中文",
	})

	// 停滞条件持续成立，但替换只发生一次：
	// 恰好有一条提示词引用了替换话题（触发后的下一轮）
	require.Len(t, events, 11)
	fallbackRefs := 0
	for _, p := range llmStub.promptList() {
		if strings.Contains(p, defaultFallbackTopic) {
			fallbackRefs++
		}
	}
	assert.Equal(t, 1, fallbackRefs)
}

func TestRun_SeedingFromDocument(t *testing.T) {
	t.Run("文档摘要作为初始总结", func(t *testing.T) {
		att := attachment.New("application/pdf", []byte("%PDF-1.4"))
		llmStub := &stubLLM{docSummary: "文档的摘要内容"}
		e := newTestEngine(t, llmStub, &stubSummarizer{}, nil)

		runAndCollect(t, e, &DiscussionConfig{
			Topic:      "话题",
			Agents:     twoAgents(),
			Iterations: 1,
			Language:   "中文",
			Attachment: att,
		})

		assert.Equal(t, 1, llmStub.docCalls)
		prompts := llmStub.promptList()
		require.NotEmpty(t, prompts)
		assert.Contains(t, prompts[0], "补充资料：'文档的摘要内容'")
		// 附件随每轮调用传递
		assert.Same(t, att, llmStub.atts[0])
	})

	t.Run("摘要失败退回默认种子", func(t *testing.T) {
		llmStub := &stubLLM{docErr: fmt.Errorf("包装: %w", llm.ErrMaxRetries)}
		e := newTestEngine(t, llmStub, &stubSummarizer{}, nil)

		events := runAndCollect(t, e, &DiscussionConfig{
			Topic:      "话题",
			Agents:     twoAgents(),
			Iterations: 1,
			Language:   "中文",
			Attachment: attachment.New("application/pdf", []byte("%PDF-1.4")),
		})

		// 播种失败不会中断讨论
		require.Len(t, events, 2)
		assert.Contains(t, llmStub.promptList()[0], defaultSeed)
	})
}

func TestRun_ValidationErrors(t *testing.T) {
	e := newTestEngine(t, &stubLLM{}, &stubSummarizer{}, nil)

	tests := []struct {
		name string
		cfg  *DiscussionConfig
	}{
		{"空话题", &DiscussionConfig{Agents: twoAgents(), Iterations: 1, Language: "中文"}},
		{"无成员", &DiscussionConfig{Topic: "话题", Iterations: 1, Language: "中文"}},
		{"迭代次数为零", &DiscussionConfig{Topic: "话题", Agents: twoAgents(), Language: "中文"}},
		{"空语言", &DiscussionConfig{Topic: "话题", Agents: twoAgents(), Iterations: 1}},
		{"成员名称重复", &DiscussionConfig{
			Topic: "话题", Iterations: 1, Language: "中文",
			Agents: []Agent{
				{Name: "A", Personality: PersonalityNeutral},
				{Name: "A", Personality: PersonalityCritical},
			},
		}},
		{"未知个性标签", &DiscussionConfig{
			Topic: "话题", Iterations: 1, Language: "中文",
			Agents: []Agent{{Name: "A", Personality: Personality("激进")}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := e.Run(context.Background(), tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, ch)
		})
	}
}

func TestRun_Cancellation(t *testing.T) {
	sum := &stubSummarizer{}
	store := &stubStore{}
	e := newTestEngine(t, &stubLLM{}, sum, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := e.Run(ctx, &DiscussionConfig{
		Topic:      "话题",
		Agents:     []Agent{{Name: "A", Personality: PersonalityNeutral}},
		Iterations: 2,
		Language:   "中文",
		User:       "tester",
	})
	require.NoError(t, err)

	var received []Event
	for ev := range events {
		received = append(received, ev)
		cancel()
	}

	// 取消后不再产生结束事件，也不持久化
	for _, ev := range received {
		assert.NotEqual(t, 0, ev.Iteration)
	}
	assert.Equal(t, 0, sum.finals)
	assert.Empty(t, store.saved)
}

func TestRun_DiscussionID(t *testing.T) {
	t.Run("自动生成", func(t *testing.T) {
		e := newTestEngine(t, &stubLLM{}, &stubSummarizer{}, nil)
		events := runAndCollect(t, e, &DiscussionConfig{
			Topic: "话题", Agents: twoAgents(), Iterations: 1, Language: "中文",
		})
		require.NotEmpty(t, events)
		assert.NotEmpty(t, events[0].DiscussionID)
	})

	t.Run("保留指定的ID", func(t *testing.T) {
		e := newTestEngine(t, &stubLLM{}, &stubSummarizer{}, nil)
		events := runAndCollect(t, e, &DiscussionConfig{
			Topic: "话题", Agents: twoAgents(), Iterations: 1, Language: "中文",
			DiscussionID: "20250101_000000_abcd1234",
		})
		for _, ev := range events {
			assert.Equal(t, "20250101_000000_abcd1234", ev.DiscussionID)
		}
	})
}

func TestRun_WritesTranscriptFile(t *testing.T) {
	e := newTestEngine(t, &stubLLM{}, &stubSummarizer{}, nil)
	events := runAndCollect(t, e, &DiscussionConfig{
		Topic: "话题", Agents: twoAgents(), Iterations: 2, Language: "中文",
		DiscussionID: "20250101_000000_abcd1234",
	})
	require.NotEmpty(t, events)

	data, err := os.ReadFile(filepath.Join(e.transcriptDir, "chat_history_20250101_000000_abcd1234.txt"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "user: ")
	assert.Contains(t, content, "assistant: 回答1")
	assert.Contains(t, content, "assistant: 回答2")
}
