package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fachebot/roundtable-bot/internal/attachment"
	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/fachebot/roundtable-bot/internal/llm"
	"github.com/fachebot/roundtable-bot/internal/logger"
	"github.com/google/uuid"
)

// defaultFallbackTopic 话题停滞时的替换话题
const defaultFallbackTopic = "新话题：2026年AI趋势"

// generator 文本生成客户端（便于测试注入 mock）
type generator interface {
	Generate(ctx context.Context, prompt string, att *attachment.Attachment) (string, error)
	SummarizeDocument(ctx context.Context, att *attachment.Attachment) (string, error)
}

// summaryUpdater 滚动总结与最终总结（便于测试注入 mock）
type summaryUpdater interface {
	Update(ctx context.Context, current, agentName, output string) (string, error)
	Final(ctx context.Context, transcript string) (string, error)
}

// resultSaver 讨论结果的持久化存储（便于测试注入 mock）
type resultSaver interface {
	SaveDiscussion(ctx context.Context, result *Result) error
}

// Engine 讨论编排引擎
// 单场讨论严格串行推进；不同讨论之间没有共享可变状态，可以并发运行
type Engine struct {
	llmClient     generator
	summarizer    summaryUpdater
	store         resultSaver // 可为 nil，表示不持久化
	clauses       map[Personality]string
	fallbackTopic string
	transcriptDir string
}

// New 创建讨论编排引擎
// 个性覆盖表中的未知标签会导致错误
func New(llmClient generator, summarizer summaryUpdater, store resultSaver, cfg *config.Engine) (*Engine, error) {
	clauses, err := resolveClauses(cfg.Personalities)
	if err != nil {
		return nil, err
	}

	fallbackTopic := cfg.FallbackTopic
	if fallbackTopic == "" {
		fallbackTopic = defaultFallbackTopic
	}

	return &Engine{
		llmClient:     llmClient,
		summarizer:    summarizer,
		store:         store,
		clauses:       clauses,
		fallbackTopic: fallbackTopic,
		transcriptDir: "data",
	}, nil
}

// validateConfig 在进入迭代前拒绝无效配置
func (e *Engine) validateConfig(cfg *DiscussionConfig) error {
	if cfg.Topic == "" {
		return fmt.Errorf("讨论话题不能为空")
	}
	if len(cfg.Agents) == 0 {
		return fmt.Errorf("至少需要一个讨论成员")
	}
	if cfg.Iterations < 1 {
		return fmt.Errorf("迭代次数必须 >= 1")
	}
	if cfg.Language == "" {
		return fmt.Errorf("回答语言不能为空")
	}

	seen := make(map[string]bool)
	for _, a := range cfg.Agents {
		if a.Name == "" {
			return fmt.Errorf("成员名称不能为空")
		}
		if seen[a.Name] {
			return fmt.Errorf("成员名称重复: %s", a.Name)
		}
		seen[a.Name] = true
		if _, ok := e.clauses[a.Personality]; !ok {
			return fmt.Errorf("成员 %s 的个性标签未知: %s", a.Name, a.Personality)
		}
	}
	return nil
}

// newDiscussionID 生成讨论ID：时间戳前缀便于排查，uuid 后缀避免同秒冲突
func newDiscussionID() string {
	return fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
}

// Run 启动一场讨论，返回进度事件通道
// 事件由后台协程逐轮产出，讨论结束或 ctx 取消后通道关闭
func (e *Engine) Run(ctx context.Context, cfg *DiscussionConfig) (<-chan Event, error) {
	if err := e.validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.DiscussionID == "" {
		cfg.DiscussionID = newDiscussionID()
	}

	ch := make(chan Event)
	go e.run(ctx, cfg, ch)
	return ch, nil
}

func (e *Engine) run(ctx context.Context, cfg *DiscussionConfig, ch chan<- Event) {
	defer close(ch)

	numAgents := len(cfg.Agents)
	lastOutputs := make([]string, numAgents)
	topicChanged := false
	history := make([]ChatMessage, 0, cfg.Iterations*2+2)

	agentNames := make([]string, numAgents)
	for i, a := range cfg.Agents {
		agentNames[i] = a.Name
	}
	logger.Infof("[Engine] 讨论开始: 成员=%v, 迭代=%d, 讨论ID=%s", agentNames, cfg.Iterations, cfg.DiscussionID)

	// Seeding: 初始总结来自附带文档，失败则退回默认种子
	initialSummary := e.seedSummary(ctx, cfg)
	currentSummary := initialSummary

	for i := 0; i < cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			logger.Infof("[Engine] 讨论 %s 已取消 (第 %d 轮前)", cfg.DiscussionID, i+1)
			return
		default:
		}

		agent, prevOutput := pickSpeaker(i, cfg.Agents, lastOutputs)
		agentIdx := i % numAgents
		prompt := buildTurnPrompt(cfg, i, agent, initialSummary, currentSummary, prevOutput, e.clauses[agent.Personality])

		output, err := e.llmClient.Generate(ctx, prompt, cfg.Attachment)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			output = placeholderFor(agent.Name, err)
		}
		quality := Evaluate(output)
		lastOutputs[agentIdx] = output

		// 讨论记录保留原始发言；修复只替换展示文本与成员的最近输出
		history = append(history,
			ChatMessage{Role: RoleUser, Content: fmt.Sprintf("成员 %s (第 %d 轮): %s", agent.Name, i+1, prompt)},
			ChatMessage{Role: RoleAssistant, Content: output},
		)
		e.writeTranscriptFile(cfg.DiscussionID, history)

		// 基于最新发言替换滚动总结，失败时沿用旧总结
		newSummary, err := e.summarizer.Update(ctx, currentSummary, agent.Name, output)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Errorf("[Engine] 更新滚动总结失败 (第 %d 轮): %v", i+1, err)
		} else {
			currentSummary = newSummary
		}

		// 低质量发言触发一次修复调用，修复本身失败则保留原始发言
		if quality == QualityPoor {
			logger.Infof("[Engine] 成员 %s 第 %d 轮发言质量低，尝试修复", agent.Name, i+1)
			repaired, err := e.llmClient.Generate(ctx, repairPrompt, cfg.Attachment)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warnf("[Engine] 修复调用失败，保留原始发言: %v", err)
			} else {
				output = repaired
				lastOutputs[agentIdx] = output
			}
		}

		turn := Turn{Iteration: i + 1, AgentName: agent.Name, Output: output, Quality: quality}
		logger.Infof("[Engine] 成员 %s 第 %d 轮发言完成 (质量=%s)", turn.AgentName, turn.Iteration, turn.Quality)

		event := Event{
			ChatHistory:  snapshot(history),
			Chunk:        formatTurn(i+1, agent, output),
			DiscussionID: cfg.DiscussionID,
			Iteration:    i + 1,
			AgentName:    agent.Name,
		}
		select {
		case ch <- event:
		case <-ctx.Done():
			return
		}

		// 话题停滞保护：超过六成进度后，若本轮发言与上一位成员记录的发言完全相同，
		// 则把所有成员的最近输出替换为固定话题，整场讨论至多触发一次
		if float64(i) > float64(cfg.Iterations)*0.6 && !topicChanged &&
			output == lastOutputs[(agentIdx-1+numAgents)%numAgents] {
			logger.Infof("[Engine] 检测到话题停滞，切换到: %s", e.fallbackTopic)
			for j := range lastOutputs {
				lastOutputs[j] = e.fallbackTopic
			}
			topicChanged = true
		}
	}

	select {
	case <-ctx.Done():
		logger.Infof("[Engine] 讨论 %s 已取消 (总结前)", cfg.DiscussionID)
		return
	default:
	}

	// Summarizing: 基于完整讨论记录生成最终总结
	finalSummary, err := e.summarizer.Final(ctx, "完整讨论记录:\n"+formatHistory(history))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Errorf("[Engine] 生成最终总结失败: %v", err)
		finalSummary = "错误: 未能生成最终总结。"
	}
	history = append(history, ChatMessage{Role: RoleAssistant, Content: "**总体总结**:\n" + finalSummary})

	// Persisting: 仅在有所属用户时写库，失败记录日志不中断
	if cfg.User != "" && e.store != nil {
		result := &Result{
			DiscussionID: cfg.DiscussionID,
			Topic:        cfg.Topic,
			AgentNames:   agentNames,
			ChatHistory:  snapshot(history),
			Summary:      finalSummary,
			User:         cfg.User,
		}
		if err := e.store.SaveDiscussion(ctx, result); err != nil {
			logger.Errorf("[Engine] 保存讨论 %s 失败: %v", cfg.DiscussionID, err)
		} else {
			logger.Infof("[Engine] 讨论 %s 已保存", cfg.DiscussionID)
		}
	} else {
		logger.Infof("[Engine] 讨论 %s 未保存（无所属用户）", cfg.DiscussionID)
	}

	finalText := lastOutputs[numAgents-1]
	history = append(history, ChatMessage{Role: RoleAssistant, Content: "最终发言:\n" + finalText})
	logger.Infof("[Engine] 最终发言: %s", truncate(finalText, 50))

	// 结束事件：Iteration 为 0 且 AgentName 为空
	select {
	case ch <- Event{ChatHistory: snapshot(history), Chunk: finalSummary, DiscussionID: cfg.DiscussionID}:
	case <-ctx.Done():
	}
}

// seedSummary 从附带文档推导初始总结；无附件或失败时使用默认种子
func (e *Engine) seedSummary(ctx context.Context, cfg *DiscussionConfig) string {
	if cfg.Attachment == nil {
		return defaultSeed
	}
	seed, err := e.llmClient.SummarizeDocument(ctx, cfg.Attachment)
	if err != nil {
		logger.Errorf("[Engine] 生成文档初始总结失败，使用默认种子: %v", err)
		return defaultSeed
	}
	return seed
}

// writeTranscriptFile 每轮把讨论记录落盘，作为崩溃恢复的辅助手段，失败不致命
func (e *Engine) writeTranscriptFile(discussionID string, history []ChatMessage) {
	filename := filepath.Join(e.transcriptDir, fmt.Sprintf("chat_history_%s.txt", discussionID))
	if err := os.WriteFile(filename, []byte(formatHistory(history)+"\n"), 0644); err != nil {
		logger.Errorf("[Engine] 写入讨论记录文件失败: %v", err)
	}
}

// placeholderFor 按错误类别生成占位发言，任何单轮失败都不会中断整场讨论
func placeholderFor(agentName string, err error) string {
	switch {
	case errors.Is(err, llm.ErrMaxRetries):
		return "错误: 已达到最大重试次数（API限额）。"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "LLM 返回空响应。"
	default:
		return fmt.Sprintf("成员 %s 本轮调用失败: %v", agentName, err)
	}
}

func snapshot(history []ChatMessage) []ChatMessage {
	out := make([]ChatMessage, len(history))
	copy(out, history)
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
