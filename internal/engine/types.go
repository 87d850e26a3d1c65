package engine

import (
	"github.com/fachebot/roundtable-bot/internal/attachment"
)

// Agent 讨论成员，讨论期间不可变更
type Agent struct {
	Name        string      // 成员名称，讨论内唯一
	Personality Personality // 个性标签
	Instruction string      // 附加给该成员的自由文本指令
}

// ChatMessage 讨论记录中的单条消息
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Quality 单轮发言的质量分类
type Quality int

const (
	QualityNeutral Quality = iota
	QualityPoor
	QualityGood
)

func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "poor"
	case QualityGood:
		return "good"
	default:
		return "neutral"
	}
}

// Turn 一轮迭代中单个成员的发言
type Turn struct {
	Iteration int // 1 基
	AgentName string
	Output    string
	Quality   Quality
}

// DiscussionConfig 一场讨论的完整配置，创建后不再修改
type DiscussionConfig struct {
	Topic        string
	Agents       []Agent
	Iterations   int
	Language     string                 // 要求成员使用的回答语言
	Attachment   *attachment.Attachment // 可选的附带文档
	User         string                 // 所属用户，为空则不持久化
	DiscussionID string                 // 为空时自动生成
}

// Result 讨论结束时的完整产出，交给存储层持久化
type Result struct {
	DiscussionID string
	Topic        string
	AgentNames   []string
	ChatHistory  []ChatMessage
	Summary      string
	User         string
}

// Event 每轮迭代结束后发布的进度事件
// Iteration 为 0 且 AgentName 为空表示讨论结束，此时 Chunk 为最终总结
type Event struct {
	ChatHistory  []ChatMessage
	Chunk        string
	DiscussionID string
	Iteration    int
	AgentName    string
}
