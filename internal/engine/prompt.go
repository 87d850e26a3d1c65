package engine

import (
	"fmt"
	"strings"
)

// repairPrompt 低质量发言的修复指令
const repairPrompt = "请尝试给出一个更有创意的回答。"

// defaultSeed 没有附带文档时滚动总结的初始值
const defaultSeed = "讨论开始。"

// buildTurnPrompt 构造第 i 轮（0 基）的完整提示词
// 组成顺序：话题、补充资料、当前滚动总结、轮次与成员指令、上一位发言、个性指令、语言要求
func buildTurnPrompt(cfg *DiscussionConfig, i int, agent Agent, initialSummary, currentSummary, prevOutput, clause string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("我们正在就话题《%s》进行一场多方讨论。\n", cfg.Topic))
	if initialSummary != "" {
		sb.WriteString(fmt.Sprintf("补充资料：'%s'。\n", initialSummary))
	}
	sb.WriteString(fmt.Sprintf("以下是此前讨论的总结：\n%s\n\n", currentSummary))
	sb.WriteString(fmt.Sprintf("第 %d 轮：请成员 %s 发言。%s\n", i+1, agent.Name, agent.Instruction))
	if i > 0 {
		sb.WriteString(fmt.Sprintf("上一位发言者说：%s\n", prevOutput))
	}
	if clause != "" {
		sb.WriteString("\n" + clause)
	}
	sb.WriteString(fmt.Sprintf("\n\n请使用%s回答。", cfg.Language))

	return sb.String()
}

// formatTurn 将一轮发言渲染为进度事件中的展示文本
func formatTurn(iteration int, agent Agent, output string) string {
	return fmt.Sprintf("**第 %d 轮：成员 %s (%s)**\n\n%s\n\n---\n\n", iteration, agent.Name, agent.Personality, output)
}

// formatHistory 将讨论记录渲染为 "role: content" 的纯文本
func formatHistory(history []ChatMessage) string {
	lines := make([]string, len(history))
	for i, m := range history {
		lines[i] = fmt.Sprintf("%s: %s", m.Role, m.Content)
	}
	return strings.Join(lines, "\n")
}
