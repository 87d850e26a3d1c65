package engine

// pickSpeaker 选出第 i 轮（0 基）的发言成员及上一位发言成员的最近输出
// 严格轮询：第 i 轮由 agents[i % len(agents)] 发言；首轮没有上一位发言
// 纯函数，无副作用
func pickSpeaker(i int, agents []Agent, lastOutputs []string) (Agent, string) {
	n := len(agents)
	idx := i % n

	var prevOutput string
	if i > 0 {
		prevOutput = lastOutputs[(idx-1+n)%n]
	}
	return agents[idx], prevOutput
}
