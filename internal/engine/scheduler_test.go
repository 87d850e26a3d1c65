package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeAgents(k int) []Agent {
	agents := make([]Agent, k)
	for i := range agents {
		agents[i] = Agent{Name: fmt.Sprintf("成员%d", i), Personality: PersonalityNeutral}
	}
	return agents
}

func TestPickSpeaker_RoundRobin(t *testing.T) {
	// 轮询不变式：对任意成员数 K 和迭代数 N，第 i 轮由 agents[i % K] 发言
	for k := 1; k <= 5; k++ {
		agents := makeAgents(k)
		lastOutputs := make([]string, k)
		for i := 0; i < 3*k+1; i++ {
			agent, _ := pickSpeaker(i, agents, lastOutputs)
			assert.Equal(t, agents[i%k].Name, agent.Name, "k=%d i=%d", k, i)
		}
	}
}

func TestPickSpeaker_PrevOutput(t *testing.T) {
	agents := makeAgents(3)
	lastOutputs := []string{"甲的发言", "乙的发言", "丙的发言"}

	// 首轮没有上一位发言
	_, prev := pickSpeaker(0, agents, lastOutputs)
	assert.Empty(t, prev)

	// 第 i 轮的上一位是 agents[(i-1) % K]
	_, prev = pickSpeaker(1, agents, lastOutputs)
	assert.Equal(t, "甲的发言", prev)
	_, prev = pickSpeaker(2, agents, lastOutputs)
	assert.Equal(t, "乙的发言", prev)
	_, prev = pickSpeaker(3, agents, lastOutputs)
	assert.Equal(t, "丙的发言", prev)
	_, prev = pickSpeaker(4, agents, lastOutputs)
	assert.Equal(t, "甲的发言", prev)
}

func TestPickSpeaker_SingleAgent(t *testing.T) {
	agents := makeAgents(1)
	lastOutputs := []string{"唯一成员的发言"}

	agent, prev := pickSpeaker(0, agents, lastOutputs)
	assert.Equal(t, "成员0", agent.Name)
	assert.Empty(t, prev)

	// 单成员时上一位就是自己
	agent, prev = pickSpeaker(1, agents, lastOutputs)
	assert.Equal(t, "成员0", agent.Name)
	assert.Equal(t, "唯一成员的发言", prev)
}
