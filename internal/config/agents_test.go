package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAgentsFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "agents.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func TestLoadAgents(t *testing.T) {
	filename := writeAgentsFile(t, `
- Name: "明轩"
  Personality: "critical"
  Description: "关注技术可行性。"
- Name: "子琪"
  Personality: "visionary"
`)

	agents, err := LoadAgents(filename)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "明轩", agents[0].Name)
	assert.Equal(t, "critical", agents[0].Personality)
	assert.Equal(t, "关注技术可行性。", agents[0].Description)
	assert.Empty(t, agents[1].Description)
}

func TestLoadAgents_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"缺少名称", "- Personality: critical\n"},
		{"缺少个性", "- Name: 明轩\n"},
		{"名称重复", "- Name: 明轩\n  Personality: critical\n- Name: 明轩\n  Personality: visionary\n"},
		{"格式错误", "Name: 明轩\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAgents(writeAgentsFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}
