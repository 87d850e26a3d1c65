package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Quality
	}{
		{"普通文本为中性", "我认为这个方案可行。", QualityNeutral},
		{"空文本为中性", "", QualityNeutral},
		{"包含重复标记为低质量", "抱歉，我在重复自己说过的观点。", QualityPoor},
		{"包含新视角标记为高质量", "让我换一个新的视角来看这个问题。", QualityGood},
		{"两种标记同时出现时低质量优先", "虽然有新的视角，但我还是在重复自己。", QualityPoor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.text))
		})
	}
}

func TestEvaluate_Pure(t *testing.T) {
	// 纯函数：同一输入多次求值结果一致
	inputs := []string{"普通发言", "我在重复自己", "提供一个新的视角"}
	for _, in := range inputs {
		first := Evaluate(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Evaluate(in))
		}
	}
}
