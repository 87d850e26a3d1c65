package engine

import "fmt"

// Personality 成员个性标签的封闭枚举
type Personality string

const (
	PersonalityCritical     Personality = "critical"
	PersonalityVisionary    Personality = "visionary"
	PersonalityConservative Personality = "conservative"
	PersonalityNeutral      Personality = "neutral"
	PersonalityCreative     Personality = "creative"
	PersonalityAnalytical   Personality = "analytical"
	PersonalityHumorous     Personality = "humorous"
)

// defaultClauses 个性到提示词指令的内置映射，neutral 不追加指令
var defaultClauses = map[Personality]string{
	PersonalityCritical:     "请以特别挑剔和批判的视角发言。",
	PersonalityVisionary:    "请展现出特别有远见的思考。",
	PersonalityConservative: "请保持特别保守和审慎的态度。",
	PersonalityNeutral:      "",
	PersonalityCreative:     "请发挥特别有创意的想象力。",
	PersonalityAnalytical:   "请进行特别严谨的逻辑分析。",
	PersonalityHumorous:     "请用轻松幽默的方式表达观点。",
}

// resolveClauses 将配置中的覆盖项合并到内置映射上
// 覆盖键必须是已知个性，个性枚举本身不可扩展
func resolveClauses(overrides map[string]string) (map[Personality]string, error) {
	clauses := make(map[Personality]string, len(defaultClauses))
	for p, c := range defaultClauses {
		clauses[p] = c
	}
	for key, clause := range overrides {
		p := Personality(key)
		if _, ok := defaultClauses[p]; !ok {
			return nil, fmt.Errorf("未知的个性标签: %s", key)
		}
		clauses[p] = clause
	}
	return clauses, nil
}
