package engine

import "strings"

// 质量启发式的标记短语；这是触发修复路径的信号，不是正确性保证
const (
	repetitionMarker  = "重复自己" // 发言者自述在重复，判为低质量
	perspectiveMarker = "新的视角" // 带来新视角，判为高质量
)

// Evaluate 对发言文本做启发式质量分类，纯函数
// 包含重复标记判为 poor，包含新视角标记判为 good，否则 neutral；poor 优先
func Evaluate(text string) Quality {
	t := strings.ToLower(text)
	if strings.Contains(t, repetitionMarker) {
		return QualityPoor
	}
	if strings.Contains(t, perspectiveMarker) {
		return QualityGood
	}
	return QualityNeutral
}
