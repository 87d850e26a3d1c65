package llm

import (
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrEmptyResponse API 调用成功但返回了空白内容，不重试，由调用方决定如何呈现
	ErrEmptyResponse = errors.New("LLM 返回空响应")

	// ErrMaxRetries 临时性错误重试次数耗尽
	ErrMaxRetries = errors.New("已达到最大重试次数")
)

// transientKeywords 错误消息中出现这些关键字时视为临时性错误
var transientKeywords = []string{"429", "quota", "rate limit", "overloaded", "server is busy"}

// isTransient 判断错误是否为临时性错误（限流/配额耗尽/服务过载）
// 临时性错误按退避策略重试；鉴权失败、请求格式错误等直接失败不重试
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429, 500, 502, 503:
			return true
		case 400, 401, 403, 404:
			return false
		}
	}

	msg := strings.ToLower(err.Error())
	for _, kw := range transientKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
