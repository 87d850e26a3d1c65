package attachment

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Kind 附件类型的封闭枚举
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	default:
		return "unsupported"
	}
}

// Attachment 随讨论附带的文档，按媒体类型归入 PDF / Image / Unsupported 三类
type Attachment struct {
	Kind      Kind
	MediaType string
	Data      []byte
}

// New 根据媒体类型对附件数据分类
func New(mediaType string, data []byte) *Attachment {
	att := &Attachment{MediaType: mediaType, Data: data}
	switch {
	case mediaType == "application/pdf":
		att.Kind = KindPDF
	case strings.HasPrefix(mediaType, "image/"):
		att.Kind = KindImage
	default:
		att.Kind = KindUnsupported
	}
	return att
}

// FromFile 读取文件并按扩展名推断媒体类型
func FromFile(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取附件文件失败: %w", err)
	}

	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	// TypeByExtension 可能带 charset 参数，只保留主类型
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}

	return New(mediaType, data), nil
}

// DataURL 将附件编码为 data URL，供多模态消息段使用
func (a *Attachment) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MediaType, base64.StdEncoding.EncodeToString(a.Data))
}
