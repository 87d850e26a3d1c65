package attachment

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Classification(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		want      Kind
	}{
		{"PDF文档", "application/pdf", KindPDF},
		{"PNG图片", "image/png", KindImage},
		{"JPEG图片", "image/jpeg", KindImage},
		{"WebP图片", "image/webp", KindImage},
		{"纯文本", "text/plain", KindUnsupported},
		{"二进制流", "application/octet-stream", KindUnsupported},
		{"空类型", "", KindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := New(tt.mediaType, []byte("payload"))
			assert.Equal(t, tt.want, att.Kind)
			assert.Equal(t, tt.mediaType, att.MediaType)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pdf", KindPDF.String())
	assert.Equal(t, "image", KindImage.String())
	assert.Equal(t, "unsupported", KindUnsupported.String())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("按扩展名推断类型", func(t *testing.T) {
		path := filepath.Join(dir, "report.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

		att, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, KindPDF, att.Kind)
		assert.Equal(t, "application/pdf", att.MediaType)
		assert.Equal(t, []byte("%PDF-1.4"), att.Data)
	})

	t.Run("未知扩展名归为不支持", func(t *testing.T) {
		path := filepath.Join(dir, "notes.unknown123")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

		att, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, KindUnsupported, att.Kind)
		assert.Equal(t, "application/octet-stream", att.MediaType)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := FromFile(filepath.Join(dir, "missing.pdf"))
		assert.Error(t, err)
	})
}

func TestDataURL(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47}
	att := New("image/png", data)

	url := att.DataURL()
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(data), url)
}
