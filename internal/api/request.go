package api

import (
	"encoding/json"
	"fmt"

	"cvpress/internal/document"
	"cvpress/internal/layout"
)

// documentEnvelope 是布局、匹配与导出共用的请求形状：
// 一份完整文档载荷加可选的页面几何。
type documentEnvelope struct {
	Document json.RawMessage  `json:"document" binding:"required"`
	Geometry *layout.Geometry `json:"geometry"`
}

// decodeDocument 依次做 schema 校验、反序列化、顺序/存储不变量检查，
// 并消毒每个富文本字段。消毒放在这里，因为线上整份载荷绕过了模型的
// 提交方法。
func (e documentEnvelope) decodeDocument() (*document.Document, error) {
	if err := document.ValidateJSON(e.Document); err != nil {
		return nil, err
	}
	doc := &document.Document{}
	if err := json.Unmarshal(e.Document, doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.SanitizeAll()
	return doc, nil
}

// geometry 解析可选的页面几何，缺省为 A4。
func (e documentEnvelope) geometry() layout.Geometry {
	if e.Geometry == nil {
		return layout.A4()
	}
	return e.Geometry.Normalize()
}
