// Package sanitize 是编辑面产出与文档模型存储之间唯一的关口。
// 下游的量高、分页与导出只会见到已经安全的标记。
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy = newRichPolicy()
	textPolicy = bluemonday.StrictPolicy()
)

// newRichPolicy 构建用户富文本的白名单策略。
// 不允许的标签会被解包（保留子节点），允许元素上的非法属性会被剥除。
// script/iframe/embed 的内容整体丢弃，避免代码以可见文本形式存活。
func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "u", "ul", "ol", "li")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.SkipElementsContent("script", "style", "iframe", "object", "embed", "noscript")
	return p
}

// HTML 把富文本规整到存储白名单。幂等；无论输入多糟都返回字符串，
// 不会报错。
func HTML(input string) string {
	return strings.TrimSpace(richPolicy.Sanitize(input))
}

// Text 剥除所有标记并还原实体，产出关键词匹配等纯文本处理所需的文本。
func Text(input string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(input)))
}
