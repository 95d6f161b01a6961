// Package export 把页面划分结果变成最终打印形态：一份自包含的 HTML
// 文档（每页一个固定几何的块，样式内联），再经无头 Chromium 打印成 PDF
// 字节。它还用同一套模板产出离屏量高文档，量高适配器渲染它来读取
// 盒子高度。
package export

import (
	"fmt"
	"html/template"
	"strings"

	"cvpress/internal/document"
	"cvpress/internal/layout"
)

var templates = mustParseTemplates()

func mustParseTemplates() *template.Template {
	t := template.New("export").Funcs(template.FuncMap{
		// 富文本到达模板时已经消毒；internal/sanitize 的白名单是唯一关口。
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"join": func(parts ...string) string {
			kept := make([]string, 0, len(parts))
			for _, p := range parts {
				if strings.TrimSpace(p) != "" {
					kept = append(kept, p)
				}
			}
			return strings.Join(kept, " · ")
		},
	})
	for _, src := range []string{
		baseCSSTemplateString,
		headerTemplateString,
		sectionTemplateString,
	} {
		t = template.Must(t.Parse(src))
	}
	template.Must(t.New("print").Parse(printTemplateString))
	template.Must(t.New("measure").Parse(measureTemplateString))
	return t
}

type pageView struct {
	ShowHeader bool
	Header     document.Header
	Sections   []document.Section
}

type printView struct {
	WidthMm        float64
	HeightMm       float64
	PageWidthPx    float64
	PageHeightPx   float64
	PaddingPx      float64
	ContentWidthPx float64
	Header         document.Header
	Pages          []pageView
	Sections       []document.Section
}

func newView(doc *document.Document, geometry layout.Geometry) printView {
	geometry = geometry.Normalize()
	return printView{
		WidthMm:        geometry.WidthMm,
		HeightMm:       geometry.HeightMm,
		PageWidthPx:    geometry.PageWidthPx(),
		PageHeightPx:   geometry.PageHeightPx(),
		PaddingPx:      geometry.PaddingPx(),
		ContentWidthPx: geometry.ContentWidthPx(),
		Header:         doc.Header,
		Sections:       doc.Ordered(),
	}
}

// PageHTML 渲染分页后的文档：页眉在第 1 页，每页的 sections 放进固定
// 尺寸的块里。与量高使用同一几何渲染，因此精确复现量高得到的布局。
func PageHTML(doc *document.Document, pages []layout.Page, geometry layout.Geometry) (string, error) {
	view := newView(doc, geometry)
	for i, page := range pages {
		pv := pageView{ShowHeader: i == 0, Header: doc.Header}
		for _, id := range page.SectionIDs {
			section, ok := doc.Sections[id]
			if !ok {
				return "", fmt.Errorf("page %d references unknown section %q", i+1, id)
			}
			pv.Sections = append(pv.Sections, section)
		}
		view.Pages = append(view.Pages, pv)
	}

	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "print", view); err != nil {
		return "", fmt.Errorf("render print html: %w", err)
	}
	return b.String(), nil
}

// MeasureHTML 渲染未分页的量高文档：页眉加全部 sections 按序排列，
// 约束在页面内容宽度内。永远 100% 缩放；预览缩放到不了这个面。
func MeasureHTML(doc *document.Document, geometry layout.Geometry) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "measure", newView(doc, geometry)); err != nil {
		return "", fmt.Errorf("render measure html: %w", err)
	}
	return b.String(), nil
}
