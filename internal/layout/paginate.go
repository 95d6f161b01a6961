package layout

// MeasuredSection 把 section id 与它在当前内容宽度下的渲染高度配对。
// 瞬态数据：任何可能改变高度的修改之后都会重算，从不持久化。
type MeasuredSection struct {
	SectionID string  `json:"section_id"`
	HeightPx  float64 `json:"height_px"`
}

// Page 是文档 section 顺序的一个有序子集。计算得出，不存储；
// 每次布局都重新生成。
type Page struct {
	SectionIDs []string `json:"section_ids"`
}

// Paginate 按顺序首次适应把 section 划分到页面：顺序遍历，
// 下一个放不下就翻页，从不重排，从不拆分。
//
// 页眉只占第 1 页顶部。比整页还高的 section 独占一页并允许溢出可打印
// 区域，不尝试在 section 内部断开。内容高度非正时退化为每页一个
// section，而不是报错。
//
// 即使没有任何 section 也至少返回一页。
func Paginate(headerHeightPx float64, sections []MeasuredSection, contentHeightPx float64) []Page {
	if contentHeightPx <= 0 {
		return degeneratePages(sections)
	}

	var pages []Page
	current := Page{}
	remaining := contentHeightPx - headerHeightPx

	for _, section := range sections {
		if section.HeightPx > remaining && len(current.SectionIDs) > 0 {
			pages = append(pages, current)
			current = Page{}
			remaining = contentHeightPx
		}
		current.SectionIDs = append(current.SectionIDs, section.SectionID)
		remaining -= section.HeightPx
	}

	if len(current.SectionIDs) > 0 {
		pages = append(pages, current)
	}
	if len(pages) == 0 {
		// 文档至少渲染一页。
		pages = []Page{{}}
	}
	return pages
}

func degeneratePages(sections []MeasuredSection) []Page {
	if len(sections) == 0 {
		return []Page{{}}
	}
	pages := make([]Page, 0, len(sections))
	for _, section := range sections {
		pages = append(pages, Page{SectionIDs: []string{section.SectionID}})
	}
	return pages
}
