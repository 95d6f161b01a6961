// Package layout 把量过高度的有序 section 列表划分到固定高度的页面上。
// 它从不重排也从不拆分 section；高度来自 Measurer，算法本身纯粹且确定。
package layout

import "math"

// pxPerMm 以 96 DPI 把物理页面尺寸换算成 CSS 像素，
// Chromium 的排版与打印 PDF 都用这个密度。
const pxPerMm = 96.0 / 25.4

// Geometry 是固定的可打印页面：物理尺寸加内边距。
// 文档的整个生命周期内保持不变。
type Geometry struct {
	WidthMm   float64 `json:"width_mm"`
	HeightMm  float64 `json:"height_mm"`
	PaddingMm float64 `json:"padding_mm"`
}

// A4 是默认页面：210x297mm，内边距 16mm。
func A4() Geometry {
	return Geometry{WidthMm: 210, HeightMm: 297, PaddingMm: 16}
}

// Normalize 把零值几何补成 A4 默认，线上省略几何时不会退化成零尺寸页面。
func (g Geometry) Normalize() Geometry {
	if g.WidthMm <= 0 || g.HeightMm <= 0 {
		return A4()
	}
	return g
}

// ContentWidthPx 是内容可用的水平空间（像素）。
// 量高必须在恰好这个宽度下渲染，否则分页会偏离打印结果。
func (g Geometry) ContentWidthPx() float64 {
	return round2((g.WidthMm - 2*g.PaddingMm) * pxPerMm)
}

// ContentHeightPx 是单页的垂直预算（像素）。
func (g Geometry) ContentHeightPx() float64 {
	return round2((g.HeightMm - 2*g.PaddingMm) * pxPerMm)
}

// PageWidthPx 是含内边距的整页宽度（像素）。
func (g Geometry) PageWidthPx() float64 {
	return round2(g.WidthMm * pxPerMm)
}

// PageHeightPx 是含内边距的整页高度（像素）。
func (g Geometry) PageHeightPx() float64 {
	return round2(g.HeightMm * pxPerMm)
}

// PaddingPx 是内边距（像素）。
func (g Geometry) PaddingPx() float64 {
	return round2(g.PaddingMm * pxPerMm)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
