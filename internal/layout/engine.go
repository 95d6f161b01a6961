package layout

import (
	"context"
	"errors"
	"sync"

	"cvpress/internal/document"
)

// Measurement 是一次量高的输出：页眉的渲染高度，加上按文档 section
// 顺序排列的逐 section 高度。
type Measurement struct {
	HeaderHeightPx float64           `json:"header_height_px"`
	Sections       []MeasuredSection `json:"sections"`
}

// Measurer 是量高端口。生产实现在无头浏览器里渲染真实标记；
// 测试注入返回固定高度的替身。量高永远在 100% 缩放下进行，
// 预览缩放属于布局之后的事，不得反馈到这里。
type Measurer interface {
	Measure(ctx context.Context, doc *document.Document, geo Geometry) (Measurement, error)
}

// ErrStale 表示量高进行期间文档又发生了修改。该结果已被丢弃；
// 调用方用新文档重跑。最后一次修改胜出，过期的量高从不合并。
var ErrStale = errors.New("layout: measurement superseded by newer mutation")

// Layout 把一次量高与由它导出的页面绑定在一起。
type Layout struct {
	Measurement Measurement `json:"measurement"`
	Pages       []Page      `json:"pages"`
}

// Engine 为单个编辑会话执行先量高后分页的流水线。
// 文档本身仍归会话所有；引擎只维护一个代数计数器，
// 用来丢弃针对过期文档的在途量高。
type Engine struct {
	measurer Measurer
	geometry Geometry

	mu   sync.Mutex
	gen  uint64
	last Layout
	ok   bool
}

// NewEngine 用量高端口与固定几何构造引擎。
func NewEngine(measurer Measurer, geometry Geometry) *Engine {
	return &Engine{measurer: measurer, geometry: geometry.Normalize()}
}

// Geometry 返回引擎布局所用的页面几何。
func (e *Engine) Geometry() Geometry {
	return e.geometry
}

// Invalidate 把所有在途量高标记为过期。任何可能改变渲染高度的修改
// 之后都要调用：内容编辑、条目增删改、重排、section 增删。
// 纯预览缩放不需要。
func (e *Engine) Invalidate() {
	e.mu.Lock()
	e.gen++
	e.mu.Unlock()
}

// Refresh 量高并导出页面。若量高在途期间发生 Invalidate，
// 结果被丢弃并返回 ErrStale；调用方用当前文档重试。
func (e *Engine) Refresh(ctx context.Context, doc *document.Document) (Layout, error) {
	e.mu.Lock()
	started := e.gen
	e.mu.Unlock()

	measurement, err := e.measurer.Measure(ctx, doc, e.geometry)
	if err != nil {
		return Layout{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen != started {
		return Layout{}, ErrStale
	}

	result := Layout{
		Measurement: measurement,
		Pages:       Paginate(measurement.HeaderHeightPx, measurement.Sections, e.geometry.ContentHeightPx()),
	}
	e.last = result
	e.ok = true
	return result, nil
}

// Last 返回最近一次提交的布局（若有）。没有改变任何高度的编辑
// 不会影响它。
func (e *Engine) Last() (Layout, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last, e.ok
}
