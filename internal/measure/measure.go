// Package measure 是 layout.Measurer 端口的生产实现：
// 在无头 Chromium 里渲染量高文档，读回页眉与每个 section 的真实盒高。
package measure

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"cvpress/internal/document"
	"cvpress/internal/export"
	"cvpress/internal/layout"
)

// readHeightsScript 收集页眉与每个 section 的 getBoundingClientRect 高度，
// 以导出模板输出的 data-id 为键。
const readHeightsScript = `() => {
  const out = { header: 0, sections: [] };
  const header = document.getElementById('cv-header');
  if (header) {
    out.header = header.getBoundingClientRect().height;
  }
  for (const el of document.querySelectorAll('section[data-id]')) {
    out.sections.push({
      id: el.dataset.id,
      height: el.getBoundingClientRect().height,
    });
  }
  return out;
}`

// waitFontsScript 等待网页/系统字体就绪，上限 3 秒，
// 避免回退字体的度量混进量高结果。
const waitFontsScript = `() => {
  if (document && document.fonts && document.fonts.ready) {
    return Promise.race([
      document.fonts.ready.then(() => true),
      new Promise((resolve) => setTimeout(() => resolve(true), 3000))
    ]);
  }
  return true;
}`

// Chromium 通过在无头浏览器里渲染来量高。每次 Measure 都启动独立的
// 浏览器实例，与 PDF 导出路径一致，崩溃的渲染不会污染后续量高。
type Chromium struct {
	// Timeout 限制一次完整量高的时长，零值表示 30 秒。
	Timeout time.Duration
}

var _ layout.Measurer = (*Chromium)(nil)

// Measure 在几何的内容宽度下渲染页眉与全部 sections，
// 按 section 顺序返回各自的渲染高度。
func (c *Chromium) Measure(ctx context.Context, doc *document.Document, geometry layout.Geometry) (layout.Measurement, error) {
	htmlContent, err := export.MeasureHTML(doc, geometry)
	if err != nil {
		return layout.Measurement{}, err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	launch := launcher.New().
		Headless(true).
		NoSandbox(true)

	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return layout.Measurement{}, fmt.Errorf("launch chromium: %w", err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(browserURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return layout.Measurement{}, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Timeout(timeout).Page(proto.TargetCreateTarget{})
	if err != nil {
		return layout.Measurement{}, fmt.Errorf("create page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(timeout)
	if err := page.SetDocumentContent(htmlContent); err != nil {
		return layout.Measurement{}, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return layout.Measurement{}, fmt.Errorf("wait load: %w", err)
	}
	if _, err := page.Eval(waitFontsScript); err != nil {
		return layout.Measurement{}, fmt.Errorf("wait fonts ready: %w", err)
	}

	result, err := page.Eval(readHeightsScript)
	if err != nil {
		return layout.Measurement{}, fmt.Errorf("read section heights: %w", err)
	}

	measurement := layout.Measurement{
		HeaderHeightPx: result.Value.Get("header").Num(),
	}
	for _, entry := range result.Value.Get("sections").Arr() {
		measurement.Sections = append(measurement.Sections, layout.MeasuredSection{
			SectionID: entry.Get("id").Str(),
			HeightPx:  entry.Get("height").Num(),
		})
	}

	if len(measurement.Sections) != len(doc.SectionOrder) {
		return layout.Measurement{}, fmt.Errorf(
			"measured %d sections, document has %d", len(measurement.Sections), len(doc.SectionOrder))
	}

	return measurement, nil
}
