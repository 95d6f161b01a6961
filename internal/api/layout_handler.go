package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvpress/internal/api/middleware"
	"cvpress/internal/layout"
)

// LayoutHandler 负责同步布局计算：量高并把 section 划分到页。
type LayoutHandler struct {
	measurer layout.Measurer
}

// NewLayoutHandler 构造 LayoutHandler。
func NewLayoutHandler(measurer layout.Measurer) *LayoutHandler {
	return &LayoutHandler{measurer: measurer}
}

type layoutResponse struct {
	PageCount      int                      `json:"page_count"`
	Pages          []layout.Page            `json:"pages"`
	HeaderHeightPx float64                  `json:"header_height_px"`
	Sections       []layout.MeasuredSection `json:"sections"`
	Geometry       layout.Geometry          `json:"geometry"`
}

// ComputeLayout 接收完整文档，返回每页包含的 section 列表。
// 纯派生结果，不落库；同一输入永远得到同一输出。
func (h *LayoutHandler) ComputeLayout(c *gin.Context) {
	var req documentEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	doc, err := req.decodeDocument()
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	geometry := req.geometry()

	log := middleware.LoggerFromContext(c)

	measurement, err := h.measurer.Measure(c.Request.Context(), doc, geometry)
	if err != nil {
		log.Error("measure document failed", slog.Any("error", err))
		Internal(c, "failed to measure document")
		return
	}

	pages := layout.Paginate(measurement.HeaderHeightPx, measurement.Sections, geometry.ContentHeightPx())

	c.JSON(http.StatusOK, layoutResponse{
		PageCount:      len(pages),
		Pages:          pages,
		HeaderHeightPx: measurement.HeaderHeightPx,
		Sections:       measurement.Sections,
		Geometry:       geometry,
	})
}
