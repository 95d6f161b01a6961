package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvpress/internal/match"
)

// MatchHandler 负责关键词覆盖打分与 ATS 结构检查。
type MatchHandler struct{}

// NewMatchHandler 构造 MatchHandler。
func NewMatchHandler() *MatchHandler {
	return &MatchHandler{}
}

type matchRequest struct {
	documentEnvelope
	JobDescription string `json:"job_description"`
}

type matchResponse struct {
	Score   int             `json:"score"`
	Missing []string        `json:"missing"`
	ATS     match.ATSReport `json:"ats"`
}

// ScoreMatch 比对职位描述与简历全文，返回覆盖分与缺失关键词。
// 空的职位描述不是错误：返回 0 分与空缺失列表。
func (h *MatchHandler) ScoreMatch(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	doc, err := req.decodeDocument()
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	result := match.Score(req.JobDescription, doc)
	c.JSON(http.StatusOK, matchResponse{
		Score:   result.Score,
		Missing: result.Missing,
		ATS:     match.CheckATS(doc),
	})
}

// CheckATS 只做结构检查，不打分。
func (h *MatchHandler) CheckATS(c *gin.Context) {
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

	c.JSON(http.StatusOK, match.CheckATS(doc))
}
