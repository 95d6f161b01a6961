package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypePDFExport = "export:pdf"
)

// PDFExportPayload 描述导出一份 PDF 所需的最小信息。
// 文档快照存在 ExportJob 行里，payload 只带定位信息。
type PDFExportPayload struct {
	JobID         string `json:"job_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewPDFExportTask 构造一个新的 PDF 导出任务。
func NewPDFExportTask(jobID string, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PDFExportPayload{
		JobID:         jobID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePDFExport, payload), nil
}
