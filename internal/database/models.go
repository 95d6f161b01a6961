package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 导出任务状态。页面划分与量高结果从不持久化；
// 任务行只记录这次流水线的运行与产物位置。
const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusDone       = "done"
	JobStatusFailed     = "failed"
)

// ExportJob 表示一次异步 PDF 导出：文档快照 + 流水线状态。
// 这不是简历存储——快照只在任务生命周期内有意义。
type ExportJob struct {
	gorm.Model
	JobID         string         `gorm:"uniqueIndex;size:36"`
	Status        string         `gorm:"size:32;index"`
	Document      datatypes.JSON `gorm:"type:jsonb"` // sanitized document snapshot
	GeometryJSON  datatypes.JSON `gorm:"type:jsonb"`
	ObjectKey     string         `gorm:"size:512"`
	PageCount     int
	ErrorMessage  string `gorm:"size:1024"`
	CorrelationID string `gorm:"size:64"`
}
