package worker

import "fmt"

// 统一的 WebSocket 消息协议（通过 Redis Pub/Sub 转发给客户端）。
// 注意：字段名与客户端解析保持一致。
type ExportNotifyMessage struct {
	Status        string `json:"status"` // done | error
	JobID         string `json:"job_id"`
	CorrelationID string `json:"correlation_id"`
	PageCount     int    `json:"page_count,omitempty"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// NotifyChannel 返回某个导出任务的 Pub/Sub 频道名。
// API 侧的 WebSocket handler 订阅同名频道。
func NotifyChannel(jobID string) string {
	return fmt.Sprintf("export_notify:%s", jobID)
}
