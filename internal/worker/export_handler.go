package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvpress/internal/database"
	"cvpress/internal/document"
	"cvpress/internal/errcode"
	"cvpress/internal/export"
	"cvpress/internal/layout"
	"cvpress/internal/storage"
	"cvpress/internal/tasks"
)

// ExportTaskHandler 消费 PDF 导出任务：量高 → 分页 → 渲染 → 打印 → 上传。
type ExportTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
	measurer    layout.Measurer
}

// NewExportTaskHandler 创建任务处理器。
func NewExportTaskHandler(
	db *gorm.DB,
	storageClient *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	measurer layout.Measurer,
) *ExportTaskHandler {
	return &ExportTaskHandler{
		db:          db,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
		measurer:    measurer,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PDFExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("job_id", payload.JobID),
	)
	log.Info("starting pdf export task")

	var job database.ExportJob
	if err := h.db.WithContext(ctx).Where("job_id = ?", payload.JobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("export job not found, skipping task")
			return nil
		}
		log.Error("query export job failed", slog.Any("error", err))
		return err
	}

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}
		// 最后一次重试仍失败：落库并通知客户端。
		failure := map[string]any{
			"status":        database.JobStatusFailed,
			"error_message": strings.TrimSpace(retErr.Error()),
		}
		if err := h.db.WithContext(ctx).Model(&job).Updates(failure).Error; err != nil {
			log.Error("mark export job failed errored", slog.Any("error", err))
		}
		notify := ExportNotifyMessage{
			Status:        "error",
			JobID:         job.JobID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishExportNotify(ctx, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	if err := h.db.WithContext(ctx).Model(&job).Update("status", database.JobStatusProcessing).Error; err != nil {
		log.Error("mark export job processing failed", slog.Any("error", err))
		return err
	}

	doc := &document.Document{}
	if err := json.Unmarshal(job.Document, doc); err != nil {
		log.Error("decode document snapshot failed", slog.Any("error", err))
		return err
	}
	if err := doc.Validate(); err != nil {
		log.Error("document snapshot invalid", slog.Any("error", err))
		return err
	}

	geometry := layout.A4()
	if len(job.GeometryJSON) > 0 {
		if err := json.Unmarshal(job.GeometryJSON, &geometry); err != nil {
			log.Error("decode geometry failed", slog.Any("error", err))
			return err
		}
	}
	geometry = geometry.Normalize()

	measurement, err := h.measurer.Measure(ctx, doc, geometry)
	if err != nil {
		log.Error("measure document failed", slog.Any("error", err))
		return err
	}

	pages := layout.Paginate(measurement.HeaderHeightPx, measurement.Sections, geometry.ContentHeightPx())
	log.Info("document paginated",
		slog.Int("section_count", len(measurement.Sections)),
		slog.Int("page_count", len(pages)),
	)

	htmlContent, err := export.PageHTML(doc, pages, geometry)
	if err != nil {
		log.Error("render print html failed", slog.Any("error", err))
		return err
	}

	pdfBytes, err := export.PDF(htmlContent, geometry)
	if err != nil {
		log.Error("print pdf failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("exports/%s.pdf", job.JobID)
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf to minio failed", slog.Any("error", err))
		return err
	}

	update := map[string]any{
		"status":     database.JobStatusDone,
		"object_key": objectName,
		"page_count": len(pages),
	}
	if err := h.db.WithContext(ctx).Model(&job).Updates(update).Error; err != nil {
		log.Error("update export job failed", slog.Any("error", err))
		return err
	}

	notify := ExportNotifyMessage{
		Status:        "done",
		JobID:         job.JobID,
		CorrelationID: payload.CorrelationID,
		PageCount:     len(pages),
		ErrorCode:     errcode.OK,
	}
	if err := h.publishExportNotify(ctx, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("pdf export task completed")
	return nil
}

func (h *ExportTaskHandler) publishExportNotify(ctx context.Context, notify ExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := NotifyChannel(notify.JobID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
