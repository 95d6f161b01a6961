package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/minio/minio-go/v7"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cvpress/internal/api/middleware"
	"cvpress/internal/database"
	"cvpress/internal/storage"
	"cvpress/internal/tasks"
)

const downloadLinkTTL = 1 * time.Hour

// ObjectStorage 是导出产物存储的最小接口；生产实现是 *storage.Client。
type ObjectStorage interface {
	GetObject(ctx context.Context, objectKey string) (*minio.Object, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// ExportHandler 负责异步 PDF 导出：建任务、查状态、下载与清理产物。
type ExportHandler struct {
	db          *gorm.DB
	asynqClient *asynq.Client
	storage     ObjectStorage
}

// NewExportHandler 构造 ExportHandler。
func NewExportHandler(db *gorm.DB, asynqClient *asynq.Client, storageClient ObjectStorage) *ExportHandler {
	return &ExportHandler{
		db:          db,
		asynqClient: asynqClient,
		storage:     storageClient,
	}
}

type exportJobResponse struct {
	JobID       string `json:"job_id"`
	Status      string `json:"status"`
	PageCount   int    `json:"page_count,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// CreateExport 落库一份文档快照并入队导出任务。
// 文档在这里完成校验与消毒；worker 只消费已经干净的快照。
func (h *ExportHandler) CreateExport(c *gin.Context) {
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

	snapshot, err := json.Marshal(doc)
	if err != nil {
		Internal(c, "failed to encode document snapshot")
		return
	}
	geometryJSON, err := json.Marshal(geometry)
	if err != nil {
		Internal(c, "failed to encode geometry")
		return
	}

	ctx := c.Request.Context()
	correlationID := middleware.GetCorrelationID(c)
	log := middleware.LoggerFromContext(c)

	job := database.ExportJob{
		JobID:         uuid.NewString(),
		Status:        database.JobStatusQueued,
		Document:      datatypes.JSON(snapshot),
		GeometryJSON:  datatypes.JSON(geometryJSON),
		CorrelationID: correlationID,
	}
	if err := h.db.WithContext(ctx).Create(&job).Error; err != nil {
		Internal(c, "failed to create export job")
		return
	}

	task, err := tasks.NewPDFExportTask(job.JobID, correlationID)
	if err != nil {
		Internal(c, "failed to build export task")
		return
	}
	if _, err := h.asynqClient.EnqueueContext(ctx, task); err != nil {
		log.Error("enqueue export task failed", slog.Any("error", err))
		Internal(c, "failed to enqueue export task")
		return
	}

	c.JSON(http.StatusAccepted, exportJobResponse{
		JobID:  job.JobID,
		Status: job.Status,
	})
}

// GetExport 返回导出任务状态；完成后附带限时下载链接。
func (h *ExportHandler) GetExport(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("id"))
	if jobID == "" {
		BadRequest(c, "job id is required")
		return
	}

	ctx := c.Request.Context()
	var job database.ExportJob
	if err := h.db.WithContext(ctx).Where("job_id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "export job not found")
			return
		}
		Internal(c, "failed to query export job")
		return
	}

	resp := exportJobResponse{
		JobID:     job.JobID,
		Status:    job.Status,
		PageCount: job.PageCount,
		Error:     job.ErrorMessage,
	}
	if job.Status == database.JobStatusDone && job.ObjectKey != "" {
		url, err := h.storage.GeneratePresignedURL(ctx, job.ObjectKey, downloadLinkTTL)
		if err != nil {
			Internal(c, "failed to generate download link")
			return
		}
		resp.DownloadURL = url
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadExport 直接回传 PDF 字节，供不方便走预签名链接的调用方使用。
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("id"))
	if jobID == "" {
		BadRequest(c, "job id is required")
		return
	}

	ctx := c.Request.Context()
	var job database.ExportJob
	if err := h.db.WithContext(ctx).Where("job_id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "export job not found")
			return
		}
		Internal(c, "failed to query export job")
		return
	}
	if job.Status != database.JobStatusDone || job.ObjectKey == "" {
		Conflict(c, "export is not finished")
		return
	}

	obj, err := h.storage.GetObject(ctx, job.ObjectKey)
	if err != nil {
		Internal(c, "failed to open export artifact")
		return
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		if storage.IsNoSuchKey(err) {
			NotFound(c, "export artifact is gone")
			return
		}
		Internal(c, "failed to stat export artifact")
		return
	}

	c.DataFromReader(http.StatusOK, stat.Size, "application/pdf", obj, map[string]string{
		"Content-Disposition": `attachment; filename="resume.pdf"`,
	})
}

// DeleteExport 删除导出任务及其产物。先删对象再删行：
// 对象删除是幂等的，行删除失败时下次重试仍能找到任务。
func (h *ExportHandler) DeleteExport(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("id"))
	if jobID == "" {
		BadRequest(c, "job id is required")
		return
	}

	ctx := c.Request.Context()
	var job database.ExportJob
	if err := h.db.WithContext(ctx).Where("job_id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "export job not found")
			return
		}
		Internal(c, "failed to query export job")
		return
	}

	if job.ObjectKey != "" {
		if err := h.storage.DeleteObject(ctx, job.ObjectKey); err != nil {
			log := middleware.LoggerFromContext(c)
			log.Error("delete export artifact failed", slog.Any("error", err))
			Internal(c, "failed to delete export artifact")
			return
		}
	}
	if err := h.db.WithContext(ctx).Delete(&job).Error; err != nil {
		Internal(c, "failed to delete export job")
		return
	}

	c.Status(http.StatusNoContent)
}
