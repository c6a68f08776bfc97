package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	response "serralheria_os/internal/adapter/http/dto/response"
	"serralheria_os/internal/usecase"
	"serralheria_os/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles read-only reporting projections. Every report is
// recomputed from live data on each call.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) StatusHistogram(c *gin.Context) {
	from, _ := parseQueryTime(c.Query("from"))
	to, _ := parseQueryTime(c.Query("to"))

	counts, err := h.usecase.StatusHistogram(c.Request.Context(), from, to)
	if err != nil {
		abortWith(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistogram(counts))
}

func (h *ReportHandler) OpenOrders(c *gin.Context) {
	orders, err := h.usecase.OpenOrders(c.Request.Context())
	if err != nil {
		abortWith(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ReportHandler) OpenTasks(c *gin.Context) {
	tasks, err := h.usecase.OpenTasks(c.Request.Context())
	if err != nil {
		abortWith(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

func (h *ReportHandler) WorkerProductivity(c *gin.Context) {
	rows, err := h.usecase.WorkerProductivity(c.Request.Context())
	if err != nil {
		abortWith(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkerProductivity(rows))
}

// ExportOrdersCSV streams the full order projection as a CSV attachment.
func (h *ReportHandler) ExportOrdersCSV(c *gin.Context) {
	rows, err := h.usecase.OrderExportRows(c.Request.Context())
	if err != nil {
		abortWith(c, mapReportError(err))
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	header := []string{"number", "client", "status", "urgency", "assigned_to", "items", "sale_value", "worked_hours", "created_at"}
	if err := w.Write(header); err != nil {
		return
	}
	for _, r := range rows {
		record := []string{
			r.Number,
			r.ClientName,
			r.Status,
			r.Urgency,
			r.AssignedTo,
			strconv.Itoa(r.ItemCount),
			strconv.FormatFloat(r.SaleValue, 'f', 2, 64),
			strconv.FormatFloat(r.WorkedHours, 'f', 2, 64),
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return
		}
	}
	w.Flush()
}

func mapReportError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
