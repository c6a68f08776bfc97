package routes

import (
	"serralheria_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets  = "/budgets"
	PathOrders   = "/orders"
	PathTasks    = "/tasks"
	PathTimeLogs = "/time-logs"
	PathCalls    = "/calls"
	PathInvoices = "/invoices"
	PathReports  = "/reports"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	budgetHandler *handlers.BudgetHandler,
	orderHandler *handlers.ServiceOrderHandler,
	taskHandler *handlers.TaskHandler,
	invoiceHandler *handlers.InvoiceHandler,
	reportHandler *handlers.ReportHandler,
) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
		budgets.PATCH("/:id/status", budgetHandler.UpdateBudgetStatus)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("/convert", orderHandler.ConvertBudget)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.PATCH("/:id/status", orderHandler.ChangeOrderStatus)
		orders.POST("/:id/items", orderHandler.AddOrderItem)
		orders.PUT("/:id/items/:item_id", orderHandler.UpdateOrderItem)
		orders.DELETE("/:id/items/:item_id", orderHandler.RemoveOrderItem)
		orders.GET("/:id/calls", orderHandler.ListCalls)
		orders.GET("/:id/tasks", taskHandler.ListTasksByOrder)
		orders.GET("/:id/hours", taskHandler.GetWorkedHours)
	}

	calls := rg.Group(PathCalls)
	{
		calls.PATCH("/:call_id/resolve", orderHandler.ResolveCall)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.POST("/:id/time-logs", taskHandler.OpenTimeLog)
		tasks.GET("/:id/time-logs", taskHandler.ListTimeLogs)
	}

	timeLogs := rg.Group(PathTimeLogs)
	{
		timeLogs.PATCH("/:log_id/close", taskHandler.CloseTimeLog)
		timeLogs.DELETE("/:log_id", taskHandler.DeleteTimeLog)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoicesByClient)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/void", invoiceHandler.VoidInvoice)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/status-histogram", reportHandler.StatusHistogram)
		reports.GET("/open-orders", reportHandler.OpenOrders)
		reports.GET("/open-tasks", reportHandler.OpenTasks)
		reports.GET("/productivity", reportHandler.WorkerProductivity)
		reports.GET("/orders.csv", reportHandler.ExportOrdersCSV)
	}
}
