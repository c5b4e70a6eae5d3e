package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inventory-request-service/internal/catalog"
	"inventory-request-service/internal/currency"
	"inventory-request-service/internal/models"
	"inventory-request-service/internal/service"
	"inventory-request-service/internal/storage"
	"inventory-request-service/internal/store"
	"inventory-request-service/internal/util"
)

// Handler contains HTTP handlers
type Handler struct {
	requestService *service.RequestService
}

// NewHandler creates a new HTTP handler
func NewHandler(requestService *service.RequestService) *Handler {
	return &Handler{
		requestService: requestService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/countries", h.listCountries)

		v1.POST("/requests", h.submitRequest)
		v1.GET("/requests", h.listRequests)
		v1.GET("/requests/status-counts", h.statusCounts)
		v1.GET("/requests/:id", h.getRequest)
		v1.POST("/requests/:id/approve", h.approveRequest)
		v1.POST("/requests/:id/reject", h.rejectRequest)
		v1.POST("/requests/:id/invoice", h.generateInvoice)

		v1.GET("/invoices/:number", h.downloadInvoice)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// productView is a catalog entry optionally priced in a display currency
type productView struct {
	models.Product
	DisplayPrice    string `json:"display_price,omitempty"`
	DisplayCurrency string `json:"display_currency,omitempty"`
	DisplaySymbol   string `json:"display_symbol,omitempty"`
}

// listProducts returns the product catalog, optionally filtered by
// ?distributor= tag and priced via ?currency= display conversion
func (h *Handler) listProducts(c *gin.Context) {
	products := catalog.All()
	if tag := c.Query("distributor"); tag != "" {
		products = catalog.ByDistributor(tag)
	}

	code := strings.ToUpper(c.Query("currency"))
	views := make([]productView, 0, len(products))
	for _, p := range products {
		v := productView{Product: p}
		if code != "" && currency.Supported(p.NativeCurrency, code) {
			v.DisplayPrice = currency.Convert(p.NativePrice, p.NativeCurrency, code).StringFixed(2)
			v.DisplayCurrency = code
			v.DisplaySymbol = currency.SymbolFor(code)
		}
		views = append(views, v)
	}

	c.JSON(http.StatusOK, gin.H{"products": views})
}

// listCountries returns the destination country directory
func (h *Handler) listCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": currency.Countries()})
}

// submitRequest handles a buyer's cart submission
func (h *Handler) submitRequest(c *gin.Context) {
	var req service.SubmitRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if req.SubmissionKey == "" {
		req.SubmissionKey = c.GetHeader("Idempotency-Key")
	}

	resp, err := h.requestService.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to submit request",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listRequests handles listing requests, with optional ?status= filter
func (h *Handler) listRequests(c *gin.Context) {
	requests, err := h.requestService.ListRequests(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list requests",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// statusCounts handles the per-status dashboard counters
func (h *Handler) statusCounts(c *gin.Context) {
	counts, err := h.requestService.StatusCounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to count requests",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// getRequest handles get request by ID
func (h *Handler) getRequest(c *gin.Context) {
	request, err := h.requestService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": request})
}

// decisionBody carries the optional admin comment on approve/reject
type decisionBody struct {
	AdminComment string `json:"admin_comment"`
}

// approveRequest handles approving a pending request
func (h *Handler) approveRequest(c *gin.Context) {
	h.decide(c, h.requestService.Approve)
}

// rejectRequest handles rejecting a pending request
func (h *Handler) rejectRequest(c *gin.Context) {
	h.decide(c, h.requestService.Reject)
}

func (h *Handler) decide(c *gin.Context, fn func(context.Context, string, string) (*models.InventoryRequest, error)) {
	var body decisionBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	request, err := fn(c.Request.Context(), c.Param("id"), body.AdminComment)
	if err != nil {
		h.writeActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": request})
}

// generateInvoice handles issuing the invoice for an approved request.
// The body may override the derived invoice number and due date.
func (h *Handler) generateInvoice(c *gin.Context) {
	var opts service.InvoiceOptions
	if err := c.ShouldBindJSON(&opts); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := h.requestService.GenerateInvoice(c.Request.Context(), c.Param("id"), &opts)
	if err != nil {
		h.writeActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// downloadInvoice streams a stored invoice PDF by its invoice number
func (h *Handler) downloadInvoice(c *gin.Context) {
	number := c.Param("number")
	pdf, err := h.requestService.GetInvoicePDF(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch invoice",
			"details": err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// writeActionError maps admin-action failures to HTTP statuses
func (h *Handler) writeActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Invalid status transition",
			"details": err.Error(),
		})
	case errors.Is(err, service.ErrActionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Another action is in progress"})
	default:
		var stepErr *service.StepError
		if errors.As(err, &stepErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Invoice generation failed",
				"step":    stepErr.Step,
				"details": stepErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Action failed",
			"details": err.Error(),
		})
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
