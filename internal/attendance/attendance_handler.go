package attendance

import (
	"net/http"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/shared/apperror"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.writeServiceError(c, apperror.MapValidationError(err))
}

func (h *Handler) writeList(c *gin.Context, rows []AttendanceResponse) {
	page, meta := response.Paginate(c, rows)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	resp, err := h.service.CheckIn(ctx, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, AttendanceActionResponse{Message: "Check-in successful", Attendance: resp}, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	resp, err := h.service.CheckOut(ctx, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, AttendanceActionResponse{Message: "Check-out successful", Attendance: resp}, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeList(c, rows)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	rows, err := h.service.GetByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeList(c, rows)
}

func (h *Handler) GetByDateRange(c *gin.Context) {
	var q DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	rows, err := h.service.GetByDateRange(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeList(c, rows)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	resp, err := h.service.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, AttendanceActionResponse{Message: "Attendance record deleted successfully", Attendance: resp}, nil)
}

func (h *Handler) GetDeleted(c *gin.Context) {
	rows, err := h.service.GetDeleted(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeList(c, rows)
}

func (h *Handler) GetWithDeleted(c *gin.Context) {
	rows, err := h.service.GetWithDeleted(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeList(c, rows)
}

func (h *Handler) Restore(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	resp, err := h.service.Restore(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, AttendanceActionResponse{Message: "Attendance record restored successfully", Attendance: resp}, nil)
}

func (h *Handler) PermanentlyDelete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	resp, err := h.service.PermanentlyDelete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, AttendanceActionResponse{Message: "Attendance record permanently deleted", Attendance: resp}, nil)
}
