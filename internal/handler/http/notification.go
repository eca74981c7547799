package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/primatek-mfg/erp-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// Create implements NotificationHandler. Admin only, enforced by the router.
func (n *NotificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req notification.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create notification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := n.notificationService.Create(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notification created", notification.ToNotificationResponse(*created))
}

// List implements NotificationHandler.
func (n *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	page := parseIntQuery(r, "page", 1)
	limit := parseIntQuery(r, "limit", 10)

	list, err := n.notificationService.List(r.Context(), employeeID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := (list.Total + list.Limit - 1) / list.Limit
	response.SuccessWithMeta(w, list.Notifications, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: int64(list.Total),
		TotalPages: totalPages,
	})
}

// MarkAsRead implements NotificationHandler. Safe to retry; repeating the call
// returns the original receipt.
func (n *NotificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	notificationID := chi.URLParam(r, "id")
	if notificationID == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	receipt, err := n.notificationService.MarkAsRead(r.Context(), employeeID, notificationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notification.ReadReceiptResponse{
		NotificationID: receipt.NotificationID,
		ReadAt:         receipt.ReadAt,
	})
}
