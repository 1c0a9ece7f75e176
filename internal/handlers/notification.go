package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/doctrack-io/doctrackgo/internal/middleware"
	"github.com/doctrack-io/doctrackgo/internal/models"
	"github.com/doctrack-io/doctrackgo/internal/notify"
)

// listNotifications returns the calling client's notifications,
// newest first
func (r *Router) listNotifications(w http.ResponseWriter, req *http.Request) {
	clientID := middleware.UserIDFromContext(req.Context())

	q := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Limit(100)
	if req.URL.Query().Get("unread") == "true" {
		q = q.Where("is_read = ?", false)
	}

	var notifs []models.ClientNotification
	if err := q.Find(&notifs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	respondJSON(w, http.StatusOK, notifs)
}

// markNotificationRead flips the read flag on one of the caller's
// notifications. The only mutation notifications ever see.
func (r *Router) markNotificationRead(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(req)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}
	clientID := middleware.UserIDFromContext(req.Context())

	res := r.db.Model(&models.ClientNotification{}).
		Where("id = ? AND client_id = ?", id, clientID).
		Update("is_read", true)
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Notification not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// serveNotificationSocket upgrades to a websocket registered under the
// caller's id for live notification pushes
func (r *Router) serveNotificationSocket(w http.ResponseWriter, req *http.Request) {
	clientID := middleware.UserIDFromContext(req.Context())
	if clientID == 0 {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	notify.ServeWs(r.hub, clientID, w, req)
}
