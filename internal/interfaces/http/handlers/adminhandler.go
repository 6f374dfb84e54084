package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/admin/usecases"
	uservo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

type RejectRequest struct {
	Reason string `json:"reason"`
}

type BulkApprovalRequest struct {
	IDs    []uint `json:"ids"`
	Reason string `json:"reason"`
}

type AdminHandler struct {
	listUsersUC  adminusecases.ListUsersExecutor
	getUserUC    adminusecases.GetUserExecutor
	changeUC     adminusecases.ChangeApprovalExecutor
	bulkChangeUC adminusecases.BulkChangeApprovalExecutor
	logger       logger.Interface
}

func NewAdminHandler(
	listUsersUC adminusecases.ListUsersExecutor,
	getUserUC adminusecases.GetUserExecutor,
	changeUC adminusecases.ChangeApprovalExecutor,
	bulkChangeUC adminusecases.BulkChangeApprovalExecutor,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listUsersUC:  listUsersUC,
		getUserUC:    getUserUC,
		changeUC:     changeUC,
		bulkChangeUC: bulkChangeUC,
		logger:       logger,
	}
}

// ListPending handles GET /api/admin/pending
func (h *AdminHandler) ListPending(c *gin.Context) {
	users, err := h.listUsersUC.Execute(c.Request.Context(), adminusecases.ListUsersQuery{
		Status: uservo.StatusPending.String(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"count":   len(users),
		"signups": users,
	})
}

// ListUsers handles GET /api/admin/users with an optional ?status= filter.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.listUsersUC.Execute(c.Request.Context(), adminusecases.ListUsersQuery{
		Status: c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"count": len(users),
		"users": users,
	})
}

// GetUser handles GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	user, err := h.getUserUC.Execute(c.Request.Context(), adminusecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": user})
}

// Approve handles PATCH /api/admin/approve/:id
func (h *AdminHandler) Approve(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	user, err := h.changeUC.Execute(c.Request.Context(), adminusecases.ChangeApprovalCommand{
		UserID: userID,
		Target: uservo.StatusApproved,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User approved successfully", gin.H{"user": user})
}

// Reject handles PATCH /api/admin/reject/:id
func (h *AdminHandler) Reject(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	user, err := h.changeUC.Execute(c.Request.Context(), adminusecases.ChangeApprovalCommand{
		UserID: userID,
		Target: uservo.StatusRejected,
		Reason: req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User rejected successfully", gin.H{"user": user})
}

// BulkApprove handles POST /api/admin/approve/bulk
func (h *AdminHandler) BulkApprove(c *gin.Context) {
	h.bulkChange(c, uservo.StatusApproved, "approved")
}

// BulkReject handles POST /api/admin/reject/bulk
func (h *AdminHandler) BulkReject(c *gin.Context) {
	h.bulkChange(c, uservo.StatusRejected, "rejected")
}

func (h *AdminHandler) bulkChange(c *gin.Context, target uservo.ApprovalStatus, label string) {
	var req BulkApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ids must be a non-empty list")
		return
	}

	result, err := h.bulkChangeUC.Execute(c.Request.Context(), adminusecases.BulkChangeApprovalCommand{
		UserIDs: req.IDs,
		Target:  target,
		Reason:  req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		label:   result.Changed,
		"count": result.Count,
	})
}
