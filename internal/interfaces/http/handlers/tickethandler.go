package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/ticket/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/interfaces/http/middleware"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

// maxAttachmentSize caps ticket attachments at 5MB.
const maxAttachmentSize = 5 << 20

type CreateTicketRequest struct {
	AWBNumber   string `json:"awb_number"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

type TicketHandler struct {
	createTicketUC ticketusecases.CreateTicketExecutor
	listTicketsUC  ticketusecases.ListTicketsExecutor
	readMessagesUC ticketusecases.ReadMessagesExecutor
	postMessageUC  ticketusecases.PostMessageExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC ticketusecases.CreateTicketExecutor,
	listTicketsUC ticketusecases.ListTicketsExecutor,
	readMessagesUC ticketusecases.ReadMessagesExecutor,
	postMessageUC ticketusecases.PostMessageExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTicketsUC:  listTicketsUC,
		readMessagesUC: readMessagesUC,
		postMessageUC:  postMessageUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /api/tickets/create
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(
			"Missing required fields: awb_number, category, subcategory"))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		AWBNumber:   req.AWBNumber,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Caller:      middleware.CallerIdentity(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"ticket": result}, "Ticket created successfully")
}

// ListTickets handles GET /api/tickets/my-tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	results, err := h.listTicketsUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		Caller: middleware.CallerIdentity(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"tickets": results})
}

// ListAllTickets handles GET /api/tickets/all, the admin panel view.
func (h *TicketHandler) ListAllTickets(c *gin.Context) {
	results, err := h.listTicketsUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		Caller:     middleware.CallerIdentity(c),
		AllTickets: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"tickets": results})
}

// GetMessages handles GET /api/tickets/:id/messages
func (h *TicketHandler) GetMessages(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messages, err := h.readMessagesUC.Execute(c.Request.Context(), ticketusecases.ReadMessagesQuery{
		TicketID: ticketID,
		Caller:   middleware.CallerIdentity(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"messages": messages})
}

// PostMessage handles POST /api/tickets/:id/messages (multipart form).
func (h *TicketHandler) PostMessage(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := ticketusecases.PostMessageCommand{
		TicketID: ticketID,
		Caller:   middleware.CallerIdentity(c),
		Text:     c.PostForm("message"),
	}

	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil {
		if fileHeader.Size > maxAttachmentSize {
			utils.ErrorResponseWithError(c, errors.NewValidationError("File too large. Maximum size is 5MB."))
			return
		}

		file, openErr := fileHeader.Open()
		if openErr != nil {
			h.logger.Errorw("failed to open uploaded attachment", "file_name", fileHeader.Filename, "error", openErr)
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("File upload error"))
			return
		}
		defer file.Close()

		cmd.File = file
		cmd.FileName = fileHeader.Filename
		cmd.FileContentType = fileHeader.Header.Get("Content-Type")
		cmd.FileSize = fileHeader.Size
	}

	msg, err := h.postMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Message posted successfully", gin.H{"message": msg})
}
