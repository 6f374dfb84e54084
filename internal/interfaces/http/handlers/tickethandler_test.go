package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hardik-Dharmik/shipping-b/internal/application/ticket/dto"
	ticketusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/ticket/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type mockCreateTicketUC struct {
	result *dto.TicketDTO
	err    error
	gotCmd ticketusecases.CreateTicketCommand
	called bool
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	m.called = true
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListTicketsUC struct {
	result []*dto.TicketDTO
	err    error
}

func (m *mockListTicketsUC) Execute(ctx context.Context, query ticketusecases.ListTicketsQuery) ([]*dto.TicketDTO, error) {
	return m.result, m.err
}

type mockReadMessagesUC struct {
	result   []ticket.Message
	err      error
	gotQuery ticketusecases.ReadMessagesQuery
}

func (m *mockReadMessagesUC) Execute(ctx context.Context, query ticketusecases.ReadMessagesQuery) ([]ticket.Message, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockPostMessageUC struct {
	result *ticket.Message
	err    error
	gotCmd ticketusecases.PostMessageCommand
}

func (m *mockPostMessageUC) Execute(ctx context.Context, cmd ticketusecases.PostMessageCommand) (*ticket.Message, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func setupTicketRouter(handler *TicketHandler, identity auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(auth.ContextKey, identity)
		c.Next()
	})
	router.POST("/api/tickets/create", handler.CreateTicket)
	router.GET("/api/tickets/my-tickets", handler.ListTickets)
	router.GET("/api/tickets/:id/messages", handler.GetMessages)
	router.POST("/api/tickets/:id/messages", handler.PostMessage)
	return router
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		createUC := &mockCreateTicketUC{result: &dto.TicketDTO{ID: 100, AWBNumber: "AWB-1001", Status: "open"}}
		handler := NewTicketHandler(createUC, &mockListTicketsUC{}, &mockReadMessagesUC{}, &mockPostMessageUC{}, logger.NewLogger())
		router := setupTicketRouter(handler, auth.NewUserIdentity(7, "Jane", auth.RoleUser))

		body := `{"awb_number":"AWB-1001","category":"Delivery","subcategory":"Delayed shipment"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tickets/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "AWB-1001", createUC.gotCmd.AWBNumber)
		assert.Equal(t, uint(7), createUC.gotCmd.Caller.UserID())

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})

	t.Run("conflict bubbles up as 409", func(t *testing.T) {
		createUC := &mockCreateTicketUC{err: errors.NewConflictError("A ticket already exists for this AWB number")}
		handler := NewTicketHandler(createUC, &mockListTicketsUC{}, &mockReadMessagesUC{}, &mockPostMessageUC{}, logger.NewLogger())
		router := setupTicketRouter(handler, auth.NewUserIdentity(7, "Jane", auth.RoleUser))

		body := `{"awb_number":"AWB-1001","category":"Delivery","subcategory":"Delayed shipment"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tickets/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTicketHandler_GetMessages(t *testing.T) {
	t.Run("passes caller and ticket id through", func(t *testing.T) {
		msg, err := ticket.NewMessage(7, auth.RoleUser, "hello", nil)
		require.NoError(t, err)

		readUC := &mockReadMessagesUC{result: []ticket.Message{msg}}
		handler := NewTicketHandler(&mockCreateTicketUC{}, &mockListTicketsUC{}, readUC, &mockPostMessageUC{}, logger.NewLogger())
		router := setupTicketRouter(handler, auth.NewUserIdentity(7, "Jane", auth.RoleUser))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tickets/100/messages", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(100), readUC.gotQuery.TicketID)
		assert.Equal(t, uint(7), readUC.gotQuery.Caller.UserID())
	})

	t.Run("invalid id parameter", func(t *testing.T) {
		handler := NewTicketHandler(&mockCreateTicketUC{}, &mockListTicketsUC{}, &mockReadMessagesUC{}, &mockPostMessageUC{}, logger.NewLogger())
		router := setupTicketRouter(handler, auth.NewUserIdentity(7, "Jane", auth.RoleUser))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tickets/abc/messages", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_PostMessage(t *testing.T) {
	t.Run("form message is forwarded", func(t *testing.T) {
		msg, err := ticket.NewMessage(7, auth.RoleUser, "hello", nil)
		require.NoError(t, err)

		postUC := &mockPostMessageUC{result: &msg}
		handler := NewTicketHandler(&mockCreateTicketUC{}, &mockListTicketsUC{}, &mockReadMessagesUC{}, postUC, logger.NewLogger())
		router := setupTicketRouter(handler, auth.NewUserIdentity(7, "Jane", auth.RoleUser))

		form := strings.NewReader("message=hello")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tickets/100/messages", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello", postUC.gotCmd.Text)
		assert.Equal(t, uint(100), postUC.gotCmd.TicketID)
	})

	t.Run("closed ticket surfaces as 400", func(t *testing.T) {
		postUC := &mockPostMessageUC{err: errors.NewBadRequestError("Ticket is closed")}
		handler := NewTicketHandler(&mockCreateTicketUC{}, &mockListTicketsUC{}, &mockReadMessagesUC{}, postUC, logger.NewLogger())
		router := setupTicketRouter(handler, auth.NewUserIdentity(7, "Jane", auth.RoleUser))

		form := strings.NewReader("message=hello")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tickets/100/messages", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Ticket is closed")
	})
}
