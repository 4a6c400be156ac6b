package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

type chatRequest struct {
	History []contractx.Turn `json:"history"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid chat request body")
	}

	reply, err := s.chat.Chat(c.Request().Context(), req.History)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Response: reply})
}

func (s *Server) handleListOrders(c echo.Context) error {
	orders, err := s.ledger.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (s *Server) handleListRequests(c echo.Context) error {
	requests, err := s.ledger.ListServiceRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}
