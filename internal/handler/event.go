package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		OrganizerID: c.Query("organizer_id"),
		Location:    c.Query("location"),
	}
	if filter.OrganizerID != "" {
		if _, err := uuid.Parse(filter.OrganizerID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid organizer id"})
			return
		}
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.DeleteEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id, req.OrganizerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Attendance

func (h *Handler) AttendEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.AttendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attendance, err := h.attendanceService.Attend(
		c.Request.Context(), eventID, req.UserID, domain.AttendanceStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(attendance))
}

func (h *Handler) CancelAttendance(c *ginext.Context) {
	eventID, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.CancelAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.attendanceService.Cancel(c.Request.Context(), eventID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetUserAttendances(c *ginext.Context) {
	userID, ok := pathID(c, "user")
	if !ok {
		return
	}

	attendances, err := h.attendanceService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAttendanceResponses(attendances))
}

func (h *Handler) GetEventAttendees(c *ginext.Context) {
	eventID, ok := pathID(c, "event")
	if !ok {
		return
	}

	attendances, err := h.attendanceService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAttendanceResponses(attendances))
}

func toAttendanceResponses(attendances []*domain.Attendance) []dto.AttendanceResponse {
	resp := make([]dto.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		resp = append(resp, dto.ToAttendanceResponse(a))
	}
	return resp
}
