package handler

import (
	"net/http"

	"github.com/stpnv0/Tourify/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) OpenWizard(c *ginext.Context) {
	var req dto.OpenWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.wizardService.Open(c.Request.Context(), req.OrganizerID, req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDraftSessionResponse(sess))
}

func (h *Handler) GetWizard(c *ginext.Context) {
	id, ok := pathID(c, "session")
	if !ok {
		return
	}

	sess, err := h.wizardService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(sess))
}

func (h *Handler) NextStep(c *ginext.Context) {
	id, ok := pathID(c, "session")
	if !ok {
		return
	}

	var req dto.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := req.Form()
	if err != nil {
		h.handleError(c, err)
		return
	}

	sess, err := h.wizardService.Next(c.Request.Context(), id, form)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(sess))
}

func (h *Handler) PrevStep(c *ginext.Context) {
	id, ok := pathID(c, "session")
	if !ok {
		return
	}

	sess, err := h.wizardService.Back(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(sess))
}

func (h *Handler) SubmitWizard(c *ginext.Context) {
	id, ok := pathID(c, "session")
	if !ok {
		return
	}

	var req dto.StepRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	form, err := req.SubmitForm()
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.wizardService.Submit(c.Request.Context(), id, form)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) CloseWizard(c *ginext.Context) {
	id, ok := pathID(c, "session")
	if !ok {
		return
	}

	if err := h.wizardService.Close(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
