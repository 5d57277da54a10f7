package handler

import (
	"net/http"

	"github.com/stpnv0/Tourify/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) UploadFile(c *ginext.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "multipart field \"file\" is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	obj, err := h.uploader.Upload(c.Request.Context(), fh.Filename, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, obj)
}

func (h *Handler) DeleteUpload(c *ginext.Context) {
	if err := h.uploader.Remove(c.Request.Context(), c.Param("key")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
