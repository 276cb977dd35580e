package handler

import (
	"github.com/gofiber/fiber/v2"

	"docuagent/internal/service"
)

// ListDocuments returns documents filtered by search and ordered by sort.
//
// @Summary  List documents
// @Tags     documents
// @Produce  json
// @Param    search query string false "Match against filename or summary"
// @Param    sort   query string false "date (default) or name"
// @Success  200 {object} service.DocumentListResult
// @Failure  400 {object} errorPayload
// @Failure  502 {object} errorPayload
// @Router   /documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := service.DocumentQuery{
			Search: c.Query("search"),
			Sort:   c.Query("sort", service.SortByDate),
		}
		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument returns one document with its risk lines.
//
// @Summary  Get document
// @Tags     documents
// @Produce  json
// @Param    id path string true "Document ID"
// @Success  200 {object} service.DocumentDetail
// @Failure  404 {object} errorPayload
// @Router   /documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// UploadDocument accepts multipart/form-data with field "file".
//
// @Summary  Upload a document for analysis
// @Tags     documents
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "PDF, DOCX, TXT, CSV, XLS or XLSX, at most 10 MB"
// @Success  201 {object} service.UploadOutcome
// @Failure  400 {object} errorPayload
// @Failure  413 {object} errorPayload
// @Failure  415 {object} errorPayload
// @Router   /upload [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", service.ErrFileRequired.Error())
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.Upload(c.UserContext(), service.UploadInput{
			Filename: fh.Filename,
			Size:     fh.Size,
			Content:  f,
		})
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Location(res.Location)
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// DeleteDocument removes a document.
//
// @Summary  Delete document
// @Tags     documents
// @Param    id path string true "Document ID"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
