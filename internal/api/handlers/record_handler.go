package handlers

import (
	"fmt"
	"log/slog"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"healthvault-api/internal/api/middleware"
	"healthvault-api/internal/domain"
	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/services"
)

// RecordHandler exposes the record lifecycle over HTTP. Create and update
// accept multipart bodies carrying text fields, a JSON-encoded vitals
// string, and up to two named file parts (labReport, prescription).
type RecordHandler struct {
	recordService services.RecordServiceContract
	logger        *slog.Logger
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(rs services.RecordServiceContract, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: rs,
		logger:        logger,
	}
}

// POST /api/records
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}

	req := dtos.CreateRecordRequest{
		Title:          c.FormValue("title"),
		MedicalHistory: c.FormValue("medicalHistory"),
		DoctorNotes:    c.FormValue("doctorNotes"),
		Vitals:         c.FormValue("vitals"),
	}

	record, err := h.recordService.Create(c.Context(), ownerID, req, uploadedFiles(c))
	if err != nil {
		h.logger.Warn("record create failed", "owner_id", ownerID, "error", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dtos.NewRecordDTO(record))
}

// GET /api/records
func (h *RecordHandler) List(c *fiber.Ctx) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}

	records, err := h.recordService.List(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dtos.NewRecordDTOs(records))
}

// GET /api/records/:id
func (h *RecordHandler) Get(c *fiber.Ctx) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}
	recordID, err := parseRecordID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := h.recordService.Get(c.Context(), recordID, ownerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dtos.NewRecordDTO(record))
}

// PUT /api/records/:id
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}
	recordID, err := parseRecordID(c)
	if err != nil {
		return respondError(c, err)
	}

	req, err := parseUpdateRequest(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := h.recordService.Update(c.Context(), recordID, ownerID, req, uploadedFiles(c))
	if err != nil {
		h.logger.Warn("record update failed", "record_id", recordID, "owner_id", ownerID, "error", err)
		return respondError(c, err)
	}

	return c.JSON(dtos.NewRecordDTO(record))
}

// DELETE /api/records/:id
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}
	recordID, err := parseRecordID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.recordService.Delete(c.Context(), recordID, ownerID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRecordRoutes mounts the record endpoints behind the auth
// middleware.
func RegisterRecordRoutes(app *fiber.App, h *RecordHandler, auth *middleware.AuthMiddleware) {
	group := app.Group("/api/records", auth.RequireAuth())
	group.Post("/", h.Create)
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}

func parseRecordID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid record id", domain.ErrValidation)
	}
	return id, nil
}

// uploadedFiles collects the named file parts a request may carry, at most
// one per slot. Missing parts simply leave the slot out of the map.
func uploadedFiles(c *fiber.Ctx) services.UploadedFiles {
	files := services.UploadedFiles{}
	for _, slot := range []string{services.FileSlotLabReport, services.FileSlotPrescription} {
		if fh, err := c.FormFile(slot); err == nil && fh != nil {
			files[slot] = fh
		}
	}
	return files
}

// parseUpdateRequest builds the partial-update payload. For multipart
// bodies a field is "provided" exactly when its key appears in the form, so
// absent and explicitly empty stay distinguishable; JSON bodies get that
// for free from the pointer fields.
func parseUpdateRequest(c *fiber.Ctx) (dtos.UpdateRecordRequest, error) {
	var req dtos.UpdateRecordRequest

	form, err := c.MultipartForm()
	if err != nil {
		if err := c.BodyParser(&req); err != nil {
			return req, fmt.Errorf("%w: could not parse request body", domain.ErrValidation)
		}
		return req, nil
	}

	req.Title = formValue(form, "title")
	req.MedicalHistory = formValue(form, "medicalHistory")
	req.DoctorNotes = formValue(form, "doctorNotes")
	req.Vitals = formValue(form, "vitals")
	return req, nil
}

func formValue(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}
