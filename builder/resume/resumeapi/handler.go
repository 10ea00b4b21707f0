package resumeapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/builder/resume/resumesrv"
	"github.com/vitaehq/vitae/pkg/iam/auth"
	"github.com/vitaehq/vitae/pkg/kernel"
)

type Handlers struct {
	service *resumesrv.Service
}

func NewHandlers(service *resumesrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers resume CRUD routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, middleware *auth.TokenMiddleware) {
	resumes := app.Group("/api/resumes", middleware.Authenticate())

	resumes.Get("/", handlers.ListResumes)
	resumes.Post("/", handlers.CreateResume)
	resumes.Get("/:id", handlers.GetResume)
	resumes.Put("/:id", handlers.UpdateResume)
	resumes.Delete("/:id", handlers.DeleteResume)
}

// ListResumes lists the user's resume summaries
// GET /api/resumes?page=1&page_size=20
func (h *Handlers) ListResumes(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	req := resume.ListResumesRequest{
		UserID: authCtx.UserID,
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("page_size", 20),
		},
	}

	response, err := h.service.ListResumes(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// CreateResume creates a resume from a full document body
// POST /api/resumes
func (h *Handlers) CreateResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	var req resume.SaveResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	doc, err := h.service.CreateResume(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

// GetResume retrieves a full resume document
// GET /api/resumes/:id
func (h *Handlers) GetResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return fiber.NewError(fiber.StatusBadRequest, "Resume ID is required")
	}

	doc, err := h.service.GetResume(c.Context(), authCtx.UserID, resumeID)
	if err != nil {
		return err
	}

	return c.JSON(doc)
}

// UpdateResume replaces a resume's title and sections
// PUT /api/resumes/:id
func (h *Handlers) UpdateResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return fiber.NewError(fiber.StatusBadRequest, "Resume ID is required")
	}

	var req resume.SaveResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	doc, err := h.service.UpdateResume(c.Context(), authCtx.UserID, resumeID, req)
	if err != nil {
		return err
	}

	return c.JSON(doc)
}

// DeleteResume deletes a resume
// DELETE /api/resumes/:id
func (h *Handlers) DeleteResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return fiber.NewError(fiber.StatusBadRequest, "Resume ID is required")
	}

	if err := h.service.DeleteResume(c.Context(), authCtx.UserID, resumeID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
