package previewapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitaehq/vitae/builder/preview"
	"github.com/vitaehq/vitae/builder/resume/resumesrv"
	"github.com/vitaehq/vitae/pkg/iam/auth"
	"github.com/vitaehq/vitae/pkg/kernel"
)

type Handlers struct {
	service  *resumesrv.Service
	renderer *preview.Renderer
	printer  preview.Printer
}

func NewHandlers(service *resumesrv.Service, renderer *preview.Renderer, printer preview.Printer) *Handlers {
	return &Handlers{
		service:  service,
		renderer: renderer,
		printer:  printer,
	}
}

// RegisterRoutes registers preview and print routes for saved resumes
func RegisterRoutes(app *fiber.App, handlers *Handlers, middleware *auth.TokenMiddleware) {
	resumes := app.Group("/api/resumes", middleware.Authenticate())

	resumes.Get("/:id/preview", handlers.Preview)
	resumes.Get("/:id/print", handlers.Print)
}

// Preview renders a saved resume as HTML
// GET /api/resumes/:id/preview
func (h *Handlers) Preview(c *fiber.Ctx) error {
	html, err := h.render(c)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Print renders a saved resume and returns it as a PDF download
// GET /api/resumes/:id/print
func (h *Handlers) Print(c *fiber.Ctx) error {
	html, err := h.render(c)
	if err != nil {
		return err
	}

	pdf, err := h.printer.Print(c.Context(), html)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}

func (h *Handlers) render(c *fiber.Ctx) (string, error) {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return "", fiber.NewError(fiber.StatusBadRequest, "Resume ID is required")
	}

	doc, err := h.service.GetResume(c.Context(), authCtx.UserID, resumeID)
	if err != nil {
		return "", err
	}

	return h.renderer.Render(doc)
}
