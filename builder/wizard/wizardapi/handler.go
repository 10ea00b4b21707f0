package wizardapi

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vitaehq/vitae/builder/preview"
	"github.com/vitaehq/vitae/builder/wizard/wizardsrv"
	"github.com/vitaehq/vitae/pkg/iam/auth"
	"github.com/vitaehq/vitae/pkg/kernel"
)

type Handlers struct {
	service  *wizardsrv.Service
	renderer *preview.Renderer
}

func NewHandlers(service *wizardsrv.Service, renderer *preview.Renderer) *Handlers {
	return &Handlers{
		service:  service,
		renderer: renderer,
	}
}

// RegisterRoutes registers wizard session routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, middleware *auth.TokenMiddleware) {
	api := app.Group("/api/wizard", middleware.Authenticate())

	api.Post("/", handlers.Start)
	api.Get("/:sid", handlers.Get)
	api.Post("/:sid/next", handlers.Next)
	api.Post("/:sid/back", handlers.Back)
	api.Put("/:sid/sections/:name", handlers.UpdateSection)
	api.Post("/:sid/sections/:name/entries", handlers.AddEntry)
	api.Put("/:sid/sections/:name/entries/:index", handlers.EditEntry)
	api.Delete("/:sid/sections/:name/entries/:index", handlers.DeleteEntry)
	api.Delete("/:sid/skills/:entryId", handlers.RemoveSkill)
	api.Get("/:sid/preview", handlers.Preview)
	api.Post("/:sid/save", handlers.Save)
	api.Delete("/:sid", handlers.Cancel)
}

type startRequest struct {
	ResumeID kernel.ResumeID `json:"resume_id"`
}

// Start opens a wizard session
// POST /api/wizard
func (h *Handlers) Start(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	var req startRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	session, err := h.service.Start(c.Context(), authCtx.UserID, req.ResumeID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// Get returns the current session state
// GET /api/wizard/:sid
func (h *Handlers) Get(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	session, err := h.service.Get(c.Context(), authCtx.UserID, sid)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Next advances to the next step
// POST /api/wizard/:sid/next
func (h *Handlers) Next(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	session, err := h.service.Next(c.Context(), authCtx.UserID, sid)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Back returns to the previous step
// POST /api/wizard/:sid/back
func (h *Handlers) Back(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	session, err := h.service.Back(c.Context(), authCtx.UserID, sid)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// UpdateSection replaces one draft section wholesale
// PUT /api/wizard/:sid/sections/:name
func (h *Handlers) UpdateSection(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	session, err := h.service.UpdateSection(
		c.Context(), authCtx.UserID, sid,
		c.Params("name"), json.RawMessage(c.Body()),
	)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// AddEntry appends a section entry
// POST /api/wizard/:sid/sections/:name/entries
func (h *Handlers) AddEntry(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	session, err := h.service.AddEntry(
		c.Context(), authCtx.UserID, sid,
		c.Params("name"), json.RawMessage(c.Body()),
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// EditEntry replaces a section entry in place
// PUT /api/wizard/:sid/sections/:name/entries/:index
func (h *Handlers) EditEntry(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid entry index")
	}

	session, err := h.service.EditEntry(
		c.Context(), authCtx.UserID, sid,
		c.Params("name"), index, json.RawMessage(c.Body()),
	)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// DeleteEntry removes a section entry by position
// DELETE /api/wizard/:sid/sections/:name/entries/:index
func (h *Handlers) DeleteEntry(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid entry index")
	}

	session, err := h.service.DeleteEntry(
		c.Context(), authCtx.UserID, sid,
		c.Params("name"), index,
	)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// RemoveSkill removes a skill by identifier
// DELETE /api/wizard/:sid/skills/:entryId
func (h *Handlers) RemoveSkill(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	entryID, err := strconv.ParseInt(c.Params("entryId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid entry ID")
	}

	session, err := h.service.RemoveSkill(c.Context(), authCtx.UserID, sid, entryID)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Preview renders the draft as HTML
// GET /api/wizard/:sid/preview
func (h *Handlers) Preview(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	session, err := h.service.Get(c.Context(), authCtx.UserID, sid)
	if err != nil {
		return err
	}

	html, err := h.renderer.Render(session.Snapshot())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Save persists the draft and closes the session
// POST /api/wizard/:sid/save
func (h *Handlers) Save(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	doc, err := h.service.Save(c.Context(), authCtx.UserID, sid)
	if err != nil {
		return err
	}

	return c.JSON(doc)
}

// Cancel discards the draft
// DELETE /api/wizard/:sid
func (h *Handlers) Cancel(c *fiber.Ctx) error {
	authCtx, sid, err := sessionParams(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Context(), authCtx.UserID, sid); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func sessionParams(c *fiber.Ctx) (auth.AuthContext, kernel.SessionID, error) {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.AuthContext{}, "", fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	sid := kernel.SessionID(c.Params("sid"))
	if sid.IsEmpty() {
		return auth.AuthContext{}, "", fiber.NewError(fiber.StatusBadRequest, "Session ID is required")
	}

	return authCtx, sid, nil
}
