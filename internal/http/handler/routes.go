package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"layoutlens/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only decode, delegate to the service and map outcomes to status codes.
func RegisterRoutes(app fiber.Router, projectSvc service.ProjectService) {
	app.Get("/health", Health())
	app.Get("/healthz", LivenessProbe())

	app.Post("/projects", CreateProject(projectSvc))
	app.Get("/projects/:id", GetProject(projectSvc))
	app.Put("/projects/:id", ReplaceProject(projectSvc))
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "LayoutLens API is running"})
	}
}

// LivenessProbe answers 200 with no body.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param body body createProjectRequest true "project name"
// @Success 201 {object} model.Project
// @Failure 400 {object} errorPayload
// @Router /projects [post]
func CreateProject(projectSvc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := decodeCreateProject(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		p, err := projectSvc.Create(c.UserContext(), name)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GetProject godoc
// @Summary Fetch a project
// @Tags projects
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} model.Project
// @Failure 404 {string} string "Project not found"
// @Router /projects/{id} [get]
func GetProject(projectSvc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := projectSvc.Get(c.UserContext(), projectID(c))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeProjectNotFound(c)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// ReplaceProject godoc
// @Summary Replace a project
// @Description The stored record is overwritten with the body as sent, including its id and name.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Param body body model.Project true "full project"
// @Success 200 {object} model.Project
// @Failure 400 {object} errorPayload
// @Failure 404 {string} string "Project not found"
// @Router /projects/{id} [put]
func ReplaceProject(projectSvc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		updated, err := decodeProject(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		p, err := projectSvc.Replace(c.UserContext(), projectID(c), updated)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeProjectNotFound(c)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// projectID copies the :id path parameter. Fiber reuses the underlying buffer
// after the handler returns and the value may end up as a store key.
func projectID(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}
