package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"layoutlens/internal/model"
)

var errNotJSON = errors.New("content type must be application/json")

// Request payloads use pointer fields so that a missing or null field can be
// told apart from a zero value. Every field is required.

type createProjectRequest struct {
	Name *string `json:"name"`
}

type pointPayload struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type wallPayload struct {
	ID        *string       `json:"id"`
	Start     *pointPayload `json:"start"`
	End       *pointPayload `json:"end"`
	Thickness *float64      `json:"thickness"`
}

type projectPayload struct {
	ID    *string        `json:"id"`
	Name  *string        `json:"name"`
	Walls *[]wallPayload `json:"walls"`
}

// Object keys must match exactly. encoding/json folds case when matching
// struct fields, so each payload routes its keys through decodeFields.

func (r *createProjectRequest) UnmarshalJSON(b []byte) error {
	return decodeFields(b, map[string]any{"name": &r.Name})
}

func (p *pointPayload) UnmarshalJSON(b []byte) error {
	return decodeFields(b, map[string]any{"x": &p.X, "y": &p.Y})
}

func (w *wallPayload) UnmarshalJSON(b []byte) error {
	return decodeFields(b, map[string]any{
		"id":        &w.ID,
		"start":     &w.Start,
		"end":       &w.End,
		"thickness": &w.Thickness,
	})
}

func (p *projectPayload) UnmarshalJSON(b []byte) error {
	return decodeFields(b, map[string]any{"id": &p.ID, "name": &p.Name, "walls": &p.Walls})
}

// decodeFields decodes a JSON object, assigning only keys that exactly match
// a name in fields. Other keys are ignored.
func decodeFields(b []byte, fields map[string]any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for key, dst := range fields {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

// decodeJSON unmarshals a JSON request body into out.
func decodeJSON(c *fiber.Ctx, out any) error {
	if !c.Is("json") {
		return errNotJSON
	}
	return json.Unmarshal(c.Body(), out)
}

func decodeCreateProject(c *fiber.Ctx) (string, error) {
	var req createProjectRequest
	if err := decodeJSON(c, &req); err != nil {
		return "", err
	}
	if req.Name == nil {
		return "", missingField("name")
	}
	return *req.Name, nil
}

func decodeProject(c *fiber.Ctx) (model.Project, error) {
	var req projectPayload
	if err := decodeJSON(c, &req); err != nil {
		return model.Project{}, err
	}
	return req.toModel()
}

func (p projectPayload) toModel() (model.Project, error) {
	switch {
	case p.ID == nil:
		return model.Project{}, missingField("id")
	case p.Name == nil:
		return model.Project{}, missingField("name")
	case p.Walls == nil:
		return model.Project{}, missingField("walls")
	}

	walls := make([]model.Wall, 0, len(*p.Walls))
	for i, w := range *p.Walls {
		wall, err := w.toModel()
		if err != nil {
			return model.Project{}, fmt.Errorf("walls[%d]: %w", i, err)
		}
		walls = append(walls, wall)
	}

	return model.Project{ID: *p.ID, Name: *p.Name, Walls: walls}, nil
}

func (w wallPayload) toModel() (model.Wall, error) {
	switch {
	case w.ID == nil:
		return model.Wall{}, missingField("id")
	case w.Thickness == nil:
		return model.Wall{}, missingField("thickness")
	}
	start, err := w.Start.toModel("start")
	if err != nil {
		return model.Wall{}, err
	}
	end, err := w.End.toModel("end")
	if err != nil {
		return model.Wall{}, err
	}
	return model.Wall{ID: *w.ID, Start: start, End: end, Thickness: *w.Thickness}, nil
}

func (p *pointPayload) toModel(field string) (model.Point, error) {
	switch {
	case p == nil:
		return model.Point{}, missingField(field)
	case p.X == nil:
		return model.Point{}, missingField(field + ".x")
	case p.Y == nil:
		return model.Point{}, missingField(field + ".y")
	}
	return model.Point{X: *p.X, Y: *p.Y}, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}
