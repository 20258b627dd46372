// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dacolabs/dcgen/internal/config"
	"github.com/dacolabs/dcgen/internal/generator"
	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/store"
	"github.com/dacolabs/dcgen/internal/templates"
	"github.com/dacolabs/dcgen/internal/version"
)

var errUnreadableSchema = errors.New("unreadable schema")

const defaultSchemaName = "schema"

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version.Version,
	})
}

type parseRequest struct {
	Schema string `json:"schema"`
}

func (s *Server) handleParseSchema(c *fiber.Ctx) error {
	var req parseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	fields, err := parseFields(req.Schema)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"fields":      fields,
		"table_data":  schema.TableRows(fields),
		"json_schema": schema.JSONSchemaDocument(fields),
	})
}

type translateRequest struct {
	Schema string `json:"schema"`
	Format string `json:"format"`
	Name   string `json:"name"`
}

func (s *Server) handleTranslateSchema(c *fiber.Ctx) error {
	var req translateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Format == "" {
		return badRequest(fmt.Sprintf("format is required (available: %s)", strings.Join(s.translators.Available(), ", ")))
	}
	translator, err := s.translators.Get(req.Format)
	if err != nil {
		return badRequest(err.Error())
	}
	fields, err := parseFields(req.Schema)
	if err != nil {
		return err
	}
	name := req.Name
	if name == "" {
		name = defaultSchemaName
	}
	out, err := translator.Translate(name, fields)
	if err != nil {
		return fmt.Errorf("translating to %s: %w", req.Format, err)
	}
	return c.JSON(fiber.Map{
		"format":    req.Format,
		"extension": translator.FileExtension(),
		"content":   string(out),
	})
}

type planRequest struct {
	Schema    string         `json:"schema"`
	Fields    []schema.Field `json:"fields"`
	UseCase   string         `json:"use_case"`
	Overrides map[string]any `json:"overrides"`
}

func (s *Server) handleBuildPlan(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	fields := req.Fields
	if len(fields) == 0 {
		var err error
		if fields, err = parseFields(req.Schema); err != nil {
			return err
		}
	}
	p, err := s.buildPlan(c, fields, req.UseCase)
	if err != nil {
		return err
	}
	if len(req.Overrides) > 0 {
		p = plan.ApplyOverrides(p, req.Overrides)
	}
	return c.JSON(p)
}

type generateRequest struct {
	YAMLSchema string         `json:"yaml_schema"`
	Plan       *plan.Plan     `json:"plan"`
	PlanName   string         `json:"plan_name"`
	UseCase    string         `json:"use_case"`
	Count      *int           `json:"count"`
	Seed       *int64         `json:"seed"`
	Overrides  map[string]any `json:"overrides"`
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}

	count := s.defaultCount
	if req.Count != nil {
		count = *req.Count
	}
	if count < 0 || count > config.MaxCount {
		return badRequest(fmt.Sprintf("count must be between 0 and %d, got %d", config.MaxCount, count))
	}

	p, err := s.resolvePlan(c, &req)
	if err != nil {
		return err
	}
	if len(req.Overrides) > 0 {
		p = plan.ApplyOverrides(p, req.Overrides)
	}

	var opts []generator.Option
	if req.Seed != nil {
		opts = append(opts, generator.WithSeed(*req.Seed))
	}
	if s.clock != nil {
		opts = append(opts, generator.WithClock(s.clock))
	}
	gen := generator.ForPlan(p, opts...)
	records, err := gen.GenerateN(p, count)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"records": records,
		"count":   len(records),
		"seed":    gen.Seed(),
	})
}

// resolvePlan picks the plan for a generate request: an inline plan, then a
// saved plan, then one built from the schema.
func (s *Server) resolvePlan(c *fiber.Ctx, req *generateRequest) (*plan.Plan, error) {
	switch {
	case req.Plan != nil:
		if err := req.Plan.Validate(); err != nil {
			return nil, badRequest(err.Error())
		}
		return req.Plan, nil
	case req.PlanName != "":
		if err := store.ValidateName(req.PlanName); err != nil {
			return nil, badRequest(err.Error())
		}
		return s.store.Load(c.UserContext(), req.PlanName)
	case strings.TrimSpace(req.YAMLSchema) != "":
		fields, err := parseFields(req.YAMLSchema)
		if err != nil {
			return nil, err
		}
		return s.buildPlan(c, fields, req.UseCase)
	default:
		return nil, badRequest("one of plan, plan_name or yaml_schema is required")
	}
}

func (s *Server) buildPlan(c *fiber.Ctx, fields []schema.Field, useCase string) (*plan.Plan, error) {
	if s.planner == nil {
		return plan.Heuristic(fields, useCase), nil
	}
	return s.planner.Plan(c.UserContext(), fields, useCase)
}

type templateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FieldsCount int    `json:"fields_count"`
}

func (s *Server) handleListTemplates(c *fiber.Ctx) error {
	category := c.Query("category")
	list := templates.All()
	if category != "" {
		list = templates.ByCategory(category)
	}
	out := make([]templateSummary, 0, len(list))
	for _, t := range list {
		out = append(out, templateSummary{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Category:    t.Category,
			FieldsCount: len(t.Fields),
		})
	}
	return c.JSON(fiber.Map{"templates": out})
}

func (s *Server) handleTemplateCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": templates.Categories()})
}

func (s *Server) handleGetTemplate(c *fiber.Ctx) error {
	id := c.Params("id")
	t, ok := templates.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("template %q not found", id))
	}
	yamlDoc, err := t.YAML()
	if err != nil {
		return fmt.Errorf("rendering template %s: %w", id, err)
	}
	return c.JSON(fiber.Map{
		"template":    t,
		"yaml":        string(yamlDoc),
		"sample_json": t.SampleEvent(),
	})
}

func (s *Server) handleListPlans(c *fiber.Ctx) error {
	names, err := s.store.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"plans": names})
}

func (s *Server) handleGetPlan(c *fiber.Ctx) error {
	name, err := planName(c)
	if err != nil {
		return err
	}
	p, err := s.store.Load(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (s *Server) handleSavePlan(c *fiber.Ctx) error {
	name, err := planName(c)
	if err != nil {
		return err
	}
	var p plan.Plan
	if err := c.BodyParser(&p); err != nil {
		return badRequest("invalid plan body")
	}
	if err := p.Validate(); err != nil {
		return badRequest(err.Error())
	}
	if err := s.store.Save(c.UserContext(), name, &p); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "name": name})
}

func (s *Server) handleDeletePlan(c *fiber.Ctx) error {
	name, err := planName(c)
	if err != nil {
		return err
	}
	if err := s.store.Delete(c.UserContext(), name); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func planName(c *fiber.Ctx) (string, error) {
	name := c.Params("name")
	if err := store.ValidateName(name); err != nil {
		return "", badRequest(err.Error())
	}
	return name, nil
}

func parseFields(text string) ([]schema.Field, error) {
	if strings.TrimSpace(text) == "" {
		return nil, badRequest("schema is required")
	}
	fields, err := schema.Parse([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUnreadableSchema, err)
	}
	return fields, nil
}
