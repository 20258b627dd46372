// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package server exposes schema parsing, planning and record generation over HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dacolabs/dcgen/internal/config"
	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/store"
	"github.com/dacolabs/dcgen/internal/translate"
)

// Planner builds a generation plan for a field list.
type Planner interface {
	Plan(ctx context.Context, fields []schema.Field, useCase string) (*plan.Plan, error)
}

// Options configures a Server.
type Options struct {
	Planner     Planner
	Store       store.Store
	Translators translate.Register

	// DefaultCount is used when a generate request omits count.
	DefaultCount int

	// Clock overrides the generator time source. Nil means time.Now.
	Clock func() time.Time

	// AccessLog receives one line per request. Nil disables access logging.
	AccessLog io.Writer
}

// Server is the dcgen HTTP API.
type Server struct {
	app          *fiber.App
	planner      Planner
	store        store.Store
	translators  translate.Register
	defaultCount int
	clock        func() time.Time
}

// New builds a Server with its routes registered.
func New(opts Options) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "dcgen",
		DisableStartupMessage: true,
		ErrorHandler:          handleError,
	})

	app.Use(recover.New())
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{Output: opts.AccessLog}))
	}

	s := &Server{
		app:          app,
		planner:      opts.Planner,
		store:        opts.Store,
		translators:  opts.Translators,
		defaultCount: opts.DefaultCount,
		clock:        opts.Clock,
	}
	if s.defaultCount <= 0 {
		s.defaultCount = config.DefaultCount
	}
	if s.store == nil {
		s.store = store.NewMemory(store.DefaultTTL)
	}
	if s.translators == nil {
		s.translators = translate.Register{}
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)

	api.Post("/schema/parse", s.handleParseSchema)
	api.Post("/schema/translate", s.handleTranslateSchema)

	api.Post("/plan", s.handleBuildPlan)
	api.Post("/payload/generate", s.handleGenerate)

	api.Get("/templates", s.handleListTemplates)
	api.Get("/templates/categories", s.handleTemplateCategories)
	api.Get("/templates/:id", s.handleGetTemplate)

	api.Get("/plans", s.handleListPlans)
	api.Get("/plans/:name", s.handleGetPlan)
	api.Put("/plans/:name", s.handleSavePlan)
	api.Delete("/plans/:name", s.handleDeletePlan)
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on the given port until the server is shut down.
func (s *Server) Start(port int) error {
	color.Green("dcgen API listening on http://localhost:%d", port)
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return err
	}
	if err := s.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing plan store: %v\n", err)
	}
	return nil
}
