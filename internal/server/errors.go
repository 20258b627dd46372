// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dacolabs/dcgen/internal/document"
	"github.com/dacolabs/dcgen/internal/generator"
	"github.com/dacolabs/dcgen/internal/llm"
	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/store"
)

// Error kinds reported in the "kind" member of error responses.
const (
	KindInvalidRequest  = "invalid_request"
	KindSchemaFormat    = "schema_format"
	KindPlanParse       = "plan_parse"
	KindGenerationValue = "generation_value"
	KindNotFound        = "not_found"
	KindUpstream        = "upstream"
	KindInternal        = "internal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// requestError marks a malformed or out-of-range request.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &requestError{msg: msg}
}

func classify(err error) (int, string) {
	var (
		reqErr   *requestError
		fiberErr *fiber.Error
		valueErr *generator.ValueError
		pathErr  *generator.PathConflictError
		apiErr   *llm.APIError
	)
	switch {
	case errors.As(err, &reqErr):
		return fiber.StatusBadRequest, KindInvalidRequest
	case errors.Is(err, schema.ErrFormat),
		errors.Is(err, document.ErrEmpty),
		errors.Is(err, document.ErrNotMapping),
		errors.Is(err, errUnreadableSchema):
		return fiber.StatusBadRequest, KindSchemaFormat
	case errors.Is(err, plan.ErrParse):
		return fiber.StatusUnprocessableEntity, KindPlanParse
	case errors.As(err, &valueErr), errors.As(err, &pathErr):
		return fiber.StatusUnprocessableEntity, KindGenerationValue
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound, KindNotFound
	case errors.As(err, &apiErr), errors.Is(err, llm.ErrEmptyReply):
		return fiber.StatusBadGateway, KindUpstream
	case errors.As(err, &fiberErr):
		if fiberErr.Code == fiber.StatusNotFound {
			return fiberErr.Code, KindNotFound
		}
		if fiberErr.Code < fiber.StatusInternalServerError {
			return fiberErr.Code, KindInvalidRequest
		}
		return fiberErr.Code, KindInternal
	default:
		return fiber.StatusInternalServerError, KindInternal
	}
}

func handleError(c *fiber.Ctx, err error) error {
	status, kind := classify(err)
	return c.Status(status).JSON(ErrorResponse{Error: err.Error(), Kind: kind})
}
