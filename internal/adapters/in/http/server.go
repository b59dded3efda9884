// Package http exposes the catalog and the per-session constructor over REST.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"burger/internal/adapters/out/auth"
	"burger/internal/core/application/session"
	"burger/internal/core/application/usecases/queries"
	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/generated/servers"
	"burger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// IngredientsQueryHandler lists the cached catalog.
type IngredientsQueryHandler interface {
	Handle(ctx context.Context, query queries.GetIngredientsQuery) ([]queries.GetIngredientsQueryResponse, error)
}

// PartFinder loads one catalog part by id. ports.PartRepository satisfies it.
type PartFinder interface {
	Get(ctx context.Context, id string) (*catalog.Part, error)
}

// Server implements servers.ServerInterface on top of the catalog use cases
// and the session registry.
type Server struct {
	getIngredientsHandler IngredientsQueryHandler
	parts                 PartFinder
	sessions              *session.Registry
	metrics               http.Handler
	logger                *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. metrics may be nil, in which case
// /metrics is not served.
func NewServer(
	getIngredientsHandler IngredientsQueryHandler,
	parts PartFinder,
	sessions *session.Registry,
	metrics http.Handler,
	logger *slog.Logger,
) *Server {
	return &Server{
		getIngredientsHandler: getIngredientsHandler,
		parts:                 parts,
		sessions:              sessions,
		metrics:               metrics,
		logger:                logger.With("component", "HTTPServer"),
	}
}

// NewEcho returns an echo instance with every route registered and the
// OpenAPI request validation in front of the API routes.
func NewEcho(s *Server) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	swagger.Servers = nil

	validate, err := openAPIValidator(swagger)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.Use(withToken, validate)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)
	return e, nil
}

// GetIngredients handles GET /api/v1/ingredients?type=bun|main|sauce.
func (s *Server) GetIngredients(c echo.Context, params servers.GetIngredientsParams) error {
	category := catalog.Unknown
	if params.Type != nil {
		parsed, err := catalog.ParseCategory(string(*params.Type))
		if err != nil {
			return badRequest(c, "Invalid ingredient type: "+string(*params.Type))
		}
		category = parsed
	}

	query, err := queries.NewGetIngredientsQuery(category)
	if err != nil {
		return badRequest(c, "Invalid ingredient type")
	}

	ingredients, err := s.getIngredientsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to list ingredients", "error", err)
		return c.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve ingredients",
		})
	}

	response := make([]servers.Ingredient, len(ingredients))
	for i, ingredient := range ingredients {
		response[i] = toIngredient(ingredient)
	}
	return c.JSON(http.StatusOK, response)
}

// GetConstructor handles GET /api/v1/constructor. An unknown session reads
// as empty and is not created.
func (s *Server) GetConstructor(c echo.Context, params servers.GetConstructorParams) error {
	sess, ok := s.sessions.Lookup(params.XSessionID)
	if !ok {
		return c.JSON(http.StatusOK, toConstructor(session.EmptySnapshot()))
	}
	return c.JSON(http.StatusOK, toConstructor(sess.Snapshot()))
}

// AddIngredient handles POST /api/v1/constructor/ingredients.
func (s *Server) AddIngredient(c echo.Context, params servers.AddIngredientParams) error {
	var req servers.AddIngredientJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	part, err := s.parts.Get(c.Request().Context(), req.IngredientId)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Ingredient not found",
			})
		}
		s.logger.ErrorContext(c.Request().Context(), "failed to load ingredient", "error", err)
		return c.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load ingredient",
		})
	}

	selected, err := s.sessions.Get(params.XSessionID).AddPart(part)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Failed to add ingredient: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, toSelectedIngredient(selected))
}

// RemoveIngredient handles DELETE /api/v1/constructor/ingredients/:instanceId.
func (s *Server) RemoveIngredient(
	c echo.Context,
	instanceId openapi_types.UUID,
	params servers.RemoveIngredientParams,
) error {
	instanceID, err := kernel.UUIDFromString(instanceId.String())
	if err != nil {
		return badRequest(c, "Invalid instance id")
	}

	sess, ok := s.sessions.Lookup(params.XSessionID)
	if !ok || !sess.RemovePart(instanceID) {
		return c.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Ingredient is not in the constructor",
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// MoveFilling handles POST /api/v1/constructor/moves.
func (s *Server) MoveFilling(c echo.Context, params servers.MoveFillingParams) error {
	var req servers.MoveFillingJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := s.sessions.Get(params.XSessionID).MoveFilling(req.From, req.To); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Invalid move: " + err.Error(),
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/orders. A started submission answers 202,
// an ignored one 200 with the reason, and a missing sign-in 401 with the
// login redirect.
func (s *Server) SubmitOrder(c echo.Context, params servers.SubmitOrderParams) error {
	var req servers.SubmitOrderJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	returnPath := "/"
	if req.ReturnPath != nil && *req.ReturnPath != "" {
		returnPath = *req.ReturnPath
	}

	ctx, redirect := auth.WithRedirect(c.Request().Context())
	sess := s.sessions.Get(params.XSessionID)
	result := sess.Submit(ctx, returnPath)

	switch result {
	case session.SubmitStarted:
		return c.JSON(http.StatusAccepted, servers.SubmitOrderResponse{
			Result:      servers.SubmitOrderResponseResult(result.String()),
			Constructor: toConstructor(sess.Snapshot()),
		})
	case session.SubmitLoginRequired:
		from, ok := redirect.Requested()
		if !ok {
			from = returnPath
		}
		return c.JSON(http.StatusUnauthorized, servers.LoginRedirect{Redirect: auth.LoginPath, From: from})
	default:
		return c.JSON(http.StatusOK, servers.SubmitOrderResponse{
			Result:      servers.SubmitOrderResponseResult(result.String()),
			Constructor: toConstructor(sess.Snapshot()),
		})
	}
}

// DismissOrder handles POST /api/v1/orders/dismiss. An unknown session has
// nothing to dismiss and reads as empty.
func (s *Server) DismissOrder(c echo.Context, params servers.DismissOrderParams) error {
	sess, ok := s.sessions.Lookup(params.XSessionID)
	if !ok {
		return c.JSON(http.StatusOK, toConstructor(session.EmptySnapshot()))
	}
	sess.Dismiss()
	return c.JSON(http.StatusOK, toConstructor(sess.Snapshot()))
}

// CloseSession handles DELETE /api/v1/session. Unknown sessions answer 204 too.
func (s *Server) CloseSession(c echo.Context, params servers.CloseSessionParams) error {
	s.sessions.Close(params.XSessionID)
	return c.NoContent(http.StatusNoContent)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
