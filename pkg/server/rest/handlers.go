package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Alphinito/route-optimizer/pkg/datastructure"
	"github.com/Alphinito/route-optimizer/pkg/domain"
	"github.com/Alphinito/route-optimizer/pkg/grid"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	OptimizeDeliveryRoute(ctx context.Context, param datastructure.RouteOptimizationParam) (datastructure.OptimizedRoute, error)
}

type NavigationHandler struct {
	svc NavigationService
	m   *Metrics
}

func NavigationRouter(r *chi.Mux, svc NavigationService, m *Metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigation", func(r chi.Router) {
			r.Post("/route-optimization", handler.OptimizeRoute)
		})
	})
}

// RouteOptimizationRequest model info
//
//	@Description	request body for one delivery route optimization run
type RouteOptimizationRequest struct {
	Grid         GridRequest          `json:"grid"`
	Nodes        []NodeRequest        `json:"nodes" validate:"required,min=1,dive"`
	BlockedRoads []BlockedRoadRequest `json:"blocked_roads" validate:"dive"`
	StartPoi     string               `json:"start_poi" validate:"required"`
	Destinations []string             `json:"destinations" validate:"required,min=1"`
	Strategy     string               `json:"strategy"`
}

// GridRequest model info
//
//	@Description	grid dimensions, defaults applied when omitted
type GridRequest struct {
	Width    int32   `json:"width"`
	Height   int32   `json:"height"`
	CellSize float64 `json:"cell_size"`
}

// NodeRequest model info
//
//	@Description	one poi placed on a grid intersection, out-of-bounds coordinates are clamped into the grid
type NodeRequest struct {
	ID    string `json:"id" validate:"required"`
	GridX int32  `json:"grid_x"`
	GridY int32  `json:"grid_y"`
}

// BlockedRoadRequest model info
//
//	@Description	one road to block in both directions, endpoints as "grid_x_y" references
type BlockedRoadRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

func (s *RouteOptimizationRequest) Bind(r *http.Request) error {
	if len(s.Nodes) == 0 || len(s.Destinations) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// RouteOptimizationResponse model info
//
//	@Description	response body for one delivery route optimization run
type RouteOptimizationResponse struct {
	Path          []string `json:"path"`
	FullPath      []string `json:"full_path"`
	TotalDistance float64  `json:"total_distance"`
	Algorithm     string   `json:"algorithm"`
	Iterations    int      `json:"iterations"`
}

func RenderRouteOptimizationResponse(route datastructure.OptimizedRoute, width int32) *RouteOptimizationResponse {
	fullPath := make([]string, 0, len(route.FullPath))
	for _, id := range route.FullPath {
		fullPath = append(fullPath, grid.FormatIntersectionRef(id, width))
	}
	return &RouteOptimizationResponse{
		Path:          route.PoiPath,
		FullPath:      fullPath,
		TotalDistance: route.TotalDistance,
		Algorithm:     route.AlgorithmName,
		Iterations:    route.Iterations,
	}
}

// OptimizeRoute
//
//	@Summary		compute a delivery route over a grid road network. Nearest-neighbor construction plus optional 2-opt refinement
//	@Description	compute a delivery route over a grid road network. Nearest-neighbor construction plus optional 2-opt refinement
//	@Tags			navigations
//	@Param			body	body	RouteOptimizationRequest	true	"request body route optimization"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigation/route-optimization [post]
//	@Success		200	{object}	RouteOptimizationResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	data := &RouteOptimizationRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	param, err := buildOptimizationParam(data)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	route, err := h.svc.OptimizeDeliveryRoute(r.Context(), param)
	if err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}
	h.m.CountOptimization(route.AlgorithmName)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteOptimizationResponse(route, param.GridWidth))
}

func buildOptimizationParam(data *RouteOptimizationRequest) (datastructure.RouteOptimizationParam, error) {
	pois := make([]datastructure.DeliveryPoint, 0, len(data.Nodes))
	for _, node := range data.Nodes {
		pois = append(pois, datastructure.DeliveryPoint{
			ID:    node.ID,
			GridX: node.GridX,
			GridY: node.GridY,
		})
	}

	blockedRoads := make([]datastructure.BlockedRoadParam, 0, len(data.BlockedRoads))
	for _, blocked := range data.BlockedRoads {
		fromX, fromY, err := grid.ParseIntersectionRef(blocked.From)
		if err != nil {
			return datastructure.RouteOptimizationParam{}, err
		}
		toX, toY, err := grid.ParseIntersectionRef(blocked.To)
		if err != nil {
			return datastructure.RouteOptimizationParam{}, err
		}
		blockedRoads = append(blockedRoads, datastructure.BlockedRoadParam{
			FromX: fromX, FromY: fromY,
			ToX: toX, ToY: toY,
		})
	}

	width, height, cellSize := data.Grid.Width, data.Grid.Height, data.Grid.CellSize
	if width == 0 {
		width = 15
	}
	if height == 0 {
		height = 12
	}
	if cellSize == 0 {
		cellSize = 50
	}

	return datastructure.RouteOptimizationParam{
		GridWidth:    width,
		GridHeight:   height,
		CellSize:     cellSize,
		Pois:         pois,
		BlockedRoads: blockedRoads,
		StartPoi:     data.StartPoi,
		Destinations: data.Destinations,
		Strategy:     data.Strategy,
	}, nil
}

// ErrResponse model info
//
//	@Description	model for error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, validations []error) render.Renderer {
	msgs := make([]string, 0, len(validations))
	for _, v := range validations {
		msgs = append(msgs, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  msgs,
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

// ErrDomain maps the optimizer's error taxonomy onto http statuses. Bad
// inputs are the client's fault, an unreachable poi is a valid request the
// grid cannot satisfy, anything else is a 500.
func ErrDomain(err error) render.Renderer {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		return ErrInternalServerErrorRend(errors.New(domain.MessageInternalServerError))
	}

	switch domainErr.Code() {
	case domain.ErrInvalidDimension, domain.ErrUnmappedPoi, domain.ErrUnknownStrategy,
		domain.ErrEmptyDestinations, domain.ErrBadParamInput:
		return ErrInvalidRequest(err)
	case domain.ErrUnreachable:
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusUnprocessableEntity,
			StatusText:     "Route not satisfiable.",
			ErrorText:      err.Error(),
		}
	default:
		return ErrInternalServerErrorRend(errors.New(domain.MessageInternalServerError))
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
