// Package http exposes the custody tracker over a REST API. Callers identify
// themselves with the X-Caller-Id and X-Caller-Name headers; the domain does
// the actual authorization against the contract's roles.
package http

import (
	"errors"
	"net/http"
	"time"

	"custody/internal/core/application/usecases/commands"
	"custody/internal/core/application/usecases/queries"
	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerCallerID   = "X-Caller-Id"
	headerCallerName = "X-Caller-Name"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addItemHandler              commands.AddItemCommandHandler
	initContractHandler         commands.InitContractCommandHandler
	signContractHandler         commands.SignContractCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	signShipmentHandler         commands.SignShipmentCommandHandler
	handOverShipmentHandler     commands.HandOverShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler
	receiveShipmentHandler      commands.ReceiveShipmentCommandHandler

	// Query handlers
	itemSnapshotHandler     queries.ItemSnapshotQueryHandler
	shipmentSnapshotHandler queries.ShipmentSnapshotQueryHandler
	courierHoldingHandler   queries.CourierHoldingQueryHandler
	countsHandler           queries.CountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addItemHandler commands.AddItemCommandHandler,
	initContractHandler commands.InitContractCommandHandler,
	signContractHandler commands.SignContractCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	signShipmentHandler commands.SignShipmentCommandHandler,
	handOverShipmentHandler commands.HandOverShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	receiveShipmentHandler commands.ReceiveShipmentCommandHandler,
	itemSnapshotHandler queries.ItemSnapshotQueryHandler,
	shipmentSnapshotHandler queries.ShipmentSnapshotQueryHandler,
	courierHoldingHandler queries.CourierHoldingQueryHandler,
	countsHandler queries.CountsQueryHandler,
) *Server {
	return &Server{
		addItemHandler:              addItemHandler,
		initContractHandler:         initContractHandler,
		signContractHandler:         signContractHandler,
		createShipmentHandler:       createShipmentHandler,
		signShipmentHandler:         signShipmentHandler,
		handOverShipmentHandler:     handOverShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		receiveShipmentHandler:      receiveShipmentHandler,
		itemSnapshotHandler:         itemSnapshotHandler,
		shipmentSnapshotHandler:     shipmentSnapshotHandler,
		courierHoldingHandler:       courierHoldingHandler,
		countsHandler:               countsHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/items", s.AddItem)
	v1.GET("/items/:index", s.GetItem)

	v1.POST("/contract/init", s.InitContract)
	v1.POST("/contract/sign", s.SignContract)

	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.POST("/shipments/:id/sign", s.SignShipment)
	v1.POST("/shipments/:id/hand-over", s.HandOverShipment)
	v1.POST("/shipments/:id/status", s.UpdateShipmentStatus)
	v1.POST("/shipments/:id/receive", s.ReceiveShipment)

	v1.GET("/couriers/:credential", s.GetCourierHolding)
	v1.GET("/stats", s.GetStats)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type addItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Volume      int    `json:"volume"`
	Price       int    `json:"price"`
}

type addItemResponse struct {
	ItemIndex int `json:"itemIndex"`
}

type initContractRequest struct {
	SupplierID   string    `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	MinETA       time.Time `json:"minEta"`
	MaxETA       time.Time `json:"maxEta"`
}

type createShipmentRequest struct {
	CourierID       string    `json:"courierId"`
	CourierName     string    `json:"courierName"`
	CurrentLocation string    `json:"currentLocation"`
	ItemIndices     []int     `json:"itemIndices"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ETD             time.Time `json:"etd"`
	ETA             time.Time `json:"eta"`
}

type createShipmentResponse struct {
	ShipmentID int `json:"shipmentId"`
}

type updateShipmentStatusRequest struct {
	NewLocation string `json:"newLocation"`
	StatusCode  int    `json:"statusCode"`
}

type itemResponse struct {
	ItemIndex       int    `json:"itemIndex"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Unit            string `json:"unit"`
	Volume          int    `json:"volume"`
	Price           int    `json:"price"`
	ShipmentID      int    `json:"shipmentId,omitempty"`
	CurrentLocation string `json:"currentLocation,omitempty"`
	ManagedBy       string `json:"managedBy,omitempty"`
}

type shipmentResponse struct {
	ShipmentID      int       `json:"shipmentId"`
	State           string    `json:"state"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	CurrentLocation string    `json:"currentLocation"`
	CourierName     string    `json:"courierName"`
	ETD             time.Time `json:"etd"`
	ETA             time.Time `json:"eta"`
	ATD             time.Time `json:"atd,omitzero"`
	ATA             time.Time `json:"ata,omitzero"`
}

type courierHoldingResponse struct {
	CourierName string `json:"courierName"`
	ItemIndices []int  `json:"itemIndices"`
}

type statsResponse struct {
	ItemCount     int `json:"itemCount"`
	ShipmentCount int `json:"shipmentCount"`
	CourierCount  int `json:"courierCount"`
}

// AddItem handles POST /api/v1/items.
func (s *Server) AddItem(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var req addItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddItemCommand(caller, req.Name, req.Description, req.Unit, req.Volume, req.Price)
	if err != nil {
		return jsonError(ctx, err)
	}

	index, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, addItemResponse{ItemIndex: index})
}

// InitContract handles POST /api/v1/contract/init.
func (s *Server) InitContract(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var req initContractRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplier, err := kernel.IdentityFromString(req.SupplierID, req.SupplierName)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewInitContractCommand(caller, supplier, req.MinETA, req.MaxETA)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.initContractHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SignContract handles POST /api/v1/contract/sign.
func (s *Server) SignContract(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewSignContractCommand(caller)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.signContractHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courier, err := kernel.IdentityFromString(req.CourierID, req.CourierName)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(caller, courier, req.CurrentLocation,
		req.ItemIndices, req.Origin, req.Destination, req.ETD, req.ETA)
	if err != nil {
		return jsonError(ctx, err)
	}

	id, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createShipmentResponse{ShipmentID: id})
}

// SignShipment handles POST /api/v1/shipments/:id/sign.
func (s *Server) SignShipment(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewSignShipmentCommand(caller, id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.signShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HandOverShipment handles POST /api/v1/shipments/:id/hand-over.
func (s *Server) HandOverShipment(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewHandOverShipmentCommand(caller, id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.handOverShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var req updateShipmentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(caller, id, req.NewLocation, req.StatusCode)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveShipment handles POST /api/v1/shipments/:id/receive.
func (s *Server) ReceiveShipment(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewReceiveShipmentCommand(caller, id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.receiveShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetItem handles GET /api/v1/items/:index.
func (s *Server) GetItem(ctx echo.Context) error {
	index, err := pathInt(ctx, "index")
	if err != nil {
		return badRequest(ctx, "Invalid item index")
	}

	query, err := queries.NewItemSnapshotQuery(index)
	if err != nil {
		return jsonError(ctx, err)
	}

	snapshot, err := s.itemSnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponse{
		ItemIndex:       snapshot.ItemIndex,
		Name:            snapshot.Name,
		Description:     snapshot.Description,
		Unit:            snapshot.Unit,
		Volume:          snapshot.Volume,
		Price:           snapshot.Price,
		ShipmentID:      snapshot.ShipmentID,
		CurrentLocation: snapshot.CurrentLocation,
		ManagedBy:       snapshot.ManagedBy,
	})
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := shipmentID(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	query, err := queries.NewShipmentSnapshotQuery(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	snapshot, err := s.shipmentSnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponse{
		ShipmentID:      snapshot.ShipmentID,
		State:           snapshot.State,
		Origin:          snapshot.Origin,
		Destination:     snapshot.Destination,
		CurrentLocation: snapshot.CurrentLocation,
		CourierName:     snapshot.CourierName,
		ETD:             snapshot.ETD,
		ETA:             snapshot.ETA,
		ATD:             snapshot.ATD,
		ATA:             snapshot.ATA,
	})
}

// GetCourierHolding handles GET /api/v1/couriers/:credential.
func (s *Server) GetCourierHolding(ctx echo.Context) error {
	courier, err := kernel.IdentityFromString(ctx.Param("credential"), ctx.QueryParam("name"))
	if err != nil {
		return jsonError(ctx, err)
	}

	query, err := queries.NewCourierHoldingQuery(courier)
	if err != nil {
		return jsonError(ctx, err)
	}

	holding, err := s.courierHoldingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierHoldingResponse{
		CourierName: holding.CourierName,
		ItemIndices: holding.ItemIndices,
	})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	counts, err := s.countsHandler.Handle(ctx.Request().Context(), queries.NewCountsQuery())
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statsResponse{
		ItemCount:     counts.ItemCount,
		ShipmentCount: counts.ShipmentCount,
		CourierCount:  counts.CourierCount,
	})
}

func callerIdentity(ctx echo.Context) (kernel.Identity, error) {
	credential := ctx.Request().Header.Get(headerCallerID)
	name := ctx.Request().Header.Get(headerCallerName)
	return kernel.IdentityFromString(credential, name)
}

func shipmentID(ctx echo.Context) (int, error) {
	return pathInt(ctx, "id")
}

func pathInt(ctx echo.Context, name string) (int, error) {
	var value int
	if err := echo.PathParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// jsonError maps domain errors onto HTTP status codes.
func jsonError(ctx echo.Context, err error) error {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidPhase),
		errors.Is(err, errs.ErrItemAlreadyAssigned),
		errors.Is(err, errs.ErrDestinationMismatch):
		status = http.StatusConflict
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
