package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairworks/backoffice/internal/core/domain"
	"github.com/repairworks/backoffice/internal/core/ports"
)

// CatalogHandler exposes CRUD over the four catalog collections. Reads are
// available to any authenticated user; create and delete sit behind the
// admin gate in the router.
type CatalogHandler struct {
	clients     ports.ClientRepository
	contractors ports.ContractorRepository
	materials   ports.MaterialRepository
	objects     ports.WorkObjectRepository
}

func NewCatalogHandler(
	clients ports.ClientRepository,
	contractors ports.ContractorRepository,
	materials ports.MaterialRepository,
	objects ports.WorkObjectRepository,
) *CatalogHandler {
	return &CatalogHandler{
		clients:     clients,
		contractors: contractors,
		materials:   materials,
		objects:     objects,
	}
}

type createClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}

type createContractorRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}

type createMaterialRequest struct {
	Name string  `json:"name" validate:"required"`
	Cost float64 `json:"cost" validate:"required,gt=0"`
}

type createObjectRequest struct {
	Type    string  `json:"type" validate:"required"`
	Address string  `json:"address" validate:"required"`
	Area    float64 `json:"area" validate:"required,gt=0"`
}

// ListClients returns all clients.
//
// @Summary  List clients
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  domain.Client
// @Router   /api/clients [get]
func (h *CatalogHandler) ListClients(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// CreateClient adds a client to the catalog.
//
// @Summary  Create a client
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body  body      createClientRequest  true  "Client"
// @Success  201   {object}  domain.Client
// @Router   /api/clients [post]
func (h *CatalogHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client := &domain.Client{Name: req.Name, Contact: req.Contact}
	if err := h.clients.Insert(c.Request().Context(), client); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// DeleteClient removes a client. Existing orders keep their snapshots.
//
// @Summary  Delete a client
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Client id"
// @Success  200  {object}  successResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/clients/{id} [delete]
func (h *CatalogHandler) DeleteClient(c echo.Context) error {
	if err := h.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListContractors returns all contractors.
//
// @Summary  List contractors
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  domain.Contractor
// @Router   /api/contractors [get]
func (h *CatalogHandler) ListContractors(c echo.Context) error {
	contractors, err := h.contractors.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractors)
}

// CreateContractor adds a contractor to the catalog.
//
// @Summary  Create a contractor
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body  body      createContractorRequest  true  "Contractor"
// @Success  201   {object}  domain.Contractor
// @Router   /api/contractors [post]
func (h *CatalogHandler) CreateContractor(c echo.Context) error {
	var req createContractorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contractor := &domain.Contractor{Name: req.Name, Contact: req.Contact}
	if err := h.contractors.Insert(c.Request().Context(), contractor); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contractor)
}

// DeleteContractor removes a contractor.
//
// @Summary  Delete a contractor
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Contractor id"
// @Success  200  {object}  successResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/contractors/{id} [delete]
func (h *CatalogHandler) DeleteContractor(c echo.Context) error {
	if err := h.contractors.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListMaterials returns all materials.
//
// @Summary  List materials
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  domain.Material
// @Router   /api/materials [get]
func (h *CatalogHandler) ListMaterials(c echo.Context) error {
	materials, err := h.materials.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, materials)
}

// CreateMaterial adds a material to the catalog.
//
// @Summary  Create a material
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body  body      createMaterialRequest  true  "Material"
// @Success  201   {object}  domain.Material
// @Router   /api/materials [post]
func (h *CatalogHandler) CreateMaterial(c echo.Context) error {
	var req createMaterialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	material := &domain.Material{Name: req.Name, Cost: req.Cost}
	if err := h.materials.Insert(c.Request().Context(), material); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, material)
}

// DeleteMaterial removes a material. Orders priced with it are unaffected.
//
// @Summary  Delete a material
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Material id"
// @Success  200  {object}  successResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/materials/{id} [delete]
func (h *CatalogHandler) DeleteMaterial(c echo.Context) error {
	if err := h.materials.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListObjects returns all work objects.
//
// @Summary  List work objects
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  domain.WorkObject
// @Router   /api/objects [get]
func (h *CatalogHandler) ListObjects(c echo.Context) error {
	objects, err := h.objects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, objects)
}

// CreateObject adds a work object to the catalog.
//
// @Summary  Create a work object
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body  body      createObjectRequest  true  "Work object"
// @Success  201   {object}  domain.WorkObject
// @Router   /api/objects [post]
func (h *CatalogHandler) CreateObject(c echo.Context) error {
	var req createObjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	object := &domain.WorkObject{Type: req.Type, Address: req.Address, Area: req.Area}
	if err := h.objects.Insert(c.Request().Context(), object); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, object)
}

// DeleteObject removes a work object.
//
// @Summary  Delete a work object
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Work object id"
// @Success  200  {object}  successResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/objects/{id} [delete]
func (h *CatalogHandler) DeleteObject(c echo.Context) error {
	if err := h.objects.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
