package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	productapp "github.com/muhammadheryan/inventory-hub/application/product"
	purchaserequestapp "github.com/muhammadheryan/inventory-hub/application/purchaserequest"
	stockapp "github.com/muhammadheryan/inventory-hub/application/stock"
	warehouseapp "github.com/muhammadheryan/inventory-hub/application/warehouse"
	webhookapp "github.com/muhammadheryan/inventory-hub/application/webhook"
	"github.com/muhammadheryan/inventory-hub/constant"
	"github.com/muhammadheryan/inventory-hub/model"
	"github.com/muhammadheryan/inventory-hub/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-hub/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp         productapp.ProductApp
	WarehouseApp       warehouseapp.WarehouseApp
	StockApp           stockapp.StockApp
	PurchaseRequestApp purchaserequestapp.PurchaseRequestApp
	WebhookApp         webhookapp.WebhookApp
}

func NewTransport(
	ProductApp productapp.ProductApp,
	WarehouseApp warehouseapp.WarehouseApp,
	StockApp stockapp.StockApp,
	PurchaseRequestApp purchaserequestapp.PurchaseRequestApp,
	WebhookApp webhookapp.WebhookApp,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp:         ProductApp,
		WarehouseApp:       WarehouseApp,
		StockApp:           StockApp,
		PurchaseRequestApp: PurchaseRequestApp,
		WebhookApp:         WebhookApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	mux.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	mux.HandleFunc("/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses", rh.CreateWarehouse).Methods(http.MethodPost)
	mux.HandleFunc("/warehouses/{id}", rh.GetWarehouse).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses/{id}", rh.UpdateWarehouse).Methods(http.MethodPut)
	mux.HandleFunc("/warehouses/{id}", rh.DeleteWarehouse).Methods(http.MethodDelete)

	mux.HandleFunc("/stocks", rh.ListStocks).Methods(http.MethodGet)
	mux.HandleFunc("/stocks", rh.CreateStock).Methods(http.MethodPost)
	mux.HandleFunc("/stocks/{id}", rh.GetStock).Methods(http.MethodGet)
	mux.HandleFunc("/stocks/{id}", rh.UpdateStock).Methods(http.MethodPut)
	mux.HandleFunc("/stocks/{id}", rh.DeleteStock).Methods(http.MethodDelete)

	mux.HandleFunc("/purchase/request", rh.ListPurchaseRequests).Methods(http.MethodGet)
	mux.HandleFunc("/purchase/request", rh.CreatePurchaseRequest).Methods(http.MethodPost)
	mux.HandleFunc("/purchase/request/{id}", rh.GetPurchaseRequest).Methods(http.MethodGet)
	mux.HandleFunc("/purchase/request/{id}", rh.UpdatePurchaseRequest).Methods(http.MethodPut)
	mux.HandleFunc("/purchase/request/{id}", rh.DeletePurchaseRequest).Methods(http.MethodDelete)

	mux.HandleFunc("/webhook/receive-stock", rh.ReceiveStock).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

func parseID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {object} transport.apiResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.ProductRequest true "Product"
// @Success 201 {object} transport.apiResponse
// @Failure 400 {object} transport.apiResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ProductRequest true "Product"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Product deleted successfully")
}

// ListWarehouses handler
// @Summary List warehouses
// @Tags Warehouses
// @Produce json
// @Success 200 {object} transport.apiResponse
// @Router /warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	res, err := s.WarehouseApp.ListWarehouses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetWarehouse handler
// @Summary Get warehouse by id
// @Tags Warehouses
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /warehouses/{id} [get]
func (s *RestHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WarehouseApp.GetWarehouse(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateWarehouse handler
// @Summary Create warehouse
// @Tags Warehouses
// @Accept json
// @Produce json
// @Param request body model.WarehouseRequest true "Warehouse"
// @Success 201 {object} transport.apiResponse
// @Failure 400 {object} transport.apiResponse
// @Router /warehouses [post]
func (s *RestHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req model.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.CreateWarehouse(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateWarehouse handler
// @Summary Update warehouse
// @Tags Warehouses
// @Accept json
// @Produce json
// @Param id path int true "Warehouse ID"
// @Param request body model.WarehouseRequest true "Warehouse"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /warehouses/{id} [put]
func (s *RestHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.UpdateWarehouse(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteWarehouse handler
// @Summary Delete warehouse
// @Tags Warehouses
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /warehouses/{id} [delete]
func (s *RestHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.WarehouseApp.DeleteWarehouse(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Warehouse deleted successfully")
}

// ListStocks handler
// @Summary List stocks
// @Tags Stocks
// @Produce json
// @Success 200 {object} transport.apiResponse
// @Router /stocks [get]
func (s *RestHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	res, err := s.StockApp.ListStocks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetStock handler
// @Summary Get stock by id
// @Tags Stocks
// @Produce json
// @Param id path int true "Stock ID"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /stocks/{id} [get]
func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.GetStock(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateStock handler
// @Summary Create stock
// @Tags Stocks
// @Accept json
// @Produce json
// @Param request body model.StockRequest true "Stock"
// @Success 201 {object} transport.apiResponse
// @Failure 400 {object} transport.apiResponse
// @Router /stocks [post]
func (s *RestHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req model.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.CreateStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateStock handler
// @Summary Update stock
// @Tags Stocks
// @Accept json
// @Produce json
// @Param id path int true "Stock ID"
// @Param request body model.StockRequest true "Stock"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /stocks/{id} [put]
func (s *RestHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.UpdateStock(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteStock handler
// @Summary Delete stock
// @Tags Stocks
// @Produce json
// @Param id path int true "Stock ID"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /stocks/{id} [delete]
func (s *RestHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.StockApp.DeleteStock(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Stock deleted successfully")
}

// ListPurchaseRequests handler
// @Summary List purchase requests with items
// @Tags PurchaseRequests
// @Produce json
// @Success 200 {object} transport.apiResponse
// @Router /purchase/request [get]
func (s *RestHandler) ListPurchaseRequests(w http.ResponseWriter, r *http.Request) {
	res, err := s.PurchaseRequestApp.ListPurchaseRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetPurchaseRequest handler
// @Summary Get purchase request with items
// @Tags PurchaseRequests
// @Produce json
// @Param id path int true "Purchase Request ID"
// @Success 200 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /purchase/request/{id} [get]
func (s *RestHandler) GetPurchaseRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PurchaseRequestApp.GetPurchaseRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreatePurchaseRequest handler
// @Summary Create purchase request with items
// @Tags PurchaseRequests
// @Accept json
// @Produce json
// @Param request body model.CreatePurchaseRequestRequest true "Purchase Request"
// @Success 201 {object} transport.apiResponse
// @Failure 400 {object} transport.apiResponse
// @Router /purchase/request [post]
func (s *RestHandler) CreatePurchaseRequest(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePurchaseRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PurchaseRequestApp.CreatePurchaseRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdatePurchaseRequest handler
// @Summary Update purchase request, diff items, sync to FOOM Hub on PENDING
// @Tags PurchaseRequests
// @Accept json
// @Produce json
// @Param id path int true "Purchase Request ID"
// @Param request body model.UpdatePurchaseRequestRequest true "Partial update"
// @Success 200 {object} transport.apiResponse
// @Failure 400 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Failure 502 {object} transport.apiResponse
// @Router /purchase/request/{id} [put]
func (s *RestHandler) UpdatePurchaseRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdatePurchaseRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PurchaseRequestApp.UpdatePurchaseRequest(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeletePurchaseRequest handler
// @Summary Delete purchase request (DRAFT only)
// @Tags PurchaseRequests
// @Produce json
// @Param id path int true "Purchase Request ID"
// @Success 200 {object} transport.apiResponse
// @Failure 400 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /purchase/request/{id} [delete]
func (s *RestHandler) DeletePurchaseRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.PurchaseRequestApp.DeletePurchaseRequest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Purchase request deleted successfully")
}

// ReceiveStock handler
// @Summary Receive stock delivery notification from FOOM Hub
// @Tags Webhook
// @Accept json
// @Produce json
// @Param request body model.WebhookStockRequest true "Delivery notification"
// @Success 200 {object} transport.apiResponse
// @Failure 400 {object} transport.apiResponse
// @Failure 404 {object} transport.apiResponse
// @Router /webhook/receive-stock [post]
func (s *RestHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	var req model.WebhookStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// details must be present as an array; an empty one is still valid.
	if req.Vendor == "" || req.Reference == "" || req.Details == nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WebhookApp.ReceiveStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	if res.AlreadyProcessed {
		writeJSON(w, http.StatusOK, apiResponse{
			Success:          true,
			Message:          "Stock already processed for this purchase request",
			AlreadyProcessed: true,
		})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Stock received and processed successfully",
		Data:    res,
	})
}
