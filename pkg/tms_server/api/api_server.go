package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/freightline/tms/pkg/tms_server/check_call"
	"github.com/freightline/tms/pkg/tms_server/master_data"
	"github.com/freightline/tms/pkg/tms_server/middleware"
	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/rate"
	"github.com/freightline/tms/pkg/tms_server/shipment"
	"github.com/freightline/tms/pkg/tms_server/storage/postgres"
	"github.com/freightline/tms/pkg/util"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
	Shipment     ShipmentConfig              `yaml:"shipment"`
	CORS         middleware.CORSConfig       `yaml:"cors"`
	RateLimit    middleware.RateLimitConfig  `yaml:"rate_limit"`
	Auth         AuthConfig                  `yaml:"auth"`
}

type ShipmentConfig struct {
	StrictStatusTransitions bool `yaml:"strict_status_transitions"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"` // Bearer tokens are required when set.
}

type API struct {
	shipmentCtrl   shipment.ShipmentController
	rateCtrl       rate.RateController
	checkCallCtrl  check_call.CheckCallController
	masterDataCtrl master_data.MasterDataController

	httpServer *http.Server
	closeFuncs []func()
}

type APIOption func(*apiOptions)

type apiOptions struct {
	cors      middleware.CORSConfig
	rateLimit middleware.RateLimitConfig
	jwtSecret string
}

func WithCORS(cfg middleware.CORSConfig) APIOption {
	return func(o *apiOptions) { o.cors = cfg }
}

func WithRateLimit(cfg middleware.RateLimitConfig) APIOption {
	return func(o *apiOptions) { o.rateLimit = cfg }
}

func WithJWTSecret(secret string) APIOption {
	return func(o *apiOptions) { o.jwtSecret = secret }
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	shipmentCtrl := shipment.NewShipmentController(storage, shipment.WithStrictStatusTransitions(cfg.Shipment.StrictStatusTransitions))
	rateCtrl := rate.NewRateController(storage)
	checkCallCtrl := check_call.NewCheckCallController(storage)
	masterDataCtrl := master_data.NewMasterDataController(storage)
	api, err := NewAPIWithController(
		shipmentCtrl,
		rateCtrl,
		checkCallCtrl,
		masterDataCtrl,
		cfg.LocalAddress,
		WithCORS(cfg.CORS),
		WithRateLimit(cfg.RateLimit),
		WithJWTSecret(cfg.Auth.JWTSecret),
	)
	if err != nil {
		storage.Close()
		return nil, err
	}
	api.closeFuncs = append(api.closeFuncs, storage.Close)

	return api, nil
}

func NewAPIWithController(
	shipmentCtrl shipment.ShipmentController,
	rateCtrl rate.RateController,
	checkCallCtrl check_call.CheckCallController,
	masterDataCtrl master_data.MasterDataController,
	localAddress string,
	options ...APIOption,
) (*API, error) {
	opts := apiOptions{}
	for _, option := range options {
		option(&opts)
	}

	apiServer := &API{
		shipmentCtrl:   shipmentCtrl,
		rateCtrl:       rateCtrl,
		checkCallCtrl:  checkCallCtrl,
		masterDataCtrl: masterDataCtrl,
	}

	r := mux.NewRouter()
	r.Use(middleware.Log, middleware.Trace, middleware.RateLimit(opts.rateLimit))
	r.HandleFunc("/api/health", apiServer.health).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	if opts.jwtSecret != "" {
		apiRouter.Use(middleware.NewJWTAuth(opts.jwtSecret).Authenticate)
	}
	apiRouter.HandleFunc("/shipments", apiServer.listShipments).Methods(http.MethodGet)
	apiRouter.HandleFunc("/shipments", apiServer.createShipment).Methods(http.MethodPost)
	apiRouter.HandleFunc("/shipments/{id}", apiServer.getShipment).Methods(http.MethodGet)
	apiRouter.HandleFunc("/shipments/{id}/status", apiServer.setShipmentStatus).Methods(http.MethodPost)
	apiRouter.HandleFunc("/shipments/{id}/assign-carrier", apiServer.assignCarrier).Methods(http.MethodPost)
	apiRouter.HandleFunc("/shipments/{id}/customer-rate", apiServer.setCustomerRate).Methods(http.MethodPost)
	apiRouter.HandleFunc("/shipments/{id}/rates", apiServer.getRates).Methods(http.MethodGet)
	apiRouter.HandleFunc("/shipments/{id}/check-calls", apiServer.addCheckCall).Methods(http.MethodPost)
	apiRouter.HandleFunc("/shipments/{id}/check-calls", apiServer.listCheckCalls).Methods(http.MethodGet)
	apiRouter.HandleFunc("/customers", apiServer.createCustomer).Methods(http.MethodPost)
	apiRouter.HandleFunc("/customers", apiServer.listCustomers).Methods(http.MethodGet)
	apiRouter.HandleFunc("/locations", apiServer.createLocation).Methods(http.MethodPost)
	apiRouter.HandleFunc("/locations", apiServer.listLocations).Methods(http.MethodGet)
	apiRouter.HandleFunc("/carriers", apiServer.createCarrier).Methods(http.MethodPost)
	apiRouter.HandleFunc("/carriers", apiServer.listCarriers).Methods(http.MethodGet)

	apiServer.httpServer = &http.Server{
		Addr:              localAddress,
		Handler:           middleware.CORS(opts.cors)(r),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	err := a.httpServer.Shutdown(ctx)
	for _, f := range a.closeFuncs {
		f()
	}
	return err
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "health", http.StatusOK, map[string]bool{"ok": true})
}

func (a *API) listShipments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := a.shipmentCtrl.List(ctx)
	if err != nil {
		writeError(w, "listShipments", err)
		return
	}

	writeJSON(w, "listShipments", http.StatusOK, result)
}

func (a *API) createShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shipment.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.shipmentCtrl.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, "createShipment", err)
		return
	}

	writeJSON(w, "createShipment", http.StatusCreated, result)
}

func (a *API) getShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shipmentID := mux.Vars(r)["id"]

	result, err := a.shipmentCtrl.Get(ctx, shipmentID)
	if err != nil {
		writeError(w, "getShipment", err)
		return
	}

	writeJSON(w, "getShipment", http.StatusOK, result)
}

func (a *API) setShipmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shipment.SetShipmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ID = mux.Vars(r)["id"]

	result, err := a.shipmentCtrl.SetStatus(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, "setShipmentStatus", err)
		return
	}

	writeJSON(w, "setShipmentStatus", http.StatusOK, result)
}

// writeError maps err to its HTTP status. Server errors are logged at error level, the rest at debug level.
func writeError(w http.ResponseWriter, handler string, err error) {
	status := model.ErrorToHttpStatus(err)
	if status/100 == 5 {
		logrus.Errorf("%s failed: %v", handler, err)
		http.Error(w, "Internal server error: "+err.Error(), status)
		return
	}
	logrus.Debugf("%s rejected: %v", handler, err)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, handler string, status int, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("%s failed to encode/write response: %v", handler, err)
	}
}
