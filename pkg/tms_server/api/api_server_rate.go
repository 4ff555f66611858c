package api

import (
	"net/http"
	"time"

	"github.com/freightline/tms/pkg/tms_server/rate"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

func (a *API) assignCarrier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rate.AssignCarrierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ShipmentID = mux.Vars(r)["id"]

	result, err := a.rateCtrl.AssignCarrier(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, "assignCarrier", err)
		return
	}

	writeJSON(w, "assignCarrier", http.StatusOK, result)
}

func (a *API) setCustomerRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rate.SetCustomerRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ShipmentID = mux.Vars(r)["id"]

	result, err := a.rateCtrl.SetCustomerRate(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, "setCustomerRate", err)
		return
	}

	writeJSON(w, "setCustomerRate", http.StatusOK, result)
}

func (a *API) getRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := a.rateCtrl.GetRates(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "getRates", err)
		return
	}

	writeJSON(w, "getRates", http.StatusOK, result)
}
