package api

import (
	"net/http"
	"time"

	"github.com/freightline/tms/pkg/tms_server/master_data"
	"github.com/goccy/go-json"
)

func (a *API) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req master_data.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.masterDataCtrl.CreateCustomer(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, "createCustomer", err)
		return
	}

	writeJSON(w, "createCustomer", http.StatusCreated, result)
}

func (a *API) listCustomers(w http.ResponseWriter, r *http.Request) {
	result, err := a.masterDataCtrl.ListCustomers(r.Context())
	if err != nil {
		writeError(w, "listCustomers", err)
		return
	}

	writeJSON(w, "listCustomers", http.StatusOK, result)
}

func (a *API) createLocation(w http.ResponseWriter, r *http.Request) {
	var req master_data.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.masterDataCtrl.CreateLocation(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, "createLocation", err)
		return
	}

	writeJSON(w, "createLocation", http.StatusCreated, result)
}

func (a *API) listLocations(w http.ResponseWriter, r *http.Request) {
	result, err := a.masterDataCtrl.ListLocations(r.Context())
	if err != nil {
		writeError(w, "listLocations", err)
		return
	}

	writeJSON(w, "listLocations", http.StatusOK, result)
}

func (a *API) createCarrier(w http.ResponseWriter, r *http.Request) {
	var req master_data.CreateCarrierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.masterDataCtrl.CreateCarrier(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, "createCarrier", err)
		return
	}

	writeJSON(w, "createCarrier", http.StatusCreated, result)
}

func (a *API) listCarriers(w http.ResponseWriter, r *http.Request) {
	result, err := a.masterDataCtrl.ListCarriers(r.Context())
	if err != nil {
		writeError(w, "listCarriers", err)
		return
	}

	writeJSON(w, "listCarriers", http.StatusOK, result)
}
