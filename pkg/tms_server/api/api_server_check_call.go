package api

import (
	"net/http"
	"time"

	"github.com/freightline/tms/pkg/tms_server/check_call"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

func (a *API) addCheckCall(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req check_call.AddCheckCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ShipmentID = mux.Vars(r)["id"]

	result, err := a.checkCallCtrl.Add(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, "addCheckCall", err)
		return
	}

	writeJSON(w, "addCheckCall", http.StatusCreated, result)
}

func (a *API) listCheckCalls(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := a.checkCallCtrl.List(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "listCheckCalls", err)
		return
	}

	writeJSON(w, "listCheckCalls", http.StatusOK, result)
}
