package api_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/freightline/tms/pkg/tms_server/api"
	"github.com/freightline/tms/pkg/tms_server/check_call"
	"github.com/freightline/tms/pkg/tms_server/master_data"
	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/rate"
	"github.com/freightline/tms/pkg/tms_server/shipment"
	"github.com/freightline/tms/pkg/util"
	mock_check_call "github.com/freightline/tms/test/mock/tms_server/check_call"
	mock_master_data "github.com/freightline/tms/test/mock/tms_server/master_data"
	mock_rate "github.com/freightline/tms/test/mock/tms_server/rate"
	mock_shipment "github.com/freightline/tms/test/mock/tms_server/shipment"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var basePortNumber int32 = 9300

type APITestSuite struct {
	suite.Suite

	ctx            context.Context
	ctrl           *gomock.Controller
	shipmentCtrl   *mock_shipment.MockShipmentController
	rateCtrl       *mock_rate.MockRateController
	checkCallCtrl  *mock_check_call.MockCheckCallController
	masterDataCtrl *mock_master_data.MockMasterDataController

	localAddress string
	api          *api.API
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.shipmentCtrl = mock_shipment.NewMockShipmentController(s.ctrl)
	s.rateCtrl = mock_rate.NewMockRateController(s.ctrl)
	s.checkCallCtrl = mock_check_call.NewMockCheckCallController(s.ctrl)
	s.masterDataCtrl = mock_master_data.NewMockMasterDataController(s.ctrl)
	s.api, s.localAddress = s.startAPI()
}

func (s *APITestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.api.Close(s.ctx)
}

func (s *APITestSuite) startAPI(options ...api.APIOption) (*api.API, string) {
	portNum := atomic.AddInt32(&basePortNumber, 1)
	localAddress := fmt.Sprintf("localhost:%d", portNum)
	apiServer, err := api.NewAPIWithController(s.shipmentCtrl, s.rateCtrl, s.checkCallCtrl, s.masterDataCtrl, localAddress, options...)
	s.Require().NoError(err)
	go func() {
		apiServer.Run()
	}()
	time.Sleep(100 * time.Millisecond)
	return apiServer, localAddress
}

func (s *APITestSuite) do(method, path string, body any) (int, string) {
	endPoint := fmt.Sprintf("http://%s%s", s.localAddress, path)
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			reader = util.StructToJSONReader(body)
		}
	}
	httpRequest, _ := http.NewRequestWithContext(s.ctx, method, endPoint, reader)
	httpRequest.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, strings.TrimSpace(string(respBody))
}

func (s *APITestSuite) TestHealthCheck() {
	status, body := s.do(http.MethodGet, "/api/health", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(`{"ok":true}`, body)
}

func (s *APITestSuite) TestCreateShipment() {
	req := shipment.CreateShipmentRequest{
		CustomerID: "cus_1",
		Reference:  util.Ptr("PO-1001"),
		Stops: []shipment.CreateStopRequest{
			{Sequence: util.Ptr(1), Type: model.StopTypePickup, LocationID: "loc_1", WindowStart: util.Ptr(model.MustDateTime("2024-05-02T08:00:00Z"))},
			{Sequence: util.Ptr(2), Type: model.StopTypeDelivery, LocationID: "loc_2"},
		},
	}
	result := model.Shipment{
		ID:         "shp_1",
		CustomerID: "cus_1",
		Reference:  util.Ptr("PO-1001"),
		Status:     model.ShipmentStatusDraft,
		Stops: []model.Stop{
			{ID: "stp_1", ShipmentID: "shp_1", Sequence: 1, Type: model.StopTypePickup, LocationID: "loc_1", WindowStart: util.Ptr(model.MustDateTime("2024-05-02T08:00:00Z"))},
			{ID: "stp_2", ShipmentID: "shp_1", Sequence: 2, Type: model.StopTypeDelivery, LocationID: "loc_2"},
		},
	}

	// Test Normal Case.
	s.shipmentCtrl.EXPECT().Create(gomock.Any(), gomock.Any(), req).Return(result, nil)
	status, body := s.do(http.MethodPost, "/api/shipments", req)
	s.Require().Equal(http.StatusCreated, status)
	s.Assert().Equal(util.StructToJSON(result), body)
	// End of Test Normal Case.

	// Test malformed body.
	status, _ = s.do(http.MethodPost, "/api/shipments", `{"customer_id":`)
	s.Assert().Equal(http.StatusBadRequest, status)

	// Test validation error.
	s.shipmentCtrl.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Shipment{}, fmt.Errorf("customer_id: cannot be blank.%w", model.ErrInvalidParameter))
	status, _ = s.do(http.MethodPost, "/api/shipments", shipment.CreateShipmentRequest{})
	s.Assert().Equal(http.StatusBadRequest, status)

	// Test missing reference.
	s.shipmentCtrl.EXPECT().Create(gomock.Any(), gomock.Any(), req).Return(model.Shipment{}, model.ErrCustomerNotFound)
	status, body = s.do(http.MethodPost, "/api/shipments", req)
	s.Assert().Equal(http.StatusNotFound, status)
	s.Assert().Equal("customer not found", body)

	// Test storage failure.
	s.shipmentCtrl.EXPECT().Create(gomock.Any(), gomock.Any(), req).Return(model.Shipment{}, fmt.Errorf("connection reset%w", model.ErrStorage))
	status, _ = s.do(http.MethodPost, "/api/shipments", req)
	s.Assert().Equal(http.StatusInternalServerError, status)
}

func (s *APITestSuite) TestListAndGetShipment() {
	shipments := []model.Shipment{
		{ID: "shp_1", CustomerID: "cus_1", Status: model.ShipmentStatusPlanned, Stops: []model.Stop{}, Customer: &model.Customer{ID: "cus_1", Name: "Acme"}},
	}

	s.shipmentCtrl.EXPECT().List(gomock.Any()).Return(shipments, nil)
	status, body := s.do(http.MethodGet, "/api/shipments", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON(shipments), body)

	s.shipmentCtrl.EXPECT().Get(gomock.Any(), "shp_1").Return(shipments[0], nil)
	status, body = s.do(http.MethodGet, "/api/shipments/shp_1", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON(shipments[0]), body)

	s.shipmentCtrl.EXPECT().Get(gomock.Any(), "shp_404").Return(model.Shipment{}, model.ErrShipmentNotFound)
	status, _ = s.do(http.MethodGet, "/api/shipments/shp_404", nil)
	s.Assert().Equal(http.StatusNotFound, status)
}

func (s *APITestSuite) TestSetShipmentStatus() {
	result := model.Shipment{ID: "shp_1", Status: model.ShipmentStatusInTransit}

	s.shipmentCtrl.EXPECT().SetStatus(gomock.Any(), gomock.Any(), shipment.SetShipmentStatusRequest{ID: "shp_1", Status: model.ShipmentStatusInTransit}).Return(result, nil)
	status, body := s.do(http.MethodPost, "/api/shipments/shp_1/status", `{"status":"IN_TRANSIT"}`)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON(result), body)

	s.shipmentCtrl.EXPECT().SetStatus(gomock.Any(), gomock.Any(), shipment.SetShipmentStatusRequest{ID: "shp_1", Status: model.ShipmentStatusDraft}).Return(model.Shipment{}, model.ErrInvalidStatusTransition)
	status, _ = s.do(http.MethodPost, "/api/shipments/shp_1/status", `{"status":"DRAFT"}`)
	s.Assert().Equal(http.StatusConflict, status)
}

func (s *APITestSuite) TestAssignCarrier() {
	result := model.CarrierAssignment{
		ShipmentID: "shp_1",
		CarrierID:  "car_1",
		Rate: model.Rate{
			BaseRate:     model.NewDecimalFromInt(100),
			FuelPct:      model.NewDecimalFromInt(10),
			Accessorials: []model.Accessorial{{Code: "LIFTGATE", Qty: model.NewDecimalFromInt(1), Rate: model.NewDecimalFromInt(25)}},
			Currency:     "USD",
		},
	}

	s.rateCtrl.EXPECT().AssignCarrier(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, ts int64, req rate.AssignCarrierRequest) (model.CarrierAssignment, error) {
			s.Assert().Equal("shp_1", req.ShipmentID)
			s.Assert().Equal("car_1", req.CarrierID)
			s.Require().NotNil(req.BaseRate)
			s.Assert().Equal("100", req.BaseRate.String())
			s.Assert().Equal("10.5", req.FuelPct.String())
			s.Require().Len(req.Accessorials, 1)
			s.Assert().Equal("LIFTGATE", req.Accessorials[0].Code)
			s.Assert().Nil(req.Accessorials[0].Qty)
			s.Assert().Empty(req.Currency)
			return result, nil
		},
	)
	status, body := s.do(http.MethodPost, "/api/shipments/shp_1/assign-carrier", `{"carrier_id":"car_1","base_rate":100,"fuel_pct":"10.5","accessorials":[{"code":"LIFTGATE","rate":25}]}`)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON(result), body)
	s.Assert().Contains(body, `"base_rate":100`)

	s.rateCtrl.EXPECT().AssignCarrier(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.CarrierAssignment{}, model.ErrCarrierNotFound)
	status, _ = s.do(http.MethodPost, "/api/shipments/shp_1/assign-carrier", `{"carrier_id":"car_404"}`)
	s.Assert().Equal(http.StatusNotFound, status)

	status, _ = s.do(http.MethodPost, "/api/shipments/shp_1/assign-carrier", `{"carrier_id":"car_1","base_rate":"abc"}`)
	s.Assert().Equal(http.StatusBadRequest, status)
}

func (s *APITestSuite) TestCustomerRateAndRates() {
	customerRate := model.CustomerRate{ShipmentID: "shp_1", Rate: model.Rate{BaseRate: model.NewDecimalFromInt(1200), Accessorials: []model.Accessorial{}, Currency: "USD"}}
	s.rateCtrl.EXPECT().SetCustomerRate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, ts int64, req rate.SetCustomerRateRequest) (model.CustomerRate, error) {
			s.Assert().Equal("shp_1", req.ShipmentID)
			s.Assert().Equal("1200", req.BaseRate.String())
			return customerRate, nil
		},
	)
	status, body := s.do(http.MethodPost, "/api/shipments/shp_1/customer-rate", `{"base_rate":1200}`)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON(customerRate), body)

	rates := model.ShipmentRates{ShipmentID: "shp_1", CustomerRate: &customerRate}.Summarize()
	s.rateCtrl.EXPECT().GetRates(gomock.Any(), "shp_1").Return(rates, nil)
	status, body = s.do(http.MethodGet, "/api/shipments/shp_1/rates", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON(rates), body)
	s.Assert().NotContains(body, "margin")
}

func (s *APITestSuite) TestCheckCalls() {
	checkCall := model.CheckCall{ID: "chk_1", ShipmentID: "shp_1", Code: "ARRIVED_PICKUP", Lat: util.Ptr(39.7589), Ts: model.MustDateTime("2024-05-02T08:15:00Z")}

	s.checkCallCtrl.EXPECT().Add(gomock.Any(), gomock.Any(), check_call.AddCheckCallRequest{
		ShipmentID: "shp_1",
		Code:       "ARRIVED_PICKUP",
		Lat:        util.Ptr(39.7589),
		Ts:         util.Ptr(model.MustDateTime("2024-05-02T08:15:00Z")),
	}).Return(checkCall, nil)
	status, body := s.do(http.MethodPost, "/api/shipments/shp_1/check-calls", `{"code":"ARRIVED_PICKUP","lat":39.7589,"ts":"2024-05-02T08:15:00Z"}`)
	s.Require().Equal(http.StatusCreated, status)
	s.Assert().Equal(util.StructToJSON(checkCall), body)

	s.checkCallCtrl.EXPECT().List(gomock.Any(), "shp_1").Return([]model.CheckCall{checkCall}, nil)
	status, body = s.do(http.MethodGet, "/api/shipments/shp_1/check-calls", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON([]model.CheckCall{checkCall}), body)

	s.checkCallCtrl.EXPECT().List(gomock.Any(), "shp_404").Return(nil, model.ErrShipmentNotFound)
	status, _ = s.do(http.MethodGet, "/api/shipments/shp_404/check-calls", nil)
	s.Assert().Equal(http.StatusNotFound, status)
}

func (s *APITestSuite) TestMasterData() {
	customer := model.Customer{ID: "cus_1", Name: "Acme Manufacturing"}
	location := model.Location{ID: "loc_1", Name: "Acme Plant", City: util.Ptr("Dayton")}
	carrier := model.Carrier{ID: "car_1", Name: "Road Runner Freight", SCAC: util.Ptr("RRFT")}

	s.masterDataCtrl.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), master_data.CreateCustomerRequest{Name: "Acme Manufacturing"}).Return(customer, nil)
	status, body := s.do(http.MethodPost, "/api/customers", master_data.CreateCustomerRequest{Name: "Acme Manufacturing"})
	s.Require().Equal(http.StatusCreated, status)
	s.Assert().Equal(util.StructToJSON(customer), body)

	s.masterDataCtrl.EXPECT().CreateLocation(gomock.Any(), gomock.Any(), master_data.CreateLocationRequest{Name: "Acme Plant", City: util.Ptr("Dayton")}).Return(location, nil)
	status, body = s.do(http.MethodPost, "/api/locations", master_data.CreateLocationRequest{Name: "Acme Plant", City: util.Ptr("Dayton")})
	s.Require().Equal(http.StatusCreated, status)
	s.Assert().Equal(util.StructToJSON(location), body)

	s.masterDataCtrl.EXPECT().CreateCarrier(gomock.Any(), gomock.Any(), master_data.CreateCarrierRequest{Name: "Road Runner Freight", SCAC: util.Ptr("RRFT")}).Return(carrier, nil)
	status, body = s.do(http.MethodPost, "/api/carriers", master_data.CreateCarrierRequest{Name: "Road Runner Freight", SCAC: util.Ptr("RRFT")})
	s.Require().Equal(http.StatusCreated, status)
	s.Assert().Equal(util.StructToJSON(carrier), body)

	s.masterDataCtrl.EXPECT().ListCustomers(gomock.Any()).Return([]model.Customer{customer}, nil)
	status, body = s.do(http.MethodGet, "/api/customers", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON([]model.Customer{customer}), body)

	s.masterDataCtrl.EXPECT().ListLocations(gomock.Any()).Return([]model.Location{location}, nil)
	status, body = s.do(http.MethodGet, "/api/locations", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON([]model.Location{location}), body)

	s.masterDataCtrl.EXPECT().ListCarriers(gomock.Any()).Return([]model.Carrier{carrier}, nil)
	status, body = s.do(http.MethodGet, "/api/carriers", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Assert().Equal(util.StructToJSON([]model.Carrier{carrier}), body)
}

func (s *APITestSuite) TestJWTAuth() {
	s.api.Close(s.ctx)
	s.api, s.localAddress = s.startAPI(api.WithJWTSecret("dispatch-secret"))

	status, _ := s.do(http.MethodGet, "/api/health", nil)
	s.Assert().Equal(http.StatusOK, status)

	status, _ = s.do(http.MethodGet, "/api/shipments", nil)
	s.Assert().Equal(http.StatusUnauthorized, status)
}
