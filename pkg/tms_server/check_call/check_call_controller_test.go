package check_call_test

import (
	"context"
	"testing"
	"time"

	"github.com/freightline/tms/pkg/tms_server/check_call"
	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
	"github.com/freightline/tms/pkg/util"
	mock_storage "github.com/freightline/tms/test/mock/tms_server/storage"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CheckCallControllerTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	storage       *mock_storage.MockCheckCallStorage
	tx            *mock_storage.MockTx
	checkCallCtrl check_call.CheckCallController
}

func TestCheckCallController(t *testing.T) {
	suite.Run(t, new(CheckCallControllerTestSuite))
}

func (s *CheckCallControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockCheckCallStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.checkCallCtrl = check_call.NewCheckCallController(s.storage)
}

func (s *CheckCallControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CheckCallControllerTestSuite) TestAddCheckCall() {
	ts := time.Now().Unix()
	req := check_call.AddCheckCallRequest{
		ShipmentID: "shp_1",
		Code:       "ARRIVED_PICKUP",
		Notes:      util.Ptr("At the gate"),
		Lat:        util.Ptr(39.7589),
		Lng:        util.Ptr(-84.1916),
		Ts:         util.Ptr(model.MustDateTime("2024-05-02T08:15:00Z")),
	}

	expected := model.CheckCall{
		ShipmentID: "shp_1",
		Code:       "ARRIVED_PICKUP",
		Notes:      util.Ptr("At the gate"),
		Lat:        util.Ptr(39.7589),
		Lng:        util.Ptr(-84.1916),
		Ts:         model.MustDateTime("2024-05-02T08:15:00Z"),
		CreatedAt:  ts,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().AddCheckCall(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, checkCall model.CheckCall) error {
				expected.ID = checkCall.ID
				s.Assert().Equal(expected, checkCall)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.checkCallCtrl.Add(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().True(util.IsUUID(res.ID))
	s.Assert().Equal(expected, res)
}

func (s *CheckCallControllerTestSuite) TestAddCheckCallDefaultsTs() {
	ts := time.Now().Unix()

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().AddCheckCall(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.checkCallCtrl.Add(s.ctx, ts, check_call.AddCheckCallRequest{ShipmentID: "shp_1", Code: "DISPATCHED"})
	s.Require().NoError(err)
	s.Assert().Equal(ts, res.Ts.Unix())
	s.Assert().Nil(res.Notes)
	s.Assert().Nil(res.Lat)
}

func (s *CheckCallControllerTestSuite) TestAddCheckCallRepeatedly() {
	ts := time.Now().Unix()
	req := check_call.AddCheckCallRequest{ShipmentID: "shp_1", Code: "IN_TRANSIT"}

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		gomock.InOrder(
			s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
			s.storage.EXPECT().AddCheckCall(gomock.Any(), s.tx, gomock.Any()).Return(nil),
			s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
			s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		)
		res, err := s.checkCallCtrl.Add(s.ctx, ts, req)
		s.Require().NoError(err)
		ids[res.ID] = true
	}
	s.Assert().Len(ids, 3)
}

func (s *CheckCallControllerTestSuite) TestAddCheckCallWithInvalidRequest() {
	ts := time.Now().Unix()

	requests := []check_call.AddCheckCallRequest{
		{Code: "DISPATCHED"},
		{ShipmentID: "shp_1"},
		{ShipmentID: "shp_1", Code: "DISPATCHED", Lat: util.Ptr(90.5)},
		{ShipmentID: "shp_1", Code: "DISPATCHED", Lng: util.Ptr(-180.1)},
	}
	for _, req := range requests {
		_, err := s.checkCallCtrl.Add(s.ctx, ts, req)
		s.Assert().ErrorIs(err, model.ErrInvalidParameter)
	}
}

func (s *CheckCallControllerTestSuite) TestAddCheckCallWithMissingShipment() {
	ts := time.Now().Unix()

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().AddCheckCall(gomock.Any(), s.tx, gomock.Any()).Return(model.ErrShipmentNotFound),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.checkCallCtrl.Add(s.ctx, ts, check_call.AddCheckCallRequest{ShipmentID: "shp_404", Code: "DISPATCHED"})
	s.Assert().ErrorIs(err, model.ErrShipmentNotFound)
}

func (s *CheckCallControllerTestSuite) TestListCheckCalls() {
	checkCalls := []model.CheckCall{
		{ID: "chk_2", ShipmentID: "shp_1", Code: "DISPATCHED", Ts: model.MustDateTime("2024-05-02T07:00:00Z")},
		{ID: "chk_1", ShipmentID: "shp_1", Code: "ARRIVED_PICKUP", Ts: model.MustDateTime("2024-05-02T08:15:00Z")},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListCheckCalls(gomock.Any(), s.tx, "shp_1").Return(checkCalls, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.checkCallCtrl.List(s.ctx, "shp_1")
	s.Require().NoError(err)
	s.Assert().Equal(checkCalls, res)

	_, err = s.checkCallCtrl.List(s.ctx, "")
	s.Assert().ErrorIs(err, model.ErrInvalidParameter)
}
