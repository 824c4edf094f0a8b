package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/services/rides"
	"github.com/tawseela/tawseela/services/rides/mocks"
)

func newSearchUC(t *testing.T) (*gomock.Controller, *mocks.MockRideRepo, rides.RideUC) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRideRepo(ctrl)
	uc := NewRideUC(testConfig(), mockRepo, mocks.NewMockHistoryGW(ctrl))
	return ctrl, mockRepo, uc
}

func TestSearchRides_ExactTierShortCircuits(t *testing.T) {
	ctrl, mockRepo, uc := newSearchUC(t)
	defer ctrl.Finish()

	exact := []*models.Ride{{ID: "rec1", FromCity: "بغداد", ToCity: "البصرة"}}

	mockRepo.EXPECT().
		FindExactRoute(gomock.Any(), "بغداد", "البصرة").
		Return(exact, false, nil)
	// ListActive must not be called when the exact tier hits

	result, fromCache, err := uc.SearchRides(context.Background(), "بغداد", "البصرة")
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, exact, result)
}

func TestSearchRides_NormalizedTier(t *testing.T) {
	ctrl, mockRepo, uc := newSearchUC(t)
	defer ctrl.Finish()

	// stored with tatweel, searched without: the exact tier misses
	stored := []*models.Ride{
		{ID: "rec1", FromCity: "بغـداد", ToCity: "البصرة"},
		{ID: "rec2", FromCity: "أربيل", ToCity: "دهوك"},
	}

	mockRepo.EXPECT().
		FindExactRoute(gomock.Any(), "بغداد", "البصرة").
		Return(nil, false, nil)
	mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(stored, false, nil)

	result, _, err := uc.SearchRides(context.Background(), "بغداد", "البصرة")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "rec1", result[0].ID)
}

func TestSearchRides_SubstringTier(t *testing.T) {
	ctrl, mockRepo, uc := newSearchUC(t)
	defer ctrl.Finish()

	stored := []*models.Ride{
		{ID: "rec1", FromCity: "بغداد الجديدة", ToCity: "البصرة القديمة"},
		{ID: "rec2", FromCity: "الموصل", ToCity: "دهوك"},
	}

	mockRepo.EXPECT().
		FindExactRoute(gomock.Any(), "بغداد", "البصرة").
		Return(nil, false, nil)
	mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(stored, false, nil)

	result, _, err := uc.SearchRides(context.Background(), "بغداد", "البصرة")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "rec1", result[0].ID)
}

func TestSearchRides_NoMatchIsEmptyNotError(t *testing.T) {
	ctrl, mockRepo, uc := newSearchUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		FindExactRoute(gomock.Any(), "بغداد", "أربيل").
		Return(nil, false, nil)
	mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return([]*models.Ride{{ID: "rec1", FromCity: "النجف", ToCity: "كربلاء"}}, false, nil)

	result, _, err := uc.SearchRides(context.Background(), "بغداد", "أربيل")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSearchRides_BothCitiesMustMatch(t *testing.T) {
	ctrl, mockRepo, uc := newSearchUC(t)
	defer ctrl.Finish()

	stored := []*models.Ride{
		{ID: "rec1", FromCity: "بغداد", ToCity: "أربيل"}, // right origin, wrong destination
	}

	mockRepo.EXPECT().
		FindExactRoute(gomock.Any(), "بغداد", "البصرة").
		Return(nil, false, nil)
	mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(stored, false, nil)

	result, _, err := uc.SearchRides(context.Background(), "بغداد", "البصرة")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearchRides_MissingParams(t *testing.T) {
	ctrl, _, uc := newSearchUC(t)
	defer ctrl.Finish()

	var validation *rides.ValidationError

	_, _, err := uc.SearchRides(context.Background(), "", "البصرة")
	assert.ErrorAs(t, err, &validation)

	_, _, err = uc.SearchRides(context.Background(), "بغداد", "")
	assert.ErrorAs(t, err, &validation)
}

func TestSearchRides_ExactTierError(t *testing.T) {
	ctrl, mockRepo, uc := newSearchUC(t)
	defer ctrl.Finish()

	backendErr := errors.New("backend down")
	mockRepo.EXPECT().
		FindExactRoute(gomock.Any(), "بغداد", "البصرة").
		Return(nil, false, backendErr)

	_, _, err := uc.SearchRides(context.Background(), "بغداد", "البصرة")
	assert.ErrorIs(t, err, backendErr)
}

func TestSearchRides_StaleCacheFlagPropagates(t *testing.T) {
	ctrl, mockRepo, uc := newSearchUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		FindExactRoute(gomock.Any(), "بغداد", "البصرة").
		Return(nil, true, nil)
	mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return([]*models.Ride{{ID: "rec1", FromCity: "بغداد", ToCity: "البصرة"}}, true, nil)

	_, fromCache, err := uc.SearchRides(context.Background(), "بغداد", "البصرة")
	require.NoError(t, err)
	assert.True(t, fromCache)
}
