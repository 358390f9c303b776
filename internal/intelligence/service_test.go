package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pulse-uk/culture-pulse/internal/config"
	"github.com/pulse-uk/culture-pulse/internal/models"
	"github.com/pulse-uk/culture-pulse/internal/sources"
	"github.com/pulse-uk/culture-pulse/internal/synthesis"
)

// MockStorage is a mock implementation of the storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Store(filename string, data []byte) error {
	args := m.Called(filename, data)
	return args.Error(0)
}

func (m *MockStorage) Retrieve(filename string) ([]byte, error) {
	args := m.Called(filename)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorage) List(prefix string) ([]string, error) {
	args := m.Called(prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) Delete(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of the notification service
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendReport(report *synthesis.WeatherReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockNotificationService) SendAlert(alert *models.Alert) error {
	args := m.Called(alert)
	return args.Error(0)
}

// fakeCollector returns a canned snapshot partition without touching
// the network.
type fakeCollector struct {
	name    string
	enabled bool
	fail    bool
}

func (f *fakeCollector) GetName() string { return f.name }
func (f *fakeCollector) IsEnabled() bool { return f.enabled }

func (f *fakeCollector) Collect(ctx context.Context, snap *models.Snapshot) error {
	if f.fail {
		return assert.AnError
	}
	snap.Social = &models.SocialData{
		ByCommunity: map[string][]models.SocialPost{
			"CasualUK": {
				{Title: "Greggs festive bake returns", Score: 500, Comments: 5, Author: "snacker", URL: "https://reddit.com/1"},
			},
		},
	}
	return nil
}

func testService(collectors ...sources.Collector) (*Service, *MockStorage, *MockNotificationService) {
	cfg := &config.Config{VelocityHistorySize: 4}
	mockStorage := &MockStorage{}
	mockNotifications := &MockNotificationService{}

	service := NewService(cfg, mockStorage, mockNotifications)
	service.collectors = collectors
	return service, mockStorage, mockNotifications
}

func TestService_CollectSnapshot(t *testing.T) {
	service, _, _ := testService(
		&fakeCollector{name: "reddit", enabled: true},
		&fakeCollector{name: "youtube", enabled: false},
	)

	snap, errorCount := service.CollectSnapshot(context.Background())
	assert.Equal(t, 0, errorCount)
	assert.NotNil(t, snap.Social)
	assert.Nil(t, snap.Video)
	assert.Equal(t, 1, snap.RecordCount())
}

func TestService_CollectSnapshot_CountsErrors(t *testing.T) {
	service, _, _ := testService(
		&fakeCollector{name: "reddit", enabled: true, fail: true},
	)

	snap, errorCount := service.CollectSnapshot(context.Background())
	assert.Equal(t, 1, errorCount)
	assert.Nil(t, snap.Social)
}

func TestService_RunPulse(t *testing.T) {
	service, mockStorage, mockNotifications := testService(
		&fakeCollector{name: "reddit", enabled: true},
	)

	// Snapshot and report archives.
	mockStorage.On("Store", mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil).Twice()
	mockNotifications.On("SendReport", mock.AnythingOfType("*synthesis.WeatherReport")).Return(nil).Once()

	err := service.RunPulse()
	assert.NoError(t, err)

	mockStorage.AssertExpectations(t)
	mockNotifications.AssertExpectations(t)
}

func TestService_RunPulse_ReportContent(t *testing.T) {
	service, mockStorage, mockNotifications := testService(
		&fakeCollector{name: "reddit", enabled: true},
	)

	mockStorage.On("Store", mock.Anything, mock.Anything).Return(nil)

	var sent *synthesis.WeatherReport
	mockNotifications.On("SendReport", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(*synthesis.WeatherReport)
	}).Return(nil)

	err := service.RunPulse()
	assert.NoError(t, err)
	assert.NotNil(t, sent)
	assert.Equal(t, "UK Cultural Weather Report", sent.ReportType)
	// Score 500 on 5 comments is a viral candidate.
	assert.NotEmpty(t, sent.ViralWatch)
	assert.Equal(t, 1, sent.DataSources.TotalSourcesAnalyzed)
}

func TestService_RunPulse_MetricsUpdated(t *testing.T) {
	service, mockStorage, mockNotifications := testService(
		&fakeCollector{name: "reddit", enabled: true},
	)

	mockStorage.On("Store", mock.Anything, mock.Anything).Return(nil)
	mockNotifications.On("SendReport", mock.Anything).Return(nil)

	err := service.RunPulse()
	assert.NoError(t, err)

	metrics := service.GetMetrics()
	assert.Contains(t, metrics, `"total_records": 1`)
	assert.Contains(t, metrics, `"viral_candidates": 1`)
}

func TestService_RunVelocityCheck_NoAlertsWhenQuiet(t *testing.T) {
	service, _, mockNotifications := testService(
		&fakeCollector{name: "reddit", enabled: true},
	)

	err := service.RunVelocityCheck()
	assert.NoError(t, err)

	// Identical consecutive snapshots have zero velocity everywhere.
	err = service.RunVelocityCheck()
	assert.NoError(t, err)

	mockNotifications.AssertNotCalled(t, "SendAlert", mock.Anything)
}

func TestVelocityAlerts(t *testing.T) {
	temporal := &synthesis.TemporalAnalysis{
		SleepingGiants: []synthesis.SleepingGiant{
			{Topic: "greggs", Velocity: 3.0, Prediction: "Likely to trend within 24-48 hours"},
		},
	}
	insights := &synthesis.Insights{
		MemeticVelocityIndex: map[string]float64{"reddit_velocity": 1500},
	}

	alerts := velocityAlerts(temporal, insights)
	assert.Len(t, alerts, 2)
	assert.Equal(t, "velocity", alerts[0].Type)
	assert.Contains(t, alerts[0].Message, "greggs")
	assert.Equal(t, "High Reddit velocity", alerts[1].Title)

	quiet := velocityAlerts(&synthesis.TemporalAnalysis{}, &synthesis.Insights{})
	assert.Empty(t, quiet)
}

func TestService_ArchiveWithoutStorage(t *testing.T) {
	cfg := &config.Config{VelocityHistorySize: 4}
	mockNotifications := &MockNotificationService{}

	service := NewService(cfg, nil, mockNotifications)
	service.collectors = []sources.Collector{&fakeCollector{name: "reddit", enabled: true}}

	mockNotifications.On("SendReport", mock.Anything).Return(nil)

	// No storage configured: archiving is skipped, the run still works.
	err := service.RunPulse()
	assert.NoError(t, err)
	mockNotifications.AssertExpectations(t)
}
