package notifications

import (
	"github.com/pulse-uk/culture-pulse/internal/models"
	"github.com/pulse-uk/culture-pulse/internal/synthesis"
)

// NotificationInterface defines the contract for notification services
type NotificationInterface interface {
	SendReport(report *synthesis.WeatherReport) error
	SendAlert(alert *models.Alert) error
}
