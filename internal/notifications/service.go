package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/pulse-uk/culture-pulse/internal/config"
	"github.com/pulse-uk/culture-pulse/internal/models"
	"github.com/pulse-uk/culture-pulse/internal/synthesis"
)

// Service handles sending the cultural weather report via Teams and
// email.
type Service struct {
	config *config.Config
	client *resty.Client
}

// Ensure Service implements NotificationInterface
var _ NotificationInterface = (*Service)(nil)

// TeamsMessage represents a Microsoft Teams message
type TeamsMessage struct {
	Type     string         `json:"@type"`
	Context  string         `json:"@context"`
	Title    string         `json:"title"`
	Text     string         `json:"text"`
	Sections []TeamsSection `json:"sections,omitempty"`
}

type TeamsSection struct {
	ActivityTitle    string      `json:"activityTitle,omitempty"`
	ActivitySubtitle string      `json:"activitySubtitle,omitempty"`
	ActivityText     string      `json:"activityText,omitempty"`
	Facts            []TeamsFact `json:"facts,omitempty"`
	Markdown         bool        `json:"markdown,omitempty"`
}

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// SendReport sends the weather report via configured channels.
func (s *Service) SendReport(report *synthesis.WeatherReport) error {
	var errors []string

	if s.config.TeamsWebhookURL != "" {
		if err := s.sendToTeams(report); err != nil {
			logrus.Errorf("Failed to send Teams notification: %v", err)
			errors = append(errors, fmt.Sprintf("Teams: %v", err))
		} else {
			logrus.Info("Successfully sent report to Teams")
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(report); err != nil {
			logrus.Errorf("Failed to send email notification: %v", err)
			errors = append(errors, fmt.Sprintf("Email: %v", err))
		} else {
			logrus.Info("Successfully sent report via email")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func (s *Service) sendToTeams(report *synthesis.WeatherReport) error {
	message := s.buildTeamsMessage(report)

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(s.config.TeamsWebhookURL)

	if err != nil {
		return fmt.Errorf("failed to send Teams message: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("Teams webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) buildTeamsMessage(report *synthesis.WeatherReport) *TeamsMessage {
	message := &TeamsMessage{
		Type:    "MessageCard",
		Context: "https://schema.org/extensions",
		Title:   report.ReportType,
		Text: fmt.Sprintf("Cultural temperature: %s | Trend velocity: %s | %s",
			report.Summary.CulturalTemperature,
			report.Summary.TrendVelocity,
			report.Summary.RegionalBalance),
	}

	facts := []TeamsFact{
		{Name: "Generated", Value: report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")},
		{Name: "Sources Analyzed", Value: fmt.Sprintf("%d", report.DataSources.TotalSourcesAnalyzed)},
	}
	if len(report.Top3Trends) > 0 {
		facts = append(facts, TeamsFact{
			Name:  "Top Trends",
			Value: strings.Join(report.Top3Trends, ", "),
		})
	}
	message.Sections = append(message.Sections, TeamsSection{
		ActivityTitle: "Summary",
		Facts:         facts,
		Markdown:      true,
	})

	if len(report.ViralWatch) > 0 {
		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle: "Viral Watch",
			ActivityText:  strings.Join(report.ViralWatch, "\n\n"),
			Markdown:      true,
		})
	}

	var actions []string
	actions = append(actions, report.BrandRecommendations.DoNow...)
	for _, topic := range report.BrandRecommendations.PrepareFor {
		actions = append(actions, fmt.Sprintf("Prepare for '%s'", topic))
	}
	if len(actions) > 0 {
		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle: "Brand Actions",
			ActivityText:  strings.Join(actions, "\n\n"),
			Markdown:      true,
		})
	}

	return message
}

func (s *Service) sendEmail(report *synthesis.WeatherReport) error {
	subject := fmt.Sprintf("%s - %s", report.ReportType, report.GeneratedAt.Format("2 January 2006"))

	htmlBody, err := s.buildEmailHTML(report)
	if err != nil {
		return fmt.Errorf("failed to build email HTML: %w", err)
	}

	textBody := s.buildEmailText(report)

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) buildEmailHTML(report *synthesis.WeatherReport) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.ReportType}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #003366; color: white; padding: 20px; border-radius: 5px; }
        .summary { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .section { border-left: 4px solid #003366; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .meta { color: #666; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.ReportType}}</h1>
        <p>Generated on {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM UTC"}}</p>
    </div>

    <div class="summary">
        <h2>Summary</h2>
        <p><strong>Cultural Temperature:</strong> {{.Summary.CulturalTemperature}}</p>
        <p><strong>Trend Velocity:</strong> {{.Summary.TrendVelocity}}</p>
        <p><strong>Regional Balance:</strong> {{.Summary.RegionalBalance}}</p>
    </div>

    {{if .Top3Trends}}
    <div class="section">
        <h2>Top Trends</h2>
        <ul>{{range .Top3Trends}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}

    {{if .EmergingThemes}}
    <div class="section">
        <h2>Emerging Themes</h2>
        <ul>{{range .EmergingThemes}}<li>"{{.Theme}}" ({{.Classification}}, seen {{.Frequency}} times)</li>{{end}}</ul>
    </div>
    {{end}}

    {{if .ViralWatch}}
    <div class="section">
        <h2>Viral Watch</h2>
        <ul>{{range .ViralWatch}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}

    {{if .Forecast24h}}
    <div class="section">
        <h2>24 Hour Forecast</h2>
        <ul>{{range .Forecast24h}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}

    {{if .WeeklyOutlook}}
    <div class="section">
        <h2>Weekly Outlook</h2>
        <ul>{{range .WeeklyOutlook}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}

    {{if .DataSources.SampleReferences}}
    <div class="section">
        <h2>Sample References</h2>
        <ul>{{range .DataSources.SampleReferences}}<li class="meta">{{.}}</li>{{end}}</ul>
    </div>
    {{end}}

    <hr>
    <p><small>This report was generated automatically by Culture Pulse.</small></p>
</body>
</html>
`

	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, report); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Service) buildEmailText(report *synthesis.WeatherReport) string {
	var text strings.Builder

	text.WriteString(fmt.Sprintf("%s\n", report.ReportType))
	text.WriteString(fmt.Sprintf("Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	text.WriteString("SUMMARY\n")
	text.WriteString("=======\n")
	text.WriteString(fmt.Sprintf("Cultural Temperature: %s\n", report.Summary.CulturalTemperature))
	text.WriteString(fmt.Sprintf("Trend Velocity: %s\n", report.Summary.TrendVelocity))
	text.WriteString(fmt.Sprintf("Regional Balance: %s\n", report.Summary.RegionalBalance))

	if len(report.Top3Trends) > 0 {
		text.WriteString("\nTOP TRENDS\n")
		text.WriteString("==========\n")
		for i, trend := range report.Top3Trends {
			text.WriteString(fmt.Sprintf("%d. %s\n", i+1, trend))
		}
	}

	if len(report.EmergingThemes) > 0 {
		text.WriteString("\nEMERGING THEMES\n")
		text.WriteString("===============\n")
		for _, theme := range report.EmergingThemes {
			text.WriteString(fmt.Sprintf("- \"%s\" (%s, seen %d times)\n",
				theme.Theme, theme.Classification, theme.Frequency))
		}
	}

	if len(report.Forecast24h) > 0 {
		text.WriteString("\n24 HOUR FORECAST\n")
		text.WriteString("================\n")
		for _, forecast := range report.Forecast24h {
			text.WriteString(fmt.Sprintf("- %s\n", forecast))
		}
	}

	if len(report.WeeklyOutlook) > 0 {
		text.WriteString("\nWEEKLY OUTLOOK\n")
		text.WriteString("==============\n")
		for _, outlook := range report.WeeklyOutlook {
			text.WriteString(fmt.Sprintf("- %s\n", outlook))
		}
	}

	text.WriteString("\n---\nThis report was generated automatically by Culture Pulse.\n")

	return text.String()
}

// SendAlert sends an urgent alert to the Teams channel. Email is
// reserved for full reports.
func (s *Service) SendAlert(alert *models.Alert) error {
	if s.config.TeamsWebhookURL == "" {
		logrus.Infof("Alert (no channel configured): %s - %s", alert.Type, alert.Title)
		return nil
	}

	message := &TeamsMessage{
		Type:    "MessageCard",
		Context: "https://schema.org/extensions",
		Title:   alert.Title,
		Text:    alert.Message,
	}

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(s.config.TeamsWebhookURL)

	if err != nil {
		return fmt.Errorf("failed to send alert: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("Teams webhook returned status %d", resp.StatusCode())
	}

	return nil
}
