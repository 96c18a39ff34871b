package usecase

import (
	"bytes"
	"cfr_notifier/internal/domain/entities"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"
	_ "time/tzdata"
	"unicode/utf8"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var ErrUnknownTemplate = errors.New("unknown notification template")

const (
	dateLayout        = "2006-01-02"
	defaultIssue      = "N/A"
	defaultTimeZone   = "America/Toronto"
	DefaultSMSMaxSize = 160
)

// BusinessProfile is the sender identity printed in every footer.
type BusinessProfile struct {
	Name    string
	Email   string
	Phone   string
	Website string
}

// RenderedMessage is produced fresh for every delivery; it is never stored.
type RenderedMessage struct {
	Subject   string
	EmailBody string
	SMSBody   string
}

var templatePrefixes = map[entities.NotificationType]string{
	entities.NotificationConfirmation: "confirmation",
	entities.NotificationStatusUpdate: "status_update",
	entities.NotificationReminder:     "reminder",
}

var subjectFormats = map[entities.NotificationType]string{
	entities.NotificationConfirmation: "Appointment Confirmation - %s",
	entities.NotificationStatusUpdate: "Repair Status Update - %s",
	entities.NotificationReminder:     "⏰ Appointment Reminder - %s",
}

type templateData struct {
	Greeting     string
	Customer     string
	Date         string
	Time         string
	Equipment    string
	Issue        string
	ServicePrice string
	TotalPrice   string
	Status       string
	Business     BusinessProfile
}

// RendererConfig holds the parameters needed to construct a TemplateRenderer.
type RendererConfig struct {
	Business BusinessProfile
	// Location drives date/time formatting and the greeting. Defaults to America/Toronto.
	Location *time.Location
	Clock    Clock
}

// TemplateRenderer turns an appointment into subject, email body and SMS
// body. Every template set shares the same footer.
type TemplateRenderer struct {
	templates *template.Template
	business  BusinessProfile
	location  *time.Location
	clock     Clock
}

func NewTemplateRenderer(cfg RendererConfig) (*TemplateRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("renderer: failed to parse templates: %w", err)
	}

	loc := cfg.Location
	if loc == nil {
		loc, err = time.LoadLocation(defaultTimeZone)
		if err != nil {
			return nil, fmt.Errorf("renderer: failed to load %s: %w", defaultTimeZone, err)
		}
	}

	clock := cfg.Clock
	if clock == nil {
		clock = RealClock{}
	}

	return &TemplateRenderer{
		templates: tmpl,
		business:  cfg.Business,
		location:  loc,
		clock:     clock,
	}, nil
}

// Render is a pure function of the appointment, the type and the clock.
func (r *TemplateRenderer) Render(appt entities.Appointment, notificationType entities.NotificationType) (RenderedMessage, error) {
	prefix, ok := templatePrefixes[notificationType]
	if !ok {
		return RenderedMessage{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, notificationType)
	}

	data := r.buildData(appt)

	emailBody, err := r.execute(prefix+"_email", data)
	if err != nil {
		return RenderedMessage{}, err
	}
	smsBody, err := r.execute(prefix+"_sms", data)
	if err != nil {
		return RenderedMessage{}, err
	}

	return RenderedMessage{
		Subject:   fmt.Sprintf(subjectFormats[notificationType], r.business.Name),
		EmailBody: emailBody,
		SMSBody:   smsBody,
	}, nil
}

func (r *TemplateRenderer) buildData(appt entities.Appointment) templateData {
	when := appt.Date
	if when.IsZero() {
		when = r.clock.Now()
	}
	when = when.In(r.location)

	issue := strings.TrimSpace(appt.Issue)
	if issue == "" {
		issue = defaultIssue
	}
	status := strings.TrimSpace(appt.Status)
	if status == "" {
		status = entities.DefaultAppointmentStatus
	}

	return templateData{
		Greeting:     greeting(r.clock.Now().In(r.location)),
		Customer:     strings.TrimSpace(appt.Customer),
		Date:         when.Format(dateLayout),
		Time:         formatClock(when),
		Equipment:    strings.TrimSpace(appt.Equipment),
		Issue:        issue,
		ServicePrice: formatMoney(appt.BasePrice),
		TotalPrice:   formatMoney(appt.Price),
		Status:       status,
		Business:     r.business,
	}
}

func (r *TemplateRenderer) execute(name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("renderer: failed to execute %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// formatClock renders en-CA style times, e.g. "10:00 a.m.".
func formatClock(t time.Time) string {
	suffix := "a.m."
	if t.Hour() >= 12 {
		suffix = "p.m."
	}
	return t.Format("03:04") + " " + suffix
}

func formatMoney(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", *v)
}

// SMSLength counts characters the way carriers do for plain text.
func SMSLength(body string) int {
	return utf8.RuneCountInString(body)
}

// TruncateSMS cuts body to at most limit characters without splitting runes.
func TruncateSMS(body string, limit int) string {
	if limit <= 0 || SMSLength(body) <= limit {
		return body
	}
	runes := []rune(body)
	return string(runes[:limit])
}
