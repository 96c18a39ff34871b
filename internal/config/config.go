// Package config defines the runtime configuration of the notifier.
// It is loaded once in main and treated as immutable afterwards; components
// receive only the sub-struct they need.
package config

import "time"

// Config is the top-level configuration.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server        ServerConfig
	SMTP          SMTPConfig
	AWS           AWSConfig
	Delivery      DeliveryConfig
	Business      BusinessConfig
	Firebase      FirebaseConfig
	Geocoding     GeocodingConfig
	CarrierLookup CarrierLookupConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"PORT" default:"3001" validate:"required,numeric"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"https://canadianfitnessrepair.com,https://www.canadianfitnessrepair.com,http://127.0.0.1:5500,http://localhost:5500,https://sohelfitter07.onrender.com,http://localhost:3000" validate:"dive,url"`
	ShutdownGrace  time.Duration `envconfig:"SHUTDOWN_GRACE" default:"10s"`
}

// SMTPConfig is the outbound mail relay. Email-to-SMS goes through it too.
type SMTPConfig struct {
	Host     string        `envconfig:"EMAIL_HOST" default:"smtp.gmail.com" validate:"required,hostname"`
	Port     int           `envconfig:"EMAIL_PORT" default:"587" validate:"min=1,max=65535"`
	User     string        `envconfig:"EMAIL_USER" validate:"required,email"`
	Password string        `envconfig:"EMAIL_PASS"`
	FromName string        `envconfig:"EMAIL_FROM_NAME" default:"Canadian Fitness Repair"`
	Timeout  time.Duration `envconfig:"EMAIL_TIMEOUT" default:"15s"`
}

type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"ca-central-1" validate:"required"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	// Empty in production; set for DynamoDB Local.
	DynamoDBEndpoint  string `envconfig:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	AppointmentsTable string `envconfig:"APPOINTMENTS_TABLE" default:"appointments" validate:"required"`
	LogsTable         string `envconfig:"LOGS_TABLE" default:"logs" validate:"required"`
}

type DeliveryConfig struct {
	MaxAttempts    int           `envconfig:"DELIVERY_MAX_ATTEMPTS" default:"3" validate:"min=1,max=10"`
	RetryDelay     time.Duration `envconfig:"DELIVERY_RETRY_DELAY" default:"5s"`
	SMSMaxLength   int           `envconfig:"SMS_MAX_LENGTH" default:"160" validate:"min=1"`
	ReminderWindow time.Duration `envconfig:"REMINDER_WINDOW" default:"24h"`
	TimeZone       string        `envconfig:"BUSINESS_TIMEZONE" default:"America/Toronto" validate:"required,timezone"`
}

type BusinessConfig struct {
	Name    string `envconfig:"BUSINESS_NAME" default:"Canadian Fitness Repair" validate:"required"`
	Email   string `envconfig:"BUSINESS_EMAIL" default:"canadianfitnessrepair@gmail.com" validate:"required,email"`
	Phone   string `envconfig:"BUSINESS_PHONE" default:"289-925-7239" validate:"required"`
	Website string `envconfig:"BUSINESS_WEBSITE" default:"https://canadianfitnessrepair.com" validate:"required,url"`
}

// FirebaseConfig is handed to the browser as-is by GET /api/firebase-config.
type FirebaseConfig struct {
	APIKey            string `envconfig:"FIREBASE_API_KEY" json:"apiKey"`
	AuthDomain        string `envconfig:"FIREBASE_AUTH_DOMAIN" json:"authDomain"`
	ProjectID         string `envconfig:"FIREBASE_PROJECT_ID" json:"projectId"`
	StorageBucket     string `envconfig:"FIREBASE_STORAGE_BUCKET" json:"storageBucket"`
	MessagingSenderID string `envconfig:"FIREBASE_MESSAGING_SENDER_ID" json:"messagingSenderId"`
	AppID             string `envconfig:"FIREBASE_APP_ID" json:"appId"`
	MeasurementID     string `envconfig:"FIREBASE_MEASUREMENT_ID" json:"measurementId"`
}

type GeocodingConfig struct {
	BaseURL   string        `envconfig:"GEOCODER_BASE_URL" default:"https://nominatim.openstreetmap.org" validate:"required,url"`
	Country   string        `envconfig:"GEOCODER_COUNTRY" default:"ca" validate:"required,len=2"`
	UserAgent string        `envconfig:"GEOCODER_USER_AGENT" default:"cfr-notifier/1.0 (canadianfitnessrepair@gmail.com)" validate:"required"`
	Limit     int           `envconfig:"GEOCODER_LIMIT" default:"5" validate:"min=1,max=50"`
	Timeout   time.Duration `envconfig:"GEOCODER_TIMEOUT" default:"10s"`
}

// CarrierLookupConfig enables Twilio Lookup for carriers missing from the
// static gateway table.
type CarrierLookupConfig struct {
	Enabled    bool   `envconfig:"CARRIER_LOOKUP_ENABLED" default:"false"`
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID" validate:"required_if=Enabled true"`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN" validate:"required_if=Enabled true"`
	BaseURL    string `envconfig:"TWILIO_LOOKUP_BASE_URL" default:"https://lookups.twilio.com" validate:"required,url"`
}

// IsLocal reports whether the process runs against local resources.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}
