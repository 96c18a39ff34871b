package carrier

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
)

var (
	ErrCarrierNotProvided = errors.New("carrier unknown or not selected")
	ErrUnsupportedCarrier = errors.New("unsupported carrier")
)

// UnknownCarrier is the literal the booking form stores when the customer
// did not pick a carrier.
const UnknownCarrier = "unknown"

// canadianGateways maps carrier keys to their email-to-SMS domains.
var canadianGateways = map[string]string{
	"rogers":    "pcs.rogers.com",
	"bell":      "txt.bell.ca",
	"telus":     "msg.telus.com",
	"fido":      "fido.ca",
	"virgin":    "vmobile.ca",
	"koodo":     "msg.koodomobile.com",
	"freedom":   "txt.freedommobile.ca",
	"chatr":     "pcs.rogers.com",
	"public":    "txt.publicmobile.ca",
	"sasktel":   "sms.sasktel.com",
	"videotron": "texto.videotron.ca",
}

var nonDigits = regexp.MustCompile(`\D`)

// Table is an immutable carrier -> gateway domain mapping.
type Table struct {
	gateways map[string]string
	keys     []string
}

// NewTable copies the given mapping, lower-casing every key.
func NewTable(gateways map[string]string) *Table {
	t := &Table{gateways: make(map[string]string, len(gateways))}
	for k, v := range gateways {
		key := normalize(k)
		if key == "" || v == "" {
			continue
		}
		t.gateways[key] = v
		t.keys = append(t.keys, key)
	}
	sort.Strings(t.keys)
	return t
}

// DefaultTable returns the Canadian carrier table.
func DefaultTable() *Table {
	return NewTable(canadianGateways)
}

// Lookup resolves a carrier key case-insensitively. Empty keys and the
// "unknown" literal never resolve.
func (t *Table) Lookup(carrierKey string) (string, bool) {
	key := normalize(carrierKey)
	if key == "" || key == UnknownCarrier {
		return "", false
	}
	domain, ok := t.gateways[key]
	return domain, ok
}

// Supported returns the sorted carrier keys.
func (t *Table) Supported() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// IsProvided reports whether a carrier value is usable at all.
func IsProvided(carrierKey string) bool {
	key := normalize(carrierKey)
	return key != "" && key != UnknownCarrier
}

// DigitsOnly strips every non-digit from a phone number.
func DigitsOnly(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// Address builds the gateway recipient, e.g. 4165550100@txt.bell.ca.
func Address(phone, gatewayDomain string) string {
	return DigitsOnly(phone) + "@" + gatewayDomain
}

func normalize(carrierKey string) string {
	return strings.ToLower(strings.TrimSpace(carrierKey))
}

// StaticResolver resolves carriers from a Table only.
type StaticResolver struct {
	table *Table
}

func NewStaticResolver(table *Table) *StaticResolver {
	return &StaticResolver{table: table}
}

// Resolve returns the gateway domain for the carrier. The phone number is
// unused; it is part of the signature so lookup-backed resolvers can share it.
func (r *StaticResolver) Resolve(_ context.Context, carrierKey, _ string) (string, error) {
	if !IsProvided(carrierKey) {
		return "", ErrCarrierNotProvided
	}
	domain, ok := r.table.Lookup(carrierKey)
	if !ok {
		return "", ErrUnsupportedCarrier
	}
	return domain, nil
}

func (r *StaticResolver) Supported() []string {
	return r.table.Supported()
}
