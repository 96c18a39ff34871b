package request

import (
	"testing"

	"cfr_notifier/internal/domain/entities"
)

func TestSendConfirmationRequest_Resolve(t *testing.T) {
	r := SendConfirmationRequest{AppointmentID: " appt-1 ", Type: " statusUpdate"}
	if r.ResolveAppointmentID() != "appt-1" {
		t.Fatalf("unexpected id %q", r.ResolveAppointmentID())
	}
	if r.ResolveType() != entities.NotificationStatusUpdate {
		t.Fatalf("unexpected type %q", r.ResolveType())
	}
}

func TestClientLogRequest_Defaults(t *testing.T) {
	var r ClientLogRequest
	if r.ResolveAction() != "unknown action" || r.ResolveUser() != "anonymous" {
		t.Fatalf("unexpected defaults: %q %q", r.ResolveAction(), r.ResolveUser())
	}

	r = ClientLogRequest{Action: "opened booking form", User: "sam@example.com"}
	if r.ResolveAction() != "opened booking form" || r.ResolveUser() != "sam@example.com" {
		t.Fatalf("unexpected values: %+v", r)
	}
}
