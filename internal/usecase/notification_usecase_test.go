package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cfr_notifier/internal/domain/carrier"
	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase/interfaces"
	mock_interfaces "cfr_notifier/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notificationFixture struct {
	uc       *NotificationUseCase
	repo     *mock_interfaces.MockIAppointmentRepository
	logs     *mock_interfaces.MockILogRepository
	sender   *mock_interfaces.MockIMailSender
	sleeps   *sleepRecorder
	metrics  *metricsRecorder
	resolver interfaces.ICarrierResolver
}

func newNotificationFixture(t *testing.T, resolver interfaces.ICarrierResolver) *notificationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &notificationFixture{
		repo:    mock_interfaces.NewMockIAppointmentRepository(ctrl),
		logs:    mock_interfaces.NewMockILogRepository(ctrl),
		sender:  mock_interfaces.NewMockIMailSender(ctrl),
		sleeps:  &sleepRecorder{},
		metrics: newMetricsRecorder(),
	}
	if resolver == nil {
		resolver = carrier.NewStaticResolver(carrier.DefaultTable())
	}
	f.resolver = resolver

	retrier := NewRetrier(3, 5*time.Second, WithSleepFunc(f.sleeps.sleep))
	f.uc = NewNotificationUseCase(NotificationDeps{
		Appointments: f.repo,
		Logs:         f.logs,
		Renderer:     newTestRenderer(t, testNow),
		Attempter:    NewDeliveryAttempter(f.sender, retrier, f.metrics),
		Carriers:     resolver,
		Metrics:      f.metrics,
		Clock:        fixedClock{now: testNow},
	})
	return f
}

func TestNotificationUseCase_SendConfirmation_Validation(t *testing.T) {
	t.Run("blank appointment id", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		_, err := f.uc.SendConfirmation(context.Background(), "  ", entities.NotificationConfirmation)
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})

	t.Run("reminder type is not requestable", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		_, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationReminder)
		if !errors.Is(err, ErrInvalidNotificationType) {
			t.Fatalf("expected ErrInvalidNotificationType, got %v", err)
		}
	})

	t.Run("not found writes nothing", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Appointment{}, nil)

		_, err := f.uc.SendConfirmation(context.Background(), "missing", entities.NotificationConfirmation)
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("no contact info writes nothing", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(entities.Appointment{ID: "appt-1", Customer: "Sam"}, nil)

		_, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
		if !errors.Is(err, ErrNoContactInfo) {
			t.Fatalf("expected ErrNoContactInfo, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(entities.Appointment{}, errors.New("dynamo down"))

		_, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
		if err == nil || !strings.Contains(err.Error(), "dynamo down") {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}

func TestNotificationUseCase_SendConfirmation_BothChannelsSucceed(t *testing.T) {
	f := newNotificationFixture(t, nil)
	appt := sampleAppointment()

	f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)

	var recipients []string
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
		recipients = append(recipients, msg.To)
		return nil
	}).Times(2)

	f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u entities.DeliveryUpdate) error {
			assert.True(t, u.ConfirmationSent)
			assert.Equal(t, testNow, u.ConfirmationSentAt)
			assert.Equal(t, entities.NotificationConfirmation, u.LastStatusSent)
			assert.Equal(t, entities.DeliveryStatusSuccess, u.LastAttemptStatus)
			assert.False(t, u.NeedsResend)
			return nil
		})
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
			assert.Equal(t, entities.LogTypeConfirmation, e.Type)
			assert.Equal(t, "appt-1", e.AppointmentID)
			assert.True(t, e.EmailSent)
			assert.True(t, e.SMSSent)
			assert.Nil(t, e.SMSError)
			assert.NotEmpty(t, e.ID)
			return e, nil
		})

	res, err := f.uc.SendConfirmation(context.Background(), " appt-1 ", entities.NotificationConfirmation)
	require.NoError(t, err)

	assert.Equal(t, entities.DeliveryStatusSuccess, res.Status)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"sam@example.com", "4165550100@txt.bell.ca"}, recipients)
	assert.Equal(t, 0, f.sleeps.count())
	assert.Equal(t, 1, f.metrics.runs["confirmation/success"])
}

func TestNotificationUseCase_SendConfirmation_AllRetriesFail(t *testing.T) {
	f := newNotificationFixture(t, nil)
	f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(sampleAppointment(), nil)

	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp unavailable")).Times(6)
	f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u entities.DeliveryUpdate) error {
			assert.Equal(t, entities.DeliveryStatusFailed, u.LastAttemptStatus)
			return nil
		})
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
			assert.False(t, e.EmailSent)
			assert.False(t, e.SMSSent)
			require.NotNil(t, e.SMSError)
			assert.Contains(t, *e.SMSError, "smtp unavailable")
			return e, nil
		})

	res, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
	require.NoError(t, err)

	assert.Equal(t, entities.DeliveryStatusFailed, res.Status)
	assert.Len(t, res.Warnings, 2)
	assert.Equal(t, 4, f.sleeps.count())
	assert.Equal(t, 1, f.metrics.channels["email/failed"])
	assert.Equal(t, 1, f.metrics.channels["sms/failed"])
}

func TestNotificationUseCase_SendConfirmation_UnknownCarrierNeverAttempted(t *testing.T) {
	for _, c := range []string{"", "unknown", "Unknown", "xyz"} {
		t.Run("carrier="+c, func(t *testing.T) {
			f := newNotificationFixture(t, nil)
			appt := sampleAppointment()
			appt.Carrier = c
			f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)

			f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
				if msg.To != "sam@example.com" {
					t.Fatalf("unexpected send to %s", msg.To)
				}
				return nil
			}).Times(1)
			f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).Return(nil)
			f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
					require.NotNil(t, e.SMSError)
					assert.Contains(t, *e.SMSError, "skipping SMS")
					return e, nil
				})

			res, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationStatusUpdate)
			require.NoError(t, err)
			assert.Equal(t, entities.DeliveryStatusSuccess, res.Status)
			assert.Equal(t, entities.OutcomeSkipped, res.SMS.Kind)
			require.Len(t, res.Warnings, 1)
		})
	}
}

func TestNotificationUseCase_SendConfirmation_PartialSuccess(t *testing.T) {
	f := newNotificationFixture(t, nil)
	f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(sampleAppointment(), nil)

	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
		if strings.HasSuffix(msg.To, "@txt.bell.ca") {
			return errors.New("gateway rejected")
		}
		return nil
	}).Times(4)
	f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).Return(nil)
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) { return e, nil })

	res, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryStatusPartialSuccess, res.Status)
	assert.Equal(t, entities.OutcomeFailed, res.SMS.Kind)
}

func TestNotificationUseCase_SendConfirmation_OversizedSMSWarns(t *testing.T) {
	f := newNotificationFixture(t, nil)
	appt := sampleAppointment()
	appt.Email = ""
	appt.Equipment = strings.Repeat("Commercial elliptical ", 8)
	f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)

	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
		if SMSLength(msg.Text) <= DefaultSMSMaxSize {
			t.Fatalf("workflow SMS must not be truncated")
		}
		return nil
	})
	f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).Return(nil)

	var types []entities.LogType
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
			types = append(types, e.Type)
			return e, nil
		}).Times(2)

	res, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryStatusSuccess, res.Status)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "characters")
	assert.Equal(t, []entities.LogType{entities.LogTypeConfirmation, entities.LogTypeWarning}, types)
}

func TestNotificationUseCase_SendConfirmation_ResolverFailureSkipsSMS(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mock_interfaces.NewMockICarrierResolver(ctrl)
	f := newNotificationFixture(t, resolver)

	appt := sampleAppointment()
	appt.Email = ""
	f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)
	resolver.EXPECT().Resolve(gomock.Any(), "Bell", "416-555-0100").Return("", errors.New("lookup timeout"))
	f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u entities.DeliveryUpdate) error {
			assert.Equal(t, entities.DeliveryStatusFailed, u.LastAttemptStatus)
			return nil
		})
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) { return e, nil })

	res, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryStatusFailed, res.Status)
	assert.Equal(t, entities.OutcomeSkipped, res.SMS.Kind)
}

func TestNotificationUseCase_SendConfirmation_PersistFailure(t *testing.T) {
	f := newNotificationFixture(t, nil)
	appt := sampleAppointment()
	appt.Phone = ""
	f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).Return(errors.New("throttled"))

	_, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
	if err == nil || !strings.Contains(err.Error(), "throttled") {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestNotificationUseCase_SendReminders(t *testing.T) {
	t.Run("nothing due", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		f.repo.EXPECT().ListDueForReminder(gomock.Any(), testNow, testNow.Add(24*time.Hour)).Return(nil, nil)

		res, err := f.uc.SendReminders(context.Background())
		require.NoError(t, err)
		assert.Empty(t, res.Processed)
	})

	t.Run("processes due appointments and skips already reminded", func(t *testing.T) {
		f := newNotificationFixture(t, nil)

		first := sampleAppointment()
		first.ReminderEnabled = true
		first.Date = testNow.Add(20 * time.Hour)
		second := first
		second.ID = "appt-2"
		second.Phone = ""
		already := first
		already.ID = "appt-3"
		already.ReminderSent = true

		f.repo.EXPECT().ListDueForReminder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.Appointment{first, already, second}, nil)

		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
			if msg.Subject != "" && msg.Subject != "⏰ Appointment Reminder - Canadian Fitness Repair" {
				t.Fatalf("unexpected subject %q", msg.Subject)
			}
			if strings.HasSuffix(msg.To, "@txt.bell.ca") {
				return errors.New("gateway down")
			}
			return nil
		}).Times(5)

		var marked []string
		f.repo.EXPECT().MarkReminderSent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u entities.ReminderUpdate) error {
				assert.Equal(t, testNow, u.ReminderSentAt)
				marked = append(marked, id)
				return nil
			}).Times(2)
		f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
				assert.Equal(t, entities.LogTypeReminder, e.Type)
				return e, nil
			}).Times(2)

		res, err := f.uc.SendReminders(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"appt-1", "appt-2"}, marked)
		require.Len(t, res.Processed, 2)
		assert.Equal(t, ReminderOutcome{AppointmentID: "appt-1", EmailSent: true, SMSSent: false, Status: entities.DeliveryStatusPartialSuccess}, res.Processed[0])
		assert.Equal(t, ReminderOutcome{AppointmentID: "appt-2", EmailSent: true, SMSSent: false, Status: entities.DeliveryStatusSuccess}, res.Processed[1])
	})

	t.Run("store failure aborts sweep", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		appt := sampleAppointment()
		appt.ReminderEnabled = true
		appt.Date = testNow.Add(time.Hour)
		appt.Phone = ""
		other := appt
		other.ID = "appt-2"

		f.repo.EXPECT().ListDueForReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Appointment{appt, other}, nil)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().MarkReminderSent(gomock.Any(), "appt-1", gomock.Any()).Return(errors.New("conditional check failed"))

		_, err := f.uc.SendReminders(context.Background())
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("candidates outside the window or not eligible are never notified", func(t *testing.T) {
		f := newNotificationFixture(t, nil)

		base := sampleAppointment()
		base.ReminderEnabled = true
		early := base
		early.ID = "early"
		early.Date = testNow.Add(-time.Minute)
		late := base
		late.ID = "late"
		late.Date = testNow.Add(24*time.Hour + time.Minute)
		undated := base
		undated.ID = "undated"
		undated.Date = time.Time{}
		reminded := base
		reminded.ID = "reminded"
		reminded.Date = testNow.Add(time.Hour)
		reminded.ReminderSent = true
		disabled := base
		disabled.ID = "disabled"
		disabled.Date = testNow.Add(time.Hour)
		disabled.ReminderEnabled = false

		f.repo.EXPECT().ListDueForReminder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.Appointment{early, late, undated, reminded, disabled}, nil)

		res, err := f.uc.SendReminders(context.Background())
		require.NoError(t, err)
		assert.Empty(t, res.Processed)
	})

	t.Run("list failure", func(t *testing.T) {
		f := newNotificationFixture(t, nil)
		f.repo.EXPECT().ListDueForReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("scan failed"))

		_, err := f.uc.SendReminders(context.Background())
		if err == nil || !strings.Contains(err.Error(), "scan failed") {
			t.Fatalf("expected scan error, got %v", err)
		}
	})
}

// memoryAppointments returns every stored appointment from
// ListDueForReminder, leaving all eligibility checks to the sweep.
type memoryAppointments struct {
	items []entities.Appointment
}

func (m *memoryAppointments) GetByID(_ context.Context, id string) (entities.Appointment, error) {
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return entities.Appointment{}, nil
}

func (m *memoryAppointments) ListDueForReminder(context.Context, time.Time, time.Time) ([]entities.Appointment, error) {
	out := make([]entities.Appointment, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memoryAppointments) UpdateDelivery(context.Context, string, entities.DeliveryUpdate) error {
	return nil
}

func (m *memoryAppointments) MarkReminderSent(_ context.Context, id string, u entities.ReminderUpdate) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].ReminderSent = true
			sentAt := u.ReminderSentAt
			m.items[i].ReminderSentAt = &sentAt
			m.items[i].LastAttemptStatus = u.LastAttemptStatus
		}
	}
	return nil
}

func TestNotificationUseCase_SendReminders_SecondRunSendsNothing(t *testing.T) {
	f := newNotificationFixture(t, nil)

	due := sampleAppointment()
	due.ReminderEnabled = true
	due.Date = testNow.Add(3 * time.Hour)
	outside := due
	outside.ID = "appt-2"
	outside.Date = testNow.Add(30 * time.Hour)
	store := &memoryAppointments{items: []entities.Appointment{due, outside}}

	uc := NewNotificationUseCase(NotificationDeps{
		Appointments: store,
		Logs:         f.logs,
		Renderer:     newTestRenderer(t, testNow),
		Attempter:    NewDeliveryAttempter(f.sender, NewRetrier(3, 0, WithSleepFunc(f.sleeps.sleep)), f.metrics),
		Carriers:     f.resolver,
		Clock:        fixedClock{now: testNow},
	})

	var recipients []string
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
		recipients = append(recipients, msg.To)
		return nil
	}).Times(2)
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) { return e, nil }).Times(1)

	first, err := uc.SendReminders(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Processed, 1)
	assert.Equal(t, "appt-1", first.Processed[0].AppointmentID)
	assert.Equal(t, []string{"sam@example.com", "4165550100@txt.bell.ca"}, recipients)
	assert.True(t, store.items[0].ReminderSent)
	assert.False(t, store.items[1].ReminderSent)

	second, err := uc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second.Processed)
}

func TestNotificationUseCase_SendConfirmation_PhoneWithoutDigitsSkipsSMS(t *testing.T) {
	f := newNotificationFixture(t, nil)
	appt := sampleAppointment()
	appt.Phone = "n/a"
	f.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)

	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
		if msg.To != "sam@example.com" {
			t.Fatalf("unexpected send to %s", msg.To)
		}
		return nil
	}).Times(1)
	f.repo.EXPECT().UpdateDelivery(gomock.Any(), "appt-1", gomock.Any()).Return(nil)
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) { return e, nil })

	res, err := f.uc.SendConfirmation(context.Background(), "appt-1", entities.NotificationConfirmation)
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryStatusSuccess, res.Status)
	assert.Equal(t, entities.OutcomeSkipped, res.SMS.Kind)
	assert.Zero(t, f.sleeps.count())
}
