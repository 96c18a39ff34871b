package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID       string `dynamodbav:"id"`
	Customer string `dynamodbav:"customer"`
	Email    string `dynamodbav:"email,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
	Carrier  string `dynamodbav:"carrier,omitempty"`

	Date            string `dynamodbav:"date"`
	ReminderEnabled bool   `dynamodbav:"reminder_enabled"`
	ReminderSent    bool   `dynamodbav:"reminder_sent"`
	ReminderSentAt  string `dynamodbav:"reminder_sent_at,omitempty"`

	Equipment string   `dynamodbav:"equipment,omitempty"`
	Issue     string   `dynamodbav:"issue,omitempty"`
	BasePrice *float64 `dynamodbav:"base_price,omitempty"`
	Price     *float64 `dynamodbav:"price,omitempty"`
	Status    string   `dynamodbav:"status,omitempty"`

	ConfirmationSent   bool   `dynamodbav:"confirmation_sent"`
	ConfirmationSentAt string `dynamodbav:"confirmation_sent_at,omitempty"`
	LastStatusSent     string `dynamodbav:"last_status_sent,omitempty"`
	LastAttemptStatus  string `dynamodbav:"last_attempt_status,omitempty"`
	NeedsResend        bool   `dynamodbav:"needs_resend"`
}

// AppointmentDynamoRepository reads appointments written by the booking
// front-end and writes back delivery bookkeeping.
//
// Table requirements:
//   - PK: id (string)
//   - date stored as a fixed-width UTC string (see timeLayout)

type AppointmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI, tableName string) *AppointmentDynamoRepository {
	if tableName == "" {
		tableName = defaultAppointmentsTableName
	}
	return &AppointmentDynamoRepository{ddb: ddb, tableName: tableName}
}

// GetByID returns the zero Appointment when the id does not exist.
func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

// maxUTCOffset bounds how far a front-end date written with an offset
// (e.g. 2025-03-10T10:00:00-04:00) can sort away from its UTC instant.
const maxUTCOffset = 14 * time.Hour

// ListDueForReminder scans for appointments in [from, to] with reminders
// enabled and not yet sent. The table is small; a filtered Scan is enough.
// The string range on date is widened by maxUTCOffset and each candidate is
// then checked against its parsed date.
func (r *AppointmentDynamoRepository) ListDueForReminder(ctx context.Context, from, to time.Time) ([]entities.Appointment, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#reminder_enabled = :true AND (attribute_not_exists(#reminder_sent) OR #reminder_sent = :false) AND #date BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#reminder_enabled": "reminder_enabled",
			"#reminder_sent":    "reminder_sent",
			"#date":             "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":from":  &types.AttributeValueMemberS{Value: formatTime(from.Add(-maxUTCOffset))},
			":to":    &types.AttributeValueMemberS{Value: formatTime(to.Add(maxUTCOffset))},
		},
	})

	var out []entities.Appointment
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []appointmentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			appt := fromAppointmentItem(it)
			if !appt.StartsWithin(from, to) {
				continue
			}
			out = append(out, appt)
		}
	}
	return out, nil
}

func (r *AppointmentDynamoRepository) UpdateDelivery(ctx context.Context, id string, u entities.DeliveryUpdate) error {
	return r.update(ctx, id,
		"SET #confirmation_sent = :confirmation_sent, #confirmation_sent_at = :confirmation_sent_at, #last_status_sent = :last_status_sent, #last_attempt_status = :last_attempt_status, #needs_resend = :needs_resend",
		map[string]types.AttributeValue{
			":confirmation_sent":    &types.AttributeValueMemberBOOL{Value: u.ConfirmationSent},
			":confirmation_sent_at": &types.AttributeValueMemberS{Value: formatTime(u.ConfirmationSentAt)},
			":last_status_sent":     &types.AttributeValueMemberS{Value: string(u.LastStatusSent)},
			":last_attempt_status":  &types.AttributeValueMemberS{Value: string(u.LastAttemptStatus)},
			":needs_resend":         &types.AttributeValueMemberBOOL{Value: u.NeedsResend},
		},
		map[string]string{
			"#confirmation_sent":    "confirmation_sent",
			"#confirmation_sent_at": "confirmation_sent_at",
			"#last_status_sent":     "last_status_sent",
			"#last_attempt_status":  "last_attempt_status",
			"#needs_resend":         "needs_resend",
		},
	)
}

func (r *AppointmentDynamoRepository) MarkReminderSent(ctx context.Context, id string, u entities.ReminderUpdate) error {
	return r.update(ctx, id,
		"SET #reminder_sent = :reminder_sent, #reminder_sent_at = :reminder_sent_at, #last_attempt_status = :last_attempt_status",
		map[string]types.AttributeValue{
			":reminder_sent":       &types.AttributeValueMemberBOOL{Value: true},
			":reminder_sent_at":    &types.AttributeValueMemberS{Value: formatTime(u.ReminderSentAt)},
			":last_attempt_status": &types.AttributeValueMemberS{Value: string(u.LastAttemptStatus)},
		},
		map[string]string{
			"#reminder_sent":       "reminder_sent",
			"#reminder_sent_at":    "reminder_sent_at",
			"#last_attempt_status": "last_attempt_status",
		},
	)
}

// update applies every field in one conditional UpdateItem so bookkeeping
// is never half written.
func (r *AppointmentDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("appointment %s: %w", id, ErrItemNotFound)
		}
		return err
	}
	return nil
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:                 it.ID,
		Customer:           it.Customer,
		Email:              it.Email,
		Phone:              it.Phone,
		Carrier:            it.Carrier,
		Date:               parseTime(it.Date),
		ReminderEnabled:    it.ReminderEnabled,
		ReminderSent:       it.ReminderSent,
		ReminderSentAt:     parseOptionalTime(it.ReminderSentAt),
		Equipment:          it.Equipment,
		Issue:              it.Issue,
		BasePrice:          it.BasePrice,
		Price:              it.Price,
		Status:             it.Status,
		ConfirmationSent:   it.ConfirmationSent,
		ConfirmationSentAt: parseOptionalTime(it.ConfirmationSentAt),
		LastStatusSent:     entities.NotificationType(it.LastStatusSent),
		LastAttemptStatus:  entities.DeliveryStatus(it.LastAttemptStatus),
		NeedsResend:        it.NeedsResend,
	}
}
