package repository

import (
	"context"

	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultLogsTableName = "logs"

type logItem struct {
	ID            string  `dynamodbav:"id"`
	Type          string  `dynamodbav:"type"`
	AppointmentID string  `dynamodbav:"appointment_id,omitempty"`
	EmailSent     bool    `dynamodbav:"email_sent"`
	SMSSent       bool    `dynamodbav:"sms_sent"`
	Status        string  `dynamodbav:"status,omitempty"`
	SMSError      *string `dynamodbav:"sms_error"`
	Message       string  `dynamodbav:"message,omitempty"`
	Timestamp     string  `dynamodbav:"timestamp"`
}

// LogDynamoRepository appends audit entries.
//
// Table requirements:
//   - PK: id (string)

type LogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILogRepository = (*LogDynamoRepository)(nil)

func NewLogDynamoRepository(ddb DynamoAPI, tableName string) *LogDynamoRepository {
	if tableName == "" {
		tableName = defaultLogsTableName
	}
	return &LogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LogDynamoRepository) Append(ctx context.Context, e entities.LogEntry) (entities.LogEntry, error) {
	av, err := attributevalue.MarshalMap(toLogItem(e))
	if err != nil {
		return entities.LogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LogEntry{}, err
	}
	return e, nil
}

func toLogItem(e entities.LogEntry) logItem {
	return logItem{
		ID:            e.ID,
		Type:          string(e.Type),
		AppointmentID: e.AppointmentID,
		EmailSent:     e.EmailSent,
		SMSSent:       e.SMSSent,
		Status:        string(e.Status),
		SMSError:      e.SMSError,
		Message:       e.Message,
		Timestamp:     formatTime(e.Timestamp),
	}
}
