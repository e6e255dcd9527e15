package repository

import (
	"context"
	"errors"
	"time"

	"azhub/internal/domain/entities"
	"azhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	Message   string `dynamodbav:"message"`
	Timestamp string `dynamodbav:"timestamp"`
	Read      bool   `dynamodbav:"read"`
	Category  string `dynamodbav:"category"`
}

// NotificationDynamoRepository persists admin notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) List(ctx context.Context) ([]entities.Notification, error) {
	notifications := make([]entities.Notification, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			notifications = append(notifications, fromNotificationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return notifications, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#read": "read",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context) (int, error) {
	notifications, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifications {
		if n.Read {
			continue
		}
		if _, err := r.MarkRead(ctx, n.ID); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func fromNotificationItem(it notificationItem) entities.Notification {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.Notification{
		ID:        it.ID,
		Message:   it.Message,
		Timestamp: ts,
		Read:      it.Read,
		Category:  entities.NotificationCategory(it.Category),
	}
}
