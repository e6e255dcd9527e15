package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"azhub/internal/domain/entities"
	"azhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPropertiesTableName = "properties"

// getenvDefault resolves the table-name env vars (PROPERTIES_TABLE,
// NOTIFICATIONS_TABLE) with a fallback for unconfigured local runs.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type bidItem struct {
	ID        string  `dynamodbav:"id"`
	Amount    float64 `dynamodbav:"bid_amount"`
	UserRole  string  `dynamodbav:"user_role"`
	Timestamp string  `dynamodbav:"timestamp"`
	Status    string  `dynamodbav:"status"`
}

type logItem struct {
	ID        string `dynamodbav:"id"`
	Type      string `dynamodbav:"type"`
	Message   string `dynamodbav:"message"`
	Timestamp string `dynamodbav:"timestamp"`
}

type propertyItem struct {
	ID              string    `dynamodbav:"id"`
	Address         string    `dynamodbav:"address"`
	City            string    `dynamodbav:"city"`
	Zip             string    `dynamodbav:"zip"`
	OpeningBid      float64   `dynamodbav:"opening_bid"`
	TitleNotes      string    `dynamodbav:"title_notes"`
	PropertyNote    string    `dynamodbav:"property_note"`
	ListedDate      string    `dynamodbav:"listed_date"`
	AuctionDate     string    `dynamodbav:"auction_date"`
	Status          string    `dynamodbav:"status"`
	AsIsEstimate    float64   `dynamodbav:"as_is_estimate"`
	RehabEstimate   float64   `dynamodbav:"rehab_estimate"`
	ARVEstimate     float64   `dynamodbav:"arv_estimate"`
	Offer75Estimate float64   `dynamodbav:"offer_75_estimate"`
	Log             []logItem `dynamodbav:"log"`
	Bids            []bidItem `dynamodbav:"bids"`
}

// PropertyDynamoRepository persists Property aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Bids and log entries are owned by the property and never queried on their
// own, so they live inside the item as nested lists. Writes replace the whole
// aggregate, which matches the use case layer always working on a full copy.

type PropertyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) List(ctx context.Context) ([]entities.Property, error) {
	properties := make([]entities.Property, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []propertyItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			properties = append(properties, fromPropertyItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return properties, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Property{}, err
	}
	if len(out.Item) == 0 {
		return entities.Property{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
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
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) Update(ctx context.Context, p entities.Property) (entities.Property, error) {
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Property{}, nil
		}
		return entities.Property{}, err
	}
	return p, nil
}

func toPropertyItem(p entities.Property) propertyItem {
	logs := make([]logItem, 0, len(p.Log))
	for _, entry := range p.Log {
		logs = append(logs, logItem{
			ID:        entry.ID,
			Type:      entry.Type,
			Message:   entry.Message,
			Timestamp: entry.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	bids := make([]bidItem, 0, len(p.Bids))
	for _, bid := range p.Bids {
		bids = append(bids, bidItem{
			ID:        bid.ID,
			Amount:    bid.Amount,
			UserRole:  bid.UserRole,
			Timestamp: bid.Timestamp.UTC().Format(time.RFC3339Nano),
			Status:    string(bid.Status),
		})
	}

	return propertyItem{
		ID:              p.ID,
		Address:         p.Address,
		City:            p.City,
		Zip:             p.Zip,
		OpeningBid:      p.OpeningBid,
		TitleNotes:      p.TitleNotes,
		PropertyNote:    p.PropertyNote,
		ListedDate:      p.ListedDate,
		AuctionDate:     p.AuctionDate,
		Status:          string(p.Status),
		AsIsEstimate:    p.AsIsEstimate,
		RehabEstimate:   p.RehabEstimate,
		ARVEstimate:     p.ARVEstimate,
		Offer75Estimate: p.Offer75Estimate,
		Log:             logs,
		Bids:            bids,
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	logs := make([]entities.LogEntry, 0, len(it.Log))
	for _, entry := range it.Log {
		ts, _ := time.Parse(time.RFC3339Nano, entry.Timestamp)
		logs = append(logs, entities.LogEntry{
			ID:        entry.ID,
			Type:      entry.Type,
			Message:   entry.Message,
			Timestamp: ts,
		})
	}
	bids := make([]entities.Bid, 0, len(it.Bids))
	for _, bid := range it.Bids {
		ts, _ := time.Parse(time.RFC3339Nano, bid.Timestamp)
		bids = append(bids, entities.Bid{
			ID:        bid.ID,
			Amount:    bid.Amount,
			UserRole:  bid.UserRole,
			Timestamp: ts,
			Status:    entities.BidStatus(bid.Status),
		})
	}

	return entities.Property{
		ID:              it.ID,
		Address:         it.Address,
		City:            it.City,
		Zip:             it.Zip,
		OpeningBid:      it.OpeningBid,
		TitleNotes:      it.TitleNotes,
		PropertyNote:    it.PropertyNote,
		ListedDate:      it.ListedDate,
		AuctionDate:     it.AuctionDate,
		Status:          entities.PropertyStatus(it.Status),
		AsIsEstimate:    it.AsIsEstimate,
		RehabEstimate:   it.RehabEstimate,
		ARVEstimate:     it.ARVEstimate,
		Offer75Estimate: it.Offer75Estimate,
		Log:             logs,
		Bids:            bids,
	}
}
