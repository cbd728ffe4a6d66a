package storage

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/alex-pricope/snackify/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type SnackStorage interface {
	// Get returns nil, nil when no snack has this id.
	Get(ctx context.Context, id int) (*Snack, error)
	// GetAll returns every snack ordered by ascending id.
	GetAll(ctx context.Context) ([]*Snack, error)
	// Create stores a new snack, assigning an id when snack.ID is 0.
	Create(ctx context.Context, snack *Snack) error
	Count(ctx context.Context) (int, error)
}

// The snacks table reserves PK 0 for the id counter item.
const snackCounterPK = 0

type DynamoSnackStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSnackStorage) Get(ctx context.Context, id int) (*Snack, error) {
	if id == snackCounterPK {
		return nil, nil
	}
	key, err := attributevalue.MarshalMap(map[string]int{"PK": id})
	if err != nil {
		logging.Log.Errorf("SNACK: failed to marshal key for ID %d: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SNACK: GetItem for ID %d failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		logging.Log.Warnf("SNACK: no snack found with ID %d", id)
		return nil, nil
	}

	var snack Snack
	if err := attributevalue.UnmarshalMap(out.Item, &snack); err != nil {
		logging.Log.Errorf("SNACK: failed to unmarshal snack: %v", err)
		return nil, err
	}
	return &snack, nil
}

func (s *DynamoSnackStorage) GetAll(ctx context.Context) ([]*Snack, error) {
	var (
		snacks           []*Snack
		lastEvaluatedKey map[string]types.AttributeValue
	)

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &s.TableName,
			ExclusiveStartKey: lastEvaluatedKey,
			FilterExpression:  aws.String("PK <> :counter"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":counter": &types.AttributeValueMemberN{Value: strconv.Itoa(snackCounterPK)},
			},
		})
		if err != nil {
			logging.Log.Errorf("SNACK: scan failed: %v", err)
			return nil, err
		}

		var page []*Snack
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			logging.Log.Errorf("SNACK: failed to unmarshal snack list: %v", err)
			return nil, err
		}
		snacks = append(snacks, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	// Scan order is arbitrary
	sort.SliceStable(snacks, func(i, j int) bool {
		return snacks[i].ID < snacks[j].ID
	})
	return snacks, nil
}

func (s *DynamoSnackStorage) Create(ctx context.Context, snack *Snack) error {
	if snack.ID == 0 {
		id, err := s.nextID(ctx)
		if err != nil {
			return err
		}
		snack.ID = id
	}
	if snack.CreatedAt.IsZero() {
		snack.CreatedAt = time.Now().UTC()
	}

	item, err := attributevalue.MarshalMap(snack)
	if err != nil {
		logging.Log.Errorf("SNACK: failed to marshal snack: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("SNACK: item with ID %d already exists", snack.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("SNACK: failed to create snack: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSnackStorage) Count(ctx context.Context) (int, error) {
	total := 0
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &s.TableName,
			ExclusiveStartKey: lastEvaluatedKey,
			Select:            types.SelectCount,
			FilterExpression:  aws.String("PK <> :counter"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":counter": &types.AttributeValueMemberN{Value: strconv.Itoa(snackCounterPK)},
			},
		})
		if err != nil {
			logging.Log.Errorf("SNACK: count scan failed: %v", err)
			return 0, err
		}
		total += int(out.Count)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
	return total, nil
}

// nextID bumps the counter item atomically and returns the new value.
func (s *DynamoSnackStorage) nextID(ctx context.Context) (int, error) {
	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberN{Value: strconv.Itoa(snackCounterPK)},
		},
		UpdateExpression:          aws.String("ADD NextID :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		logging.Log.Errorf("SNACK: failed to allocate snack id: %v", err)
		return 0, err
	}

	var counter struct {
		NextID int `dynamodbav:"NextID"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		logging.Log.Errorf("SNACK: failed to unmarshal snack id counter: %v", err)
		return 0, err
	}
	return counter.NextID, nil
}
