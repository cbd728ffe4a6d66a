package storage

import (
	"context"
	"strconv"

	"github.com/alex-pricope/snackify/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type RatingStorage interface {
	// Create appends a rating event, filling in ID and CreatedAt when empty.
	Create(ctx context.Context, rating *Rating) error
	// GetBySnack returns the snack's rating events, newest first.
	GetBySnack(ctx context.Context, snackID int) ([]*Rating, error)
}

type DynamoRatingStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoRatingStorage) Create(ctx context.Context, rating *Rating) error {
	if err := stamp(&rating.ID, &rating.CreatedAt, &rating.SortKey); err != nil {
		logging.Log.Errorf("RATING: failed to generate rating id: %v", err)
		return err
	}

	item, err := attributevalue.MarshalMap(rating)
	if err != nil {
		logging.Log.Errorf("RATING: failed to marshal rating: %v", err)
		return err
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		logging.Log.Errorf("RATING: failed to create rating for snack %d: %v", rating.SnackID, err)
		return err
	}
	return nil
}

func (s *DynamoRatingStorage) GetBySnack(ctx context.Context, snackID int) ([]*Rating, error) {
	items, err := queryBySnack(ctx, s.Client, s.TableName, snackID)
	if err != nil {
		logging.Log.Errorf("RATING: failed to query ratings for snack %d: %v", snackID, err)
		return nil, err
	}

	ratings := make([]*Rating, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &ratings); err != nil {
		logging.Log.Errorf("RATING: failed to unmarshal ratings for snack %d: %v", snackID, err)
		return nil, err
	}
	return ratings, nil
}

// queryBySnack reads every item under the snack's partition, newest first.
func queryBySnack(ctx context.Context, client *dynamodb.Client, table string, snackID int) ([]map[string]types.AttributeValue, error) {
	var (
		items            []map[string]types.AttributeValue
		lastEvaluatedKey map[string]types.AttributeValue
	)

	for {
		out, err := client.Query(ctx, &dynamodb.QueryInput{
			TableName:              &table,
			KeyConditionExpression: aws.String("PK = :snack"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":snack": &types.AttributeValueMemberN{Value: strconv.Itoa(snackID)},
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: lastEvaluatedKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
	return items, nil
}
