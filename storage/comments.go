package storage

import (
	"context"

	"github.com/alex-pricope/snackify/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type CommentStorage interface {
	// Create appends a comment, filling in ID and CreatedAt when empty.
	Create(ctx context.Context, comment *Comment) error
	// GetBySnack returns the snack's comments, newest first.
	GetBySnack(ctx context.Context, snackID int) ([]*Comment, error)
}

type DynamoCommentStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoCommentStorage) Create(ctx context.Context, comment *Comment) error {
	if err := stamp(&comment.ID, &comment.CreatedAt, &comment.SortKey); err != nil {
		logging.Log.Errorf("COMMENT: failed to generate comment id: %v", err)
		return err
	}

	item, err := attributevalue.MarshalMap(comment)
	if err != nil {
		logging.Log.Errorf("COMMENT: failed to marshal comment: %v", err)
		return err
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		logging.Log.Errorf("COMMENT: failed to create comment for snack %d: %v", comment.SnackID, err)
		return err
	}
	return nil
}

func (s *DynamoCommentStorage) GetBySnack(ctx context.Context, snackID int) ([]*Comment, error) {
	items, err := queryBySnack(ctx, s.Client, s.TableName, snackID)
	if err != nil {
		logging.Log.Errorf("COMMENT: failed to query comments for snack %d: %v", snackID, err)
		return nil, err
	}

	comments := make([]*Comment, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &comments); err != nil {
		logging.Log.Errorf("COMMENT: failed to unmarshal comments for snack %d: %v", snackID, err)
		return nil, err
	}
	return comments, nil
}
