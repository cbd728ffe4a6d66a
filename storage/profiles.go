package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alex-pricope/snackify/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ProfileStorage interface {
	// Get returns nil, nil when no profile has this id.
	Get(ctx context.Context, id string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	// Update applies the non-nil fields and returns the stored profile.
	// ErrNotFound when the profile does not exist.
	Update(ctx context.Context, id string, update ProfileUpdate) (*Profile, error)
}

type DynamoProfileStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoProfileStorage) Get(ctx context.Context, id string) (*Profile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to marshal key for ID %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PROFILE: GetItem for ID %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var profile Profile
	if err := attributevalue.UnmarshalMap(out.Item, &profile); err != nil {
		logging.Log.Errorf("PROFILE: failed to unmarshal profile: %v", err)
		return nil, err
	}
	return &profile, nil
}

func (s *DynamoProfileStorage) Create(ctx context.Context, profile *Profile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to marshal profile: %v", err)
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
			logging.Log.Warnf("PROFILE: profile %s already exists", profile.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("PROFILE: failed to create profile: %v", err)
		return err
	}
	return nil
}

func (s *DynamoProfileStorage) Update(ctx context.Context, id string, update ProfileUpdate) (*Profile, error) {
	if update.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	sets := []string{"UpdatedAt = :updated"}
	values := map[string]types.AttributeValue{
		":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	if update.Username != nil {
		sets = append(sets, "Username = :username")
		values[":username"] = &types.AttributeValueMemberS{Value: *update.Username}
	}
	if update.ProfilePictureURL != nil {
		sets = append(sets, "ProfilePictureURL = :picture")
		if *update.ProfilePictureURL == "" {
			values[":picture"] = &types.AttributeValueMemberNULL{Value: true}
		} else {
			values[":picture"] = &types.AttributeValueMemberS{Value: *update.ProfilePictureURL}
		}
	}

	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(PK)"),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			return nil, ErrNotFound
		}
		logging.Log.Errorf("PROFILE: failed to update profile %s: %v", id, err)
		return nil, err
	}

	var profile Profile
	if err := attributevalue.UnmarshalMap(out.Attributes, &profile); err != nil {
		logging.Log.Errorf("PROFILE: failed to unmarshal updated profile: %v", err)
		return nil, err
	}
	return &profile, nil
}
