package notifier

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/sixfootdad/coldvault/internal/paging"
)

const displayNameAttribute = "DisplayName"

// Topic is the request-scoped view of a notification topic.
type Topic struct {
	ARN         string
	DisplayName string
	Owner       string
}

// CreateTopic creates a topic (idempotent on the remote side for an
// identical name) and returns its ARN. displayName, when non-empty, is set
// as a creation attribute.
func (c *Client) CreateTopic(ctx context.Context, name, displayName string) (string, error) {
	if name == "" {
		return "", ErrMissingTopicName
	}
	input := &sns.CreateTopicInput{Name: aws.String(name)}
	if displayName != "" {
		input.Attributes = map[string]string{displayNameAttribute: displayName}
	}
	out, err := c.api.CreateTopic(ctx, input)
	if err != nil {
		return "", err
	}
	arn := aws.ToString(out.TopicArn)
	c.log.Debug(ctx, "topic created", "topic", name, "arn", arn)
	return arn, nil
}

// Topic looks up a single topic's attributes.
func (c *Client) Topic(ctx context.Context, arn string) (Topic, error) {
	out, err := c.api.GetTopicAttributes(ctx, &sns.GetTopicAttributesInput{
		TopicArn: aws.String(arn),
	})
	if err != nil {
		return Topic{}, err
	}
	return Topic{
		ARN:         arn,
		DisplayName: out.Attributes[displayNameAttribute],
		Owner:       out.Attributes["Owner"],
	}, nil
}

// SetDisplayName updates the topic's display name attribute.
func (c *Client) SetDisplayName(ctx context.Context, arn, displayName string) error {
	_, err := c.api.SetTopicAttributes(ctx, &sns.SetTopicAttributesInput{
		TopicArn:       aws.String(arn),
		AttributeName:  aws.String(displayNameAttribute),
		AttributeValue: aws.String(displayName),
	})
	return err
}

// DeleteTopic removes the topic and, on the remote side, all of its
// subscriptions.
func (c *Client) DeleteTopic(ctx context.Context, arn string) error {
	_, err := c.api.DeleteTopic(ctx, &sns.DeleteTopicInput{
		TopicArn: aws.String(arn),
	})
	return err
}

// Topics returns a lazy iterator over every topic ARN in the account.
func (c *Client) Topics() *paging.Iterator[string] {
	return paging.New(func(ctx context.Context, marker *string) ([]string, *string, error) {
		out, err := c.api.ListTopics(ctx, &sns.ListTopicsInput{NextToken: marker})
		if err != nil {
			return nil, nil, err
		}
		arns := make([]string, 0, len(out.Topics))
		for _, t := range out.Topics {
			arns = append(arns, aws.ToString(t.TopicArn))
		}
		return arns, out.NextToken, nil
	})
}
