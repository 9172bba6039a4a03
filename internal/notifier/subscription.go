package notifier

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/sixfootdad/coldvault/internal/paging"
)

// Delivery protocols this tool manages.
const (
	ProtocolEmail     = "email"
	ProtocolEmailJSON = "email-json"
	ProtocolSMS       = "sms"
)

// pendingConfirmation is the placeholder ARN the service returns until the
// endpoint owner confirms the subscription out of band.
const pendingConfirmation = "pending confirmation"

// Subscription is one delivery endpoint attached to a topic.
type Subscription struct {
	ARN      string
	TopicARN string
	Protocol string
	Endpoint string
	Owner    string
}

// Pending reports whether the subscription still awaits endpoint
// confirmation.
func (s Subscription) Pending() bool {
	return s.ARN == "" || strings.EqualFold(s.ARN, pendingConfirmation) ||
		strings.EqualFold(s.ARN, "PendingConfirmation")
}

// US numbers only: leading country code 1 plus ten digits.
var smsEndpointPattern = regexp.MustCompile(`^1[0-9]{10}$`)

// ValidateEndpoint checks protocol and endpoint shape locally before the
// remote call.
func ValidateEndpoint(protocol, endpoint string) error {
	switch protocol {
	case ProtocolEmail, ProtocolEmailJSON:
		if endpoint == "" || !strings.Contains(endpoint, "@") {
			return fmt.Errorf("invalid email endpoint %q", endpoint)
		}
	case ProtocolSMS:
		if !smsEndpointPattern.MatchString(endpoint) {
			return fmt.Errorf("%w: got %q", ErrInvalidSMSEndpoint, endpoint)
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidProtocol, protocol)
	}
	return nil
}

// Subscribe attaches an endpoint to a topic. The returned subscription is
// almost always pending: confirmation happens out of band at the endpoint,
// so no usable ARN exists yet.
func (c *Client) Subscribe(ctx context.Context, topicARN, protocol, endpoint string) (Subscription, error) {
	if err := ValidateEndpoint(protocol, endpoint); err != nil {
		return Subscription{}, err
	}
	out, err := c.api.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn: aws.String(topicARN),
		Protocol: aws.String(protocol),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return Subscription{}, err
	}
	sub := Subscription{
		ARN:      aws.ToString(out.SubscriptionArn),
		TopicARN: topicARN,
		Protocol: protocol,
		Endpoint: endpoint,
	}
	c.log.Debug(ctx, "subscription requested", "topic", topicARN, "protocol", protocol, "pending", sub.Pending())
	return sub, nil
}

// Unsubscribe removes a confirmed subscription immediately.
func (c *Client) Unsubscribe(ctx context.Context, subscriptionARN string) error {
	_, err := c.api.Unsubscribe(ctx, &sns.UnsubscribeInput{
		SubscriptionArn: aws.String(subscriptionARN),
	})
	return err
}

// Subscriptions lists subscriptions lazily: all subscriptions on the account
// when topicARN is empty, otherwise only the topic's.
func (c *Client) Subscriptions(topicARN string) *paging.Iterator[Subscription] {
	if topicARN == "" {
		return paging.New(func(ctx context.Context, marker *string) ([]Subscription, *string, error) {
			out, err := c.api.ListSubscriptions(ctx, &sns.ListSubscriptionsInput{NextToken: marker})
			if err != nil {
				return nil, nil, err
			}
			return subscriptionsFromSDK(out.Subscriptions), out.NextToken, nil
		})
	}
	return paging.New(func(ctx context.Context, marker *string) ([]Subscription, *string, error) {
		out, err := c.api.ListSubscriptionsByTopic(ctx, &sns.ListSubscriptionsByTopicInput{
			TopicArn:  aws.String(topicARN),
			NextToken: marker,
		})
		if err != nil {
			return nil, nil, err
		}
		return subscriptionsFromSDK(out.Subscriptions), out.NextToken, nil
	})
}

// Subscription is a point lookup by subscription ARN.
func (c *Client) Subscription(ctx context.Context, subscriptionARN string) (Subscription, error) {
	out, err := c.api.GetSubscriptionAttributes(ctx, &sns.GetSubscriptionAttributesInput{
		SubscriptionArn: aws.String(subscriptionARN),
	})
	if err != nil {
		return Subscription{}, err
	}
	return Subscription{
		ARN:      subscriptionARN,
		TopicARN: out.Attributes["TopicArn"],
		Protocol: out.Attributes["Protocol"],
		Endpoint: out.Attributes["Endpoint"],
		Owner:    out.Attributes["Owner"],
	}, nil
}

func subscriptionsFromSDK(subs []types.Subscription) []Subscription {
	out := make([]Subscription, 0, len(subs))
	for _, s := range subs {
		out = append(out, Subscription{
			ARN:      aws.ToString(s.SubscriptionArn),
			TopicARN: aws.ToString(s.TopicArn),
			Protocol: aws.ToString(s.Protocol),
			Endpoint: aws.ToString(s.Endpoint),
			Owner:    aws.ToString(s.Owner),
		})
	}
	return out
}
