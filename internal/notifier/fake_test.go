package notifier

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// fakeAPI mirrors the notification service with per-operation hooks and call
// counters; a nil hook fails the call so validation short-circuits are
// observable.
type fakeAPI struct {
	createTopic        func(*sns.CreateTopicInput) (*sns.CreateTopicOutput, error)
	listTopics         func(*sns.ListTopicsInput) (*sns.ListTopicsOutput, error)
	getTopicAttributes func(*sns.GetTopicAttributesInput) (*sns.GetTopicAttributesOutput, error)
	setTopicAttributes func(*sns.SetTopicAttributesInput) (*sns.SetTopicAttributesOutput, error)
	deleteTopic        func(*sns.DeleteTopicInput) (*sns.DeleteTopicOutput, error)

	subscribe         func(*sns.SubscribeInput) (*sns.SubscribeOutput, error)
	unsubscribe       func(*sns.UnsubscribeInput) (*sns.UnsubscribeOutput, error)
	listSubscriptions func(*sns.ListSubscriptionsInput) (*sns.ListSubscriptionsOutput, error)
	listByTopic       func(*sns.ListSubscriptionsByTopicInput) (*sns.ListSubscriptionsByTopicOutput, error)
	getSubAttributes  func(*sns.GetSubscriptionAttributesInput) (*sns.GetSubscriptionAttributesOutput, error)

	calls map[string]int
}

var _ API = (*fakeAPI)(nil)

func (f *fakeAPI) record(op string) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

func unexpected(op string) error {
	return errors.New("unexpected " + op + " call")
}

func (f *fakeAPI) CreateTopic(_ context.Context, in *sns.CreateTopicInput, _ ...func(*sns.Options)) (*sns.CreateTopicOutput, error) {
	f.record("CreateTopic")
	if f.createTopic == nil {
		return nil, unexpected("CreateTopic")
	}
	return f.createTopic(in)
}

func (f *fakeAPI) ListTopics(_ context.Context, in *sns.ListTopicsInput, _ ...func(*sns.Options)) (*sns.ListTopicsOutput, error) {
	f.record("ListTopics")
	if f.listTopics == nil {
		return nil, unexpected("ListTopics")
	}
	return f.listTopics(in)
}

func (f *fakeAPI) GetTopicAttributes(_ context.Context, in *sns.GetTopicAttributesInput, _ ...func(*sns.Options)) (*sns.GetTopicAttributesOutput, error) {
	f.record("GetTopicAttributes")
	if f.getTopicAttributes == nil {
		return nil, unexpected("GetTopicAttributes")
	}
	return f.getTopicAttributes(in)
}

func (f *fakeAPI) SetTopicAttributes(_ context.Context, in *sns.SetTopicAttributesInput, _ ...func(*sns.Options)) (*sns.SetTopicAttributesOutput, error) {
	f.record("SetTopicAttributes")
	if f.setTopicAttributes == nil {
		return nil, unexpected("SetTopicAttributes")
	}
	return f.setTopicAttributes(in)
}

func (f *fakeAPI) DeleteTopic(_ context.Context, in *sns.DeleteTopicInput, _ ...func(*sns.Options)) (*sns.DeleteTopicOutput, error) {
	f.record("DeleteTopic")
	if f.deleteTopic == nil {
		return nil, unexpected("DeleteTopic")
	}
	return f.deleteTopic(in)
}

func (f *fakeAPI) Subscribe(_ context.Context, in *sns.SubscribeInput, _ ...func(*sns.Options)) (*sns.SubscribeOutput, error) {
	f.record("Subscribe")
	if f.subscribe == nil {
		return nil, unexpected("Subscribe")
	}
	return f.subscribe(in)
}

func (f *fakeAPI) Unsubscribe(_ context.Context, in *sns.UnsubscribeInput, _ ...func(*sns.Options)) (*sns.UnsubscribeOutput, error) {
	f.record("Unsubscribe")
	if f.unsubscribe == nil {
		return nil, unexpected("Unsubscribe")
	}
	return f.unsubscribe(in)
}

func (f *fakeAPI) ListSubscriptions(_ context.Context, in *sns.ListSubscriptionsInput, _ ...func(*sns.Options)) (*sns.ListSubscriptionsOutput, error) {
	f.record("ListSubscriptions")
	if f.listSubscriptions == nil {
		return nil, unexpected("ListSubscriptions")
	}
	return f.listSubscriptions(in)
}

func (f *fakeAPI) ListSubscriptionsByTopic(_ context.Context, in *sns.ListSubscriptionsByTopicInput, _ ...func(*sns.Options)) (*sns.ListSubscriptionsByTopicOutput, error) {
	f.record("ListSubscriptionsByTopic")
	if f.listByTopic == nil {
		return nil, unexpected("ListSubscriptionsByTopic")
	}
	return f.listByTopic(in)
}

func (f *fakeAPI) GetSubscriptionAttributes(_ context.Context, in *sns.GetSubscriptionAttributesInput, _ ...func(*sns.Options)) (*sns.GetSubscriptionAttributesOutput, error) {
	f.record("GetSubscriptionAttributes")
	if f.getSubAttributes == nil {
		return nil, unexpected("GetSubscriptionAttributes")
	}
	return f.getSubAttributes(in)
}
