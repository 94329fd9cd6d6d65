package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/groupassign/internal/kvutil"
	"github.com/arloliu/groupassign/internal/natsutil"
	"github.com/arloliu/groupassign/types"
)

// Default bucket names for the NATS metadata source.
const (
	// DefaultMembersBucket holds consumer registrations, one key per member.
	DefaultMembersBucket = "groupassign_members"

	// DefaultTopicsBucket holds topic partition metadata, one key per topic.
	DefaultTopicsBucket = "groupassign_topics"
)

// NATS implements a metadata source backed by NATS JetStream KV buckets.
//
// Consumers register themselves under "<group>.<consumer>" in the members
// bucket with their subscription map as the value; topics are registered
// under their name in the topics bucket. Because group and consumer id form
// the key, neither may contain a "." character.
//
// When the members bucket carries a TTL, registrations double as liveness:
// a consumer that stops refreshing its registration drops out of the
// membership snapshot once the TTL lapses.
type NATS struct {
	members jetstream.KeyValue
	topics  jetstream.KeyValue
}

var _ types.MetadataSource = (*NATS)(nil)

// memberRecord is the JSON value stored per consumer registration.
type memberRecord struct {
	// Subscriptions maps topic name to the consumer's stream count for it.
	Subscriptions map[string]int `json:"subscriptions"`
}

// topicRecord is the JSON value stored per topic.
type topicRecord struct {
	// Partitions lists the topic's partition ids.
	Partitions []int32 `json:"partitions"`
}

// NATSConfig configures the NATS metadata source buckets.
type NATSConfig struct {
	// MembersBucket is the KV bucket name for consumer registrations.
	// Defaults to DefaultMembersBucket when empty.
	MembersBucket string `yaml:"membersBucket"`

	// TopicsBucket is the KV bucket name for topic metadata.
	// Defaults to DefaultTopicsBucket when empty.
	TopicsBucket string `yaml:"topicsBucket"`

	// MemberTTL expires stale consumer registrations (0 = no expiration).
	// Consumers must re-register within the TTL to stay in the group.
	MemberTTL time.Duration `yaml:"memberTtl"`
}

// NewNATS creates a metadata source over NATS JetStream KV.
//
// Both buckets are created if they do not exist; concurrent creation by
// multiple group members is handled.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream context
//   - cfg: Bucket configuration (zero value uses defaults)
//
// Returns:
//   - *NATS: Initialized source
//   - error: Bucket creation/open failure
//
// Example:
//
//	js, _ := jetstream.New(conn)
//	src, err := source.NewNATS(ctx, js, source.NATSConfig{MemberTTL: 30 * time.Second})
//	if err != nil { /* handle */ }
//	planner, err := groupassign.NewPlanner(&cfg, src)
func NewNATS(ctx context.Context, js jetstream.JetStream, cfg NATSConfig) (*NATS, error) {
	if cfg.MembersBucket == "" {
		cfg.MembersBucket = DefaultMembersBucket
	}
	if cfg.TopicsBucket == "" {
		cfg.TopicsBucket = DefaultTopicsBucket
	}

	members, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket: cfg.MembersBucket,
		TTL:    cfg.MemberTTL,
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure members bucket: %w", err)
	}

	topics, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket: cfg.TopicsBucket,
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure topics bucket: %w", err)
	}

	return &NATS{members: members, topics: topics}, nil
}

// Register announces a consumer's membership and subscriptions.
//
// Re-registering overwrites the previous subscription map and, when the
// members bucket carries a TTL, refreshes the consumer's liveness.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - group: Consumer group name (must not contain ".")
//   - consumer: Consumer instance id (must not contain ".")
//   - subscriptions: Topic -> stream count map
//
// Returns:
//   - error: KV write failure
func (n *NATS) Register(ctx context.Context, group, consumer string, subscriptions map[string]int) error {
	value, err := json.Marshal(memberRecord{Subscriptions: subscriptions})
	if err != nil {
		return fmt.Errorf("failed to encode member record: %w", err)
	}

	if _, err := n.members.Put(ctx, memberKey(group, consumer), value); err != nil {
		return wrapKVError("register consumer", err)
	}

	return nil
}

// Deregister removes a consumer from the group.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - group: Consumer group name
//   - consumer: Consumer instance id
//
// Returns:
//   - error: KV delete failure (removing an unknown consumer is not an error)
func (n *NATS) Deregister(ctx context.Context, group, consumer string) error {
	err := n.members.Purge(ctx, memberKey(group, consumer))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return wrapKVError("deregister consumer", err)
	}

	return nil
}

// SetTopic registers or replaces a topic's partition list.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - topic: Topic name
//   - partitions: Partition ids
//
// Returns:
//   - error: KV write failure
func (n *NATS) SetTopic(ctx context.Context, topic string, partitions []int32) error {
	value, err := json.Marshal(topicRecord{Partitions: partitions})
	if err != nil {
		return fmt.Errorf("failed to encode topic record: %w", err)
	}

	if _, err := n.topics.Put(ctx, topic, value); err != nil {
		return wrapKVError("set topic", err)
	}

	return nil
}

// Consumers returns every consumer instance registered for the group.
func (n *NATS) Consumers(ctx context.Context, group string) ([]string, error) {
	lister, err := n.members.ListKeysFiltered(ctx, group+".*")
	if err != nil {
		return nil, wrapKVError("list members", err)
	}

	prefix := group + "."
	var consumers []string
	for key := range lister.Keys() {
		consumers = append(consumers, key[len(prefix):])
	}

	return consumers, nil
}

// Subscriptions returns one consumer's registered subscription map.
//
// A consumer whose registration expired or was removed between the Consumers
// call and this one yields an empty map, not an error; it simply receives no
// partitions in the resulting snapshot.
func (n *NATS) Subscriptions(ctx context.Context, group, consumer string) (map[string]int, error) {
	entry, err := n.members.Get(ctx, memberKey(group, consumer))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return map[string]int{}, nil
		}

		return nil, wrapKVError("get member", err)
	}

	var record memberRecord
	if err := json.Unmarshal(entry.Value(), &record); err != nil {
		return nil, fmt.Errorf("failed to decode member record for %q: %w", consumer, err)
	}

	return record.Subscriptions, nil
}

// Partitions returns the registered partition ids for the requested topics.
// Unregistered topics are omitted from the result.
func (n *NATS) Partitions(ctx context.Context, topics []string) (map[string][]int32, error) {
	result := make(map[string][]int32, len(topics))
	for _, topic := range topics {
		entry, err := n.topics.Get(ctx, topic)
		if err != nil {
			if errors.Is(err, jetstream.ErrKeyNotFound) {
				continue
			}

			return nil, wrapKVError("get topic", err)
		}

		var record topicRecord
		if err := json.Unmarshal(entry.Value(), &record); err != nil {
			return nil, fmt.Errorf("failed to decode topic record for %q: %w", topic, err)
		}
		result[topic] = record.Partitions
	}

	return result, nil
}

func memberKey(group, consumer string) string {
	return group + "." + consumer
}

func wrapKVError(op string, err error) error {
	if natsutil.IsConnectivityError(err) {
		return fmt.Errorf("%s: connectivity issue: %w", op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
