// Package events publishes placement lifecycle notifications.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event types
const (
	DriveStatusChanged       = "drive.status_changed"
	ApplicationStatusChanged = "application.status_changed"
	OfferIssued              = "offer.issued"
)

// ErrEmptyChannel is returned when a publisher has no channel configured
var ErrEmptyChannel = errors.New("events: channel cannot be empty")

// Event is the JSON message sent to subscribers
type Event struct {
	Type       string            `json:"type"`
	EntityID   string            `json:"entity_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// New builds an event stamped with the current UTC time
func New(eventType, entityID string, attrs map[string]string) Event {
	return Event{Type: eventType, EntityID: entityID, Attributes: attrs, OccurredAt: time.Now().UTC()}
}

// Publisher sends events to interested consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Config holds Redis connection settings for the publisher
type Config struct {
	Addr        string
	Password    string
	DB          int
	Prefix      string
	DialTimeout time.Duration
}

// Channel returns the pub/sub channel name for the prefix
func Channel(prefix string) string {
	if prefix == "" {
		prefix = "placement"
	}
	return prefix + ":events"
}

// RedisPublisher publishes events on a Redis pub/sub channel
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher. The connection is opened lazily.
func NewRedisPublisher(cfg Config) *RedisPublisher {
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	return &RedisPublisher{client: client, channel: Channel(cfg.Prefix)}
}

// Ping verifies the Redis connection
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Publish implements Publisher
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if p.channel == "" {
		return ErrEmptyChannel
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", event.Type, err)
	}
	return nil
}

// Close implements Publisher
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Nop drops every event
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Multi fans every event out to several publishers
type Multi []Publisher

// Publish delivers to every publisher and joins their errors
func (m Multi) Publish(ctx context.Context, event Event) error {
	var errs error
	for _, p := range m {
		errs = errors.Join(errs, p.Publish(ctx, event))
	}
	return errs
}

// Close closes every publisher
func (m Multi) Close() error {
	var errs error
	for _, p := range m {
		errs = errors.Join(errs, p.Close())
	}
	return errs
}

// Recorder keeps published events in memory. Useful in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

// Publish implements Publisher
func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, event)
	return nil
}

// Close implements Publisher
func (r *Recorder) Close() error { return nil }

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
