package domain

import (
	"context"
	"encoding/json"

	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

// refetcher tells subscribers a bucket of cached reads went stale after a
// mutation. Delivery is fire-and-forget, consumers refetch from the source
// of truth, so a lost event only delays a refresh.
type refetcher struct {
	publisher pubsub.Publisher
}

func newRefetcher(publisher pubsub.Publisher) *refetcher {
	return &refetcher{publisher: publisher}
}

func (r *refetcher) invalidate(ctx context.Context, bucket, key string) {
	if r.publisher == nil {
		return
	}

	event := model.StaleEvent{Bucket: bucket, Key: key}
	msg, err := json.Marshal(event)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal stale event: %v", err)
		return
	}

	topic := xcontext.Configs(ctx).Kafka.StaleTopic
	pack := &pubsub.Pack{Key: []byte(bucket), Msg: msg}
	if err := r.publisher.Publish(ctx, topic, pack); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish stale event: %v", err)
	}
}
