package notify

import (
	"context"
	"encoding/json"
	"fmt"

	pubnubgo "github.com/pubnub/go/v7"

	"github.com/vogiaan1904/smartq-queue/config"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// Notifier pushes a payload to a realtime channel the patient's device
// subscribes to.
type Notifier interface {
	Publish(ctx context.Context, channel string, payload any) error
	Close()
}

type pubnubNotifier struct {
	pn *pubnubgo.PubNub
	l  logger.Logger
}

func NewPubNubNotifier(cfg config.PubNubConfig, l logger.Logger) (Notifier, error) {
	if cfg.PublishKey == "" || cfg.SubscribeKey == "" {
		return nil, fmt.Errorf("pubnub keys are required")
	}

	pnCfg := pubnubgo.NewConfigWithUserId(pubnubgo.UserId(cfg.UUID))
	pnCfg.PublishKey = cfg.PublishKey
	pnCfg.SubscribeKey = cfg.SubscribeKey

	return &pubnubNotifier{
		pn: pubnubgo.NewPubNub(pnCfg),
		l:  l,
	}, nil
}

func (n *pubnubNotifier) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	publish := n.pn.PublishWithContext(ctx)
	publish.Channel(channel).Message(string(data))

	resp, _, err := publish.Execute()
	if err != nil {
		n.l.Error("Failed to publish notification", "channel", channel, "error", err)
		return err
	}

	n.l.Debug("Notification published", "channel", channel, "timestamp", resp.Timestamp)
	return nil
}

func (n *pubnubNotifier) Close() {
	n.pn.Destroy()
}

// logNotifier is the fallback when PubNub is disabled. Notifications land in
// the server log instead of a realtime channel.
type logNotifier struct {
	l logger.Logger
}

func NewLogNotifier(l logger.Logger) Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Publish(ctx context.Context, channel string, payload any) error {
	n.l.Info("Notification", "channel", channel, "payload", payload)
	return nil
}

func (n *logNotifier) Close() {}
