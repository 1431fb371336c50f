package notifications

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/imroc/req/v3"
)

const defaultPoolSize = 4

// Webhook posts plain-text summaries to the configured finance-team webhook
// endpoints (Slack-compatible "text" payload). Delivery to the endpoints
// happens in parallel.
type Webhook struct {
	client *req.Client
	urls   []string
}

func NewWebhook(
	urls []string,
	cl *req.Client,
) *Webhook {
	return &Webhook{
		client: cl,
		urls:   urls,
	}
}

func (w *Webhook) SendMessage(
	ctx context.Context,
	text string,
) error {
	if len(w.urls) == 0 {
		return nil
	}

	pool := workerpool.New(defaultPoolSize)

	var mu sync.Mutex
	var finalErr error

	for _, url1 := range w.urls {
		url := url1

		pool.Submit(func() {
			resp, err := w.client.R().
				SetBody(map[string]interface{}{
					"text": text,
				}).
				SetContext(ctx).
				Post(url)

			if err == nil && resp.IsErrorState() {
				err = errors.Newf("unexpected status code: %v and message %v",
					resp.StatusCode, resp.String())
			}

			if err != nil {
				mu.Lock()
				finalErr = errors.Join(finalErr, errors.Wrapf(err, "webhook %s", url))
				mu.Unlock()
			}
		})
	}

	pool.StopWait()

	return finalErr
}
