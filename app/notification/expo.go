package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

var pushClient = &http.Client{Timeout: 10 * time.Second}

// sendPush posts one message to the Expo push gateway.
func sendPush(conf *config.Config, msg model.PushMessage) error {
	endpoint := conf.ExpoPushURL
	if endpoint == "" {
		endpoint = defaultExpoPushURL
	}

	if msg.Sound == "" {
		msg.Sound = "default"
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "unable to marshal push message")
	}

	resp, err := pushClient.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "push gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.Errorf("push gateway responded with %d", resp.StatusCode)
	}
	return nil
}

// sendPushToTokens fans a message out to every token. Per-token failures are
// logged and skipped.
func sendPushToTokens(conf *config.Config, tokens []string, title, body string, data map[string]interface{}) {
	for _, token := range tokens {
		msg := model.PushMessage{
			To:    token,
			Title: title,
			Body:  body,
			Data:  data,
		}
		if err := sendPush(conf, msg); err != nil {
			logrus.WithError(err).WithField("token", token).Warn("unable to deliver push")
		}
	}
}
