package notify

import (
	"time"

	"himaya-assistant/internal/common/config"
)

type Config struct {
	Enabled  bool
	SenderID string
	MaxItems int
	Timeout  time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	sms := cfg.Notifications.SMS
	return &Config{
		Enabled:  sms.Enabled,
		SenderID: sms.SenderID,
		MaxItems: sms.MaxItems,
		Timeout:  config.GetDuration(sms.Timeout),
	}
}
