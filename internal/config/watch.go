package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Watch reloads the config file on change and sends the new settings on the
// returned channel. Reloads that fail to decode are logged and skipped; when
// the receiver falls behind, stale settings are replaced by the newest ones.
// The channel is nil when v has no config file to watch.
func Watch(v *viper.Viper, log zerolog.Logger) <-chan Settings {
	if v.ConfigFileUsed() == "" {
		return nil
	}
	ch := make(chan Settings, 1)
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := Decode(v)
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name).Msg("config reload rejected")
			return
		}
		log.Info().Str("file", e.Name).Msg("config reloaded")
		for {
			select {
			case ch <- cfg.Settings:
				return
			default:
				select {
				case <-ch:
				default:
				}
			}
		}
	})
	v.WatchConfig()
	return ch
}
