package metric

import (
	"log/slog"
	"time"

	"impactbot/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func storeRead(as *utils.AppState, clearTickerInterval *time.Duration) {
	storeRead := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "impactbot_store_read_microsec",
		Help: "The latency of a tabular store read in microseconds",
	})
	good := true
	if err := prometheus.Register(storeRead); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register impactbot_store_read_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("impactbot_store_read_microsec metric registered")
		storeRead.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(storeRead) {
				case true:
					slog.Debug("impactbot_store_read_microsec metric unregistered")
				case false:
					slog.Warn("impactbot_store_read_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.StoreRead:
				storeRead.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				storeRead.Set(0)
			}
		}
	}()
}

func storeWrite(as *utils.AppState, clearTickerInterval *time.Duration) {
	storeWrite := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "impactbot_store_write_microsec",
		Help: "The latency of a tabular store write in microseconds",
	})
	good := true
	if err := prometheus.Register(storeWrite); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register impactbot_store_write_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("impactbot_store_write_microsec metric registered")
		storeWrite.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(storeWrite) {
				case true:
					slog.Debug("impactbot_store_write_microsec metric unregistered")
				case false:
					slog.Warn("impactbot_store_write_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.StoreWrite:
				storeWrite.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				storeWrite.Set(0)
			}
		}
	}()
}

func discordHeartbeatLatency(as *utils.AppState, tickerInterval *time.Duration) {
	discordHeartbeatLatency := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "impactbot_discord_heartbeat_latency_microsec",
		Help: "The latency of a discord heartbeat in microseconds",
	})
	good := true
	if err := prometheus.Register(discordHeartbeatLatency); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("impactbot_discord_heartbeat_latency_microsec metric can't register", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("impactbot_discord_heartbeat_latency_microsec metric registered")
		discordHeartbeatLatency.Set(0)
	}
	go func() {
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(discordHeartbeatLatency) {
				case true:
					slog.Debug("impactbot_discord_heartbeat_latency_microsec metric unregistered")
				case false:
					slog.Warn("impactbot_discord_heartbeat_latency_microsec metric not registered")
				}
				return
			case <-ticker.C:
				latency := as.DgSession.HeartbeatLatency().Microseconds()
				discordHeartbeatLatency.Set(float64(latency))
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	storeRead(as, &clearTickerInterval)
	storeWrite(as, &clearTickerInterval)
	discordHeartbeatLatency(as, &tickerInterval)
}
