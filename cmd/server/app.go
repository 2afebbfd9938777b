package main

import (
	"fmt"
	"time"

	"github.com/QuangTung97/customer-ban/config"
	"github.com/QuangTung97/customer-ban/pkg/cacheclient"
	"github.com/QuangTung97/customer-ban/pkg/memtable"
	"github.com/QuangTung97/customer-ban/pkg/redislock"
	"github.com/QuangTung97/customer-ban/repository"
	"github.com/QuangTung97/customer-ban/service/ban"
	"github.com/QuangTung97/customer-ban/service/notify"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type application struct {
	db          *sqlx.DB
	dispatcher  *notify.Dispatcher
	notifier    *notify.Notifier
	coordinator *ban.Coordinator
	sweeper     *ban.Sweeper

	closeLocker func()
}

func newChannelOptions(conf config.NotifyConfig, logger *zap.Logger) []notify.DispatcherOption {
	var options []notify.DispatcherOption
	for _, name := range conf.Channels {
		switch name {
		case notify.ChannelSMS:
			options = append(options, notify.WithChannel(
				notify.NewKavenegarChannel(conf.SMS.APIKey, conf.SMS.Sender), conf.SMS.Timeout(),
			))
		case notify.ChannelEmail:
			options = append(options, notify.WithChannel(
				notify.NewSMTPChannel(conf.Email), conf.Email.Timeout(),
			))
		case notify.ChannelLog:
			options = append(options, notify.WithChannel(
				notify.NewLogChannel(logger), conf.Log.Timeout(),
			))
		default:
			panic(fmt.Sprintf("unsupported notification channel: %q", name))
		}
	}
	return options
}

func newLocker(conf config.Config) (ban.Locker, func()) {
	switch conf.Sweep.LockBackend {
	case "memcache":
		if conf.Sweep.Timeout() >= cacheclient.LeaseTTLSeconds*time.Second {
			panic("sweep.timeout_seconds must be shorter than the memcache lease")
		}
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
		return client, func() { _ = client.Close() }

	case "redis":
		client := conf.Redis.NewClient()
		return redislock.New(client, conf.Sweep.Timeout()+time.Minute), func() { _ = client.Close() }

	default:
		panic(fmt.Sprintf("unsupported sweep lock backend: %q", conf.Sweep.LockBackend))
	}
}

func newApplication(conf config.Config, logger *zap.Logger) *application {
	templates, err := notify.LoadTemplates(conf.Notify.TemplatesFile)
	if err != nil {
		panic(err)
	}

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	banRepo := repository.NewBan()

	options := newChannelOptions(conf.Notify, logger)
	dispatcher := notify.NewDispatcher(provider, repository.NewDelivery(), templates, options...)

	notifier := notify.NewNotifier(dispatcher, notify.WithRetry(
		conf.Notify.Retry.InitialInterval(),
		conf.Notify.Retry.MaxInterval(),
		conf.Notify.Retry.MaxAttempts,
	))

	coordinator := ban.NewCoordinator(provider, repository.NewCustomer(), banRepo, notifier,
		ban.WithNotifyChannels(dispatcher.Channels()...),
		ban.WithStatusCache(memtable.New(conf.StatusCache.SizeBytes), conf.StatusCache.TTL()),
	)

	locker, closeLocker := newLocker(conf)
	sweeper := ban.NewSweeper(provider, banRepo, coordinator, locker, conf.Sweep, logger)

	logger.Info("application initialized",
		zap.Strings("notify.channels", dispatcher.Channels()),
		zap.String("sweep.lock_backend", conf.Sweep.LockBackend),
	)

	return &application{
		db:          db,
		dispatcher:  dispatcher,
		notifier:    notifier,
		coordinator: coordinator,
		sweeper:     sweeper,
		closeLocker: closeLocker,
	}
}

func (a *application) close() {
	a.closeLocker()
	_ = a.db.Close()
}
