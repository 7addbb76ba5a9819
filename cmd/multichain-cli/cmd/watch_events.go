package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"multichain-send/internal/event"
	"multichain-send/internal/service/mq"
	"multichain-send/pkg/config"
	"multichain-send/pkg/database"
	"multichain-send/pkg/logger"
)

var watchEventsCmd = &cobra.Command{
	Use:   "watch-events",
	Short: "Print transaction_submitted events as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		group, _ := cmd.Flags().GetString("group")
		cfg := config.Global

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var consumer mq.Consumer
		switch cfg.Events.Driver {
		case "kafka":
			consumer = mq.NewKafkaConsumer(cfg.Events.Brokers, group)
		case "redis":
			rdb, err := database.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				return err
			}
			host, _ := os.Hostname()
			consumer = mq.NewRedisConsumer(rdb, group, host)
		default:
			return fmt.Errorf("events driver %q cannot be watched", cfg.Events.Driver)
		}
		defer consumer.Close()

		return consumer.Subscribe(ctx, cfg.Events.Topic, func(msg *mq.Message) error {
			ev, err := event.ParseSubmitted(msg.Payload)
			if err != nil {
				logger.Warn("skipping event", zap.String("id", msg.ID), zap.Error(err))
				return nil
			}
			fmt.Printf("%s %s account=%s to=%s amount=%s fee=%s tx=%s\n",
				ev.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"), ev.Network, ev.AccountID, ev.Recipient, ev.Amount, ev.Fee, ev.TxID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchEventsCmd)

	watchEventsCmd.Flags().String("group", "multichain-cli", "Consumer group")
}
