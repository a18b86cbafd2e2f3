package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"sealbox/internal/domain"
)

// benchmark: generate a throwaway key pair, run timed encrypt/decrypt
// rounds, then push a message burst through the queue.
func benchmarkCmd() *cobra.Command {
	var (
		rounds   int
		messages int
	)
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time engine and queue operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := appCtx.Engine.GenerateKeyPair()
			if err != nil {
				return err
			}

			plaintext := []byte("Performance test message for the sealbox encryption engine")
			for i := 0; i < rounds; i++ {
				env, err := appCtx.Engine.Encrypt(plaintext, kp.Public)
				if err != nil {
					return err
				}
				if _, err := appCtx.Engine.Decrypt(env, kp.Private); err != nil {
					return err
				}
			}

			stats := appCtx.Engine.Snapshot()
			fmt.Println("Engine benchmark:")
			fmt.Printf("  Key generation: %s\n", stats.AvgKeyGen())
			fmt.Printf("  Encryption:     %s avg over %d ops\n", stats.AvgEncrypt(), stats.Encrypts)
			fmt.Printf("  Decryption:     %s avg over %d ops\n", stats.AvgDecrypt(), stats.Decrypts)

			// Queue burst: enqueue then drain everything.
			ctx := cmd.Context()
			const conversation = "benchmark"
			start := time.Now()
			for i := 0; i < messages; i++ {
				msg := domain.QueuedMessage{
					ID:           "bench-" + strconv.Itoa(i),
					Conversation: conversation,
					Sender:       "benchmark",
					Content:      "Test message number " + strconv.Itoa(i),
					Timestamp:    uint64(time.Now().Unix()),
					Kind:         domain.KindText,
				}
				if err := appCtx.Queue.Enqueue(msg); err != nil {
					return err
				}
			}
			for appCtx.Queue.Depth(conversation) > 0 {
				if _, err := appCtx.Queue.Drain(ctx, conversation, func(context.Context, domain.QueuedMessage) error {
					return nil
				}); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			qm := appCtx.Queue.Snapshot()
			fmt.Println("Queue benchmark:")
			fmt.Printf("  Messages processed: %d in %s\n", qm.Processed, elapsed)
			fmt.Printf("  Average per message: %s\n", qm.AvgProcessing)
			fmt.Printf("  Throughput: %.0f msg/sec\n", float64(qm.Processed)/elapsed.Seconds())
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 10, "encrypt/decrypt rounds")
	cmd.Flags().IntVar(&messages, "messages", 1000, "messages for the queue burst")
	return cmd
}
