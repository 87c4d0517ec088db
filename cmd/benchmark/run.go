package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exemplar/itemsvc/internal/bench"
	"github.com/exemplar/itemsvc/pkg/client"
)

var benchmarkCmd = &cobra.Command{
	Use:     "benchmark",
	Aliases: []string{"run"},
	Short:   "Run a fixed number of requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		requests, _ := cmd.Flags().GetInt("requests")
		if requests < 1 {
			return fmt.Errorf("requests must be at least 1")
		}

		target, err := newTarget()
		if err != nil {
			return err
		}
		defer target.cleanup()

		op, err := target.operation(viper.GetString("operation"))
		if err != nil {
			return err
		}

		fmt.Printf("Running %d requests against %s (%d workers)\n\n",
			requests, viper.GetString("server"), viper.GetInt("concurrency"))

		result := bench.Run(context.Background(), bench.Config{
			Requests:    requests,
			Concurrency: viper.GetInt("concurrency"),
		}, op)

		printResult(result)
		return nil
	},
}

var loadTestCmd = &cobra.Command{
	Use:   "load-test",
	Short: "Run requests for a fixed duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetDuration("duration")
		if duration <= 0 {
			return fmt.Errorf("duration must be positive")
		}

		target, err := newTarget()
		if err != nil {
			return err
		}
		defer target.cleanup()

		op, err := target.operation(viper.GetString("operation"))
		if err != nil {
			return err
		}

		fmt.Printf("Running load for %s against %s (%d workers)\n\n",
			duration, viper.GetString("server"), viper.GetInt("concurrency"))

		result := bench.RunForDuration(context.Background(), bench.Config{
			Duration:    duration,
			Concurrency: viper.GetInt("concurrency"),
		}, op)

		printResult(result)
		return nil
	},
}

func init() {
	benchmarkCmd.Flags().IntP("requests", "n", 1000, "total number of requests")
	loadTestCmd.Flags().DurationP("duration", "d", 30*time.Second, "test duration")
}

// target wraps a client plus a seed item so read and write operations
// have something to hit. Seeded items are removed on cleanup.
type target struct {
	client *client.Client
	seedID string
	seq    atomic.Int64
}

func newTarget() (*target, error) {
	opts := []client.Option{}
	switch {
	case viper.GetString("token") != "":
		opts = append(opts, client.WithCredentials(client.BearerToken(viper.GetString("token"))))
	case viper.GetString("api-key") != "":
		opts = append(opts, client.WithCredentials(client.APIKey(viper.GetString("api-key"))))
	case viper.GetString("username") != "":
		opts = append(opts, client.WithCredentials(client.Password(
			viper.GetString("username"), viper.GetString("password"))))
	}

	t := &target{client: client.New(viper.GetString("server"), opts...)}

	item, err := t.client.CreateItem(context.Background(), client.CreateItemRequest{
		Name: fmt.Sprintf("bench-seed-%d", time.Now().UnixNano()),
	})
	if err != nil {
		return nil, fmt.Errorf("seed item: %w", err)
	}
	t.seedID = item.ID
	return t, nil
}

func (t *target) cleanup() {
	_ = t.client.DeleteItem(context.Background(), t.seedID)
}

func (t *target) operation(name string) (bench.Operation, error) {
	switch name {
	case "create":
		return t.createOp, nil
	case "get":
		return t.getOp, nil
	case "list":
		return t.listOp, nil
	case "update":
		return t.updateOp, nil
	case "delete":
		return t.deleteOp, nil
	case "mixed":
		ops := []bench.Operation{t.createOp, t.getOp, t.listOp, t.updateOp}
		return func(ctx context.Context) error {
			return ops[rand.Intn(len(ops))](ctx)
		}, nil
	}
	return nil, fmt.Errorf("unknown operation %q", name)
}

func (t *target) createOp(ctx context.Context) error {
	_, err := t.client.CreateItem(ctx, client.CreateItemRequest{
		Name: fmt.Sprintf("bench-%d-%d", time.Now().UnixNano(), t.seq.Add(1)),
	})
	return err
}

func (t *target) getOp(ctx context.Context) error {
	_, err := t.client.GetItem(ctx, t.seedID)
	return err
}

func (t *target) listOp(ctx context.Context) error {
	_, err := t.client.ListItems(ctx, client.ListOptions{PageSize: 20})
	return err
}

func (t *target) updateOp(ctx context.Context) error {
	desc := fmt.Sprintf("updated %d", t.seq.Add(1))
	_, err := t.client.UpdateItem(ctx, t.seedID, client.UpdateItemRequest{Description: &desc})
	return err
}

func (t *target) deleteOp(ctx context.Context) error {
	item, err := t.client.CreateItem(ctx, client.CreateItemRequest{
		Name: fmt.Sprintf("bench-del-%d-%d", time.Now().UnixNano(), t.seq.Add(1)),
	})
	if err != nil {
		return err
	}
	return t.client.DeleteItem(ctx, item.ID)
}
