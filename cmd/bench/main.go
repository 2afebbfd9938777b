package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/customer-ban/config"
	"github.com/QuangTung97/customer-ban/pkg/memtable"
	"github.com/QuangTung97/customer-ban/repository"
	"github.com/QuangTung97/customer-ban/service/ban"
	"github.com/QuangTung97/customer-ban/service/notify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchImposeCommand(),
		benchStatusCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type nopNotifier struct {
}

func (nopNotifier) Notify(context.Context, notify.Notification) {
}

func newCoordinator(conf config.Config) *ban.Coordinator {
	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	return ban.NewCoordinator(provider, repository.NewCustomer(), repository.NewBan(), nopNotifier{},
		ban.WithStatusCache(memtable.New(conf.StatusCache.SizeBytes), conf.StatusCache.TTL()),
	)
}

func registerCustomers(coord *ban.Coordinator, num int) []benchCustomer {
	prefix := time.Now().UnixNano() % 1000000000
	result := make([]benchCustomer, 0, num)
	for i := 0; i < num; i++ {
		customer, err := coord.Register(context.Background(), ban.RegisterInput{
			Name:  fmt.Sprintf("Bench %d", i),
			Phone: fmt.Sprintf("+1%09d%04d", prefix, i),
		})
		if err != nil {
			panic(err)
		}
		result = append(result, benchCustomer{id: customer.ID})
	}
	return result
}

type benchCustomer struct {
	id string
}

func printDurations(durations [][]time.Duration) {
	history := make([]time.Duration, 0)
	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	if len(history) == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	numHistory := len(history)
	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

// benchImpose races many goroutines imposing bans on the same customers, exactly one must win per round
func benchImpose(numThreads int, numCustomers int) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	coord := newCoordinator(conf)

	customers := registerCustomers(coord, numCustomers)
	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()
	violations := 0

	for _, customer := range customers {
		var mu sync.Mutex
		success := 0

		var wg sync.WaitGroup
		wg.Add(numThreads)
		for th := 0; th < numThreads; th++ {
			threadIndex := th
			go func() {
				defer wg.Done()

				start := time.Now()
				_, err := coord.ImposeBan(context.Background(), customer.id, "bench", 1, "bench")
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))

				if err == nil {
					mu.Lock()
					success++
					mu.Unlock()
					return
				}
				if !errors.Is(err, ban.ErrConflict) {
					logger.Error("impose ban", zap.Error(err))
				}
			}()
		}
		wg.Wait()

		if success != 1 {
			violations++
			logger.Error("exclusive impose violated", zap.String("customer.id", customer.id), zap.Int("success", success))
		}
	}

	fmt.Println("TOTAL TIME", time.Since(totalStart))
	fmt.Println("VIOLATIONS:", violations)
	printDurations(durations)
}

func benchStatus(numThreads int, numRequests int) {
	conf := config.Load()
	coord := newCoordinator(conf)

	customers := registerCustomers(coord, 10)
	for i, c := range customers {
		if i%2 == 0 {
			if _, err := coord.ImposeBan(context.Background(), c.id, "bench", 0, "bench"); err != nil {
				panic(err)
			}
		}
	}

	durations := make([][]time.Duration, numThreads)
	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()
			for i := 0; i < numRequests; i++ {
				start := time.Now()
				_, err := coord.GetCustomerStatus(context.Background(), customers[i%len(customers)].id)
				if err != nil {
					fmt.Println(err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()

	fmt.Println("TOTAL TIME", time.Since(totalStart))
	printDurations(durations)
}

func benchImposeCommand() *cobra.Command {
	var numThreads int
	var numCustomers int

	cmd := &cobra.Command{
		Use:   "impose",
		Short: "concurrent impose on the same customers",
		Run: func(cmd *cobra.Command, args []string) {
			benchImpose(numThreads, numCustomers)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", 50, "goroutines per customer")
	cmd.Flags().IntVar(&numCustomers, "customers", 100, "number of customers")
	return cmd
}

func benchStatusCommand() *cobra.Command {
	var numThreads int
	var numRequests int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "read customer status through the cache",
		Run: func(cmd *cobra.Command, args []string) {
			benchStatus(numThreads, numRequests)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of goroutines")
	cmd.Flags().IntVar(&numRequests, "requests", 2000, "requests per goroutine")
	return cmd
}
