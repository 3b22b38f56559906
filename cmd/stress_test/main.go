package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/sku-pricing/internal/adapter/handler/pb"
	"github.com/rl1809/sku-pricing/internal/config"
	"github.com/rl1809/sku-pricing/internal/logger"
)

var taxCodes = []string{"27", "18", "5", "AAM"}

func main() {
	addr := flag.String("addr", "localhost:50051", "pricing gRPC address")
	sku := flag.Uint("sku", 900001, "SKU to hammer")
	totalRequests := flag.Int("n", 200, "number of concurrent SetPrice calls")
	flag.Parse()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Encoding = "console"
	log, err := logger.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalw("failed to connect", "address", *addr, "error", err)
	}
	defer conn.Close()
	client := pb.NewPricingServiceClient(conn)

	before := historyLen(ctx, log, client, uint32(*sku))
	log.Infow("starting stress run", "address", *addr, "sku", *sku, "requests", *totalRequests, "history", before)

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent requests
	var wg conc.WaitGroup
	start := time.Now()

	for i := 0; i < *totalRequests; i++ {
		wg.Go(func() {
			_, err := client.SetPrice(ctx, &pb.SetPriceRequest{
				Sku:       uint32(*sku),
				NetPrice:  uint32(1000 + i),
				Vat:       taxCodes[i%len(taxCodes)],
				CreatedBy: fmt.Sprintf("stress-%d", i),
			})
			if err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		})
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("SKU:              %d\n", *sku)
	fmt.Printf("Total Requests:   %d\n", *totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Every call appends one entry, even when the notification fails.
	after := historyLen(ctx, log, client, uint32(*sku))
	if after-before == *totalRequests {
		fmt.Printf("PASS: history grew by %d\n", *totalRequests)
	} else {
		fmt.Printf("FAIL: expected history to grow by %d, got %d\n", *totalRequests, after-before)
	}

	record, err := client.GetPrice(ctx, &pb.GetPriceRequest{Sku: uint32(*sku)})
	if err != nil {
		log.Fatalw("failed to read price", "sku", *sku, "error", err)
	}

	want := expectedGross(record.NetPrice, record.Vat)
	if record.GrossPrice == want {
		fmt.Printf("PASS: gross %d matches net %d at %s\n", record.GrossPrice, record.NetPrice, record.Vat)
	} else {
		fmt.Printf("FAIL: gross %d, expected %d for net %d at %s\n", record.GrossPrice, want, record.NetPrice, record.Vat)
	}
}

func historyLen(ctx context.Context, log *logger.Logger, client pb.PricingServiceClient, sku uint32) int {
	stream, err := client.GetPriceHistory(ctx, &pb.GetPriceHistoryRequest{Sku: sku})
	if err != nil {
		log.Fatalw("failed to read history", "sku", sku, "error", err)
	}

	n := 0
	for {
		_, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return n
		}
		if err != nil {
			log.Fatalw("failed to read history", "sku", sku, "error", err)
		}
		n++
	}
}

func expectedGross(net uint32, vat string) uint32 {
	rate := map[string]int64{"27": 27, "18": 18, "5": 5}[vat]
	gross := decimal.NewFromInt(int64(net)).Mul(decimal.New(100+rate, -2)).Round(0)
	return uint32(gross.IntPart())
}
