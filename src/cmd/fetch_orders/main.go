package main

import (
	"fmt"
	"os"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wikifolio-trading/src/client"
	"wikifolio-trading/src/models"
	"wikifolio-trading/src/utils"
)

type RunArgs struct {
	Symbol string
	Status string
	GoEnv  string
}

type RunResult struct {
	Orders []models.OrderStatus
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/fetch_orders/main.go --symbol WF0ABCDEF --status Executed",
	Short: "Fetch the orders of a wikifolio, optionally filtered by status",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		status, err := cmd.Flags().GetString("status")
		if err != nil {
			log.Fatalf("error getting status: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		if result, err := Run(RunArgs{
			Symbol: symbol,
			Status: status,
			GoEnv:  goEnv,
		}); err != nil {
			log.Errorf("Error: %v", err)
		} else {
			if outDir == "" {
				printOrders(result.Orders)
			} else {
				csvPath, err := utils.ExportToCsv(outDir, result.Orders, "fetch_orders")
				if err != nil {
					log.Errorf("Failed to export to CSV: %v", err)
				} else {
					fmt.Println("CSV file written to: ", csvPath)
				}
			}
		}
	},
}

func Run(args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	clientAPIKey := os.Getenv("WIKIFOLIO_CLIENT_API_KEY")
	if clientAPIKey == "" {
		log.Fatalf("missing WIKIFOLIO_CLIENT_API_KEY environment variable")
	}

	userAPIKey := os.Getenv("WIKIFOLIO_USER_API_KEY")
	if userAPIKey == "" {
		log.Fatalf("missing WIKIFOLIO_USER_API_KEY environment variable")
	}

	baseURL := os.Getenv("WIKIFOLIO_TRADING_API_URL")
	if baseURL == "" {
		baseURL = client.DefaultBaseURL
	}

	api, err := client.NewWikifolioTradingAPIWithBaseURL(baseURL, clientAPIKey, userAPIKey)
	if err != nil {
		return RunResult{}, fmt.Errorf("error creating trading client: %v", err)
	}

	defer func() {
		if err := api.Logout(); err != nil {
			log.Errorf("error terminating session: %v", err)
		}
	}()

	orders, err := api.ListOrders(args.Symbol, args.Status)
	if err != nil {
		return RunResult{}, fmt.Errorf("error fetching orders: %v", err)
	}

	return RunResult{Orders: orders}, nil
}

func printOrders(orders []models.OrderStatus) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Order ID", "Type", "Status", "Amount", "Limit", "Stop", "Created", "Execution Price"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	var executionPrices []float64
	for _, order := range orders {
		limit := ""
		if order.LimitPrice != nil {
			limit = order.LimitPrice.String()
		}

		stop := ""
		if order.StopPrice != nil {
			stop = order.StopPrice.String()
		}

		executed := ""
		if order.ExecutionPrice != nil {
			executed = order.ExecutionPrice.String()

			price, _ := order.ExecutionPrice.Float64()
			executionPrices = append(executionPrices, price)
		}

		table.Append([]string{
			order.OrderID,
			string(order.OrderType),
			order.OrderStatus,
			order.Amount.String(),
			limit,
			stop,
			order.CreationDate.Format("2006-01-02"),
			executed,
		})
	}

	table.Render()

	if len(executionPrices) > 0 {
		mean, err := stats.Mean(executionPrices)
		if err != nil {
			log.Errorf("failed to calculate mean execution price: %v", err)
			return
		}

		median, err := stats.Median(executionPrices)
		if err != nil {
			log.Errorf("failed to calculate median execution price: %v", err)
			return
		}

		fmt.Printf("executed: %d orders, mean price: %.2f, median price: %.2f\n", len(executionPrices), mean, median)
	}
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("symbol", "", "The wikifolio symbol.")
	runCmd.PersistentFlags().String("status", "", "Optional order status filter.")
	runCmd.PersistentFlags().String("outDir", "", "The directory to write the output to.")

	runCmd.MarkPersistentFlagRequired("symbol")

	runCmd.Execute()
}
