package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wikifolio-trading/src/client"
	"wikifolio-trading/src/models"
	"wikifolio-trading/src/utils"
)

type RunArgs struct {
	Symbol     string
	Isin       string
	Amount     string
	LimitPrice string
	StopPrice  string
	Side       string
	ValidDays  int
	GoEnv      string
}

type RunResult struct {
	OrderID string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/place_limit_order/main.go --symbol WF0ABCDEF --isin DE0007164600 --side buy --amount 10 --limit 25.50",
	Short: "Place a limit order on a wikifolio",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		isin, err := cmd.Flags().GetString("isin")
		if err != nil {
			log.Fatalf("error getting isin: %v", err)
		}

		amount, err := cmd.Flags().GetString("amount")
		if err != nil {
			log.Fatalf("error getting amount: %v", err)
		}

		limitPrice, err := cmd.Flags().GetString("limit")
		if err != nil {
			log.Fatalf("error getting limit: %v", err)
		}

		stopPrice, err := cmd.Flags().GetString("stop")
		if err != nil {
			log.Fatalf("error getting stop: %v", err)
		}

		side, err := cmd.Flags().GetString("side")
		if err != nil {
			log.Fatalf("error getting side: %v", err)
		}

		validDays, err := cmd.Flags().GetInt("validDays")
		if err != nil {
			log.Fatalf("error getting validDays: %v", err)
		}

		if result, err := Run(RunArgs{
			Symbol:     symbol,
			Isin:       isin,
			Amount:     amount,
			LimitPrice: limitPrice,
			StopPrice:  stopPrice,
			Side:       side,
			ValidDays:  validDays,
			GoEnv:      goEnv,
		}); err != nil {
			log.Errorf("Error: %v", err)
		} else {
			fmt.Println("placed order: ", result.OrderID)
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

	amount, err := decimal.NewFromString(args.Amount)
	if err != nil {
		return RunResult{}, fmt.Errorf("error parsing amount: %v", err)
	}

	limitPrice, err := decimal.NewFromString(args.LimitPrice)
	if err != nil {
		return RunResult{}, fmt.Errorf("error parsing limit price: %v", err)
	}

	var stopPrice *decimal.Decimal
	if args.StopPrice != "" {
		parsed, err := decimal.NewFromString(args.StopPrice)
		if err != nil {
			return RunResult{}, fmt.Errorf("error parsing stop price: %v", err)
		}
		stopPrice = &parsed
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

	orderID, err := api.PlaceLimitOrder(models.PlaceLimitOrderRequest{
		WikifolioSymbol: args.Symbol,
		UnderlyingIsin:  args.Isin,
		Amount:          amount,
		LimitPrice:      limitPrice,
		ValidUntil:      time.Now().AddDate(0, 0, args.ValidDays),
		Side:            args.Side,
		StopPrice:       stopPrice,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("error placing order: %v", err)
	}

	return RunResult{OrderID: orderID}, nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("symbol", "", "The wikifolio symbol.")
	runCmd.PersistentFlags().String("isin", "", "The ISIN of the underlying to trade.")
	runCmd.PersistentFlags().String("amount", "", "The order amount.")
	runCmd.PersistentFlags().String("limit", "", "The limit price.")
	runCmd.PersistentFlags().String("stop", "", "Optional stop price (buy orders only).")
	runCmd.PersistentFlags().String("side", "buy", "The order side: buy or sell.")
	runCmd.PersistentFlags().Int("validDays", 14, "Days until the order expires.")

	runCmd.MarkPersistentFlagRequired("symbol")
	runCmd.MarkPersistentFlagRequired("isin")
	runCmd.MarkPersistentFlagRequired("amount")
	runCmd.MarkPersistentFlagRequired("limit")

	runCmd.Execute()
}
