package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wikifolio-trading/src/client"
	"wikifolio-trading/src/models"
	"wikifolio-trading/src/utils"
)

type RunArgs struct {
	Symbol string
	GoEnv  string
}

type RunResult struct {
	Wikifolio *models.Wikifolio
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/fetch_wikifolio/main.go --symbol WF0ABCDEF",
	Short: "Fetch the portfolio snapshot of a wikifolio",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		if result, err := Run(RunArgs{
			Symbol: symbol,
			GoEnv:  goEnv,
		}); err != nil {
			log.Errorf("Error: %v", err)
		} else {
			printWikifolio(result.Wikifolio)
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

	wikifolio, err := api.GetWikifolio(args.Symbol)
	if err != nil {
		return RunResult{}, fmt.Errorf("error fetching wikifolio: %v", err)
	}

	return RunResult{Wikifolio: wikifolio}, nil
}

func printWikifolio(wikifolio *models.Wikifolio) {
	symbol := ""
	if wikifolio.WikifolioSymbol != nil {
		symbol = *wikifolio.WikifolioSymbol
	}

	currency := ""
	if wikifolio.BaseCurrency != nil {
		currency = *wikifolio.BaseCurrency
	}

	fmt.Printf("wikifolio %s: total value %s %s, cash balance %s %s\n",
		symbol, wikifolio.TotalValue.String(), currency, wikifolio.CashAccountCurrentBalance.String(), currency)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Underlying", "Quantity", "Avg Purchase Price"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, position := range wikifolio.Positions {
		underlying := ""
		if position.Underlying != nil {
			underlying = *position.Underlying
		}

		avgPrice := ""
		if position.AveragePurchasePrice != nil {
			avgPrice = position.AveragePurchasePrice.String()
		}

		table.Append([]string{underlying, position.Quantity.String(), avgPrice})
	}

	table.Render()
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("symbol", "", "The wikifolio symbol.")

	runCmd.MarkPersistentFlagRequired("symbol")

	runCmd.Execute()
}
