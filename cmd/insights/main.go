package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/resale-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/resale-tracker-api/infrastructure/repository"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/insighting"
	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

func main() {
	start := flag.String("start", "", "data inicial (YYYY-MM-DD)")
	end := flag.String("end", "", "data final (YYYY-MM-DD)")
	flag.Parse()

	filters, err := parseFilters(*start, *end)
	if err != nil {
		logrus.WithError(err).Fatal("datas inválidas")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	service := insighting.NewService(cfg.Insights, repository.NewSoldItemRepository(conn))

	response, err := service.GetInsights(ctx, filters)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao montar relatório")
	}

	printReport(os.Stdout, response)
}

func parseFilters(start, end string) (*domain.InsightFilters, error) {
	filters := &domain.InsightFilters{}

	if start != "" {
		date, err := utils.ParseDate(start)
		if err != nil {
			return nil, err
		}
		filters.StartDate = date
	}

	if end != "" {
		date, err := utils.ParseDate(end)
		if err != nil {
			return nil, err
		}
		filters.EndDate = date
	}

	return filters, nil
}

func printReport(out io.Writer, response *domain.InsightsResponse) {
	fmt.Fprintf(out, "\nVendas de %s a %s\n", response.StartDate, response.EndDate)

	days := tablewriter.NewWriter(out)
	days.Header("Data", "Bruto", "Líquido")
	for _, bucket := range response.Data {
		days.Append(
			bucket.Date.Format(time.DateOnly),
			utils.FormatCurrency(bucket.Gross),
			utils.FormatCurrency(bucket.Net),
		)
	}
	days.Render()

	s := response.Summary
	summary := tablewriter.NewWriter(out)
	summary.Header("Vendas", "Bruto total", "Líquido total", "Bruto médio", "Líquido médio", "Margem média", "Margem total")
	summary.Append(
		fmt.Sprintf("%d", s.TotalCount),
		utils.FormatCurrency(s.TotalGross),
		utils.FormatCurrency(s.TotalNet),
		utils.FormatCurrency(s.AvgGross),
		utils.FormatCurrency(s.AvgNet),
		utils.FormatPercent(s.AvgNPM),
		utils.FormatPercent(s.TotalNPM),
	)
	summary.Render()
}
