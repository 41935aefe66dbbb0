package ebayclient

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	ebaydomain "github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/domain"
)

const (
	callGetMyeBaySelling = "GetMyeBaySelling"
	maxSoldListDays      = 60
	maxEntriesPerPage    = 200
)

// GetSoldList busca as vendas dos últimos durationInDays dias (máximo 60), página a página
func (c *EbayClient) GetSoldList(ctx context.Context, durationInDays, pageSize int) ([]ebaydomain.SoldTransaction, error) {
	if durationInDays <= 0 || durationInDays > maxSoldListDays {
		durationInDays = maxSoldListDays
	}
	pageSize = normalizePageSize(pageSize)

	sold := make([]ebaydomain.SoldTransaction, 0)
	for page := 1; ; page++ {
		request := ebaydomain.GetMyeBaySellingRequest{
			SoldList: &ebaydomain.ListRequest{
				Include:        true,
				DurationInDays: durationInDays,
				Pagination:     ebaydomain.Pagination{EntriesPerPage: pageSize, PageNumber: page},
			},
		}

		resp, err := c.callGetMyeBaySelling(ctx, request)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar página %d de vendas", page)
		}
		if resp.SoldList == nil {
			break
		}

		for _, ot := range resp.SoldList.OrderTransactions {
			if ot.Transaction != nil {
				sold = append(sold, *ot.Transaction)
			}
			if ot.Order != nil {
				sold = append(sold, ot.Order.Transactions...)
			}
		}

		if page >= resp.SoldList.PaginationResult.TotalNumberOfPages {
			break
		}
	}

	return sold, nil
}

// GetActiveList busca os anúncios ativos, página a página
func (c *EbayClient) GetActiveList(ctx context.Context, pageSize int) ([]ebaydomain.ActiveItem, error) {
	pageSize = normalizePageSize(pageSize)

	active := make([]ebaydomain.ActiveItem, 0)
	for page := 1; ; page++ {
		request := ebaydomain.GetMyeBaySellingRequest{
			ActiveList: &ebaydomain.ListRequest{
				Include:    true,
				Pagination: ebaydomain.Pagination{EntriesPerPage: pageSize, PageNumber: page},
			},
		}

		resp, err := c.callGetMyeBaySelling(ctx, request)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar página %d de anúncios ativos", page)
		}
		if resp.ActiveList == nil {
			break
		}

		active = append(active, resp.ActiveList.Items...)

		if page >= resp.ActiveList.PaginationResult.TotalNumberOfPages {
			break
		}
	}

	return active, nil
}

func (c *EbayClient) callGetMyeBaySelling(ctx context.Context, request ebaydomain.GetMyeBaySellingRequest) (*ebaydomain.GetMyeBaySellingResponse, error) {
	payload, err := xml.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar XML")
	}
	payload = append([]byte(xml.Header), payload...)

	return withTokenRetry(ctx, c.tokens, func(token string) (*ebaydomain.GetMyeBaySellingResponse, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TradingURL, bytes.NewReader(payload))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}

		req.Header.Set("X-EBAY-API-COMPATIBILITY-LEVEL", c.cfg.CompatibilityLevel)
		req.Header.Set("X-EBAY-API-DEV-NAME", c.cfg.DevID)
		req.Header.Set("X-EBAY-API-APP-NAME", c.cfg.AppID)
		req.Header.Set("X-EBAY-API-CERT-NAME", c.cfg.CertID)
		req.Header.Set("X-EBAY-API-CALL-NAME", callGetMyeBaySelling)
		req.Header.Set("X-EBAY-API-SITEID", c.cfg.SiteID)
		req.Header.Set("X-EBAY-API-IAF-TOKEN", token)
		req.Header.Set("Content-Type", "text/xml")

		status, body, err := c.do(req)
		if err != nil {
			return nil, err
		}

		var resp ebaydomain.GetMyeBaySellingResponse
		if err := xml.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrapf(err, "erro ao decodificar XML (status %d)", status)
		}

		if resp.Ack == "Failure" {
			if ebaydomain.IsTradingTokenExpired(resp.Errors) {
				return nil, ErrTokenExpired
			}
			return nil, fmt.Errorf("erro na Trading API: %s", ebaydomain.TradingErrorsMessage(resp.Errors))
		}

		if status != http.StatusOK {
			return nil, fmt.Errorf("erro na resposta da Trading API. Status: %d", status)
		}

		return &resp, nil
	})
}

func normalizePageSize(pageSize int) int {
	if pageSize <= 0 || pageSize > maxEntriesPerPage {
		return maxEntriesPerPage
	}
	return pageSize
}
