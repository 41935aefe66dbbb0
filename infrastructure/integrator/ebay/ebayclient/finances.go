package ebayclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	ebaydomain "github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/domain"
)

const transactionsPageLimit = 1000

// TransactionFilter limita a consulta da Finances API pela data da transação
type TransactionFilter struct {
	From time.Time
	To   time.Time
}

func (f TransactionFilter) query() string {
	if f.From.IsZero() || f.To.IsZero() {
		return ""
	}

	const layout = "2006-01-02T15:04:05.000Z"
	return fmt.Sprintf("transactionDate:[%s..%s]", f.From.UTC().Format(layout), f.To.UTC().Format(layout))
}

// GetTransactions percorre todas as páginas de /transaction (limit 1000, paginação por offset)
func (c *EbayClient) GetTransactions(ctx context.Context, filter TransactionFilter) ([]ebaydomain.Transaction, error) {
	all := make([]ebaydomain.Transaction, 0)
	offset := 0

	for {
		page, err := withTokenRetry(ctx, c.tokens, func(token string) (*ebaydomain.TransactionsResponse, error) {
			return c.getTransactionsPage(ctx, token, filter, offset)
		})
		if err != nil {
			return nil, err
		}

		if len(page.Transactions) == 0 {
			break
		}

		all = append(all, page.Transactions...)
		offset += transactionsPageLimit

		if page.Total > 0 && offset >= page.Total {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"transactions": len(all),
	}).Debug("sync: transações obtidas da Finances API")

	return all, nil
}

func (c *EbayClient) getTransactionsPage(ctx context.Context, token string, filter TransactionFilter, offset int) (*ebaydomain.TransactionsResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(transactionsPageLimit))
	params.Set("offset", strconv.Itoa(offset))
	if q := filter.query(); q != "" {
		params.Set("filter", q)
	}

	endpoint := c.cfg.FinancesURL + "/transaction?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		var errorResp ebaydomain.ErrorResponse
		if json.Unmarshal(body, &errorResp) == nil && (status == http.StatusUnauthorized || errorResp.IsTokenExpired()) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("erro na resposta da Finances API. Status: %d, Corpo: %s", status, string(body))
	}

	var page ebaydomain.TransactionsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON de transações")
	}

	return &page, nil
}
