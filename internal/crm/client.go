package crm

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"crm-reporting/internal/models"
	"crm-reporting/internal/shared/loggers"
	"crm-reporting/internal/tokens"
)

const (
	endpointUsers   = "/api/v4/users"
	endpointEvents  = "/api/v4/events"
	endpointAccount = "/api/v4/account"

	eventPageLimit = 100

	// maxEventPages guards against a misbehaving server paginating forever.
	maxEventPages = 1000
)

//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type Client interface {
	// GetUserIDs fetches the IDs of all human account users.
	GetUserIDs(ctx context.Context) ([]int64, error)
	// GetEvents fetches every event created inside [from, to], paging until
	// the server reports no further pages. A failure on any page aborts the
	// whole fetch.
	GetEvents(ctx context.Context, from, to time.Time) ([]models.Event, error)
	// GetAccount issues the lightweight reference request used for latency
	// probing. The response body is discarded.
	GetAccount(ctx context.Context) error
}

type crmClient struct {
	getter *httpGetter
}

func NewClient(baseURL string, bearer tokens.BearerSource) Client {
	return &crmClient{getter: newHTTPGetter(baseURL, bearer)}
}

type usersResponse struct {
	Embedded struct {
		Users []struct {
			ID int64 `json:"id"`
		} `json:"users"`
	} `json:"_embedded"`
}

type eventsResponse struct {
	Embedded struct {
		Events []models.Event `json:"events"`
	} `json:"_embedded"`
	Links map[string]json.RawMessage `json:"_links"`
}

func (c *crmClient) GetUserIDs(ctx context.Context) ([]int64, error) {
	body, err := c.getter.get(ctx, endpointUsers, nil)
	if err != nil {
		return nil, err
	}

	var response usersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errDecodeFailed(endpointUsers, err)
	}

	userIDs := make([]int64, 0, len(response.Embedded.Users))
	for _, user := range response.Embedded.Users {
		userIDs = append(userIDs, user.ID)
	}

	loggers.Ctx(ctx).Info().Int("user_count", len(userIDs)).Msg("fetched account users")
	return userIDs, nil
}

func (c *crmClient) GetEvents(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	logger := loggers.Ctx(ctx)
	logger.Info().
		Time("from", from).
		Time("to", to).
		Msg("fetching events")

	var allEvents []models.Event
	for page := 1; ; page++ {
		if page > maxEventPages {
			return nil, errPageCapExceeded(maxEventPages)
		}

		params := url.Values{}
		params.Set("filter[created_at][from]", strconv.FormatInt(from.Unix(), 10))
		params.Set("filter[created_at][to]", strconv.FormatInt(to.Unix(), 10))
		params.Set("page", strconv.Itoa(page))
		params.Set("limit", strconv.Itoa(eventPageLimit))

		body, err := c.getter.get(ctx, endpointEvents, params)
		if err != nil {
			return nil, err
		}

		var response eventsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errDecodeFailed(endpointEvents, err)
		}

		events := response.Embedded.Events
		if len(events) == 0 {
			logger.Debug().Int(loggers.FieldPage, page).Msg("empty page, fetch complete")
			break
		}

		allEvents = append(allEvents, events...)
		metricEventPagesTotal.WithLabelValues(endpointEvents).Inc()
		logger.Debug().
			Int(loggers.FieldPage, page).
			Int("page_events", len(events)).
			Msg("fetched event page")

		if _, hasNext := response.Links["next"]; !hasNext {
			logger.Debug().Int(loggers.FieldPage, page).Msg("no next page link, fetch complete")
			break
		}
	}

	logger.Info().Int("event_count", len(allEvents)).Msg("fetched all events")
	return allEvents, nil
}

func (c *crmClient) GetAccount(ctx context.Context) error {
	_, err := c.getter.get(ctx, endpointAccount, nil)
	return err
}
