package apiadapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/internal/platform"
	"github.com/brandbrain/metrics-pipeline/pkg/config"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logger.Logger {
	return logger.New(logger.Opts{})
}

func TestNew_RegistersAllPlatforms(t *testing.T) {
	cfg := &config.Config{}
	adapter := New(Opts{Config: cfg, Logger: testLogger()})

	for _, p := range domain.Platforms {
		fetcher, ok := adapter.ForPlatform(p)
		assert.True(t, ok, "missing fetcher for %s", p)
		assert.NotNil(t, fetcher)
	}

	_, ok := adapter.ForPlatform(domain.Platform("MYSPACE"))
	assert.False(t, ok)
}

func TestTwitterFetcher_MapsPublicMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/tweets/12345", r.URL.Path)
		assert.Equal(t, "public_metrics", r.URL.Query().Get("tweet.fields"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"public_metrics":{
			"retweet_count":7,"reply_count":10,"like_count":50,"quote_count":3,"impression_count":1000}}}`))
	}))
	defer srv.Close()

	f := &TwitterFetcher{client: srv.Client(), baseURL: srv.URL, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "12345")
	require.NoError(t, err)

	assert.Equal(t, int64(1000), metrics.Impressions)
	assert.Equal(t, int64(50), metrics.Likes)
	assert.Equal(t, int64(10), metrics.Comments)
	// retweets and quotes both count as shares
	assert.Equal(t, int64(10), metrics.Shares)
	assert.Equal(t, int64(0), metrics.Clicks)
}

func TestTwitterFetcher_APIErrorEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"title":"Not Found Error","detail":"Could not find tweet"}]}`))
	}))
	defer srv.Close()

	f := &TwitterFetcher{client: srv.Client(), baseURL: srv.URL, logger: testLogger()}

	_, err := f.FetchRawMetrics(context.Background(), "token", "12345")
	assert.ErrorContains(t, err, "Not Found Error")
}

func TestTwitterFetcher_MissingToken(t *testing.T) {
	f := &TwitterFetcher{client: http.DefaultClient, baseURL: "http://unused", logger: testLogger()}

	_, err := f.FetchRawMetrics(context.Background(), "", "12345")
	assert.ErrorIs(t, err, platform.ErrNoToken)
}

func TestLinkedInFetcher_CombinesActionsAndStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v2/socialActions/urn:li:share:1":
			w.Write([]byte(`{"likesSummary":{"totalLikes":40},"commentsSummary":{"totalFirstLevelComments":6}}`))
		case r.URL.Path == "/rest/organizationalEntityShareStatistics":
			w.Write([]byte(`{"elements":[{"totalShareStatistics":{"impressionCount":2000,"shareCount":12,"clickCount":30}}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := &LinkedInFetcher{client: srv.Client(), baseURL: srv.URL, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "urn:li:share:1")
	require.NoError(t, err)

	assert.Equal(t, int64(40), metrics.Likes)
	assert.Equal(t, int64(6), metrics.Comments)
	assert.Equal(t, int64(2000), metrics.Impressions)
	assert.Equal(t, int64(12), metrics.Shares)
	assert.Equal(t, int64(30), metrics.Clicks)
}

func TestLinkedInFetcher_StatisticsFailureKeepsZeros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/socialActions/urn:li:share:1" {
			w.Write([]byte(`{"likesSummary":{"totalLikes":40},"commentsSummary":{"totalFirstLevelComments":6}}`))
			return
		}
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	f := &LinkedInFetcher{client: srv.Client(), baseURL: srv.URL, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "urn:li:share:1")
	require.NoError(t, err)

	assert.Equal(t, int64(40), metrics.Likes)
	assert.Equal(t, int64(6), metrics.Comments)
	assert.Equal(t, int64(0), metrics.Impressions)
	assert.Equal(t, int64(0), metrics.Shares)
	assert.Equal(t, int64(0), metrics.Clicks)
}

func TestLinkedInFetcher_ActionsFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := &LinkedInFetcher{client: srv.Client(), baseURL: srv.URL, logger: testLogger()}

	_, err := f.FetchRawMetrics(context.Background(), "token", "urn:li:share:1")
	assert.Error(t, err)
}

func TestMetaFetcher_FacebookInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/post1/insights", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("metric"), "post_impressions")

		w.Write([]byte(`{"data":[
			{"name":"post_impressions","values":[{"value":5000}]},
			{"name":"post_impressions_unique","values":[{"value":4200}]},
			{"name":"post_engaged_users","values":[{"value":300}]},
			{"name":"post_reactions_like_total","values":[{"value":120}]}
		]}`))
	}))
	defer srv.Close()

	f := &MetaFetcher{client: srv.Client(), baseURL: srv.URL, instagram: false, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "post1")
	require.NoError(t, err)

	assert.Equal(t, int64(5000), metrics.Impressions)
	assert.Equal(t, int64(4200), metrics.Reach)
	assert.Equal(t, int64(120), metrics.Likes)
	// engaged users minus reactors; summed engagement stays at the
	// platform's engaged-users total
	assert.Equal(t, int64(180), metrics.Clicks)
	assert.Equal(t, int64(300), metrics.Engagements())
}

func TestMetaFetcher_InstagramInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("metric"), "total_interactions")

		w.Write([]byte(`{"data":[
			{"name":"impressions","values":[{"value":900}]},
			{"name":"reach","values":[{"value":700}]},
			{"name":"total_interactions","values":[{"value":85}]},
			{"name":"saved","values":[{"value":14}]}
		]}`))
	}))
	defer srv.Close()

	f := &MetaFetcher{client: srv.Client(), baseURL: srv.URL, instagram: true, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "media1")
	require.NoError(t, err)

	assert.Equal(t, int64(900), metrics.Impressions)
	assert.Equal(t, int64(700), metrics.Reach)
	assert.Equal(t, int64(71), metrics.Likes)
	assert.Equal(t, int64(14), metrics.Saves)
	// saves are part of total_interactions and must not be added on top
	assert.Equal(t, int64(85), metrics.Engagements())
}

func TestMetaFetcher_InstagramEngagementsMatchInteractionTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"name":"impressions","values":[{"value":1000}]},
			{"name":"total_interactions","values":[{"value":85}]},
			{"name":"saved","values":[{"value":14}]}
		]}`))
	}))
	defer srv.Close()

	f := &MetaFetcher{client: srv.Client(), baseURL: srv.URL, instagram: true, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "media1")
	require.NoError(t, err)

	assert.Equal(t, int64(85), metrics.Engagements())
	assert.InDelta(t, 8.5, domain.EngagementRate(metrics.Engagements(), metrics.Impressions), 1e-9)
}

func TestMetaFetcher_SavesExceedingInteractionsClampToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"name":"total_interactions","values":[{"value":5}]},
			{"name":"saved","values":[{"value":9}]}
		]}`))
	}))
	defer srv.Close()

	f := &MetaFetcher{client: srv.Client(), baseURL: srv.URL, instagram: true, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "media1")
	require.NoError(t, err)

	assert.Equal(t, int64(0), metrics.Likes)
	assert.Equal(t, int64(9), metrics.Saves)
}

func TestMetaFetcher_FallsBackToBasicFields(t *testing.T) {
	var insightsCalled, fieldsCalled bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/post1/insights" {
			insightsCalled = true
			http.Error(w, `{"error":{"message":"insights not available"}}`, http.StatusBadRequest)
			return
		}
		fieldsCalled = true
		w.Write([]byte(`{"likes":{"summary":{"total_count":33}},"comments":{"summary":{"total_count":4}},"shares":{"count":2}}`))
	}))
	defer srv.Close()

	f := &MetaFetcher{client: srv.Client(), baseURL: srv.URL, instagram: false, logger: testLogger()}

	metrics, err := f.FetchRawMetrics(context.Background(), "token", "post1")
	require.NoError(t, err)

	assert.True(t, insightsCalled)
	assert.True(t, fieldsCalled)
	assert.Equal(t, int64(33), metrics.Likes)
	assert.Equal(t, int64(4), metrics.Comments)
	assert.Equal(t, int64(2), metrics.Shares)
	assert.Equal(t, int64(0), metrics.Impressions)
}

func TestMetaFetcher_BothEndpointsFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := &MetaFetcher{client: srv.Client(), baseURL: srv.URL, instagram: false, logger: testLogger()}

	_, err := f.FetchRawMetrics(context.Background(), "token", "post1")
	assert.Error(t, err)
}
