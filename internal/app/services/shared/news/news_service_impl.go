package news

import (
	"context"
	"errors"
	"fmt"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	healthcareQuery = "(healthcare OR medical OR medicine OR doctor OR hospital OR treatment OR disease OR health) AND india"
	newsPageSize    = "6"
	maxNewsBodySize = 2 << 20
)

type newsService struct {
	BaseUrl         string
	APIKey          string
	CacheTTL        time.Duration
	HTTPClient      *http.Client
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewNewsService(baseUrl, apiKey string, cacheTTL, httpTimeout time.Duration, redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.NewsService {
	return &newsService{
		BaseUrl:         strings.TrimRight(baseUrl, "/"),
		APIKey:          apiKey,
		CacheTTL:        cacheTTL,
		HTTPClient:      &http.Client{Timeout: httpTimeout},
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func (s *newsService) FetchHealthcareNews(ctx context.Context) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("newsService.FetchHealthcareNews called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if s.APIKey == "" {
		s.Log.Error("newsService.FetchHealthcareNews news api key missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrNewsAPIKeyMissing(nil)
	}

	if s.CacheTTL > 0 {
		cached, err := s.RedisRepository.Get(ctx, constvars.RedisKeyNewsHeadlines)
		if err != nil {
			s.Log.Warn("newsService.FetchHealthcareNews cache read failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		if cached != "" {
			s.Log.Info("newsService.FetchHealthcareNews served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Bool(constvars.LoggingCacheHitKey, true),
			)
			return []byte(cached), nil
		}
	}

	query := url.Values{}
	query.Set("q", healthcareQuery)
	query.Set("language", "en")
	query.Set("sortBy", "publishedAt")
	query.Set("pageSize", newsPageSize)
	query.Set("apiKey", s.APIKey)
	endpoint := fmt.Sprintf("%s/v2/everything?%s", s.BaseUrl, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrNewsUpstream(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("newsService.FetchHealthcareNews upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrNewsUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		s.Log.Error("newsService.FetchHealthcareNews upstream returned non-200",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrNewsUpstream(fmt.Errorf("newsapi responded with status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxNewsBodySize+1))
	if err != nil {
		return nil, exceptions.ErrNewsUpstream(err)
	}
	if len(body) > maxNewsBodySize {
		s.Log.Error("newsService.FetchHealthcareNews upstream body too large",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrNewsUpstream(fmt.Errorf("newsapi body exceeds %d bytes", maxNewsBodySize))
	}

	if s.CacheTTL > 0 {
		err = s.RedisRepository.Set(ctx, constvars.RedisKeyNewsHeadlines, json.RawMessage(body), s.CacheTTL)
		if err != nil {
			s.Log.Warn("newsService.FetchHealthcareNews cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	s.Log.Info("newsService.FetchHealthcareNews succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSizeKey, len(body)),
	)
	return body, nil
}

func (s *newsService) ProxyImage(ctx context.Context, rawURL string) (*contracts.ProxiedImage, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("newsService.ProxyImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, rawURL),
	)

	if strings.TrimSpace(rawURL) == "" {
		return nil, exceptions.ErrImageURLRequired(nil)
	}

	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, exceptions.ErrImageURLUnsupported(err, "")
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, exceptions.ErrImageURLUnsupported(nil, target.Scheme)
	}
	if target.Host == "" {
		return nil, exceptions.ErrImageURLUnsupported(errors.New("image url has no host"), target.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, exceptions.ErrImageProxyUpstream(err)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("newsService.ProxyImage upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, rawURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageProxyUpstream(err)
	}

	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, exceptions.ErrImageProxyUpstream(fmt.Errorf("image upstream responded with status %d", resp.StatusCode))
	}

	contentType := resp.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEImageJPEG
	}

	return &contracts.ProxiedImage{
		ContentType: contentType,
		Body:        resp.Body,
	}, nil
}
