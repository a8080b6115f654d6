package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/rowjay/countdown-token-service/internal/codec"
	"github.com/rowjay/countdown-token-service/internal/constants"
	"github.com/rowjay/countdown-token-service/internal/countdown"
	"github.com/rowjay/countdown-token-service/internal/dto"
	"github.com/rowjay/countdown-token-service/internal/errors"
	"github.com/rowjay/countdown-token-service/internal/validator"
)

// CountdownService issues countdown tokens and reports the countdown a token describes.
type CountdownService interface {
	CreateCountdown(ctx context.Context, req *dto.CreateCountdownRequest) (*dto.CreateCountdownResponse, error)
	GetCountdown(ctx context.Context, token string) (*dto.GetCountdownResponse, error)
}

type Option func(*countdownServiceImpl)

// WithClock replaces time.Now as the reference for countdown state.
func WithClock(now func() time.Time) Option {
	return func(s *countdownServiceImpl) {
		s.now = now
	}
}

type countdownServiceImpl struct {
	validator *validator.CountdownValidator
	baseURL   string
	now       func() time.Time
}

func NewCountdownService(baseURL string, maxTitleLength int, opts ...Option) CountdownService {
	s := &countdownServiceImpl{
		validator: validator.NewCountdownValidator(maxTitleLength),
		baseURL:   baseURL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *countdownServiceImpl) CreateCountdown(ctx context.Context, req *dto.CreateCountdownRequest) (*dto.CreateCountdownResponse, error) {
	if err := s.validator.ValidateCreateRequest(req); err != nil {
		return nil, err
	}

	offset := *req.TimezoneOffset
	timestamp, err := s.resolveTimestamp(req, offset)
	if err != nil {
		return nil, err
	}

	var title string
	if req.Title != nil {
		title = *req.Title
	}

	token, err := codec.EncodeUnix(timestamp, offset, title)
	if err != nil {
		return nil, err
	}

	quantized, err := codec.QuantizeOffset(offset)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Str("token", token).
		Int64("timestamp", timestamp).
		Int("timezone_offset", quantized).
		Bool("has_title", title != "").
		Msg("Countdown token encoded")

	return &dto.CreateCountdownResponse{
		Token:          token,
		URL:            s.baseURL + constants.CountdownPathPrefix + "/" + token,
		Timestamp:      timestamp,
		TimezoneOffset: quantized,
		Title:          title,
	}, nil
}

func (s *countdownServiceImpl) resolveTimestamp(req *dto.CreateCountdownRequest, offset int) (int64, error) {
	const op = "service.CreateCountdown"

	var timestamp int64
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	} else {
		target, err := countdown.ParseLocal(req.DateTime, offset)
		if err != nil {
			return 0, err
		}
		if target.Unix() < 0 {
			return 0, errors.NewInvalidInputError(op, "dateTime must not be before 1970-01-01")
		}
		timestamp = target.Unix()
	}

	if timestamp > countdown.MaxUnix {
		return 0, errors.NewOutOfRangeError(op, fmt.Sprintf("timestamp %d is after 9999-12-31T23:59:59Z", timestamp))
	}
	return timestamp, nil
}

func (s *countdownServiceImpl) GetCountdown(ctx context.Context, token string) (*dto.GetCountdownResponse, error) {
	if err := s.validator.ValidateToken(token); err != nil {
		return nil, err
	}

	payload, err := codec.DecodeToken(token)
	if err != nil {
		return nil, err
	}

	sec, ok := payload.UnixSeconds()
	if !ok || !countdown.InRange(sec) {
		return nil, errors.NewOutOfRangeError("service.GetCountdown", "timestamp "+payload.Timestamp.String()+" exceeds the supported range")
	}

	now := s.now()
	target := countdown.TargetTime(sec, payload.TimezoneOffset)
	state := countdown.Compute(target, now)

	log.Ctx(ctx).Debug().
		Str("token", token).
		Int64("timestamp", sec).
		Int("timezone_offset", payload.TimezoneOffset).
		Bool("expired", state.IsExpired).
		Msg("Countdown token decoded")

	zone := countdown.ZoneForOffset(payload.TimezoneOffset, now)
	resp := &dto.GetCountdownResponse{
		Token:          token,
		TargetDateTime: target.Format(time.RFC3339),
		Timestamp:      sec,
		TimezoneOffset: payload.TimezoneOffset,
		OffsetLabel:    countdown.OffsetLabel(payload.TimezoneOffset),
		Timezone:       zone,
		ZoneAbbrev:     countdown.Abbreviation(zone),
		Title:          payload.Title,
		IsExpired:      state.IsExpired,
		TimeLeft:       toTimeData(state.TimeLeft),
	}
	if state.TimePassed != nil {
		passed := toTimeData(*state.TimePassed)
		resp.TimePassed = &passed
	}
	return resp, nil
}

func toTimeData(t countdown.TimeData) dto.TimeData {
	return dto.TimeData{
		Days:    t.Days,
		Hours:   t.Hours,
		Minutes: t.Minutes,
		Seconds: t.Seconds,
		Total:   t.Total,
	}
}
