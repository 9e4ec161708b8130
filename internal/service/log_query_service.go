package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"autoblog/internal/dto"
	"autoblog/internal/metrics"
	"autoblog/internal/repository"
)

type LogQueryService interface {
	TailLogs(ctx context.Context, req dto.LogTailRequest) (*dto.LogTailResponse, error)
}

type logQueryService struct {
	logRepo repository.LogRepository
}

func NewLogQueryService(logRepo repository.LogRepository) LogQueryService {
	return &logQueryService{
		logRepo: logRepo,
	}
}

func (s *logQueryService) TailLogs(ctx context.Context, req dto.LogTailRequest) (*dto.LogTailResponse, error) {
	if req.Lines <= 0 {
		req.Lines = dto.DefaultLogLines
	}
	if req.Lines > dto.MaxLogLines {
		req.Lines = dto.MaxLogLines
	}

	lines, err := s.logRepo.Tail(ctx, req.Lines)
	if err != nil {
		metrics.Global().LogRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	if lines == nil {
		lines = []string{}
	}
	metrics.Global().LogRequests.WithLabelValues("ok").Inc()

	log.Debug().Int("requested", req.Lines).Int("returned", len(lines)).Msg("Served log tail")
	return &dto.LogTailResponse{Logs: lines}, nil
}
