package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// DefaultAcuraciaKey is the Redis key where the document-OCR batch publishes
// its accuracy snapshots as a JSON document of the form
// {"snapshots": [{"gerado_em": ..., "labels": [{"nome", "total", "acertos"}]}]}.
const DefaultAcuraciaKey = "observabilidade:acuracia"

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// Extraction expressions over the snapshot document. The latest snapshot
// wins; older snapshots are kept by the batch for trend inspection only.
const (
	exprLatestSnapshot = "max_by(snapshots, &gerado_em)"
	exprGeradoEm       = "gerado_em"
	exprLabels         = "labels[*].{nome: nome, total: total, acertos: acertos}"
)

// LabelAcuracia is the per-label OCR accuracy extracted from a snapshot.
type LabelAcuracia struct {
	Nome     string  `json:"nome"`
	Total    int     `json:"total"`
	Acertos  int     `json:"acertos"`
	Acuracia float64 `json:"acuracia"`
}

// AcuraciaReport is the accuracy view served to the RH dashboard.
type AcuraciaReport struct {
	GeradoEm   string          `json:"gerado_em"`
	Labels     []LabelAcuracia `json:"labels"`
	MediaGeral float64         `json:"media_geral"`
}

// AcuraciaServiceOptions groups dependencies for AcuraciaService.
type AcuraciaServiceOptions struct {
	Redis       redis.UniversalClient
	SnapshotKey string
	Evaluator   JMESPathEvaluator
}

// AcuraciaService extracts per-label document-OCR accuracy from the metric
// snapshots the OCR batch stores in Redis.
type AcuraciaService struct {
	client redis.UniversalClient
	key    string
	jems   JMESPathEvaluator
}

// NewAcuraciaService constructs a new AcuraciaService.
func NewAcuraciaService(opts AcuraciaServiceOptions) *AcuraciaService {
	key := opts.SnapshotKey
	if key == "" {
		key = DefaultAcuraciaKey
	}
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &AcuraciaService{client: opts.Redis, key: key, jems: jems}
}

// Latest returns the accuracy report built from the most recent snapshot.
func (s *AcuraciaService) Latest(ctx context.Context) (*AcuraciaReport, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NotFound("no accuracy snapshots recorded")
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "corrupt accuracy snapshot document")
	}

	latest, err := s.jems.Evaluate(exprLatestSnapshot, doc)
	if err != nil {
		return nil, fmt.Errorf("extract latest snapshot: %w", err)
	}
	if latest == nil {
		return nil, apperrors.NotFound("no accuracy snapshots recorded")
	}

	report := &AcuraciaReport{}
	if v, err := s.jems.Evaluate(exprGeradoEm, latest); err == nil {
		if ts, ok := v.(string); ok {
			report.GeradoEm = ts
		}
	}

	rawLabels, err := s.jems.Evaluate(exprLabels, latest)
	if err != nil {
		return nil, fmt.Errorf("extract labels: %w", err)
	}

	entries, _ := rawLabels.([]any)
	var sum float64
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		label := LabelAcuracia{
			Nome:    stringField(fields, "nome"),
			Total:   intField(fields, "total"),
			Acertos: intField(fields, "acertos"),
		}
		if label.Total > 0 {
			label.Acuracia = float64(label.Acertos) / float64(label.Total)
		}
		sum += label.Acuracia
		report.Labels = append(report.Labels, label)
	}
	if len(report.Labels) > 0 {
		report.MediaGeral = sum / float64(len(report.Labels))
	}

	return report, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func intField(fields map[string]any, key string) int {
	f, _ := fields[key].(float64)
	return int(f)
}
