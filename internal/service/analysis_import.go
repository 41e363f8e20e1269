package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
	"github.com/lifefinance/navigator/internal/storage"
)

// AnalysisImportService loads article analyses exported by the ingestion
// pipeline. Files hold a list of {title, analysis} documents in JSON or YAML.
type AnalysisImportService struct {
	analysisRepo repository.AnalysisRepository
	store        storage.ObjectStore
}

// NewAnalysisImportService accepts a nil store when S3 is not configured.
func NewAnalysisImportService(analysisRepo repository.AnalysisRepository, store storage.ObjectStore) *AnalysisImportService {
	return &AnalysisImportService{analysisRepo: analysisRepo, store: store}
}

// ImportFile upserts every document in a local export file.
func (s *AnalysisImportService) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return s.importData(path, data)
}

// ImportS3 upserts every export under prefix. A bad object is logged and skipped.
func (s *AnalysisImportService) ImportS3(ctx context.Context, prefix string) (int, error) {
	if s.store == nil {
		return 0, fmt.Errorf("S3 storage not configured (missing S3_BUCKET or S3_REGION)")
	}

	keys, err := s.store.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, key := range keys {
		if exportFormat(key) == "" {
			continue
		}

		data, err := s.store.Get(ctx, key)
		if err != nil {
			slog.Warn("skipping analysis export", "key", key, "error", err)
			continue
		}

		n, err := s.importData(key, data)
		if err != nil {
			slog.Warn("skipping analysis export", "key", key, "error", err)
			continue
		}
		total += n
	}

	slog.Info("analysis import finished", "prefix", prefix, "objects", len(keys), "articles", total)
	return total, nil
}

func (s *AnalysisImportService) importData(name string, data []byte) (int, error) {
	docs, err := ParseAnalyses(name, data)
	if err != nil {
		return 0, err
	}

	for i := range docs {
		err = s.analysisRepo.Upsert(&docs[i])
		if err != nil {
			return i, fmt.Errorf("upsert %q: %w", docs[i].Title, err)
		}
	}

	slog.Info("analysis export imported", "source", name, "articles", len(docs))
	return len(docs), nil
}

// ParseAnalyses decodes an export by file extension. Untitled documents are rejected.
func ParseAnalyses(name string, data []byte) ([]model.ArticleAnalysis, error) {
	var docs []model.ArticleAnalysis

	switch exportFormat(name) {
	case "json":
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported export format: %s", name)
	}

	for i, doc := range docs {
		if strings.TrimSpace(doc.Title) == "" {
			return nil, fmt.Errorf("parse %s: document %d has no title", name, i)
		}
	}
	return docs, nil
}

func exportFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}
