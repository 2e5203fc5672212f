package question

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
)

// Facet counts change only when new questions are ingested, so responses are
// cached for an hour when Redis is configured.
const facetCacheTTL = time.Hour

type YearFacet struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

type ChapterFacet struct {
	Chapter string `json:"chapter"`
	Subject string `json:"-"`
	Count   int64  `json:"count"`
}

type TypeFacet struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type LevelFacet struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

type SubjectFacet struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}

// FacetCounts is the raw group-by output from the repository.
type FacetCounts struct {
	Years         []YearFacet
	Chapters      []ChapterFacet
	QuestionTypes []TypeFacet
	Difficulties  []LevelFacet
	ExamTypes     []TypeFacet
	Subjects      []SubjectFacet
}

// FacetResponse is the shape served to the filter UI. Chapters are keyed by
// subject for cascading selection on the client.
type FacetResponse struct {
	Years         []YearFacet               `json:"years"`
	Chapters      map[string][]ChapterFacet `json:"chapters"`
	QuestionTypes []TypeFacet               `json:"questionTypes"`
	Difficulties  []LevelFacet              `json:"difficulties"`
	ExamTypes     []TypeFacet               `json:"examTypes"`
	Subjects      []SubjectFacet            `json:"subjects"`
}

type FacetService interface {
	GetFacets(ctx context.Context, subject, examType string) (*FacetResponse, error)
}

type facetService struct {
	repo  Repository
	cache *redis.Client
}

// NewFacetService builds the facet aggregator. cache may be nil, in which
// case every call hits the database.
func NewFacetService(repo Repository, cache *redis.Client) FacetService {
	return &facetService{repo: repo, cache: cache}
}

func (s *facetService) GetFacets(ctx context.Context, subject, examType string) (*FacetResponse, error) {
	log := config.WithContext(ctx)
	key := fmt.Sprintf("pyq:facets:%s:%s", subject, examType)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var resp FacetResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
			log.Warn("discarding unreadable cached facets")
		}
	}

	counts, err := s.repo.FacetCounts(ctx, subject, examType)
	if err != nil {
		log.WithError(err).Error("failed to aggregate facets")
		return nil, err
	}

	resp := buildFacetResponse(counts)

	if s.cache != nil {
		payload, err := json.Marshal(resp)
		if err == nil {
			if err := s.cache.Set(ctx, key, payload, facetCacheTTL).Err(); err != nil {
				log.WithError(err).Warn("failed to cache facets")
			}
		}
	}

	return resp, nil
}

func buildFacetResponse(counts *FacetCounts) *FacetResponse {
	chaptersBySubject := make(map[string][]ChapterFacet)
	for _, ch := range counts.Chapters {
		chaptersBySubject[ch.Subject] = append(chaptersBySubject[ch.Subject], ChapterFacet{
			Chapter: ch.Chapter,
			Count:   ch.Count,
		})
	}

	return &FacetResponse{
		Years:         counts.Years,
		Chapters:      chaptersBySubject,
		QuestionTypes: counts.QuestionTypes,
		Difficulties:  counts.Difficulties,
		ExamTypes:     counts.ExamTypes,
		Subjects:      counts.Subjects,
	}
}
