package question

import (
	"net/http"
	"strconv"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
)

type Handler struct {
	service Service
	facets  FacetService
}

func NewHandler(service Service, facets FacetService) *Handler {
	return &Handler{service: service, facets: facets}
}

// GetQuestions serves GET /api/pyq: one page of filtered questions with
// answers redacted unless showAnswers=true.
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil {
		limit = defaultPageSize
	}

	filter := ParseFilter(query)
	params := ListParams{
		Page:        page,
		Limit:       limit,
		ShowAnswers: query.Get("showAnswers") == "true",
	}

	questions, pagination, err := h.service.ListQuestions(r.Context(), filter, params)
	if err != nil {
		log.WithError(err).Error("failed to fetch questions")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch questions",
		})
		return
	}

	config.JSON(w, http.StatusOK, ListResponse{
		Questions:  questions,
		Pagination: pagination,
		Filters: EchoedFilters{
			Subject:      query.Get("subject"),
			ExamType:     query.Get("examType"),
			Year:         query.Get("year"),
			Difficulty:   query.Get("difficulty"),
			Chapter:      query.Get("chapter"),
			Topic:        query.Get("topic"),
			QuestionType: query.Get("questionType"),
			Search:       query.Get("search"),
		},
	})
}

// GetFilters serves GET /api/pyq/filters: value/count pairs for every
// filterable dimension, optionally narrowed by subject and examType.
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	query := r.URL.Query()

	facets, err := h.facets.GetFacets(r.Context(), query.Get("subject"), query.Get("examType"))
	if err != nil {
		log.WithError(err).Error("failed to fetch filter facets")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch filters",
		})
		return
	}

	config.JSON(w, http.StatusOK, facets)
}
