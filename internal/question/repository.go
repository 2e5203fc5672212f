package question

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, f Filter, offset, limit int) ([]Question, error)
	Count(ctx context.Context, f Filter) (int64, error)
	FacetCounts(ctx context.Context, subject, examType string) (*FacetCounts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f Filter, offset, limit int) ([]Question, error) {
	var questions []Question
	err := f.Apply(r.db.WithContext(ctx).Model(&Question{})).
		Order("exam_year DESC").
		Order("subject ASC").
		Order("chapter ASC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	err := f.Apply(r.db.WithContext(ctx).Model(&Question{})).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// FacetCounts runs the group-by queries backing the filter UI. The subject
// and examType pre-filters narrow every dimension except the exam-type
// counts, which always cover the whole active set so that switching exam
// type remains possible while other facets are selected.
func (r *repository) FacetCounts(ctx context.Context, subject, examType string) (*FacetCounts, error) {
	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&Question{}).Where("is_active = ?", true)
		if subject != "" {
			db = db.Where("subject = ?", subject)
		}
		if examType != "" {
			db = db.Where("exam_type = ?", examType)
		}
		return db
	}

	counts := &FacetCounts{}

	if err := base().
		Select("exam_year AS year, count(*) AS count").
		Group("exam_year").
		Order("exam_year DESC").
		Scan(&counts.Years).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("chapter, subject, count(*) AS count").
		Group("chapter, subject").
		Order("count DESC").
		Scan(&counts.Chapters).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("question_type AS type, count(*) AS count").
		Group("question_type").
		Scan(&counts.QuestionTypes).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("difficulty AS level, count(*) AS count").
		Group("difficulty").
		Scan(&counts.Difficulties).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&Question{}).
		Where("is_active = ?", true).
		Select("exam_type AS type, count(*) AS count").
		Group("exam_type").
		Scan(&counts.ExamTypes).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("subject, count(*) AS count").
		Group("subject").
		Scan(&counts.Subjects).Error; err != nil {
		return nil, err
	}

	return counts, nil
}
