package repo

import (
	"strings"

	"miniblog/app/models"

	"gorm.io/gorm"
)

type PostQuery struct {
	Page   int
	Limit  int
	Search string
	Tag    string
}

type PostRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) *PostRepository { return &PostRepository{db: db} }

func (r *PostRepository) Create(p *models.Post) error {
	if err := r.db.Create(p).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(p, p.ID).Error
}

func (r *PostRepository) FindByID(id uint) (*models.Post, error) {
	var p models.Post
	if err := r.db.Preload("Author").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Save(p *models.Post) error {
	if err := r.db.Save(p).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(p, p.ID).Error
}

func (r *PostRepository) Delete(p *models.Post) error { return r.db.Delete(p).Error }

// List returns one page of posts newest-first plus the total match count.
// Pages are 1-indexed. The limit is applied as given; no maximum is enforced.
func (r *PostRepository) List(q PostQuery) ([]models.Post, int64, error) {
	filtered := func() *gorm.DB {
		tx := r.db.Model(&models.Post{})
		if q.Search != "" {
			pattern := "%" + strings.ToLower(q.Search) + "%"
			tx = tx.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
		}
		if q.Tag != "" {
			// tags are stored as a JSON array of strings
			tx = tx.Where("tags LIKE ?", `%"`+q.Tag+`"%`)
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []models.Post
	err := filtered().Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&posts).Error
	return posts, total, err
}
