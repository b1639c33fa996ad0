package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TagList stores a post's tags as a JSON array in a single text column so the
// same schema works on mysql and sqlite alike. Order is preserved.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal(t)
	return string(b), err
}

func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = TagList{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}
	return fmt.Errorf("unsupported tags column type %T", src)
}

func (t TagList) Contains(tag string) bool {
	for _, s := range t {
		if s == tag {
			return true
		}
	}
	return false
}

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Tags      TagList   `gorm:"type:text" json:"tags"`
	AuthorID  uint      `gorm:"index;not null" json:"authorId"`
	Author    *User     `json:"author,omitempty"`
	Views     int       `gorm:"not null;default:0" json:"views"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
