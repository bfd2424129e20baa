package models

// Tag represents a topic label that posts can reference
type Tag struct {
	ID   string `gorm:"type:uuid;primaryKey;column:id"`
	Name string `gorm:"type:varchar(64);not null;column:name"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "blog_tags"
}
