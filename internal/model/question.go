package model

// Question is a single trivia entry. Category holds a Category.ID but the
// reference is not enforced; a question may point at a missing category.
type Question struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Question   string `json:"question" gorm:"type:text;not null"`
	Answer     string `json:"answer" gorm:"type:text;not null"`
	Category   int    `json:"category" gorm:"not null;index"`
	Difficulty int    `json:"difficulty" gorm:"not null"`
}
