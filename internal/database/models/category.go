package models

// Category represents an award category a nomination is filed under
type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex:idx_categories_name_active,where:is_deleted = false;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
	IsDeleted   bool   `json:"is_deleted" gorm:"not null;default:false;index"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
