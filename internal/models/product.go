package models

// Product represents a product in the catalog.
type Product struct {
	ID          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null"`
}

// CreateProductInput is the shape accepted when creating a product. The id is
// assigned by the repository.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"notblank"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=1"`
	Stock       int     `json:"stock" validate:"min=0"`
}

// UpdateProductInput identifies a product and carries the fields to replace.
// Nil fields are left untouched.
type UpdateProductInput struct {
	ID          int      `json:"-"`
	Name        *string  `json:"name" validate:"omitnil,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitnil,min=1"`
	Stock       *int     `json:"stock" validate:"omitnil,min=0"`
}

// Apply merges the non-nil fields of in into p. The id is never changed.
func (in UpdateProductInput) Apply(p *Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
}

// DeletedProduct confirms which product was removed.
type DeletedProduct struct {
	ID int `json:"id"`
}
