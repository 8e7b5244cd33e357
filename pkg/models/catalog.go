package models

// Ingredient is a fixed-catalog reference row
type Ingredient struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID    *string `gorm:"type:uuid;index" json:"orgId"`
	Name     string  `gorm:"not null" json:"name"`
	Unit     string  `gorm:"not null" json:"unit"`
	CostUnit float64 `gorm:"not null" json:"costUnit"`
}

// TableName specifies the table name for Ingredient model
func (Ingredient) TableName() string {
	return "ingredients"
}

// Recipe is a dish built from ingredient links
type Recipe struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID        *string `gorm:"type:uuid;index" json:"orgId"`
	Name         string  `gorm:"not null" json:"name"`
	Yield        int     `gorm:"not null" json:"yield"`
	Instructions string  `json:"instructions"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
}

// TableName specifies the table name for Recipe model
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient links a recipe to an ingredient with a quantity
type RecipeIngredient struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     int     `gorm:"not null" json:"recipeId"`
	IngredientID int     `gorm:"not null" json:"ingredientId"`
	Quantity     float64 `gorm:"not null" json:"quantity"`

	Recipe     Recipe     `gorm:"foreignKey:RecipeID;references:ID" json:"recipe,omitempty"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;references:ID" json:"ingredient,omitempty"`
}

// TableName specifies the table name for RecipeIngredient model
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// PosCategory groups menu items on the point of sale
type PosCategory struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID     string `gorm:"type:uuid;not null;index" json:"orgId"`
	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`

	Items []PosMenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// TableName specifies the table name for PosCategory model
func (PosCategory) TableName() string {
	return "pos_categories"
}

// PosMenuItem is a sellable item under one category
type PosMenuItem struct {
	ID         int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID      string  `gorm:"type:uuid;not null;index" json:"orgId"`
	CategoryID int     `gorm:"not null" json:"categoryId"`
	Name       string  `gorm:"not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	IsActive   bool    `gorm:"default:true" json:"isActive"`

	Category PosCategory `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}

// TableName specifies the table name for PosMenuItem model
func (PosMenuItem) TableName() string {
	return "pos_menu_items"
}

// PosModifierGroup bundles modifiers (e.g. "Steak doneness")
type PosModifierGroup struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID     string `gorm:"type:uuid;not null;index" json:"orgId"`
	Name      string `gorm:"not null" json:"name"`
	MinSelect int    `gorm:"default:0" json:"minSelect"`
	MaxSelect int    `gorm:"default:1" json:"maxSelect"`

	Modifiers []PosModifier `gorm:"foreignKey:GroupID" json:"modifiers,omitempty"`
}

// TableName specifies the table name for PosModifierGroup model
func (PosModifierGroup) TableName() string {
	return "pos_modifier_groups"
}

// PosModifier is one selectable option within a group
type PosModifier struct {
	ID         int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID      string  `gorm:"type:uuid;not null;index" json:"orgId"`
	GroupID    int     `gorm:"not null" json:"groupId"`
	Name       string  `gorm:"not null" json:"name"`
	PriceDelta float64 `gorm:"default:0" json:"priceDelta"`

	Group PosModifierGroup `gorm:"foreignKey:GroupID;references:ID" json:"group,omitempty"`
}

// TableName specifies the table name for PosModifier model
func (PosModifier) TableName() string {
	return "pos_modifiers"
}

// VendorProduct is a supplier catalogue row
type VendorProduct struct {
	ID         int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID      string  `gorm:"type:uuid;not null;index" json:"orgId"`
	VendorName string  `gorm:"not null" json:"vendorName"`
	SKU        string  `gorm:"not null;column:sku" json:"sku"`
	Name       string  `gorm:"not null" json:"name"`
	UnitPrice  float64 `gorm:"not null" json:"unitPrice"`
	LeadDays   int     `gorm:"default:2" json:"leadDays"`
}

// TableName specifies the table name for VendorProduct model
func (VendorProduct) TableName() string {
	return "vendor_products"
}
