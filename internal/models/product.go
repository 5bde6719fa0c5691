package models

// ===========================================================================
// Catalog: Product, Category, ProductImage
// Base fields hold the native (zh) text, *_en fields the English variant.
// ===========================================================================

// FeaturePhotoHTML is the markup appended to Product.Features per feature photo
const FeaturePhotoHTML = `<p><img src="%s" class="img-fluid"></p>`

// Product is a catalog entry
type Product struct {
	BaseModel

	Name          string `gorm:"size:255;not null" json:"name"`
	NameEn        string `gorm:"column:name_en;size:255" json:"name_en"`
	Category      string `gorm:"size:255;not null;index" json:"category"`
	CategoryEn    string `gorm:"column:category_en;size:255" json:"category_en"`
	Description   string `gorm:"type:text" json:"description"`
	DescriptionEn string `gorm:"column:description_en;type:text" json:"description_en"`

	// Features free text, may accumulate feature photo markup
	Features   string `gorm:"type:text" json:"features"`
	FeaturesEn string `gorm:"column:features_en;type:text" json:"features_en"`

	// Media paths are root-relative public paths (/images/..., /videos/...)
	Image    string `gorm:"size:500" json:"image"`
	Video    string `gorm:"size:500" json:"video"`
	VideoURL string `gorm:"column:video_url;size:500" json:"video_url"`
	Manual   string `gorm:"size:500" json:"manual"`

	// Relations
	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

// TableName returns the table name
func (Product) TableName() string {
	return "products"
}

// Category groups products. Product.Category references Category.Name by
// convention only.
type Category struct {
	BaseModel

	Name   string `gorm:"size:255;not null" json:"name"`
	NameEn string `gorm:"column:name_en;size:255;not null" json:"name_en"`
}

// TableName returns the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryStat is a category with the number of products filed under it
type CategoryStat struct {
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
	Count  int64  `json:"count"`
}

// ProductImage is a main or gallery image of a product
type ProductImage struct {
	BaseModel

	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Image     string `gorm:"size:500;not null" json:"image"`
	IsMain    bool   `gorm:"column:is_main;default:false" json:"is_main"`
}

// TableName returns the table name
func (ProductImage) TableName() string {
	return "product_images"
}
