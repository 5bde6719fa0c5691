package models

// ===========================================================================
// Models Index
// All models for GORM AutoMigrate
// ===========================================================================

// AllModels returns every model, used by database.AutoMigrate()
func AllModels() []interface{} {
	return []interface{}{
		&Product{},         // Catalog entries
		&Category{},        // Product categories
		&ProductImage{},    // Main and gallery images
		&CarouselImage{},   // Home page slides
		&SiteConfig{},      // Contact / about / services content
		&SupportResource{}, // Manuals and videos
		&ChatSession{},     // Visitor inquiries
		&ChatMessage{},     // Inquiry messages
		&AccessLog{},       // Page views
		&AdminUser{},       // Back office account
		&WebSession{},      // Server-side browser sessions
	}
}
