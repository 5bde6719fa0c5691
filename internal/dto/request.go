package dto

// ===========================================================================
// Request DTOs
// Form and query bindings validated by gin's validator (custom "lang" rule)
// ===========================================================================

// LangQuery ?lang= switch accepted on every page
type LangQuery struct {
	Lang string `form:"lang" binding:"omitempty,lang"`
}

// ProductsQuery public product list filter
type ProductsQuery struct {
	Category string `form:"category" binding:"max=255"`
}

// LoginRequest admin login form
type LoginRequest struct {
	Username string `form:"username" binding:"required,max=255"`
	Password string `form:"password" binding:"required,max=255"`
}

// CategoryRequest category add/update form
type CategoryRequest struct {
	Name   string `form:"name" binding:"required,max=255"`
	NameEn string `form:"name_en" binding:"max=255"`
}

// ProductForm text fields of the product add/edit form.
// VideoURL is read separately so an absent field can be told from an empty one.
type ProductForm struct {
	Name          string `form:"name" binding:"required,max=255"`
	Category      string `form:"category" binding:"required,max=255"`
	Description   string `form:"description"`
	Features      string `form:"features"`
	NameEn        string `form:"name_en" binding:"max=255"`
	CategoryEn    string `form:"category_en" binding:"max=255"`
	DescriptionEn string `form:"description_en"`
	FeaturesEn    string `form:"features_en"`
}

// ResizeForm optional resize parameters of carousel forms. Values are
// parsed leniently: anything that is not a positive integer is ignored.
type ResizeForm struct {
	TargetWidth  string `form:"target_width"`
	TargetHeight string `form:"target_height"`
	ScalePercent string `form:"scale_percent"`
}

// CarouselForm carousel add/resize form
type CarouselForm struct {
	ResizeForm
	Title   string `form:"title" binding:"max=255"`
	Caption string `form:"caption" binding:"max=500"`
}

// SupportForm support resource form
type SupportForm struct {
	Type          string `form:"type" binding:"required,oneof=manual video"`
	TitleZh       string `form:"title_zh" binding:"max=255"`
	TitleEn       string `form:"title_en" binding:"max=255"`
	DescriptionZh string `form:"description_zh"`
	DescriptionEn string `form:"description_en"`
}

// ContactConfigForm contact info page
type ContactConfigForm struct {
	AddressZh   string `form:"address_zh"`
	AddressEn   string `form:"address_en"`
	Phone       string `form:"phone"`
	Email       string `form:"email" binding:"omitempty,email"`
	WorkHoursZh string `form:"work_hours_zh"`
	WorkHoursEn string `form:"work_hours_en"`
	WhatsApp    string `form:"whatsapp"`
}

// AboutConfigForm about page
type AboutConfigForm struct {
	AboutLeadZh        string `form:"about_lead_zh"`
	AboutLeadEn        string `form:"about_lead_en"`
	AboutDescZh        string `form:"about_desc_zh"`
	AboutDescEn        string `form:"about_desc_en"`
	AboutMissionZh     string `form:"about_mission_zh"`
	AboutMissionEn     string `form:"about_mission_en"`
	AboutStatsExpZh    string `form:"about_stats_exp_zh"`
	AboutStatsExpEn    string `form:"about_stats_exp_en"`
	AboutStatsExportZh string `form:"about_stats_export_zh"`
	AboutStatsExportEn string `form:"about_stats_export_en"`
	AboutStatsTeamZh   string `form:"about_stats_team_zh"`
	AboutStatsTeamEn   string `form:"about_stats_team_en"`
}

// ServicesConfigForm services page
type ServicesConfigForm struct {
	ServicesTitleZh   string `form:"services_title_zh"`
	ServicesTitleEn   string `form:"services_title_en"`
	ServicesContentZh string `form:"services_content_zh"`
	ServicesContentEn string `form:"services_content_en"`
}

// ChatMessageRequest chat message body, form or JSON
type ChatMessageRequest struct {
	Content string `form:"content" json:"content"`
}
