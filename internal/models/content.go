package models

// ===========================================================================
// Site content: SiteConfig, CarouselImage, SupportResource
// ===========================================================================

// SiteConfig keys
const (
	ConfigKeyContact  = "contact_info"
	ConfigKeyAbout    = "about_info"
	ConfigKeyServices = "services_info"
)

// DefaultWhatsApp is shown when the contact record has no WhatsApp number
const DefaultWhatsApp = "+8613800000000"

// SiteConfig is a keyed record of bilingual page content.
// Only the fields relevant to its key are populated.
type SiteConfig struct {
	BaseModel

	Key string `gorm:"size:100;not null;uniqueIndex" json:"key"`

	// Contact
	AddressZh   string `gorm:"column:address_zh;size:500" json:"address_zh"`
	AddressEn   string `gorm:"column:address_en;size:500" json:"address_en"`
	Phone       string `gorm:"size:100" json:"phone"`
	Email       string `gorm:"size:255" json:"email"`
	WorkHoursZh string `gorm:"column:work_hours_zh;size:255" json:"work_hours_zh"`
	WorkHoursEn string `gorm:"column:work_hours_en;size:255" json:"work_hours_en"`
	WhatsApp    string `gorm:"column:whatsapp;size:100" json:"whatsapp"`

	// About
	AboutLeadZh        string `gorm:"column:about_lead_zh;type:text" json:"about_lead_zh"`
	AboutLeadEn        string `gorm:"column:about_lead_en;type:text" json:"about_lead_en"`
	AboutDescZh        string `gorm:"column:about_desc_zh;type:text" json:"about_desc_zh"`
	AboutDescEn        string `gorm:"column:about_desc_en;type:text" json:"about_desc_en"`
	AboutMissionZh     string `gorm:"column:about_mission_zh;size:500" json:"about_mission_zh"`
	AboutMissionEn     string `gorm:"column:about_mission_en;size:500" json:"about_mission_en"`
	AboutStatsExpZh    string `gorm:"column:about_stats_exp_zh;size:255" json:"about_stats_exp_zh"`
	AboutStatsExpEn    string `gorm:"column:about_stats_exp_en;size:255" json:"about_stats_exp_en"`
	AboutStatsExportZh string `gorm:"column:about_stats_export_zh;size:255" json:"about_stats_export_zh"`
	AboutStatsExportEn string `gorm:"column:about_stats_export_en;size:255" json:"about_stats_export_en"`
	AboutStatsTeamZh   string `gorm:"column:about_stats_team_zh;size:255" json:"about_stats_team_zh"`
	AboutStatsTeamEn   string `gorm:"column:about_stats_team_en;size:255" json:"about_stats_team_en"`

	// Services
	ServicesTitleZh   string `gorm:"column:services_title_zh;size:255" json:"services_title_zh"`
	ServicesTitleEn   string `gorm:"column:services_title_en;size:255" json:"services_title_en"`
	ServicesContentZh string `gorm:"column:services_content_zh;type:text" json:"services_content_zh"`
	ServicesContentEn string `gorm:"column:services_content_en;type:text" json:"services_content_en"`
}

// TableName returns the table name
func (SiteConfig) TableName() string {
	return "site_configs"
}

// CarouselImage is a home page slide
type CarouselImage struct {
	BaseModel

	Image   string `gorm:"size:500;not null" json:"image"`
	Title   string `gorm:"size:255" json:"title"`
	Caption string `gorm:"size:500" json:"caption"`
}

// TableName returns the table name
func (CarouselImage) TableName() string {
	return "carousel_images"
}

// ResourceType support resource kind
type ResourceType string

const (
	ResourceManual ResourceType = "manual"
	ResourceVideo  ResourceType = "video"
)

// SupportResource is a downloadable manual or a video on the services page
type SupportResource struct {
	BaseModel

	TitleZh       string       `gorm:"column:title_zh;size:255" json:"title_zh"`
	TitleEn       string       `gorm:"column:title_en;size:255" json:"title_en"`
	DescriptionZh string       `gorm:"column:description_zh;type:text" json:"description_zh"`
	DescriptionEn string       `gorm:"column:description_en;type:text" json:"description_en"`
	Type          ResourceType `gorm:"size:20;not null" json:"type"`
	FilePath      string       `gorm:"column:file_path;size:500" json:"file_path"`
	VideoPath     string       `gorm:"column:video_path;size:500" json:"video_path"`
}

// TableName returns the table name
func (SupportResource) TableName() string {
	return "support_resources"
}
