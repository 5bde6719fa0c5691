package models

// ===========================================================================
// Default site content
// Used for seeding and whenever a SiteConfig row is missing.
// ===========================================================================

// DefaultContactInfo contact record used when none is stored
func DefaultContactInfo() SiteConfig {
	return SiteConfig{
		Key:         ConfigKeyContact,
		AddressZh:   "中国某市工业园区88号",
		AddressEn:   "88 Industry Park, Some City, China",
		Phone:       "400-123-4567",
		Email:       "info@oumamachinery.com",
		WorkHoursZh: "周一至周五: 9:00 - 18:00",
		WorkHoursEn: "Mon-Fri: 9:00 - 18:00",
		WhatsApp:    DefaultWhatsApp,
	}
}

// DefaultAboutInfo about page record used when none is stored
func DefaultAboutInfo() SiteConfig {
	return SiteConfig{
		Key:                ConfigKeyAbout,
		AboutLeadZh:        "欧马机械专注于工业机械的研发与制造。",
		AboutLeadEn:        "Ouma Machinery designs and builds industrial machinery.",
		AboutDescZh:        "我们为全球客户提供车床、冲压设备及自动化解决方案，产品以精度高、稳定可靠著称。",
		AboutDescEn:        "We supply lathes, presses and automation solutions to customers worldwide, known for precision and reliability.",
		AboutMissionZh:     "以可靠的设备助力制造业升级。",
		AboutMissionEn:     "Helping manufacturers grow with reliable machines.",
		AboutStatsExpZh:    "20年行业经验",
		AboutStatsExpEn:    "20 Years Experience",
		AboutStatsExportZh: "出口50多个国家",
		AboutStatsExportEn: "Exported to 50+ Countries",
		AboutStatsTeamZh:   "200名专业员工",
		AboutStatsTeamEn:   "200 Professionals",
	}
}

// DefaultServicesInfo services page record used when none is stored
func DefaultServicesInfo() SiteConfig {
	return SiteConfig{
		Key:               ConfigKeyServices,
		ServicesTitleZh:   "服务与支持",
		ServicesTitleEn:   "Services & Support",
		ServicesContentZh: "如需服务与支持，请通过电话或邮箱联系我们。",
		ServicesContentEn: "For service and support, please contact us via phone or email.",
	}
}

// DefaultCategories categories seeded into an empty database
func DefaultCategories() []Category {
	return []Category{
		{Name: "车床系列", NameEn: "Lathes"},
		{Name: "冲压设备", NameEn: "Presses"},
		{Name: "自动化设备", NameEn: "Automation"},
	}
}

// DefaultProducts sample products seeded into an empty database
func DefaultProducts() []Product {
	return []Product{
		{
			Name:          "CNC精密车床 X-200",
			NameEn:        "CNC Precision Lathe X-200",
			Category:      "车床系列",
			CategoryEn:    "Lathes",
			Description:   "高精度CNC车床，适用于重型工业应用，性能稳定可靠。",
			DescriptionEn: "High precision CNC lathe suitable for heavy duty industrial applications.",
			Features:      "高速主轴\n自动换刀系统\n占地面积小",
			FeaturesEn:    "High Speed Spindle\nAutomated Tool Changer\nCompact Footprint",
		},
		{
			Name:          "液压机 H-500",
			NameEn:        "Hydraulic Press H-500",
			Category:      "冲压设备",
			CategoryEn:    "Presses",
			Description:   "500吨级液压机，专为金属成型设计，压力控制精确。",
			DescriptionEn: "500-ton hydraulic press for metal forming.",
			Features:      "压力精确控制\n安全防护装置\n数字显示屏",
			FeaturesEn:    "Pressure Control\nSafety Guards\nDigital Display",
		},
		{
			Name:          "工业机械臂 R-10",
			NameEn:        "Industrial Robotic Arm R-10",
			Category:      "自动化设备",
			CategoryEn:    "Automation",
			Description:   "6轴工业机械臂，适用于组装、焊接等自动化场景。",
			DescriptionEn: "6-axis robotic arm for assembly and welding.",
			Features:      "高负载能力\n高精度定位\n编程简单",
			FeaturesEn:    "High Payload\nPrecision Accuracy\nEasy Programming",
		},
	}
}
