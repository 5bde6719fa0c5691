package i18n

// Messages UI string table for one language
type Messages map[string]string

// Get returns the string for key, falling back to English and then the key
func (m Messages) Get(key string) string {
	if s, ok := m[key]; ok {
		return s
	}
	if s, ok := catalogs[LangEn][key]; ok {
		return s
	}
	return key
}

// T returns the message table for lang, English when lang is unknown
func T(lang string) Messages {
	if m, ok := catalogs[lang]; ok {
		return m
	}
	return catalogs[LangEn]
}

var catalogs = map[string]Messages{
	LangZh: {
		"site_name":            "欧马机械",
		"nav_home":             "首页",
		"nav_products":         "产品中心",
		"nav_about":            "关于我们",
		"nav_services":         "服务与支持",
		"nav_contact":          "联系我们",
		"lang_switch":          "English",
		"home_title":           "首页",
		"home_featured":        "推荐产品",
		"home_view_all":        "查看全部产品",
		"products_title":       "产品中心",
		"products_all":         "全部产品",
		"products_empty":       "暂无产品",
		"product_details":      "查看详情",
		"product_category":     "产品分类",
		"product_desc":         "产品描述",
		"product_features":     "产品特点",
		"product_video":        "产品视频",
		"product_manual":       "下载说明书",
		"product_gallery":      "产品图库",
		"product_inquiry":      "在线咨询",
		"product_not_found":    "产品不存在",
		"about_title":          "关于我们",
		"about_mission":        "我们的使命",
		"services_title":       "服务与支持",
		"services_manuals":     "产品手册",
		"services_videos":      "视频教程",
		"services_download":    "下载",
		"contact_title":        "联系我们",
		"contact_address":      "地址",
		"contact_phone":        "电话",
		"contact_email":        "邮箱",
		"contact_hours":        "工作时间",
		"contact_whatsapp":     "WhatsApp",
		"contact_form":         "在线留言",
		"contact_name":         "姓名 / 公司",
		"contact_message":      "留言内容",
		"contact_send":         "发送",
		"contact_success":      "留言已发送，我们会尽快与您联系。",
		"contact_failed":       "留言发送失败，请稍后再试。",
		"chat_title":           "在线咨询",
		"chat_company":         "公司名称",
		"chat_product":         "感兴趣的产品",
		"chat_start":           "开始咨询",
		"chat_placeholder":     "请输入消息...",
		"chat_send":            "发送",
		"footer_rights":        "版权所有",
		"error_server":         "服务器错误",
		"error_not_found":      "页面不存在",
		"admin_login":          "管理员登录",
		"admin_username":       "用户名",
		"admin_password":       "密码",
		"admin_submit":         "登录",
		"admin_logout":         "退出",
		"admin_dashboard":      "后台管理",
		"admin_products":       "产品列表",
		"admin_product_add":    "添加产品",
		"admin_product_edit":   "编辑产品",
		"admin_categories":     "产品分类管理",
		"admin_carousel":       "首页轮播管理",
		"admin_slide_edit":     "编辑轮播图片",
		"admin_support":        "服务与技术资源",
		"admin_contact":        "联系方式管理",
		"admin_about":          "关于我们管理",
		"admin_services":       "服务与支持管理",
		"admin_account":        "账户设置",
		"admin_chat":           "在线咨询",
		"admin_plugins":        "系统插件管理",
		"admin_save":           "保存",
		"admin_delete":         "删除",
		"admin_edit":           "编辑",
		"admin_export":         "导出Excel",
		"admin_upload_ok":      "上传成功",
		"chat_phone":           "电话",
		"chat_email":           "邮箱",
		"admin_view_site":      "查看网站",
		"admin_new_password":   "新密码",
		"admin_password_hint":  "留空则不修改密码",
		"admin_server":         "服务器状态",
		"admin_uptime":         "运行时间",
		"admin_memory":         "内存",
		"admin_database":       "数据库",
		"admin_tables":         "数据表",
		"admin_last_updated":   "最后更新",
		"admin_visitors":       "访客分布",
		"admin_recent_logs":    "最近访问记录",
		"admin_location":       "位置",
		"admin_path":           "路径",
		"admin_time":           "时间",
		"admin_confirm_delete": "确定删除吗？",
		"admin_name":           "名称",
		"admin_created":        "创建时间",
		"admin_auto_translate": "留空自动翻译",
		"admin_main_image":     "主图",
		"admin_feature_photos": "特点图片",
		"admin_video_url":      "视频链接",
		"admin_cancel":         "取消",
		"admin_images":         "产品图片",
		"admin_add":            "添加",
		"admin_title":          "标题",
		"admin_caption":        "说明",
		"admin_carousel_hint":  "每次最多上传10张图片，可选填宽度、高度或缩放比例",
		"admin_upload":         "上传",
		"admin_width":          "宽度 (px)",
		"admin_height":         "高度 (px)",
		"admin_scale":          "缩放比例 (%)",
		"admin_type":           "类型",
		"admin_file":           "文件",
		"admin_about_lead":     "导语",
		"admin_about_desc":     "公司介绍",
		"admin_stats":          "数据亮点",
		"admin_content":        "内容",
		"admin_chat_empty":     "暂无咨询",
		"admin_chat_select":    "请选择一个咨询会话",
		"admin_update_all":     "全部更新",
		"admin_audit_fix":      "安全修复",
		"admin_updated_all":    "已更新全部依赖",
		"admin_updated_one":    "已更新",
		"admin_audit_done":     "安全修复已执行",
		"admin_vulnerabilities":"安全漏洞",
		"admin_outdated":     "可更新依赖",
		"admin_module":       "模块",
		"admin_current":      "当前版本",
		"admin_latest":       "最新版本",
		"admin_update":       "更新",
		"admin_dependencies": "依赖列表",
	},
	LangEn: {
		"site_name":            "Ouma Machinery",
		"nav_home":             "Home",
		"nav_products":         "Products",
		"nav_about":            "About Us",
		"nav_services":         "Services & Support",
		"nav_contact":          "Contact",
		"lang_switch":          "中文",
		"home_title":           "Home",
		"home_featured":        "Featured Products",
		"home_view_all":        "View All Products",
		"products_title":       "Products",
		"products_all":         "All Products",
		"products_empty":       "No products yet",
		"product_details":      "Details",
		"product_category":     "Categories",
		"product_desc":         "Description",
		"product_features":     "Features",
		"product_video":        "Video",
		"product_manual":       "Download Manual",
		"product_gallery":      "Gallery",
		"product_inquiry":      "Inquiry",
		"product_not_found":    "Product not found",
		"about_title":          "About Us",
		"about_mission":        "Our Mission",
		"services_title":       "Services & Support",
		"services_manuals":     "Manuals",
		"services_videos":      "Videos",
		"services_download":    "Download",
		"contact_title":        "Contact Us",
		"contact_address":      "Address",
		"contact_phone":        "Phone",
		"contact_email":        "Email",
		"contact_hours":        "Working Hours",
		"contact_whatsapp":     "WhatsApp",
		"contact_form":         "Leave a Message",
		"contact_name":         "Name / Company",
		"contact_message":      "Message",
		"contact_send":         "Send",
		"contact_success":      "Your message has been sent. We will contact you soon.",
		"contact_failed":       "Sending failed, please try again later.",
		"chat_title":           "Online Inquiry",
		"chat_company":         "Company",
		"chat_product":         "Interested Product",
		"chat_start":           "Start Chat",
		"chat_placeholder":     "Type a message...",
		"chat_send":            "Send",
		"footer_rights":        "All rights reserved",
		"error_server":         "Server Error",
		"error_not_found":      "Page not found",
		"admin_login":          "Admin Login",
		"admin_username":       "Username",
		"admin_password":       "Password",
		"admin_submit":         "Login",
		"admin_logout":         "Logout",
		"admin_dashboard":      "Dashboard",
		"admin_products":       "Products",
		"admin_product_add":    "Add Product",
		"admin_product_edit":   "Edit Product",
		"admin_categories":     "Categories",
		"admin_carousel":       "Carousel",
		"admin_slide_edit":     "Edit Slide",
		"admin_support":        "Support Resources",
		"admin_contact":        "Contact Info",
		"admin_about":          "About Page",
		"admin_services":       "Services Page",
		"admin_account":        "Account",
		"admin_chat":           "Inquiries",
		"admin_plugins":        "Plugins",
		"admin_save":           "Save",
		"admin_delete":         "Delete",
		"admin_edit":           "Edit",
		"admin_export":         "Export Excel",
		"admin_upload_ok":      "Upload successful",
		"chat_phone":           "Phone",
		"chat_email":           "Email",
		"admin_view_site":      "View Site",
		"admin_new_password":   "New Password",
		"admin_password_hint":  "Leave blank to keep the current password",
		"admin_server":         "Server",
		"admin_uptime":         "Uptime",
		"admin_memory":         "Memory",
		"admin_database":       "Database",
		"admin_tables":         "Tables",
		"admin_last_updated":   "Last Updated",
		"admin_visitors":       "Visitors by Country",
		"admin_recent_logs":    "Recent Visits",
		"admin_location":       "Location",
		"admin_path":           "Path",
		"admin_time":           "Time",
		"admin_confirm_delete": "Delete this item?",
		"admin_name":           "Name",
		"admin_created":        "Created",
		"admin_auto_translate": "leave blank to translate automatically",
		"admin_main_image":     "Main Image",
		"admin_feature_photos": "Feature Photos",
		"admin_video_url":      "Video URL",
		"admin_cancel":         "Cancel",
		"admin_images":         "Images",
		"admin_add":            "Add",
		"admin_title":          "Title",
		"admin_caption":        "Caption",
		"admin_carousel_hint":  "Up to 10 images per upload. Width, height or scale are optional.",
		"admin_upload":         "Upload",
		"admin_width":          "Width (px)",
		"admin_height":         "Height (px)",
		"admin_scale":          "Scale (%)",
		"admin_type":           "Type",
		"admin_file":           "File",
		"admin_about_lead":     "Lead",
		"admin_about_desc":     "Company Profile",
		"admin_stats":          "Highlight",
		"admin_content":        "Content",
		"admin_chat_empty":     "No inquiries yet",
		"admin_chat_select":    "Select an inquiry",
		"admin_update_all":     "Update All",
		"admin_audit_fix":      "Audit Fix",
		"admin_updated_all":    "All dependencies updated",
		"admin_updated_one":    "Updated",
		"admin_audit_done":     "Audit fix finished",
		"admin_vulnerabilities":"Vulnerabilities",
		"admin_outdated":     "Outdated Modules",
		"admin_module":       "Module",
		"admin_current":      "Current",
		"admin_latest":       "Latest",
		"admin_update":       "Update",
		"admin_dependencies": "Dependencies",
	},
}
