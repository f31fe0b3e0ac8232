// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Layout defaults written with every new website. The renderer reads them
// as Tailwind class names.
const (
	DefaultContainerWidth = "max-w-7xl"
	DefaultBorderRadius   = "rounded-lg"
)

// HeroContent holds the front page hero section. Fields the model did not
// produce are left empty.
type HeroContent struct {
	Title string `json:"frontpage_hero_title"`
	Text  string `json:"frontpage_hero_text"`
	Outro string `json:"frontpage_outro_text"`
}

// Templates selects one of the numbered component variants for each
// layout slot of the public site.
type Templates struct {
	Header    int `json:"template_header"`
	Footer    int `json:"template_footer"`
	BlogPost  int `json:"template_blog_post"`
	Page      int `json:"template_page"`
	FrontPage int `json:"template_front_page"`
}

// Features toggles optional blog components on or off.
type Features struct {
	Breadcrumbs        bool `json:"show_breadcrumbs"`
	RelatedPosts       bool `json:"show_related_posts"`
	SearchBar          bool `json:"show_search_bar"`
	ShareButtons       bool `json:"show_share_buttons"`
	TableOfContents    bool `json:"show_table_of_contents"`
	AuthorBox          bool `json:"show_author_box"`
	TagsDisplay        bool `json:"show_tags_display"`
	ReadingTime        bool `json:"show_reading_time"`
	PostNavigation     bool `json:"show_post_navigation"`
	ReadingProgressBar bool `json:"show_reading_progress_bar"`
}

// Website is one row of the website_data table. The embedded structs are
// flattened by encoding/json so the payload matches the column names.
type Website struct {
	HostName    string `json:"host_name"`
	WebsiteName string `json:"website_name"`
	Topic       string `json:"topic"`
	AboutUs     string `json:"about_us"`
	ContactUs   string `json:"contact_us"`

	HeroContent
	Templates
	DesignTheme

	ContainerWidth  string `json:"container_width"`
	BorderRadius    string `json:"border_radius"`
	MetaDescription string `json:"meta_description"`

	Features
}

// WebsiteSummary is the subset of columns shown when listing websites.
type WebsiteSummary struct {
	ID              string    `json:"id"`
	HostName        string    `json:"host_name"`
	WebsiteName     string    `json:"website_name"`
	Topic           string    `json:"topic"`
	PrimaryColor    string    `json:"primary_color"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	FontHeading     string    `json:"font_heading"`
	FontBody        string    `json:"font_body"`
	CreatedAt       time.Time `json:"created_at"`
}

// SiteRequest is what the operator asks for: a blog name, its topic and
// the hostname it will be served from.
type SiteRequest struct {
	WebsiteName string
	Topic       string
	HostName    string
}

// GeneratedContent holds the output of the five generation steps.
type GeneratedContent struct {
	AboutUs         string
	ContactUs       string
	Hero            HeroContent
	Design          DesignTheme
	MetaDescription string
}
