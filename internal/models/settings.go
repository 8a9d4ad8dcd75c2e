// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Settings is the singleton settings record: social links shown on the
// browse surface plus the admin password. PasswordScheme records how
// Password is stored; empty means as given.
type Settings struct {
	WhatsApp       string `json:"whatsapp" yaml:"whatsapp"`
	Instagram      string `json:"instagram" yaml:"instagram"`
	Telegram       string `json:"telegram" yaml:"telegram"`
	YouTube        string `json:"youtube" yaml:"youtube"`
	Pinterest      string `json:"pinterest" yaml:"pinterest"`
	Password       string `json:"password" yaml:"password"`
	PasswordScheme string `json:"passwordScheme,omitempty" yaml:"passwordScheme,omitempty"`
}

// Link is a single social-network entry of the settings record.
type Link struct {
	Network string `json:"network"`
	Value   string `json:"value"`
}

// Links returns the social links in display order.
func (s *Settings) Links() []Link {
	return []Link{
		{Network: "whatsapp", Value: s.WhatsApp},
		{Network: "instagram", Value: s.Instagram},
		{Network: "telegram", Value: s.Telegram},
		{Network: "youtube", Value: s.YouTube},
		{Network: "pinterest", Value: s.Pinterest},
	}
}

// Stats holds visit aggregates fed by an external analytics job.
// Nothing in this module mutates it.
type Stats struct {
	VisitsToday     int `json:"visitsToday" yaml:"visitsToday"`
	VisitsYesterday int `json:"visitsYesterday" yaml:"visitsYesterday"`
	VisitsWeek      int `json:"visitsWeek" yaml:"visitsWeek"`
	VisitsMonth     int `json:"visitsMonth" yaml:"visitsMonth"`
}
