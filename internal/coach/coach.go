// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package coach scores a SiteConfig for completeness and produces actionable
// tips. The pass is deterministic and stateless: the same document always
// yields the same report, and every call recomputes from scratch so the
// feedback widget can never go stale.
package coach

import (
	"unicode/utf8"

	"shopforge/internal/models"
)

// Tip categories group related rules in the coaching panel.
const (
	CategoryContent = "content"
	CategoryTrust   = "trust"
	CategoryDesign  = "design"
	CategoryUrgency = "urgency"
)

// Level names for the three score bands.
const (
	LevelBeginner = "beginner"
	LevelPro      = "pro"
	LevelMaster   = "master"
)

// Tip is one coaching item. ID is stable across passes for the same rule so
// a UI can diff which tips newly completed. Tips are never persisted.
type Tip struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Points    int    `json:"points"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
}

// Report is the result of one scoring pass.
type Report struct {
	Score                int    `json:"score"`
	Level                string `json:"level"`
	Tips                 []Tip  `json:"tips"`
	CelebrationTriggered bool   `json:"celebrationTriggered"`
}

// rule is one row of the fixed scoring table.
type rule struct {
	id        string
	category  string
	points    int
	satisfied func(models.SiteConfig) bool
	doneMsg   string
	todoMsg   string
}

// rules is the scoring table. Its weights must sum to exactly 100 so a fully
// complete storefront scores 100 and triggers the celebration.
var rules = []rule{
	{
		id:       "headline",
		category: CategoryContent,
		points:   15,
		satisfied: func(c models.SiteConfig) bool {
			return utf8.RuneCountInString(c.Content.HeroHeading) >= 8
		},
		doneMsg: "Strong headline in place.",
		todoMsg: "Write a headline of at least 8 characters.",
	},
	{
		id:       "hero-image",
		category: CategoryContent,
		points:   20,
		satisfied: func(c models.SiteConfig) bool {
			return c.Content.HeroImage != ""
		},
		doneMsg: "Hero image set.",
		todoMsg: "Add a hero image to anchor the page.",
	},
	{
		id:       "reviews",
		category: CategoryTrust,
		points:   15,
		satisfied: func(c models.SiteConfig) bool {
			return len(c.Content.Reviews) >= 2
		},
		doneMsg: "Reviews are building trust.",
		todoMsg: "Add at least two customer reviews.",
	},
	{
		id:       "stickers",
		category: CategoryDesign,
		points:   15,
		satisfied: func(c models.SiteConfig) bool {
			return len(c.Content.Stickers) >= 1
		},
		doneMsg: "Badge added.",
		todoMsg: "Add a badge like \"Best Seller\" to a product.",
	},
	{
		id:       "scarcity",
		category: CategoryUrgency,
		points:   10,
		satisfied: func(c models.SiteConfig) bool {
			return c.Content.ScarcityEnabled
		},
		doneMsg: "Scarcity messaging is on.",
		todoMsg: "Turn on scarcity messaging to create urgency.",
	},
	{
		id:       "subheading",
		category: CategoryContent,
		points:   10,
		satisfied: func(c models.SiteConfig) bool {
			return utf8.RuneCountInString(c.Content.HeroSubheading) >= 10
		},
		doneMsg: "Subheading supports the headline.",
		todoMsg: "Write a subheading of at least 10 characters.",
	},
	{
		id:       "products",
		category: CategoryContent,
		points:   15,
		satisfied: func(c models.SiteConfig) bool {
			return len(c.Content.Products) >= 2
		},
		doneMsg: "Offer section is stocked.",
		todoMsg: "List at least two products.",
	},
}

func init() {
	// The table is fixed at design time; a weight change that breaks the
	// 100-point total is a programming error, caught at startup.
	total := 0
	for _, r := range rules {
		total += r.points
	}
	if total != 100 {
		panic("coach: rule weights must sum to 100")
	}
}

// Score runs the full rule table over the document and returns the report.
// One tip is produced per rule, in table order.
func Score(doc models.SiteConfig) Report {
	report := Report{Tips: make([]Tip, 0, len(rules))}

	for _, r := range rules {
		done := r.satisfied(doc)
		msg := r.todoMsg
		if done {
			msg = r.doneMsg
			report.Score += r.points
		}
		report.Tips = append(report.Tips, Tip{
			ID:        r.id,
			Message:   msg,
			Points:    r.points,
			Completed: done,
			Category:  r.category,
		})
	}

	switch {
	case report.Score >= 70:
		report.Level = LevelMaster
	case report.Score >= 40:
		report.Level = LevelPro
	default:
		report.Level = LevelBeginner
	}
	report.CelebrationTriggered = report.Score == 100

	return report
}
