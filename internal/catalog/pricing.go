package catalog

import "github.com/mlearn/backend/internal/models"

var pricingPlansData = []models.PricingPlan{
	{
		Name:      "Free",
		Price:     "0",
		Frequency: "forever",
		Features: []string{
			"Access to select free courses",
			"Community support",
			"Certificate of completion",
			"Contains Ads",
		},
		IsPopular:      false,
		CtaText:        "Sign Up for Free",
		CourseDiscount: 0,
	},
	{
		Name:      "Basic",
		Price:     "19",
		Frequency: "month",
		Features: []string{
			"Access to 20 courses",
			"Basic support",
			"Downloadable resources",
			"Contains a Few Ads",
		},
		IsPopular:      false,
		CtaText:        "Choose Basic",
		CourseDiscount: 0,
	},
	{
		Name:      "Gold",
		Price:     "49",
		Frequency: "month",
		Features: []string{
			"Access to all courses",
			"80% discount on all courses",
			"Priority support",
			"Source files & projects",
			"No Ads",
			"Offline viewing",
		},
		IsPopular:      true,
		CtaText:        "Choose Gold",
		CourseDiscount: 0.8,
	},
	{
		Name:      "Diamond",
		Price:     "Contact Us",
		Frequency: "for enterprise",
		Features: []string{
			"All Gold features",
			"80% discount on all courses",
			"Team management dashboard",
			"No Ads",
			"Dedicated account manager",
		},
		IsPopular:      false,
		CtaText:        "Contact Sales",
		CourseDiscount: 0.8,
	},
}
