package catalog

import "github.com/mlearn/backend/internal/models"

var coursesData = []models.Course{
	{
		ID:         1,
		Title:      "The Complete Web Development Bootcamp",
		Instructor: "Elena Vasquez",
		ImageURL:   "https://images.mlearn.dev/courses/web-bootcamp.jpg",
		VideoURL:   "https://videos.mlearn.dev/courses/web-bootcamp/intro.mp4",
		Price:      99.99,
		Description: "Build modern, responsive websites from scratch. Covers HTML, CSS, " +
			"JavaScript and deployment, with a capstone project in every module.",
		Curriculum: []models.CurriculumModule{
			{
				Module: "Foundations",
				Lessons: []models.Lesson{
					{Title: "How the Web Works", Duration: "12:40"},
					{Title: "Setting Up Your Environment", Duration: "09:15"},
					{Title: "Your First Page", Duration: "15:02"},
				},
			},
			{
				Module: "Styling and Layout",
				Lessons: []models.Lesson{
					{Title: "CSS Selectors in Depth", Duration: "18:30"},
					{Title: "Flexbox and Grid", Duration: "22:11"},
					{Title: "Responsive Design", Duration: "17:45"},
				},
			},
			{
				Module: "Interactivity",
				Lessons: []models.Lesson{
					{Title: "JavaScript Essentials", Duration: "25:00"},
					{Title: "DOM Manipulation", Duration: "19:27"},
				},
			},
		},
		InstructorBio:   "Elena has shipped production web apps for over a decade and taught more than 200,000 students online.",
		InstructorImage: "https://images.mlearn.dev/instructors/elena-vasquez.jpg",
	},
	{
		ID:         2,
		Title:      "Data Science with Python",
		Instructor: "Marcus Chen",
		ImageURL:   "https://images.mlearn.dev/courses/data-science.jpg",
		VideoURL:   "https://videos.mlearn.dev/courses/data-science/intro.mp4",
		Price:      129.99,
		Description: "From pandas to machine learning pipelines. Hands-on notebooks, " +
			"real datasets, and a portfolio-ready final project.",
		Curriculum: []models.CurriculumModule{
			{
				Module: "Python for Data",
				Lessons: []models.Lesson{
					{Title: "NumPy Fundamentals", Duration: "14:20"},
					{Title: "DataFrames with pandas", Duration: "21:08"},
				},
			},
			{
				Module: "Analysis and Modeling",
				Lessons: []models.Lesson{
					{Title: "Exploratory Data Analysis", Duration: "23:55"},
					{Title: "Your First Model", Duration: "28:40"},
				},
			},
		},
		InstructorBio:   "Marcus is a data scientist and former quant who enjoys making statistics approachable.",
		InstructorImage: "https://images.mlearn.dev/instructors/marcus-chen.jpg",
	},
	{
		ID:         3,
		Title:      "UI Design Masterclass",
		Instructor: "Alice Sommer",
		ImageURL:   "https://images.mlearn.dev/courses/ui-design.jpg",
		VideoURL:   "https://videos.mlearn.dev/courses/ui-design/intro.mp4",
		Price:      79.99,
		Description: "Design interfaces people love. Typography, color, spacing and " +
			"prototyping, taught through real product redesigns.",
		Curriculum: []models.CurriculumModule{
			{
				Module: "Design Principles",
				Lessons: []models.Lesson{
					{Title: "Visual Hierarchy", Duration: "11:05"},
					{Title: "Typography that Works", Duration: "16:33"},
					{Title: "Color Systems", Duration: "13:47"},
				},
			},
			{
				Module: "From Sketch to Prototype",
				Lessons: []models.Lesson{
					{Title: "Wireframing", Duration: "15:18"},
					{Title: "High-Fidelity Mockups", Duration: "20:52"},
					{Title: "Clickable Prototypes", Duration: "18:09"},
				},
			},
		},
		InstructorBio:   "Alice led design teams at two unicorn startups before turning to teaching full time.",
		InstructorImage: "https://images.mlearn.dev/instructors/alice-sommer.jpg",
	},
	{
		ID:         4,
		Title:      "Go for Backend Engineers",
		Instructor: "Priya Raman",
		ImageURL:   "https://images.mlearn.dev/courses/go-backend.jpg",
		VideoURL:   "https://videos.mlearn.dev/courses/go-backend/intro.mp4",
		Price:      109.99,
		Description: "Production-grade services in Go: HTTP APIs, databases, testing " +
			"and deployment, with an emphasis on idiomatic code.",
		Curriculum: []models.CurriculumModule{
			{
				Module: "Language Core",
				Lessons: []models.Lesson{
					{Title: "Types and Interfaces", Duration: "19:12"},
					{Title: "Error Handling", Duration: "14:58"},
					{Title: "Concurrency Basics", Duration: "24:31"},
				},
			},
			{
				Module: "Building Services",
				Lessons: []models.Lesson{
					{Title: "HTTP Servers and Routers", Duration: "26:04"},
					{Title: "Talking to Databases", Duration: "22:46"},
					{Title: "Testing Strategies", Duration: "17:39"},
				},
			},
		},
		InstructorBio:   "Priya builds high-traffic backend systems and contributes to several open source Go projects.",
		InstructorImage: "https://images.mlearn.dev/instructors/priya-raman.jpg",
	},
	{
		ID:         5,
		Title:      "Digital Marketing Fundamentals",
		Instructor: "Tom Oduya",
		ImageURL:   "https://images.mlearn.dev/courses/marketing.jpg",
		VideoURL:   "https://videos.mlearn.dev/courses/marketing/intro.mp4",
		Price:      59.99,
		Description: "SEO, content, email and paid channels explained without jargon. " +
			"Plan and launch your first campaign by the end of the course.",
		Curriculum: []models.CurriculumModule{
			{
				Module: "Owned Channels",
				Lessons: []models.Lesson{
					{Title: "Search Engine Basics", Duration: "13:26"},
					{Title: "Content that Converts", Duration: "18:14"},
				},
			},
			{
				Module: "Paid Channels",
				Lessons: []models.Lesson{
					{Title: "Running Your First Ads", Duration: "21:37"},
					{Title: "Measuring What Matters", Duration: "16:50"},
				},
			},
		},
		InstructorBio:   "Tom has run growth for consumer brands across three continents.",
		InstructorImage: "https://images.mlearn.dev/instructors/tom-oduya.jpg",
	},
}
