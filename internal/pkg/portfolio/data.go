package portfolio

// DefaultContent is the bundled site content. Swap this out to make the
// site yours; nothing else references the concrete entries.
func DefaultContent() Content {
	return Content{
		About: About{
			Name:     "Felix Brandt",
			Tagline:  "Backend engineer with a soft spot for clean APIs, fast services and photography.",
			Email:    "hello@felixbrandt.dev",
			Location: "Hamburg, Germany",
		},
		Skills: []Skill{
			{ID: "go", Name: "Go", Category: "development", Proficiency: 90, YearsOfExperience: 5, Projects: []string{"foliogram"}},
			{ID: "test-automation", Name: "Test Automation", Category: "qa", Proficiency: 88, YearsOfExperience: 4},
			{ID: "api-testing", Name: "API Testing", Category: "qa", Proficiency: 85, YearsOfExperience: 3},
			{ID: "docker", Name: "Docker", Category: "tools", Proficiency: 80, YearsOfExperience: 4},
			{ID: "sql", Name: "SQL", Category: "development", Proficiency: 75, YearsOfExperience: 5},
			{ID: "communication", Name: "Communication", Category: "soft", Proficiency: 92, YearsOfExperience: 8},
		},
		Projects: []Project{
			{
				ID:          "foliogram",
				Title:       "Foliogram",
				Category:    "web",
				Description: "This site: a portfolio with a cloud-backed photo gallery, progressive image loading and a keyboard-driven viewer.",
				Technologies: []string{
					"Go", "Fiber", "Redis", "Google Drive API",
				},
				Features: []string{
					"Category-based photo gallery",
					"Search, filter and sort",
					"Full-screen viewer with slideshow",
				},
				Links:    map[string]string{"github": "https://github.com/FelixBrandt/Foliogram"},
				Featured: true,
			},
			{
				ID:          "api-contract-suite",
				Title:       "API Contract Test Suite",
				Category:    "qa",
				Description: "Contract tests for a public REST API, wired into CI with per-endpoint coverage reporting.",
				Technologies: []string{
					"Go", "testify", "OpenAPI",
				},
				Features: []string{
					"Schema-driven request generation",
					"Failure triage reports",
				},
				Featured: true,
			},
			{
				ID:          "load-probe",
				Title:       "Load Probe",
				Category:    "opensource",
				Description: "Small CLI for latency probing of HTTP endpoints with percentile summaries.",
				Technologies: []string{
					"Go",
				},
				Features: []string{
					"Configurable concurrency",
					"P50/P95/P99 summaries",
				},
				Featured: false,
			},
		},
		Experience: []Experience{
			{
				ID:          "current",
				Company:     "Independent",
				Position:    "Software Engineer",
				StartDate:   "2023-01",
				Description: "Building and testing web services for small businesses, with a focus on reliability and maintainability.",
				Achievements: []string{
					"Delivered six production services with automated test coverage above 80%",
					"Introduced CI pipelines that cut release turnaround from days to hours",
				},
				Technologies: []string{"Go", "PostgreSQL", "Docker", "GitHub Actions"},
			},
			{
				ID:          "previous",
				Company:     "Webwerk GmbH",
				Position:    "QA Engineer",
				StartDate:   "2019-06",
				EndDate:     "2022-12",
				Description: "Led test automation for a portfolio of customer-facing web applications.",
				Achievements: []string{
					"Raised automated coverage from 40% to 85%",
					"Cut critical production defects by more than half",
				},
				Technologies: []string{"Selenium", "Cypress", "Postman", "Python"},
			},
		},
	}
}
