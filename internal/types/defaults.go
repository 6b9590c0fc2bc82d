package types

// DefaultCV returns the seeded sample document a new editing session
// starts from. The content mirrors the reference sample résumé so that a
// fresh preview is never blank.
func DefaultCV() *CVData {
	return &CVData{
		PersonalDetails: PersonalDetails{
			Name:     "Alex Johnson",
			Title:    "Senior Software Engineer",
			Email:    "alex.johnson@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			Website:  "alexjohnson.dev",
			Summary: "Results-driven software engineer with 8+ years of experience designing and developing " +
				"scalable applications. Strong expertise in JavaScript, TypeScript, React, and Node.js. " +
				"Passionate about creating elegant solutions to complex problems.",
		},
		Experience: []Experience{
			{
				ID:        "1",
				Company:   "Tech Innovations Inc.",
				Position:  "Senior Software Engineer",
				Location:  "San Francisco, CA",
				StartDate: "Jan 2021",
				EndDate:   "",
				Current:   true,
				Description: "Lead a team of 5 developers to build and maintain enterprise SaaS applications. " +
					"Implemented microservices architecture that improved system scalability by 40%. " +
					"Reduced API response time by 30% through optimizing database queries and implementing caching strategies.",
			},
			{
				ID:        "2",
				Company:   "Data Systems LLC",
				Position:  "Software Engineer",
				Location:  "Oakland, CA",
				StartDate: "Mar 2018",
				EndDate:   "Dec 2020",
				Description: "Developed and maintained RESTful APIs for the company's flagship product. " +
					"Implemented automated testing which increased code coverage from 65% to 90%. " +
					"Collaborated with cross-functional teams to deliver features on time and within scope.",
			},
			{
				ID:        "3",
				Company:   "WebDev Solutions",
				Position:  "Junior Developer",
				Location:  "Berkeley, CA",
				StartDate: "Jun 2016",
				EndDate:   "Feb 2018",
				Description: "Assisted in the development of responsive web applications using React.js. " +
					"Collaborated with UX designers to implement pixel-perfect interfaces. " +
					"Participated in code reviews and contributed to technical documentation.",
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "University of California, Berkeley",
				Degree:      "Master's",
				Field:       "Computer Science",
				Location:    "Berkeley, CA",
				StartDate:   "2014",
				EndDate:     "2016",
				Description: "Specialized in Artificial Intelligence and Machine Learning. Graduated with honors.",
			},
			{
				ID:          "2",
				Institution: "Stanford University",
				Degree:      "Bachelor's",
				Field:       "Software Engineering",
				Location:    "Stanford, CA",
				StartDate:   "2010",
				EndDate:     "2014",
				Description: "Participated in multiple hackathons and programming competitions. Member of the Computer Science Club.",
			},
		},
		Skills: []SkillCategory{
			{
				ID:   "1",
				Name: "Programming Languages",
				Skills: []Skill{
					{ID: "101", Name: "JavaScript", Level: 5},
					{ID: "102", Name: "TypeScript", Level: 5},
					{ID: "103", Name: "Python", Level: 4},
					{ID: "104", Name: "Java", Level: 3},
				},
			},
			{
				ID:   "2",
				Name: "Frontend Development",
				Skills: []Skill{
					{ID: "201", Name: "React", Level: 5},
					{ID: "202", Name: "Next.js", Level: 4},
					{ID: "203", Name: "HTML/CSS", Level: 5},
					{ID: "204", Name: "Redux", Level: 4},
				},
			},
			{
				ID:   "3",
				Name: "Backend Development",
				Skills: []Skill{
					{ID: "301", Name: "Node.js", Level: 5},
					{ID: "302", Name: "Express", Level: 4},
					{ID: "303", Name: "MongoDB", Level: 4},
					{ID: "304", Name: "PostgreSQL", Level: 3},
				},
			},
		},
		Projects: []Project{
			{
				ID:   "1",
				Name: "E-commerce Platform",
				Description: "Built a full-stack e-commerce platform using React, Node.js, and MongoDB. " +
					"Implemented features such as product search, shopping cart, user authentication, and payment processing.",
				Skills: []string{"React", "Node.js", "MongoDB", "Express"},
				Link:   "https://github.com/alexjohnson/ecommerce-platform",
				Date:   "2020 - 2021",
			},
			{
				ID:   "2",
				Name: "Real-time Chat Application",
				Description: "Developed a real-time chat application using Socket.io and React. " +
					"Implemented features like private messaging, group chats, and message notifications.",
				Skills: []string{"React", "Socket.io", "Express", "MongoDB"},
				Link:   "https://github.com/alexjohnson/chat-app",
				Date:   "2019",
			},
		},
	}
}
