package catalog

import "github.com/raflytch/skillorbit-server/internal/domain"

func roleSkills() map[string]domain.SkillProfile {
	return map[string]domain.SkillProfile{
		"Data Scientist": {
			Core:     []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization"},
			Advanced: []string{"Deep Learning", "NLP", "Computer Vision", "Big Data", "MLOps"},
			Emerging: []string{"LLMs", "Transformers", "AutoML", "Edge AI"},
		},
		"Full Stack Developer": {
			Core:     []string{"JavaScript", "HTML/CSS", "React", "Node.js", "Git"},
			Advanced: []string{"TypeScript", "Docker", "CI/CD", "MongoDB", "PostgreSQL"},
			Emerging: []string{"Next.js", "GraphQL", "Kubernetes", "Serverless"},
		},
		"AI Engineer": {
			Core:     []string{"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch"},
			Advanced: []string{"Neural Networks", "Computer Vision", "NLP", "Model Optimization"},
			Emerging: []string{"LLMs", "Transformers", "Reinforcement Learning", "Edge AI"},
		},
		"Cloud Architect": {
			Core:     []string{"AWS", "Azure", "Cloud Infrastructure", "Networking", "Security"},
			Advanced: []string{"Kubernetes", "Docker", "Terraform", "CI/CD", "Microservices"},
			Emerging: []string{"Serverless", "Multi-Cloud", "Cloud Native", "Service Mesh"},
		},
		"Product Manager": {
			Core:     []string{"Product Strategy", "Roadmapping", "Stakeholder Management", "Agile", "Data Analysis"},
			Advanced: []string{"User Research", "A/B Testing", "Product Analytics", "Go-to-Market"},
			Emerging: []string{"AI Product Management", "Growth Hacking", "Product-Led Growth"},
		},
	}
}

// extractorSkills is the keyword list scanned for in resume text. Order is
// significant: extracted skills are reported in this order.
func extractorSkills() []string {
	return []string{
		"Python", "JavaScript", "Java", "C++", "React", "Node.js", "SQL", "MongoDB",
		"Machine Learning", "Deep Learning", "NLP", "Computer Vision", "Docker",
		"Kubernetes", "AWS", "Azure", "Git", "TensorFlow", "PyTorch", "Pandas", "NumPy",
		"TypeScript", "HTML/CSS", "PostgreSQL", "Redis", "GraphQL", "CI/CD", "DevOps",
		"Microservices", "REST API", "Agile", "Scrum", "Data Visualization", "Statistics",
		"Big Data", "Spark", "Hadoop", "ETL", "Data Analysis", "Excel", "Tableau", "Power BI",
	}
}

func projects() map[string][]domain.Project {
	return map[string][]domain.Project{
		"Machine Learning": {
			{
				Title:       "Customer Churn Prediction",
				Difficulty:  "Intermediate",
				Duration:    "2-3 weeks",
				Description: "Train and evaluate a churn classifier on a real subscription dataset",
				URL:         "https://www.kaggle.com/competitions/customer-churn-prediction",
			},
		},
		"Python": {
			{
				Title:       "Build a REST API",
				Difficulty:  "Beginner",
				Duration:    "1-2 weeks",
				Description: "Design and ship a small REST API with authentication and tests",
				URL:         "https://realpython.com/api-integration-in-python/",
			},
		},
	}
}
