package catalog

import "github.com/raflytch/skillorbit-server/internal/domain"

func courses() []domain.Course {
	return []domain.Course{
		{ID: "python-for-everybody", Title: "Python for Everybody Specialization", Provider: "Coursera", URL: "https://coursera.org/specializations/python", Duration: "8 months", Rating: 4.8, Skills: []string{"Python"}},
		{ID: "advanced-python", Title: "Advanced Python Programming", Provider: "Udemy", URL: "https://udemy.com/python-advanced", Duration: "2 months", Rating: 4.7, Skills: []string{"Python"}},

		{ID: "machine-learning-specialization", Title: "Machine Learning Specialization", Provider: "DeepLearning.AI", URL: "https://coursera.org/specializations/machine-learning", Duration: "3 months", Rating: 4.9, Skills: []string{"Machine Learning", "Python", "TensorFlow"}},
		{ID: "deep-learning-specialization", Title: "Deep Learning Specialization", Provider: "DeepLearning.AI", URL: "https://coursera.org/specializations/deep-learning", Duration: "5 months", Rating: 4.9, Skills: []string{"Deep Learning", "TensorFlow", "PyTorch", "Python"}},
		{ID: "pytorch-deep-learning", Title: "PyTorch for Deep Learning", Provider: "Udemy", URL: "https://udemy.com/pytorch-deep-learning", Duration: "2 months", Rating: 4.7, Skills: []string{"PyTorch", "Deep Learning", "Python"}},
		{ID: "tensorflow-certificate", Title: "TensorFlow Developer Certificate", Provider: "Google", URL: "https://tensorflow.org/certificate", Duration: "4 months", Rating: 4.8, Skills: []string{"TensorFlow", "Machine Learning", "Python"}},

		{ID: "ibm-data-science", Title: "Data Science with Python", Provider: "IBM", URL: "https://coursera.org/professional-certificates/ibm-data-science", Duration: "6 months", Rating: 4.6, Skills: []string{"Python", "Data Analysis", "Pandas", "NumPy", "SQL"}},
		{ID: "statistics-data-science", Title: "Statistics for Data Science", Provider: "Coursera", URL: "https://coursera.org/learn/statistics", Duration: "2 months", Rating: 4.7, Skills: []string{"Statistics", "Data Analysis"}},
		{ID: "pandas-numpy-masterclass", Title: "Pandas & NumPy Masterclass", Provider: "Udemy", URL: "https://udemy.com/pandas-numpy", Duration: "1 month", Rating: 4.6, Skills: []string{"Pandas", "NumPy", "Python", "Data Analysis"}},

		{ID: "react-complete-guide", Title: "React - The Complete Guide", Provider: "Udemy", URL: "https://udemy.com/react-complete-guide", Duration: "3 months", Rating: 4.8, Skills: []string{"React", "JavaScript", "HTML", "CSS"}},
		{ID: "nodejs-developer", Title: "Node.js Developer Course", Provider: "Udemy", URL: "https://udemy.com/nodejs-developer", Duration: "2 months", Rating: 4.7, Skills: []string{"Node.js", "JavaScript", "REST API"}},
		{ID: "full-stack-web", Title: "Full Stack Web Development", Provider: "Udemy", URL: "https://udemy.com/full-stack", Duration: "6 months", Rating: 4.8, Skills: []string{"JavaScript", "React", "Node.js", "SQL", "HTML", "CSS"}},
		{ID: "typescript-complete", Title: "TypeScript Complete Guide", Provider: "Udemy", URL: "https://udemy.com/typescript", Duration: "1 month", Rating: 4.7, Skills: []string{"TypeScript", "JavaScript"}},

		{ID: "aws-solutions-architect", Title: "AWS Certified Solutions Architect", Provider: "AWS Training", URL: "https://aws.amazon.com/certification", Duration: "3 months", Rating: 4.7, Skills: []string{"AWS", "Cloud Architecture", "DevOps"}},
		{ID: "docker-kubernetes", Title: "Docker & Kubernetes Complete Guide", Provider: "Udemy", URL: "https://udemy.com/docker-kubernetes", Duration: "2 months", Rating: 4.8, Skills: []string{"Docker", "Kubernetes", "DevOps"}},
		{ID: "azure-fundamentals", Title: "Azure Fundamentals", Provider: "Microsoft", URL: "https://learn.microsoft.com/azure", Duration: "2 months", Rating: 4.6, Skills: []string{"Azure", "Cloud Computing", "DevOps"}},
		{ID: "cicd-jenkins-gitlab", Title: "CI/CD with Jenkins & GitLab", Provider: "Udemy", URL: "https://udemy.com/cicd", Duration: "1 month", Rating: 4.5, Skills: []string{"CI/CD", "DevOps", "Git"}},

		{ID: "sql-data-analysis", Title: "SQL for Data Analysis", Provider: "Udacity", URL: "https://udacity.com/sql", Duration: "2 months", Rating: 4.6, Skills: []string{"SQL", "Data Analysis"}},
		{ID: "mongodb-developer", Title: "MongoDB Complete Developer Guide", Provider: "Udemy", URL: "https://udemy.com/mongodb", Duration: "1 month", Rating: 4.7, Skills: []string{"MongoDB", "NoSQL"}},
		{ID: "postgresql-administration", Title: "PostgreSQL Administration", Provider: "Udemy", URL: "https://udemy.com/postgresql", Duration: "2 months", Rating: 4.6, Skills: []string{"PostgreSQL", "SQL"}},

		{ID: "mlops-specialization", Title: "MLOps Specialization", Provider: "DeepLearning.AI", URL: "https://coursera.org/specializations/mlops", Duration: "4 months", Rating: 4.8, Skills: []string{"MLOps", "Kubernetes", "Docker", "Machine Learning"}},
		{ID: "production-ml-systems", Title: "Building Production ML Systems", Provider: "Google Cloud", URL: "https://cloud.google.com/training", Duration: "2 months", Rating: 4.7, Skills: []string{"MLOps", "GCP", "Machine Learning"}},

		{ID: "agile-scrum-masterclass", Title: "Agile & Scrum Masterclass", Provider: "Udemy", URL: "https://udemy.com/agile-scrum", Duration: "1 month", Rating: 4.6, Skills: []string{"Agile", "Scrum"}},
		{ID: "product-management-fundamentals", Title: "Product Management Fundamentals", Provider: "Coursera", URL: "https://coursera.org/product-management", Duration: "2 months", Rating: 4.5, Skills: []string{"Product Management", "Agile"}},
	}
}
