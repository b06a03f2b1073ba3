package catalog

import "github.com/raflytch/skillorbit-server/internal/domain"

func interviewQuestions() map[string][]domain.InterviewQuestion {
	return map[string][]domain.InterviewQuestion{
		"Data Scientist": {
			{
				Question:         "What is the difference between supervised and unsupervised learning?",
				Difficulty:       domain.DifficultyEasy,
				Category:         "Machine Learning Basics",
				ExpectedKeywords: []string{"labeled data", "classification", "regression", "clustering", "training"},
			},
			{
				Question:         "Explain overfitting and how to prevent it.",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Machine Learning",
				ExpectedKeywords: []string{"generalization", "regularization", "validation", "cross-validation", "complexity"},
			},
			{
				Question:         "What is gradient descent and how does it work?",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Optimization",
				ExpectedKeywords: []string{"optimization", "loss function", "learning rate", "convergence", "backpropagation"},
			},
			{
				Question:         "Explain the bias-variance tradeoff.",
				Difficulty:       domain.DifficultyHard,
				Category:         "Machine Learning Theory",
				ExpectedKeywords: []string{"bias", "variance", "underfitting", "overfitting", "model complexity"},
			},
			{
				Question:         "How would you handle missing data in a dataset?",
				Difficulty:       domain.DifficultyEasy,
				Category:         "Data Preprocessing",
				ExpectedKeywords: []string{"imputation", "deletion", "mean", "median", "predictive modeling"},
			},
		},
		"Full Stack Developer": {
			{
				Question:         "What is the difference between REST and GraphQL?",
				Difficulty:       domain.DifficultyMedium,
				Category:         "API Design",
				ExpectedKeywords: []string{"endpoints", "query", "flexibility", "over-fetching", "schema"},
			},
			{
				Question:         "Explain closures in JavaScript.",
				Difficulty:       domain.DifficultyMedium,
				Category:         "JavaScript",
				ExpectedKeywords: []string{"scope", "function", "lexical", "encapsulation", "private"},
			},
			{
				Question:         "What are React hooks and why are they useful?",
				Difficulty:       domain.DifficultyEasy,
				Category:         "React",
				ExpectedKeywords: []string{"useState", "useEffect", "functional components", "lifecycle", "state management"},
			},
			{
				Question:         "How do you optimize database queries?",
				Difficulty:       domain.DifficultyHard,
				Category:         "Database",
				ExpectedKeywords: []string{"indexing", "query planning", "normalization", "caching", "joins"},
			},
			{
				Question:         "Explain the concept of middleware in Express.js.",
				Difficulty:       domain.DifficultyEasy,
				Category:         "Node.js",
				ExpectedKeywords: []string{"request", "response", "next", "pipeline", "processing"},
			},
		},
		"AI Engineer": {
			{
				Question:         "What is backpropagation in neural networks?",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Deep Learning",
				ExpectedKeywords: []string{"gradient", "chain rule", "weights", "optimization", "error propagation"},
			},
			{
				Question:         "Explain the transformer architecture.",
				Difficulty:       domain.DifficultyHard,
				Category:         "NLP",
				ExpectedKeywords: []string{"attention", "self-attention", "encoder", "decoder", "positional encoding"},
			},
			{
				Question:         "What is transfer learning and when would you use it?",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Deep Learning",
				ExpectedKeywords: []string{"pre-trained", "fine-tuning", "feature extraction", "limited data", "domain adaptation"},
			},
			{
				Question:         "How do you prevent overfitting in deep learning models?",
				Difficulty:       domain.DifficultyEasy,
				Category:         "Model Optimization",
				ExpectedKeywords: []string{"dropout", "regularization", "early stopping", "data augmentation", "batch normalization"},
			},
			{
				Question:         "Explain the difference between CNN and RNN.",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Neural Networks",
				ExpectedKeywords: []string{"convolutional", "recurrent", "spatial", "sequential", "temporal"},
			},
		},
		"Cloud Architect": {
			{
				Question:         "What is the difference between horizontal and vertical scaling?",
				Difficulty:       domain.DifficultyEasy,
				Category:         "Scalability",
				ExpectedKeywords: []string{"instances", "capacity", "load balancer", "cost", "availability"},
			},
			{
				Question:         "How would you design a highly available web application on AWS?",
				Difficulty:       domain.DifficultyHard,
				Category:         "Cloud Architecture",
				ExpectedKeywords: []string{"availability zones", "auto scaling", "load balancer", "replication", "failover"},
			},
			{
				Question:         "Explain infrastructure as code and its benefits.",
				Difficulty:       domain.DifficultyMedium,
				Category:         "DevOps",
				ExpectedKeywords: []string{"terraform", "version control", "reproducible", "automation", "drift"},
			},
			{
				Question:         "What is a service mesh and when would you use one?",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Microservices",
				ExpectedKeywords: []string{"sidecar", "traffic", "observability", "mtls", "retries"},
			},
		},
		"Product Manager": {
			{
				Question:         "How do you prioritize features on a product roadmap?",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Roadmapping",
				ExpectedKeywords: []string{"impact", "effort", "customer", "metrics", "trade-offs"},
			},
			{
				Question:         "Describe how you would run an A/B test for a new feature.",
				Difficulty:       domain.DifficultyMedium,
				Category:         "Experimentation",
				ExpectedKeywords: []string{"hypothesis", "control", "sample size", "significance", "metric"},
			},
			{
				Question:         "How do you handle disagreement between stakeholders?",
				Difficulty:       domain.DifficultyEasy,
				Category:         "Stakeholder Management",
				ExpectedKeywords: []string{"alignment", "data", "goals", "communication", "compromise"},
			},
		},
	}
}
