package quiz

import (
	"strings"

	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

// fallbackBank holds one question per skill, used when the LLM is
// unavailable. Bank order doubles as the fill order so a given skill set
// always yields the same test.
var fallbackBank = []types.Question{
	{
		Question:      "Which of the following is most important for effective written communication?",
		Options:       []string{"Using complex vocabulary", "Being clear and concise", "Writing long sentences", "Using technical jargon"},
		CorrectAnswer: 1,
		Skill:         "Communication",
	},
	{
		Question:      "What is a variable in programming?",
		Options:       []string{"A fixed value", "A storage location with a name", "A type of loop", "A programming language"},
		CorrectAnswer: 1,
		Skill:         "Programming",
	},
	{
		Question:      "Which of the following is used to declare a variable in JavaScript?",
		Options:       []string{"var", "let", "const", "All of the above"},
		CorrectAnswer: 3,
		Skill:         "JavaScript",
	},
	{
		Question:      "Which symbol is used for comments in Python?",
		Options:       []string{"//", "/* */", "#", "<!-- -->"},
		CorrectAnswer: 2,
		Skill:         "Python",
	},
	{
		Question:      "What is the first step in problem-solving?",
		Options:       []string{"Implementing solutions", "Defining the problem clearly", "Brainstorming ideas", "Getting approval"},
		CorrectAnswer: 1,
		Skill:         "Problem Solving",
	},
	{
		Question:      "What is the most important quality of a good leader?",
		Options:       []string{"Being authoritative", "Active listening", "Making all decisions alone", "Avoiding feedback"},
		CorrectAnswer: 1,
		Skill:         "Leadership",
	},
	{
		Question:      "Which behavior best demonstrates good teamwork?",
		Options:       []string{"Working independently", "Sharing knowledge and resources", "Competing with teammates", "Taking all the credit"},
		CorrectAnswer: 1,
		Skill:         "Teamwork",
	},
	{
		Question:      "What is the most effective way to prioritize tasks?",
		Options:       []string{"Do easy tasks first", "Use urgent vs important matrix", "Work randomly", "Do everything at once"},
		CorrectAnswer: 1,
		Skill:         "Time Management",
	},
	{
		Question:      "Which Microsoft Office application is best for creating spreadsheets?",
		Options:       []string{"Word", "Excel", "PowerPoint", "Outlook"},
		CorrectAnswer: 1,
		Skill:         "Microsoft Office",
	},
	{
		Question:      "What is the first step in data analysis?",
		Options:       []string{"Creating charts", "Understanding the data", "Making conclusions", "Presenting results"},
		CorrectAnswer: 1,
		Skill:         "Data Analysis",
	},
	{
		Question:      "Which language is primarily used for styling web pages?",
		Options:       []string{"HTML", "CSS", "JavaScript", "Python"},
		CorrectAnswer: 1,
		Skill:         "Web Development",
	},
	{
		Question:      "What is the most important aspect of good customer service?",
		Options:       []string{"Being fast", "Being friendly", "Understanding customer needs", "Following scripts"},
		CorrectAnswer: 2,
		Skill:         "Customer Service",
	},
	{
		Question:      "What is engagement rate in social media?",
		Options:       []string{"Number of followers", "Ratio of interactions to followers", "Number of posts", "Account age"},
		CorrectAnswer: 1,
		Skill:         "Social Media",
	},
	{
		Question:      "What does the 4 Ps of marketing include?",
		Options:       []string{"Product, Price, Place, Promotion", "People, Process, Physical, Performance", "Plan, Prepare, Present, Perform", "Predict, Produce, Perform, Profit"},
		CorrectAnswer: 0,
		Skill:         "Marketing",
	},
	{
		Question:      "What is the most important skill in sales?",
		Options:       []string{"Talking fast", "Listening to customer needs", "Being pushy", "Knowing all features"},
		CorrectAnswer: 1,
		Skill:         "Sales",
	},
	{
		Question:      "What is the first step in conducting research?",
		Options:       []string{"Collecting data", "Defining research questions", "Analyzing results", "Writing reports"},
		CorrectAnswer: 1,
		Skill:         "Research",
	},
	{
		Question:      "What makes writing clear and effective?",
		Options:       []string{"Using big words", "Simple and direct language", "Long paragraphs", "Technical jargon"},
		CorrectAnswer: 1,
		Skill:         "Writing",
	},
	{
		Question:      "What is the most important aspect of public speaking?",
		Options:       []string{"Speaking loudly", "Knowing your audience", "Using fancy slides", "Memorizing everything"},
		CorrectAnswer: 1,
		Skill:         "Public Speaking",
	},
	{
		Question:      "What is a project milestone?",
		Options:       []string{"The project budget", "A significant checkpoint", "Team member role", "Project risk"},
		CorrectAnswer: 1,
		Skill:         "Project Management",
	},
	{
		Question:      "What does ROI stand for?",
		Options:       []string{"Rate of Interest", "Return on Investment", "Risk of Inflation", "Revenue over Income"},
		CorrectAnswer: 1,
		Skill:         "Financial Analysis",
	},
}

// FallbackQuestions selects five questions from the static bank. Questions
// matching the candidate's skills come first; the rest fill in bank order.
func FallbackQuestions(skills []string) []types.Question {
	wanted := make(map[string]bool, len(skills))
	for _, s := range skills {
		wanted[strings.ToLower(strings.TrimSpace(s))] = true
	}

	selected := make([]types.Question, 0, questionCount)
	used := make(map[string]bool, questionCount)

	for _, q := range fallbackBank {
		if wanted[strings.ToLower(q.Skill)] {
			selected = append(selected, q)
			used[q.Skill] = true
			if len(selected) == questionCount {
				return selected
			}
		}
	}
	for _, q := range fallbackBank {
		if used[q.Skill] {
			continue
		}
		selected = append(selected, q)
		if len(selected) == questionCount {
			break
		}
	}
	return selected
}
