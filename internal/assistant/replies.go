package assistant

import "strings"

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleManager   Role = "manager"
	RoleGuest     Role = "guest"
)

// RoleOf maps an account role onto the audience the assistant talks to.
// Anything it does not recognise is treated as a guest.
func RoleOf(accountRole string) Role {
	switch Role(accountRole) {
	case RoleCandidate, RoleManager:
		return Role(accountRole)
	default:
		return RoleGuest
	}
}

type Topic string

const (
	TopicQuizzes        Topic = "quizzes"
	TopicLogin          Topic = "login"
	TopicDashboard      Topic = "dashboard"
	TopicReports        Topic = "reports"
	TopicAccessibility  Topic = "accessibility"
	TopicResume         Topic = "resume"
	TopicWellness       Topic = "wellness"
	TopicBadges         Topic = "badges"
	TopicHelp           Topic = "help"
	TopicGettingStarted Topic = "getting-started"
	TopicFallback       Topic = "fallback"
)

// rule answers when the message contains any keyword. An empty candidate or
// manager reply falls back to other.
type rule struct {
	topic     Topic
	keywords  []string
	candidate string
	manager   string
	other     string
}

func (r rule) matches(msg string) bool {
	for _, k := range r.keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}

func (r rule) reply(role Role) string {
	switch {
	case role == RoleCandidate && r.candidate != "":
		return r.candidate
	case role == RoleManager && r.manager != "":
		return r.manager
	default:
		return r.other
	}
}

var welcomes = map[Role]string{
	RoleCandidate: "Hello! Welcome to NEUROBRIDGE! 🌟 I'm here to help you understand our inclusive skills discovery platform. After logging in, you'll see your personalized dashboard where you can track your progress and access skill-based quizzes designed just for you. The platform helps you build confidence with engaging challenges, badges, and positive feedback. You can also create a professional resume and use tools that support your mental well-being. Would you like to know more about any specific feature?",
	RoleManager:   "Hello, Manager! Welcome to NEUROBRIDGE! 👋 Once you're logged in, you'll have access to all candidate profiles, quiz attendance, and performance summaries. You can generate detailed reports and send them directly to the data team or head office for further review. The portal also offers analytics and filtering tools to help you identify the right candidates and support them more effectively. How can I assist you today?",
	RoleGuest:     "Welcome to NEUROBRIDGE! 🎉 I'm your AI assistant here to help you understand our inclusive neurodivergent skills discovery platform. Whether you're a candidate looking to discover your strengths or a manager seeking talented individuals, I'm here to guide you through our features. What would you like to know?",
}

// ladder is checked top to bottom and the first match wins, so a message
// mentioning both a quiz and a resume is answered as a quiz question.
var ladder = []rule{
	{
		topic:     TopicQuizzes,
		keywords:  []string{"quiz", "test", "assessment"},
		candidate: "Great question! Our quizzes are tailored to help you discover your unique strengths. You'll need to log in first to access them. Once logged in, you can choose from different neurotype categories (Cognitive, Sensory, Motor) and select specific domains to test. Each quiz is gamified with encouraging feedback and badges to make the experience enjoyable! Would you like to start your quiz now?",
		other:     "Our assessment system includes skill-based quizzes across different neurotype categories. As a manager, you can view all candidate quiz results, attendance records, and performance analytics through your dashboard. This helps you understand each candidate's strengths and potential.",
	},
	{
		topic:    TopicLogin,
		keywords: []string{"login", "sign in", "register"},
		other:    "To access all features, you'll need to create an account or sign in. We support email/password authentication with different roles (Candidate or Manager). Once logged in, you'll be redirected to your personalized dashboard with role-specific features. Click the 'Sign In / Register' button to get started!",
	},
	{
		topic:     TopicDashboard,
		keywords:  []string{"dashboard", "profile"},
		candidate: "Your candidate dashboard is your personal hub! Here you can update your professional profile, track quiz progress, view achievements with badges, and access tools for resume building and mental health support. It's designed with neurodivergent-friendly features like accessible fonts and calming colors.",
		manager:   "Your manager dashboard provides comprehensive oversight of all candidates. You can view profiles, quiz results, add performance remarks, generate reports, and use analytics tools. There's also a dedicated Reports section where you can export data and send candidate information to external platforms like LinkedIn, Naukri, and Unstop.",
		other:     "Our dashboards are role-specific! Candidates get a personal space to manage their profile and track progress, while managers get analytical tools to review candidates and generate reports. Both are designed with accessibility and user experience in mind.",
	},
	{
		topic:    TopicReports,
		keywords: []string{"report", "analytics", "export"},
		manager:  "Perfect! The Reports section is one of our key features for managers. You can generate detailed candidate reports, export data as CSV files, filter candidates by status, and send reports directly to your data team or external platforms like LinkedIn, Naukri, and Unstop. You'll also see analytics showing total candidates, recommendations, and average ratings.",
		other:    "Reports and analytics are available for managers to track candidate progress and generate insights. As a candidate, you can view your own performance and progress through your personal dashboard.",
	},
	{
		topic:    TopicAccessibility,
		keywords: []string{"accessibility", "neurodivergent", "inclusive"},
		other:    "Accessibility is at the heart of NEUROBRIDGE! 💙 Our platform features dyslexia-friendly fonts, calming color palettes, high contrast options, keyboard navigation support, screen reader compatibility, and customizable themes. We've designed everything to be inclusive and supportive of neurodivergent users. You can adjust these settings in your dashboard's accessibility preferences.",
	},
	{
		topic:    TopicResume,
		keywords: []string{"resume", "cv"},
		other:    "Our resume builder helps you create professional resumes that highlight your unique strengths! After completing quizzes, you can generate a resume that showcases your skills, experience, and quiz results in a way that emphasizes your neurodivergent advantages. It's designed to help you present your best self to potential employers.",
	},
	{
		topic:    TopicWellness,
		keywords: []string{"mental health", "support", "wellness"},
		other:    "We care about your mental well-being! 🌱 Our platform includes mental health support tools, positive reinforcement through gamification, stress-reducing design elements, and encouraging feedback. We believe in building confidence and supporting your journey of self-discovery in a safe, supportive environment.",
	},
	{
		topic:    TopicBadges,
		keywords: []string{"badge", "achievement", "gamification"},
		other:    "Our gamification system makes learning fun! 🏆 You earn badges for completing quizzes, achieving high scores, and reaching milestones. These achievements help build confidence and motivation while celebrating your progress. Each badge represents a skill or accomplishment you can be proud of!",
	},
	{
		topic:    TopicHelp,
		keywords: []string{"help", "support", "how"},
		other:    "I'm here to help! 😊 I can explain features for candidates (quizzes, dashboard, resume builder, accessibility settings) or managers (candidate oversight, reports, analytics). Just ask me about any specific feature you'd like to know more about. You can also try asking about 'getting started' if you're new to the platform!",
	},
	{
		topic:     TopicGettingStarted,
		keywords:  []string{"start", "begin", "getting started"},
		candidate: "Let's get you started! 🚀 First, make sure you're logged in to access all features. Then visit your dashboard to complete your profile. Once that's done, you can start taking quizzes to discover your strengths. Would you like to start with your profile or jump into a quiz?",
		manager:   "Welcome aboard! 👥 Start by exploring your manager dashboard where you can see all registered candidates. Review their profiles, check quiz results, and add remarks as needed. Don't forget to explore the Reports section for analytics and export options. Need help with any specific feature?",
		other:     "Great! To get started with NEUROBRIDGE: 1) Sign up or log in with your role (Candidate/Manager), 2) Complete your profile, 3) If you're a candidate, start with quizzes; if you're a manager, explore candidate profiles and reports. Which role describes you best?",
	},
}

var fallbacks = []string{
	"That's an interesting question! I can help you with information about quizzes, dashboards, reports, accessibility features, or getting started. What would you like to know more about?",
	"I'm here to help you navigate NEUROBRIDGE! You can ask me about candidate features (quizzes, profiles, resume building) or manager tools (reports, analytics, candidate oversight). What interests you most?",
	"Great question! I can explain our inclusive features, quiz system, dashboard capabilities, or accessibility options. Feel free to ask about any aspect of the platform you'd like to explore!",
}
