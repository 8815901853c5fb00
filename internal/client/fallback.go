package client

import "strings"

type fallbackRule struct {
	keywords []string
	reply    string
}

// checked in order; the first rule with a matching keyword wins
var fallbackRules = []fallbackRule{
	{
		keywords: []string{"onboarding", "start"},
		reply:    "Great! Let me help you with your onboarding. You're currently in Phase 3 of 6 - learning about the company and department. I recommend starting with the company overview game and then reviewing the Insurance project documentation. Would you like me to guide you through any specific area?",
	},
	{
		keywords: []string{"insurance", "domain"},
		reply:    "The Insurance project focuses on digital transformation of policy management systems. Key concepts you should understand include: Policy Lifecycle Management, Claims Processing, Regulatory Compliance (Solvency II), and Customer Risk Assessment. I can provide detailed explanations for any of these areas. What would you like to learn about first?",
	},
	{
		keywords: []string{"team", "contact"},
		reply:    "Your team structure includes: Sarin (Technical Director) for strategic decisions, Raja (Engineering Manager) for day-to-day development, Asad (Lead Developer) for technical guidance, and Favour (Business Analyst/Scrum Master) for requirements and process questions. For urgent issues, start with your immediate team lead. Need contact details for anyone specific?",
	},
	{
		keywords: []string{"code", "standards"},
		reply:    "Our coding standards include: TypeScript for type safety, React with functional components, Tailwind CSS for styling, ESLint/Prettier for code formatting, and Git workflow with feature branches. We follow clean code principles and require code reviews. Would you like me to explain any specific standard or set up your development environment?",
	},
	{
		keywords: []string{"tools", "setup"},
		reply:    "For the Insurance project, you'll need: Salesforce DevOps, Postman Enterprise for API testing, Security Scanner Pro, and Tableau Desktop for analytics. I can see some tools are still pending installation. Would you like me to help prioritize which tools to install first or guide you through the setup process?",
	},
	{
		keywords: []string{"help", "stuck"},
		reply:    "I'm here to help! Please describe the specific challenge you're facing, and I'll provide step-by-step guidance. Whether it's technical issues, project questions, or onboarding tasks, I can assist with detailed explanations and point you to the right resources or team members.",
	},
}

// Respond produces the offline reply for message by keyword
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return "I understand your question about '" + message + "'. Let me provide some guidance on that. Based on your current onboarding phase and project requirements, I recommend checking the relevant documentation in your learning modules. Would you like me to be more specific about any particular aspect?"
}
