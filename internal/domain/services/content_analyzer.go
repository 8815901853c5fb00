package services

import "elevatehub/internal/domain/models"

// MessageAnalyzer cleans message text and derives metadata from it
type MessageAnalyzer interface {
	// Process returns the cleaned content and type-specific metadata
	Process(content string, messageType models.MessageType) (string, models.JSONMap)
}

// IntentClassifier maps a message onto one of the supported intents
type IntentClassifier interface {
	Classify(message string, context models.JSONMap) models.Intent
	SupportedIntents() []models.IntentCategory
}
