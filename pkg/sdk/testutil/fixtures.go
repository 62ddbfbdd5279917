package testutil

// Fixtures provides canned API responses shaped like the demo generation API.

// FixtureGeneration returns a completed generation response.
func FixtureGeneration(prefix, message string) map[string]any {
	jobID := prefix + "_1a2b3c4d"
	return map[string]any{
		"jobId":    jobID,
		"status":   "completed",
		"message":  message,
		"assetUrl": "https://storage.googleapis.com/lotaya-assets/test/" + jobID + ".png",
		"metadata": map[string]any{"style": "modern"},
	}
}

// FixtureDomains returns a domain suggestion response with three available
// names and one taken.
func FixtureDomains() map[string]any {
	return map[string]any{
		"suggestions": []map[string]any{
			{"domain": "aidesign.com", "available": true, "price": "$12.99/year"},
			{"domain": "aidesign.io", "available": false, "price": "$34.99/year"},
			{"domain": "aihub.com", "available": true, "price": "$19.99/year"},
			{"domain": "aihub.io", "available": true, "price": "$45.99/year"},
		},
	}
}

// FixtureChat returns a chat assistant reply.
func FixtureChat() map[string]any {
	return map[string]any{
		"response":    "I'd love to help you create a stunning logo!",
		"suggestions": []string{"Tell me about your brand personality", "What's your target audience?"},
	}
}

// FixtureSlogans returns a slogan response for brand "Acme".
func FixtureSlogans() map[string]any {
	return map[string]any{
		"slogans": []string{"Innovate with Acme", "The Future is Acme", "Powered by Acme"},
	}
}
